package store

import (
	"context"

	"event-contact-system/internal/model"
	"event-contact-system/internal/role"

	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type RegisterUserParams struct {
	FirstName string
	LastName  string
	MobileNo  string
	Username  string
	Password  string
	Role      string // 为空时默认 participant
}

// RegisterUser 注册新用户，密码以 bcrypt 加盐哈希入库
func (s *Store) RegisterUser(ctx context.Context, p RegisterUserParams) (uint, error) {
	if p.Role == "" {
		p.Role = role.Participant
	}
	if !role.Valid(p.Role) {
		return 0, ErrInvalidRole
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(p.Password), bcrypt.DefaultCost)
	if err != nil {
		return 0, errors.Wrap(err, "加密密码失败")
	}

	user := model.User{
		FirstName: p.FirstName,
		LastName:  p.LastName,
		MobileNo:  p.MobileNo,
		Username:  p.Username,
		Password:  string(hash),
		Role:      role.Normalize(p.Role),
	}
	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		if isDuplicate(err) {
			return 0, ErrDuplicateUsername
		}
		return 0, errors.Wrap(err, "创建用户失败")
	}
	return user.ID, nil
}

// AuthenticateUser 校验用户名和密码
// 用户不存在与密码错误统一返回 ErrInvalidCredentials，不向调用方泄露区别
func (s *Store) AuthenticateUser(ctx context.Context, username, password string) (*model.User, error) {
	var user model.User
	err := s.db.WithContext(ctx).Where("username = ?", username).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, errors.Wrap(err, "查询用户失败")
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return &user, nil
}

func (s *Store) UserByID(ctx context.Context, id uint) (*model.User, error) {
	var user model.User
	err := s.db.WithContext(ctx).First(&user, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "查询用户失败")
	}
	return &user, nil
}
