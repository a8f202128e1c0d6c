package store

import (
	"context"

	"event-contact-system/internal/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type OrganiserParams struct {
	Name   string
	Phone  string
	Email  string
	Post   string
	UserID uint
}

// EnsureOrganiser 按 user_id 取已有档案，没有则创建
// user_id 上的唯一索引兜住并发创建：插入冲突时改读已有行
func (s *Store) EnsureOrganiser(ctx context.Context, p OrganiserParams) (*model.Organiser, error) {
	var org model.Organiser
	err := s.db.WithContext(ctx).Where("user_id = ?", p.UserID).First(&org).Error
	if err == nil {
		return &org, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errors.Wrap(err, "查询主办方档案失败")
	}

	org = model.Organiser{
		Name:   p.Name,
		Phone:  p.Phone,
		Email:  p.Email,
		Post:   p.Post,
		UserID: p.UserID,
	}
	if err := s.db.WithContext(ctx).Create(&org).Error; err != nil {
		if isDuplicate(err) {
			// 并发创建者抢先了，读它写入的行
			var existing model.Organiser
			if err := s.db.WithContext(ctx).Where("user_id = ?", p.UserID).First(&existing).Error; err != nil {
				return nil, errors.Wrap(err, "读取已有主办方档案失败")
			}
			return &existing, nil
		}
		return nil, errors.Wrap(err, "创建主办方档案失败")
	}
	return &org, nil
}

func (s *Store) OrganiserByUserID(ctx context.Context, userID uint) (*model.Organiser, error) {
	var org model.Organiser
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&org).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "查询主办方档案失败")
	}
	return &org, nil
}

// UpdateOrganiser 更新联系方式与职务
func (s *Store) UpdateOrganiser(ctx context.Context, userID uint, phone, post string) error {
	updates := map[string]interface{}{}
	if phone != "" {
		updates["phone"] = phone
	}
	if post != "" {
		updates["post"] = post
	}
	if len(updates) == 0 {
		return nil
	}

	res := s.db.WithContext(ctx).
		Model(&model.Organiser{}).
		Where("user_id = ?", userID).
		Updates(updates)
	if res.Error != nil {
		return errors.Wrap(res.Error, "更新主办方档案失败")
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
