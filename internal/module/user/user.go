package user

import (
	"time"
	"unicode"

	"event-contact-system/internal/global/cache"
	"event-contact-system/internal/global/jwt"
	"event-contact-system/internal/global/response"
	"event-contact-system/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

type RegisterRequest struct {
	FirstName       string `json:"first_name" binding:"required"`
	LastName        string `json:"last_name" binding:"required"`
	MobileNo        string `json:"mobile_no" binding:"required"`
	Username        string `json:"username" binding:"required,email"`
	Password        string `json:"password" binding:"required"`
	ConfirmPassword string `json:"confirm_password" binding:"required,eqfield=Password"`
}

// Register 注册新用户，用户名为邮箱，账户角色固定为 participant
func Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}
	if err := validatePasswordStrength(req.Password); err != nil {
		response.Fail(c, response.ErrInvalidRequest.WithTips(err.Error()))
		return
	}

	id, err := st.RegisterUser(c.Request.Context(), store.RegisterUserParams{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		MobileNo:  req.MobileNo,
		Username:  req.Username,
		Password:  req.Password,
	})
	if err != nil {
		if errors.Is(err, store.ErrDuplicateUsername) {
			response.Fail(c, response.ErrAlreadyExists.WithTips("该邮箱已注册"))
			return
		}
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	log.Info("新用户注册", "user_id", id, "username", req.Username)
	response.Success(c, gin.H{"user_id": id})
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login 登录成功后签发 JWT
func Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	user, err := st.AuthenticateUser(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, store.ErrInvalidCredentials) {
			response.Fail(c, response.ErrInvalidCredentials)
			return
		}
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	token := jwt.CreateToken(jwt.Payload{
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Role,
	})
	if token == "" {
		response.Fail(c, response.ErrServerInternal.WithTips("签发令牌失败"))
		return
	}

	response.Success(c, gin.H{
		"token":      token,
		"user_id":    user.ID,
		"username":   user.Username,
		"first_name": user.FirstName,
		"last_name":  user.LastName,
		"role":       user.Role,
	})
}

// Logout 将当前令牌写入 Redis 吊销名单，剩余寿命到期后自动清理
func Logout(c *gin.Context) {
	payload, exists := jwt.GetUserPayload(c)
	if !exists {
		response.Fail(c, response.ErrUnauthorized)
		return
	}

	ttl := time.Until(time.Unix(payload.ExpiresAt, 0))
	if err := cache.RevokeToken(c.Request.Context(), rdb, payload.Id, ttl); err != nil {
		response.Fail(c, response.ErrServerInternal.WithOrigin(err))
		return
	}
	response.Success(c)
}

// GetMe 返回当前登录用户的资料
func GetMe(c *gin.Context) {
	payload, exists := jwt.GetUserPayload(c)
	if !exists {
		response.Fail(c, response.ErrUnauthorized)
		return
	}

	user, err := st.UserByID(c.Request.Context(), payload.UserID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			response.Fail(c, response.ErrNotFound.WithTips("用户不存在"))
			return
		}
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	response.Success(c, user)
}

// validatePasswordStrength 密码至少 8 位，且包含字母和数字
func validatePasswordStrength(password string) error {
	if len(password) < 8 {
		return errors.New("密码长度不能少于 8 位")
	}
	var hasLetter, hasDigit bool
	for _, ch := range password {
		switch {
		case unicode.IsLetter(ch):
			hasLetter = true
		case unicode.IsDigit(ch):
			hasDigit = true
		}
	}
	if !hasLetter || !hasDigit {
		return errors.New("密码必须同时包含字母和数字")
	}
	return nil
}
