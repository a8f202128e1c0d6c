package jwt

import (
	"time"

	"event-contact-system/config"

	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
)

// Payload 令牌携带的用户信息
type Payload struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"` // 账户默认角色，事件内角色以 joins 表为准
}

type Claims struct {
	Payload
	jwt.StandardClaims
}

// CreateToken 签发访问令牌，Id 字段用于注销时在 Redis 中标记吊销
func CreateToken(p Payload) string {
	cfg := config.Get()
	now := time.Now()
	claims := Claims{
		Payload: p,
		StandardClaims: jwt.StandardClaims{
			Id:        uuid.NewString(),
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(time.Duration(cfg.JWT.AccessExpire) * time.Second).Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(cfg.JWT.AccessSecret))
	if err != nil {
		return ""
	}
	return signed
}

// ParseToken 解析并校验令牌
func ParseToken(tokenString string) (*Claims, bool) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(config.Get().JWT.AccessSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, false
	}
	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, false
	}
	return claims, true
}
