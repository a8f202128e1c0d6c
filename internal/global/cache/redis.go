package cache

import (
	"context"
	"errors"
	"time"

	"event-contact-system/config"

	"github.com/redis/go-redis/v9"
)

const revokedKeyPrefix = "auth:revoked:"

// New 创建 Redis 客户端；未配置 Host 时返回 nil，相关功能自动降级
func New() *redis.Client {
	cfg := config.Get()
	if cfg.Redis.Host == "" {
		return nil
	}
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Host + ":" + cfg.Redis.Port,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
}

// RevokeToken 注销时将令牌 Id 写入吊销名单，有效期为令牌剩余寿命
func RevokeToken(ctx context.Context, rdb *redis.Client, tokenID string, ttl time.Duration) error {
	if rdb == nil || tokenID == "" {
		return nil
	}
	if ttl <= 0 {
		return nil // 已过期的令牌无需吊销
	}
	return rdb.Set(ctx, revokedKeyPrefix+tokenID, 1, ttl).Err()
}

// TokenRevoked 检查令牌是否已被吊销
func TokenRevoked(ctx context.Context, rdb *redis.Client, tokenID string) (bool, error) {
	if rdb == nil || tokenID == "" {
		return false, nil
	}
	err := rdb.Get(ctx, revokedKeyPrefix+tokenID).Err()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
