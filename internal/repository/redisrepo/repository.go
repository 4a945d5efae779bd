package redisrepo

import (
	"context"
	"time"

	"github.com/CreatorKit/api-service/internal/model"
	"github.com/redis/go-redis/v9"
)

type Otp interface {
	Create(ctx context.Context, key string, otp int, expiry time.Duration) error
	Find(ctx context.Context, key string) (int, error)
	Delete(ctx context.Context, keys ...string) error
}

type User interface {
	Create(ctx context.Context, key string, value []byte, expiry time.Duration) error
	Find(ctx context.Context, key string) (*model.User, error)
	Delete(ctx context.Context, keys ...string) error
}

type RedisRepository struct {
	Default *DefaultRepo
	Otp
	User
}

func NewRedisRepo(rdb *redis.Client) *RedisRepository {
	return &RedisRepository{
		Default: NewDefaultRedisRepo(rdb),
		Otp:     NewOtpRepo(rdb),
		User:    NewUserRepo(rdb),
	}
}
