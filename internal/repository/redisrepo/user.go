package redisrepo

import (
	"context"
	"encoding/json"
	"time"

	"github.com/CreatorKit/api-service/internal/model"
	"github.com/redis/go-redis/v9"
)

type UserRepo struct {
	rdb *redis.Client
}

func NewUserRepo(rdb *redis.Client) *UserRepo {
	return &UserRepo{rdb: rdb}
}

func (r *UserRepo) Create(ctx context.Context, key string, value []byte, expiry time.Duration) error {
	err := r.rdb.Set(ctx, key, value, expiry).Err()
	return err
}

func (r *UserRepo) Find(ctx context.Context, key string) (*model.User, error) {
	userCache, err := r.rdb.Get(ctx, key).Result()
	if err != nil {
		return nil, err
	}

	var user model.User
	if err := json.Unmarshal([]byte(userCache), &user); err != nil {
		return nil, err
	}

	return &user, nil
}

func (r *UserRepo) Delete(ctx context.Context, keys ...string) error {
	err := r.rdb.Del(ctx, keys...).Err()
	return err
}
