package redisrepo

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

type OtpRepo struct {
	rdb *redis.Client
}

func NewOtpRepo(rdb *redis.Client) *OtpRepo {
	return &OtpRepo{rdb: rdb}
}

// Create stores the code under the given key; the TTL doubles as the
// verification window, expired codes simply vanish.
func (r *OtpRepo) Create(ctx context.Context, key string, otp int, expiry time.Duration) error {
	return r.rdb.Set(ctx, key, otp, expiry).Err()
}

func (r *OtpRepo) Find(ctx context.Context, key string) (int, error) {
	return r.rdb.Get(ctx, key).Int()
}

func (r *OtpRepo) Delete(ctx context.Context, keys ...string) error {
	return r.rdb.Del(ctx, keys...).Err()
}
