package limiter

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Store 按客户端记录登记窗口（Redis SET NX）
type Store struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewStore ttl <= 0 表示不限流
func NewStore(rdb *redis.Client, ttl time.Duration) *Store { return &Store{rdb: rdb, ttl: ttl} }

func key(scope, client string) string { return fmt.Sprintf("laf:throttle:%s:%s", scope, client) }

// Allow 窗口内首次调用返回 true 并开启新窗口；nil 或未启用时总是放行
func (s *Store) Allow(ctx context.Context, scope, client string) (bool, error) {
	if s == nil || s.rdb == nil || s.ttl <= 0 {
		return true, nil
	}
	ok, err := s.rdb.SetNX(ctx, key(scope, client), "1", s.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("setnx: %w", err)
	}
	return ok, nil
}
