package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/polkiloo/ecopoints/internal/domain/model"
)

// RedisCache stores JSON encoded projections in redis with a fixed TTL.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisCache connects to redis and verifies the connection.
func NewRedisCache(ctx context.Context, addr, password string, ttl time.Duration) (*RedisCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:        addr,
		Password:    password,
		DB:          0,
		MaxRetries:  5,
		DialTimeout: 10 * time.Second,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return &RedisCache{client: client, ttl: ttl}, nil
}

func (c *RedisCache) GetBalance(ctx context.Context, userID int64) (*model.BalanceSummary, error) {
	var summary model.BalanceSummary
	if err := c.get(ctx, balanceKey(userID), &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

func (c *RedisCache) SetBalance(ctx context.Context, summary *model.BalanceSummary) error {
	return c.set(ctx, balanceKey(summary.UserID), summary)
}

func (c *RedisCache) InvalidateBalance(ctx context.Context, userID int64) error {
	return c.client.Del(ctx, balanceKey(userID)).Err()
}

func (c *RedisCache) GetVoucher(ctx context.Context, voucherID int64) (*model.Voucher, error) {
	var v model.Voucher
	if err := c.get(ctx, voucherKey(voucherID), &v); err != nil {
		return nil, err
	}
	return &v, nil
}

func (c *RedisCache) SetVoucher(ctx context.Context, voucher *model.Voucher) error {
	return c.set(ctx, voucherKey(voucher.ID), voucher)
}

func (c *RedisCache) InvalidateVoucher(ctx context.Context, voucherID int64) error {
	return c.client.Del(ctx, voucherKey(voucherID)).Err()
}

// Close releases the redis connection pool.
func (c *RedisCache) Close() error {
	return c.client.Close()
}

func (c *RedisCache) get(ctx context.Context, key string, dest any) error {
	val, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return ErrMiss
	} else if err != nil {
		return err
	}
	if err := json.Unmarshal(val, dest); err != nil {
		return fmt.Errorf("decode %s: %w", key, err)
	}
	return nil
}

func (c *RedisCache) set(ctx context.Context, key string, value any) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return c.client.Set(ctx, key, payload, c.ttl).Err()
}
