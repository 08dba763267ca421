package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/saeid-a/NutriGuide/internal/models"
)

const keyPrefix = "profile:"

// ProfileCache stores serialized profiles under profile:{user_id}.
type ProfileCache struct {
	client *goredis.Client
	ttl    time.Duration
}

func NewProfileCache(client *goredis.Client, ttl time.Duration) *ProfileCache {
	return &ProfileCache{client: client, ttl: ttl}
}

// NewClient parses a redis:// URL and verifies the connection.
func NewClient(ctx context.Context, redisURL string) (*goredis.Client, error) {
	opts, err := goredis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := goredis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}

func key(userID int64) string {
	return keyPrefix + strconv.FormatInt(userID, 10)
}

// Get returns (nil, nil) on a miss.
func (c *ProfileCache) Get(ctx context.Context, userID int64) (*models.UserProfile, error) {
	if c.client == nil {
		return nil, fmt.Errorf("redis client is nil")
	}

	data, err := c.client.Get(ctx, key(userID)).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get cached profile: %w", err)
	}

	var p models.UserProfile
	if err := json.Unmarshal(data, &p); err != nil {
		// A stale entry from an older layout is treated as a miss.
		_ = c.client.Del(ctx, key(userID)).Err()
		return nil, nil
	}
	return &p, nil
}

func (c *ProfileCache) Set(ctx context.Context, userID int64, p *models.UserProfile) error {
	if c.client == nil {
		return fmt.Errorf("redis client is nil")
	}
	if p == nil {
		return fmt.Errorf("profile is required")
	}

	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encode cached profile: %w", err)
	}
	if err := c.client.Set(ctx, key(userID), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("set cached profile: %w", err)
	}
	return nil
}

func (c *ProfileCache) Invalidate(ctx context.Context, userID int64) error {
	if c.client == nil {
		return fmt.Errorf("redis client is nil")
	}
	if err := c.client.Del(ctx, key(userID)).Err(); err != nil {
		return fmt.Errorf("delete cached profile: %w", err)
	}
	return nil
}
