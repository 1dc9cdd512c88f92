package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/DanRulev/lingobot.git/internal/config"
	"github.com/DanRulev/lingobot.git/internal/models"
	goredis "github.com/redis/go-redis/v9"
)

const (
	promptPrefix  = "lingobot:prompt:"
	sessionPrefix = "lingobot:session:"
)

// RedisCache stores dialog state as JSON so it survives restarts.
type RedisCache struct {
	rdb *goredis.Client
	ttl time.Duration
}

func NewRedisCache(ctx context.Context, cfg config.RedisConfig, ttl time.Duration) (*RedisCache, error) {
	if cfg.Addr == "" {
		return nil, fmt.Errorf("missing redis addr")
	}

	rdb := goredis.NewClient(&goredis.Options{
		Addr:        cfg.Addr,
		Password:    cfg.Password,
		DB:          cfg.DB,
		DialTimeout: 5 * time.Second,
	})

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return &RedisCache{rdb: rdb, ttl: ttl}, nil
}

func (c *RedisCache) Ping(ctx context.Context) error {
	return c.rdb.Ping(ctx).Err()
}

func (c *RedisCache) Close() error {
	return c.rdb.Close()
}

func (c *RedisCache) SetPrompt(ctx context.Context, userID int64, state models.PromptState) error {
	return c.set(ctx, key(promptPrefix, userID), state)
}

func (c *RedisCache) Prompt(ctx context.Context, userID int64) (models.PromptState, bool, error) {
	var state models.PromptState
	ok, err := c.get(ctx, key(promptPrefix, userID), &state)
	return state, ok, err
}

func (c *RedisCache) DeletePrompt(ctx context.Context, userID int64) error {
	return c.rdb.Del(ctx, key(promptPrefix, userID)).Err()
}

func (c *RedisCache) SetSession(ctx context.Context, userID int64, session models.Session) error {
	return c.set(ctx, key(sessionPrefix, userID), session)
}

func (c *RedisCache) Session(ctx context.Context, userID int64) (models.Session, bool, error) {
	var session models.Session
	ok, err := c.get(ctx, key(sessionPrefix, userID), &session)
	return session, ok, err
}

func (c *RedisCache) DeleteSession(ctx context.Context, userID int64) error {
	return c.rdb.Del(ctx, key(sessionPrefix, userID)).Err()
}

func (c *RedisCache) set(ctx context.Context, k string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", k, err)
	}
	if err := c.rdb.Set(ctx, k, raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", k, err)
	}
	return nil
}

func (c *RedisCache) get(ctx context.Context, k string, dst any) (bool, error) {
	raw, err := c.rdb.Get(ctx, k).Bytes()
	if errors.Is(err, goredis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("redis get %s: %w", k, err)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return false, fmt.Errorf("unmarshal %s: %w", k, err)
	}
	return true, nil
}

func key(prefix string, userID int64) string {
	return fmt.Sprintf("%s%d", prefix, userID)
}
