package cache

import (
	"context"
	"log"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/NomadRelief/stall-scheduler/internal/config"
)

// Client wraps the shared Redis connection used for short-lived response
// caching and for publishing live-update events to dashboard consumers.
type Client struct {
	rdb *redis.Client
}

func New(cfg *config.Config) *Client {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       0,
	})

	if err := rdb.Ping(context.Background()).Err(); err != nil {
		log.Printf("redis unavailable, caching disabled: %v", err)
		return &Client{}
	}

	return &Client{rdb: rdb}
}

// Enabled reports whether Redis is reachable. All methods degrade to no-ops
// when it is not; the API never depends on the cache being up.
func (c *Client) Enabled() bool {
	return c != nil && c.rdb != nil
}

func (c *Client) GetJSON(ctx context.Context, key string) ([]byte, bool) {
	if !c.Enabled() {
		return nil, false
	}
	b, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}
	return b, true
}

func (c *Client) SetJSON(ctx context.Context, key string, payload []byte, ttl time.Duration) {
	if !c.Enabled() {
		return
	}
	if err := c.rdb.Set(ctx, key, payload, ttl).Err(); err != nil {
		log.Printf("cache set %s: %v", key, err)
	}
}

func (c *Client) Invalidate(ctx context.Context, keys ...string) {
	if !c.Enabled() || len(keys) == 0 {
		return
	}
	if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
		log.Printf("cache del: %v", err)
	}
}

// Publish pushes a live-update event on the company's channel. Best effort.
func (c *Client) Publish(ctx context.Context, channel string, payload []byte) {
	if !c.Enabled() {
		return
	}
	if err := c.rdb.Publish(ctx, channel, payload).Err(); err != nil {
		log.Printf("publish %s: %v", channel, err)
	}
}
