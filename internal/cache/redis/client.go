package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/rightsguard/backend/internal/metrics"
	"github.com/rightsguard/backend/pkg/logger"
	"github.com/rightsguard/backend/pkg/utils"
)

const guidePrefix = "guide:"

type Client struct {
	client *redis.Client
}

func NewClient(host string, port int, password string, db int) (*Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", host, port),
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	logger.Info("Redis client initialized", zap.String("addr", client.Options().Addr))

	return &Client{client: client}, nil
}

// NewFromClient wraps an existing go-redis client.
func NewFromClient(client *redis.Client) *Client {
	return &Client{client: client}
}

func (c *Client) Close() error {
	return c.client.Close()
}

func guideKey(jurisdictionCode string) string {
	return guidePrefix + utils.CacheKey(jurisdictionCode)
}

func (c *Client) SetGuide(ctx context.Context, jurisdictionCode string, guide any, ttl time.Duration) error {
	data, err := json.Marshal(guide)
	if err != nil {
		return fmt.Errorf("failed to marshal guide: %w", err)
	}

	err = c.client.Set(ctx, guideKey(jurisdictionCode), data, ttl).Err()
	if err != nil {
		return fmt.Errorf("failed to set guide cache: %w", err)
	}

	logger.Debug("Guide cached", zap.String("jurisdiction", jurisdictionCode), zap.Duration("ttl", ttl))
	return nil
}

func (c *Client) GetGuide(ctx context.Context, jurisdictionCode string, dest any) (bool, error) {
	data, err := c.client.Get(ctx, guideKey(jurisdictionCode)).Bytes()
	if errors.Is(err, redis.Nil) {
		metrics.CacheMisses.WithLabelValues("guide").Inc()
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to get guide cache: %w", err)
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return false, fmt.Errorf("failed to unmarshal guide: %w", err)
	}

	metrics.CacheHits.WithLabelValues("guide").Inc()
	logger.Debug("Guide cache hit", zap.String("jurisdiction", jurisdictionCode))
	return true, nil
}

// InvalidateGuides drops every cached guide.
func (c *Client) InvalidateGuides(ctx context.Context) (int, error) {
	removed := 0
	iter := c.client.Scan(ctx, 0, guidePrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			logger.Warn("Failed to delete cache key", zap.Error(err))
			continue
		}
		removed++
	}

	if err := iter.Err(); err != nil {
		return removed, fmt.Errorf("failed to iterate cache keys: %w", err)
	}

	logger.Info("Guide cache invalidated", zap.Int("removed", removed))
	return removed, nil
}

func (c *Client) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}
