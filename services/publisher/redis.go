package publisher

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"

	"pricewatcher/config"
	"pricewatcher/internal/deal"
)

// RedisPublisher implements Publisher on a Redis stream
type RedisPublisher struct {
	client *redis.Client
	stream string
	maxLen int
}

// NewRedisPublisher creates a Redis-backed deal feed
func NewRedisPublisher(cfg config.RedisConfig) *RedisPublisher {
	client := redis.NewClient(&redis.Options{
		Addr: cfg.Addr,
		DB:   cfg.DB,
	})

	return &RedisPublisher{
		client: client,
		stream: cfg.Stream,
		maxLen: cfg.StreamMaxLen,
	}
}

// Publish appends one deal record to the stream as JSON
func (p *RedisPublisher) Publish(ctx context.Context, record deal.Record) error {
	data, err := json.Marshal(record)
	if err != nil {
		return err
	}

	return p.client.XAdd(ctx, &redis.XAddArgs{
		Stream: p.stream,
		Values: map[string]interface{}{
			"deal": data,
		},
	}).Err()
}

// Trim caps the stream at the configured maximum length
func (p *RedisPublisher) Trim(ctx context.Context) error {
	return p.client.XTrimMaxLen(ctx, p.stream, int64(p.maxLen)).Err()
}

// Close closes the Redis connection
func (p *RedisPublisher) Close() error {
	return p.client.Close()
}
