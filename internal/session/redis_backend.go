package session

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisBackend stores each session as a hash that expires after the TTL.
type RedisBackend struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

func NewRedisBackend(client *redis.Client, ttl time.Duration) *RedisBackend {
	return &RedisBackend{client: client, prefix: "jobboard:session:", ttl: ttl}
}

// Load returns nil values for unknown or expired sessions.
func (b *RedisBackend) Load(ctx context.Context, sid string) (map[string]string, error) {
	values, err := b.client.HGetAll(ctx, b.prefix+sid).Result()
	if err != nil {
		return nil, err
	}
	if len(values) == 0 {
		return nil, nil
	}
	return values, nil
}

func (b *RedisBackend) Save(ctx context.Context, sid string, values map[string]string) error {
	key := b.prefix + sid
	fields := make(map[string]interface{}, len(values))
	for k, v := range values {
		fields[k] = v
	}
	_, err := b.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, key)
		pipe.HSet(ctx, key, fields)
		pipe.Expire(ctx, key, b.ttl)
		return nil
	})
	return err
}

func (b *RedisBackend) Delete(ctx context.Context, sid string) error {
	return b.client.Del(ctx, b.prefix+sid).Err()
}
