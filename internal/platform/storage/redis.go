package storage

import (
	"context"

	redisp "gag-stock-bot/internal/platform/redis"
)

const redisKeyPrefix = "gagbot:"

type redisBackend struct {
	client *redisp.Client
}

// NewRedisStore keeps each collection under the key gagbot:<collection>.
func NewRedisStore(client *redisp.Client) Store {
	return newDocumentStore("redis", &redisBackend{client: client})
}

func (b *redisBackend) get(ctx context.Context, key string) ([]byte, bool, error) {
	data, err := b.client.Get(ctx, redisKeyPrefix+key).Bytes()
	if err != nil {
		if redisp.IsNil(err) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return data, true, nil
}

func (b *redisBackend) put(ctx context.Context, key string, data []byte) error {
	return b.client.Set(ctx, redisKeyPrefix+key, data, 0).Err()
}

func (b *redisBackend) ping(ctx context.Context) error {
	return b.client.Ping(ctx).Err()
}

func (b *redisBackend) close() error {
	return b.client.Close()
}
