package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/cinebox/cinema-box-office/internal/domain"
)

const snapshotKey = "cinema:snapshot"

// RedisClient is the slice of the redis API the snapshot store needs.
type RedisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

// RedisCinemaRepository stores the cinema snapshot as a JSON string under a
// single key, so state survives across hosts sharing a redis instance.
type RedisCinemaRepository struct {
	client RedisClient
}

func NewRedisCinemaRepository(client RedisClient) *RedisCinemaRepository {
	return &RedisCinemaRepository{
		client: client,
	}
}

func (r *RedisCinemaRepository) Load(ctx context.Context) (*domain.Snapshot, error) {
	data, err := r.client.Get(ctx, snapshotKey).Result()
	if errors.Is(err, redis.Nil) {
		return domain.NewSnapshot(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading cinema snapshot from redis: %w", err)
	}

	snap := domain.NewSnapshot()
	if err := json.Unmarshal([]byte(data), snap); err != nil {
		return nil, fmt.Errorf("decoding cinema snapshot: %w", err)
	}

	return snap, nil
}

func (r *RedisCinemaRepository) Save(ctx context.Context, snap *domain.Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encoding cinema snapshot: %w", err)
	}

	if err := r.client.Set(ctx, snapshotKey, data, 0).Err(); err != nil {
		return fmt.Errorf("writing cinema snapshot to redis: %w", err)
	}

	return nil
}
