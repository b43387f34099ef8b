package recorder

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"InvestSim/internal/model"
)

// DefaultRedisKey holds the latest snapshot when no key is configured.
const DefaultRedisKey = "investsim:selic:latest"

// RedisStore keeps only the latest snapshot, JSON-encoded under one key.
type RedisStore struct {
	client *redis.Client
	key    string
}

func NewRedisStore(addr, key string) *RedisStore {
	if key == "" {
		key = DefaultRedisKey
	}
	rdb := redis.NewClient(&redis.Options{
		Addr:        addr,
		DialTimeout: 5 * time.Second,
	})
	return &RedisStore{client: rdb, key: key}
}

type redisSnapshot struct {
	Selic         float64 `json:"selic"`
	ReferenceDate string  `json:"reference_date,omitempty"`
	FetchedAt     int64   `json:"fetched_at"`
}

func (r *RedisStore) Save(ctx context.Context, b model.Benchmark) error {
	fetched := b.FetchedAt
	if fetched.IsZero() {
		fetched = time.Now()
	}
	payload, err := json.Marshal(redisSnapshot{
		Selic:         b.Selic,
		ReferenceDate: formatDate(b.ReferenceDate),
		FetchedAt:     fetched.Unix(),
	})
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	return r.client.Set(ctx, r.key, payload, 0).Err()
}

func (r *RedisStore) Latest(ctx context.Context) (model.Benchmark, bool, error) {
	val, err := r.client.Get(ctx, r.key).Result()
	if errors.Is(err, redis.Nil) {
		return model.Benchmark{}, false, nil
	}
	if err != nil {
		return model.Benchmark{}, false, fmt.Errorf("redis get %s: %w", r.key, err)
	}

	var snap redisSnapshot
	if err := json.Unmarshal([]byte(val), &snap); err != nil {
		return model.Benchmark{}, false, fmt.Errorf("decode snapshot: %w", err)
	}
	ref, err := parseDate(snap.ReferenceDate)
	if err != nil {
		return model.Benchmark{}, false, fmt.Errorf("parse reference date %q: %w", snap.ReferenceDate, err)
	}
	return model.Benchmark{
		Selic:         snap.Selic,
		ReferenceDate: ref,
		FetchedAt:     time.Unix(snap.FetchedAt, 0),
	}, true, nil
}

func (r *RedisStore) Close() error {
	return r.client.Close()
}
