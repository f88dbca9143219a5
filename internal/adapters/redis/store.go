// Package redis publishes a generated tree as Redis string keys, one key per
// artifact path, so that a thin HTTP front can serve the tree from memory.
package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"resumemcp/internal/ports"
)

// Config selects the server, the key prefix and an optional expiry.
type Config struct {
	Addr     string
	Password string
	DB       int
	Prefix   string
	TTL      time.Duration
}

// kv is the subset of the go-redis client the store uses.
type kv interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Expire(ctx context.Context, key string, expiration time.Duration) *redis.BoolCmd
}

// Store writes artifacts to keys named prefix+path.
type Store struct {
	rdb    kv
	closer func() error
	prefix string
	ttl    time.Duration
}

// Ensure Store implements ArtifactStore
var _ ports.ArtifactStore = (*Store)(nil)

// New creates a Redis client and verifies the connection with a PING.
func New(cfg Config) (*Store, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}
	s := newStore(rdb, cfg.Prefix, cfg.TTL)
	s.closer = rdb.Close
	return s, nil
}

func newStore(rdb kv, prefix string, ttl time.Duration) *Store {
	return &Store{rdb: rdb, prefix: prefix, ttl: ttl}
}

// Key maps an artifact path to its Redis key.
func (s *Store) Key(path string) string {
	return s.prefix + path
}

// Put sets the key unless it already holds data. An unchanged key still has
// its expiry refreshed.
func (s *Store) Put(ctx context.Context, path string, data []byte) (bool, error) {
	key := s.Key(path)

	current, err := s.rdb.Get(ctx, key).Bytes()
	switch {
	case err == nil && string(current) == string(data):
		if s.ttl > 0 {
			if err := s.rdb.Expire(ctx, key, s.ttl).Err(); err != nil {
				return false, fmt.Errorf("refreshing expiry of %s: %w", key, err)
			}
		}
		return false, nil
	case err != nil && !errors.Is(err, redis.Nil):
		return false, fmt.Errorf("reading %s: %w", key, err)
	}

	if err := s.rdb.Set(ctx, key, data, s.ttl).Err(); err != nil {
		return false, fmt.Errorf("setting %s: %w", key, err)
	}
	return true, nil
}

// Close releases the connection pool.
func (s *Store) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer()
}
