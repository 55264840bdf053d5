// Package redis implements the transcript log store via rueidis.
package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/rueidis"

	"github.com/louvou/catalog/internal/db"
)

// Config holds connection parameters for the transcript store.
type Config struct {
	Addrs    []string
	Username string
	Password string
	DB       int
}

// Store keeps per-session transcript lists in Redis.
type Store struct {
	client rueidis.Client
}

// NewStore creates a Redis-backed transcript store.
func NewStore(cfg Config) (*Store, error) {
	if len(cfg.Addrs) == 0 {
		return nil, fmt.Errorf("addrs is required")
	}

	client, err := rueidis.NewClient(rueidis.ClientOption{
		InitAddress:  cfg.Addrs,
		Username:     cfg.Username,
		Password:     cfg.Password,
		SelectDB:     cfg.DB,
		DisableCache: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	return &Store{client: client}, nil
}

// Ping checks connectivity.
func (s *Store) Ping(ctx context.Context) error {
	cmd := s.client.B().Ping().Build()
	if err := s.client.Do(ctx, cmd).Error(); err != nil {
		return &db.Error{Op: db.OpPing, Err: err}
	}
	return nil
}

// Close shuts down the client.
func (s *Store) Close() {
	s.client.Close()
}

// WaitForReady polls Ping until the store responds or timeout expires.
func (s *Store) WaitForReady(ctx context.Context, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return fmt.Errorf("timeout waiting for transcript store: %w", ctx.Err())
		case <-ticker.C:
			if err := s.Ping(ctx); err == nil {
				return nil
			}
		}
	}
}

// ListAppend appends a value to the tail of the list at key.
func (s *Store) ListAppend(ctx context.Context, key string, value []byte) error {
	cmd := s.client.B().Rpush().Key(key).Element(string(value)).Build()
	if err := s.client.Do(ctx, cmd).Error(); err != nil {
		return &db.Error{Op: db.OpRPush, Err: err}
	}
	return nil
}

// ListRange returns the full list at key, oldest entry first. A missing
// key yields an empty slice, not an error.
func (s *Store) ListRange(ctx context.Context, key string) ([][]byte, error) {
	cmd := s.client.B().Lrange().Key(key).Start(0).Stop(-1).Build()
	msgs, err := s.client.Do(ctx, cmd).ToArray()
	if err != nil {
		return nil, &db.Error{Op: db.OpLRange, Err: err}
	}

	out := make([][]byte, 0, len(msgs))
	for _, m := range msgs {
		data, err := m.AsBytes()
		if err != nil {
			return nil, &db.Error{Op: db.OpLRange, Err: err}
		}
		out = append(out, data)
	}
	return out, nil
}

// Expire sets a TTL on a key.
func (s *Store) Expire(ctx context.Context, key string, ttl time.Duration) error {
	cmd := s.client.B().Expire().Key(key).Seconds(int64(ttl.Seconds())).Build()
	if err := s.client.Do(ctx, cmd).Error(); err != nil {
		return &db.Error{Op: db.OpExpire, Err: err}
	}
	return nil
}
