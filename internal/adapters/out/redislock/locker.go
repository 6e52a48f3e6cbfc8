// Package redislock shares tour and resource locks between dispatcher
// instances through Redis.
package redislock

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"tourdispatch/internal/core/ports"
)

const (
	DefaultTTL       = 30 * time.Second
	DefaultRetryWait = 25 * time.Millisecond
	keyPrefix        = "tourdispatch:lock:"
)

var ErrClientIsRequired = errors.New("redis client is required")

// release deletes the key only while it still holds this owner's token.
var release = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

var _ ports.TourLocker = (*Locker)(nil)

type Locker struct {
	client    redis.UniversalClient
	ttl       time.Duration
	retryWait time.Duration
	logger    *slog.Logger
}

func New(client redis.UniversalClient, ttl time.Duration, logger *slog.Logger) (*Locker, error) {
	if client == nil {
		return nil, ErrClientIsRequired
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Locker{
		client:    client,
		ttl:       ttl,
		retryWait: DefaultRetryWait,
		logger:    logger.With("component", "redis-lock"),
	}, nil
}

// Lock takes every key in sorted order, waiting until each is free or ctx is
// done. On failure the keys already held are released.
func (l *Locker) Lock(ctx context.Context, keys ...string) (func(), error) {
	keys = slices.Clone(keys)
	slices.Sort(keys)
	keys = slices.Compact(keys)

	token := uuid.NewString()
	held := make([]string, 0, len(keys))
	for _, key := range keys {
		if err := l.acquire(ctx, keyPrefix+key, token); err != nil {
			l.releaseAll(held, token)
			return nil, fmt.Errorf("lock %s: %w", key, err)
		}
		held = append(held, keyPrefix+key)
	}

	var released bool
	return func() {
		if released {
			return
		}
		released = true
		l.releaseAll(held, token)
	}, nil
}

func (l *Locker) acquire(ctx context.Context, key, token string) error {
	ticker := time.NewTicker(l.retryWait)
	defer ticker.Stop()

	for {
		ok, err := l.client.SetNX(ctx, key, token, l.ttl).Result()
		if err != nil {
			return err
		}
		if ok {
			return nil
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

func (l *Locker) releaseAll(keys []string, token string) {
	// The caller's context may already be cancelled; release must still run.
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	for i := len(keys) - 1; i >= 0; i-- {
		if err := release.Run(ctx, l.client, []string{keys[i]}, token).Err(); err != nil {
			l.logger.Warn("failed to release lock", "key", keys[i], "error", err)
		}
	}
}
