package redislock_test

import (
	"context"
	"testing"
	"time"

	"tourdispatch/internal/adapters/out/redislock"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLocker(t *testing.T) (*redislock.Locker, *miniredis.Miniredis) {
	t.Helper()
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	locker, err := redislock.New(client, time.Minute, nil)
	require.NoError(t, err)
	return locker, server
}

func TestLocker(t *testing.T) {
	t.Run("should hold every key until unlocked", func(t *testing.T) {
		locker, server := newLocker(t)

		unlock, err := locker.Lock(t.Context(), "tour:2024-03-05:lyon", "driver:2024-03-05:D1")
		require.NoError(t, err)
		assert.True(t, server.Exists("tourdispatch:lock:tour:2024-03-05:lyon"))
		assert.True(t, server.Exists("tourdispatch:lock:driver:2024-03-05:D1"))

		unlock()
		unlock()
		assert.False(t, server.Exists("tourdispatch:lock:tour:2024-03-05:lyon"))
		assert.False(t, server.Exists("tourdispatch:lock:driver:2024-03-05:D1"))
	})

	t.Run("should wait for a held key until the context expires", func(t *testing.T) {
		locker, _ := newLocker(t)
		unlock, err := locker.Lock(t.Context(), "tour:2024-03-05:lyon")
		require.NoError(t, err)
		defer unlock()

		ctx, cancel := context.WithTimeout(t.Context(), 100*time.Millisecond)
		defer cancel()
		_, err = locker.Lock(ctx, "tour:2024-03-05:paris", "tour:2024-03-05:lyon")

		require.ErrorIs(t, err, context.DeadlineExceeded)
	})

	t.Run("should release keys taken before a failure", func(t *testing.T) {
		locker, server := newLocker(t)
		unlock, err := locker.Lock(t.Context(), "b")
		require.NoError(t, err)
		defer unlock()

		ctx, cancel := context.WithTimeout(t.Context(), 50*time.Millisecond)
		defer cancel()
		_, err = locker.Lock(ctx, "a", "b")

		require.Error(t, err)
		assert.False(t, server.Exists("tourdispatch:lock:a"))
	})

	t.Run("should grant the key once the holder unlocks", func(t *testing.T) {
		locker, _ := newLocker(t)
		unlock, err := locker.Lock(t.Context(), "tour:2024-03-05:lyon")
		require.NoError(t, err)

		acquired := make(chan error, 1)
		go func() {
			second, err := locker.Lock(t.Context(), "tour:2024-03-05:lyon")
			if err == nil {
				second()
			}
			acquired <- err
		}()

		time.Sleep(50 * time.Millisecond)
		unlock()

		select {
		case err := <-acquired:
			require.NoError(t, err)
		case <-time.After(2 * time.Second):
			t.Fatal("lock was never granted")
		}
	})

	t.Run("should not delete a key taken over by another owner", func(t *testing.T) {
		locker, server := newLocker(t)
		unlock, err := locker.Lock(t.Context(), "k")
		require.NoError(t, err)

		require.NoError(t, server.Set("tourdispatch:lock:k", "someone-else"))
		unlock()

		value, err := server.Get("tourdispatch:lock:k")
		require.NoError(t, err)
		assert.Equal(t, "someone-else", value)
	})
}

func TestNew(t *testing.T) {
	_, err := redislock.New(nil, time.Second, nil)
	assert.ErrorIs(t, err, redislock.ErrClientIsRequired)
}
