package keylock_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"tourdispatch/internal/pkg/keylock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocker_Lock(t *testing.T) {
	t.Run("should serialize holders of the same key", func(t *testing.T) {
		locker := keylock.New()
		var mu sync.Mutex
		inside, maxInside := 0, 0

		var wg sync.WaitGroup
		for range 20 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				unlock, err := locker.Lock(t.Context(), "tour:lyon", "driver:D1")
				if !assert.NoError(t, err) {
					return
				}
				defer unlock()

				mu.Lock()
				inside++
				maxInside = max(maxInside, inside)
				mu.Unlock()

				time.Sleep(time.Millisecond)

				mu.Lock()
				inside--
				mu.Unlock()
			}()
		}
		wg.Wait()

		assert.Equal(t, 1, maxInside)
	})

	t.Run("should not block different keys", func(t *testing.T) {
		locker := keylock.New()
		unlockA, err := locker.Lock(t.Context(), "a")
		require.NoError(t, err)
		defer unlockA()

		unlockB, err := locker.Lock(t.Context(), "b")
		require.NoError(t, err)
		unlockB()
	})

	t.Run("should give up when the context ends", func(t *testing.T) {
		locker := keylock.New()
		unlock, err := locker.Lock(t.Context(), "a")
		require.NoError(t, err)

		ctx, cancel := context.WithTimeout(t.Context(), 20*time.Millisecond)
		defer cancel()
		_, err = locker.Lock(ctx, "b", "a")
		require.ErrorIs(t, err, context.DeadlineExceeded)

		// "b" was released on failure.
		unlockB, err := locker.Lock(t.Context(), "b")
		require.NoError(t, err)
		unlockB()
		unlock()
	})

	t.Run("should tolerate duplicate keys and double unlock", func(t *testing.T) {
		locker := keylock.New()
		unlock, err := locker.Lock(t.Context(), "a", "a")
		require.NoError(t, err)
		unlock()
		unlock()

		unlock, err = locker.Lock(t.Context(), "a")
		require.NoError(t, err)
		unlock()
	})
}
