package guard_test

import (
	"errors"
	"testing"

	"tourdispatch/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	errNotConstructed := errors.New("command not constructed")

	t.Run("constructed_guard_passes", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errNotConstructed))
		require.NoError(t, g.Validate(nil))
	})

	t.Run("zero_value_returns_supplied_error", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(errNotConstructed)

		require.Error(t, err)
		assert.Equal(t, errNotConstructed, err)
	})

	t.Run("zero_value_falls_back_to_default_error", func(t *testing.T) {
		var g guard.ConstructorGuard

		assert.Equal(t, guard.ErrDefaultConstructorGuard, g.Validate(nil))
	})
}

func TestConstructorGuard_EmbeddedInValue(t *testing.T) {
	type closeRequest struct {
		city  string
		guard guard.ConstructorGuard
	}
	errRequest := errors.New("closeRequest must be created via newCloseRequest")

	newCloseRequest := func(city string) closeRequest {
		return closeRequest{city: city, guard: guard.NewConstructorGuard()}
	}

	require.NoError(t, newCloseRequest("Lyon").guard.Validate(errRequest))
	assert.Equal(t, errRequest, closeRequest{city: "Lyon"}.guard.Validate(errRequest))
}
