package fleet_test

import (
	"testing"

	"tourdispatch/internal/core/domain/model/fleet"
	"tourdispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDriver(t *testing.T) {
	t.Run("should trim fields", func(t *testing.T) {
		d, err := fleet.NewDriver(" D1 ", " Alice ")

		require.NoError(t, err)
		require.NoError(t, d.Validate())
		assert.Equal(t, "D1", d.ID())
		assert.Equal(t, "Alice", d.Name())
	})

	t.Run("should fall back to id for blank name", func(t *testing.T) {
		d, err := fleet.NewDriver("D1", "")

		require.NoError(t, err)
		assert.Equal(t, "D1", d.Name())
	})

	t.Run("should fail with blank id", func(t *testing.T) {
		_, err := fleet.NewDriver(" ", "Alice")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail validation for zero value", func(t *testing.T) {
		require.ErrorIs(t, (&fleet.Driver{}).Validate(), fleet.ErrDriverIsNotConstructed)
	})
}

func TestNewVehicle(t *testing.T) {
	t.Run("should normalize plate", func(t *testing.T) {
		v, err := fleet.NewVehicle("V1", " Van 3.5t ", " ab-123-cd ", false)

		require.NoError(t, err)
		require.NoError(t, v.Validate())
		assert.Equal(t, "V1", v.ID())
		assert.Equal(t, "Van 3.5t", v.Description())
		assert.Equal(t, "AB-123-CD", v.Plate())
		assert.True(t, v.Available())
	})

	t.Run("should report maintenance", func(t *testing.T) {
		v, err := fleet.NewVehicle("V2", "Truck", "XY", true)

		require.NoError(t, err)
		assert.True(t, v.UnderMaintenance())
		assert.False(t, v.Available())
	})

	t.Run("should fail with blank id", func(t *testing.T) {
		_, err := fleet.NewVehicle("", "Truck", "XY", false)

		require.ErrorIs(t, err, fleet.ErrVehicleIDIsRequired)
	})
}
