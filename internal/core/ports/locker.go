package ports

import (
	"context"
	"strings"

	"tourdispatch/internal/core/domain/model/kernel"
	"tourdispatch/internal/core/domain/model/tour"
)

// TourLocker serializes writers per key. Lock blocks until every key is held
// or ctx is done; implementations acquire keys in sorted order so that
// overlapping key sets cannot deadlock. The returned unlock releases all keys
// and is safe to call more than once.
type TourLocker interface {
	Lock(ctx context.Context, keys ...string) (unlock func(), err error)
}

func TourLockKey(key tour.Key) string {
	return "tour:" + key.Date.String() + ":" + strings.ToLower(key.City)
}

// DriverLockKey guards the driver cap of one planning date.
func DriverLockKey(date kernel.Date, driverID string) string {
	return "driver:" + date.String() + ":" + driverID
}

// VehicleLockKey guards the vehicle cap of one planning date.
func VehicleLockKey(date kernel.Date, vehicleID string) string {
	return "vehicle:" + date.String() + ":" + vehicleID
}
