package ports

import (
	"context"

	"tourdispatch/internal/core/domain/model/fleet"
	"tourdispatch/internal/core/domain/model/kernel"
	"tourdispatch/internal/core/domain/model/order"
)

// OrderSource reads normalized orders from the ERP.
type OrderSource interface {
	// ListOrders returns orders due between from and to inclusive. A blank
	// city means every city. Eligibility is not filtered here.
	ListOrders(ctx context.Context, from, to kernel.Date, city string) ([]*order.Order, error)

	GetOrder(ctx context.Context, id string) (*order.Order, error)
}

type DriverDirectory interface {
	ListDrivers(ctx context.Context) ([]*fleet.Driver, error)
	GetDriver(ctx context.Context, id string) (*fleet.Driver, error)
}

type VehicleDirectory interface {
	ListVehicles(ctx context.Context) ([]*fleet.Vehicle, error)
	GetVehicle(ctx context.Context, id string) (*fleet.Vehicle, error)
}

// ProofRegistry answers membership questions about delivery proofs. Both
// methods return the subset of orderIDs that have the record.
type ProofRegistry interface {
	WithProofOfDelivery(ctx context.Context, orderIDs []string) ([]string, error)
	WithReturnsRecord(ctx context.Context, orderIDs []string) ([]string, error)
}

// TimeWindowProvider returns the promised delivery window of an order.
type TimeWindowProvider interface {
	WindowFor(ctx context.Context, orderID string) (kernel.TimeWindow, error)
}
