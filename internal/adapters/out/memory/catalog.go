package memory

import (
	"context"
	"slices"
	"strings"
	"sync"

	"tourdispatch/internal/core/domain/model/fleet"
	"tourdispatch/internal/core/domain/model/kernel"
	"tourdispatch/internal/core/domain/model/order"
	"tourdispatch/internal/pkg/errs"
)

// Catalog is an in-memory stand-in for the ERP side: orders, the driver and
// vehicle directories and the proof registry.
type Catalog struct {
	mu       sync.RWMutex
	orders   []*order.Order
	drivers  []*fleet.Driver
	vehicles []*fleet.Vehicle
	pods     map[string]struct{}
	returns  map[string]struct{}
}

func NewCatalog() *Catalog {
	return &Catalog{
		pods:    make(map[string]struct{}),
		returns: make(map[string]struct{}),
	}
}

func (c *Catalog) AddOrders(orders ...*order.Order) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.orders = append(c.orders, orders...)
}

func (c *Catalog) AddDrivers(drivers ...*fleet.Driver) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.drivers = append(c.drivers, drivers...)
}

func (c *Catalog) AddVehicles(vehicles ...*fleet.Vehicle) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.vehicles = append(c.vehicles, vehicles...)
}

// RecordProofOfDelivery marks orders as signed for.
func (c *Catalog) RecordProofOfDelivery(orderIDs ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, id := range orderIDs {
		c.pods[id] = struct{}{}
	}
}

func (c *Catalog) RecordReturns(orderIDs ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, id := range orderIDs {
		c.returns[id] = struct{}{}
	}
}

func (c *Catalog) ListOrders(_ context.Context, from, to kernel.Date, city string) ([]*order.Order, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	city = strings.TrimSpace(city)
	var out []*order.Order
	for _, o := range c.orders {
		if !o.DeliveryDate().Between(from, to) {
			continue
		}
		if city != "" && !strings.EqualFold(o.City(), city) {
			continue
		}
		out = append(out, o)
	}
	return out, nil
}

func (c *Catalog) GetOrder(_ context.Context, id string) (*order.Order, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	i := slices.IndexFunc(c.orders, func(o *order.Order) bool { return o.ID() == id })
	if i < 0 {
		return nil, errs.NewObjectNotFoundError("order", id)
	}
	return c.orders[i], nil
}

func (c *Catalog) ListDrivers(_ context.Context) ([]*fleet.Driver, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.drivers), nil
}

func (c *Catalog) GetDriver(_ context.Context, id string) (*fleet.Driver, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	i := slices.IndexFunc(c.drivers, func(d *fleet.Driver) bool { return d.ID() == id })
	if i < 0 {
		return nil, errs.NewObjectNotFoundError("driver", id)
	}
	return c.drivers[i], nil
}

func (c *Catalog) ListVehicles(_ context.Context) ([]*fleet.Vehicle, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.vehicles), nil
}

func (c *Catalog) GetVehicle(_ context.Context, id string) (*fleet.Vehicle, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	i := slices.IndexFunc(c.vehicles, func(v *fleet.Vehicle) bool { return v.ID() == id })
	if i < 0 {
		return nil, errs.NewObjectNotFoundError("vehicle", id)
	}
	return c.vehicles[i], nil
}

func (c *Catalog) WithProofOfDelivery(_ context.Context, orderIDs []string) ([]string, error) {
	return c.members(c.pods, orderIDs), nil
}

func (c *Catalog) WithReturnsRecord(_ context.Context, orderIDs []string) ([]string, error) {
	return c.members(c.returns, orderIDs), nil
}

func (c *Catalog) members(set map[string]struct{}, ids []string) []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var out []string
	for _, id := range ids {
		if _, ok := set[id]; ok {
			out = append(out, id)
		}
	}
	return out
}
