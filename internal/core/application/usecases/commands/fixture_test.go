package commands_test

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"tourdispatch/internal/adapters/out/memory"
	"tourdispatch/internal/adapters/out/timewindow"
	"tourdispatch/internal/core/application/usecases/commands"
	"tourdispatch/internal/core/domain/model/fleet"
	"tourdispatch/internal/core/domain/model/kernel"
	"tourdispatch/internal/core/domain/model/order"
	"tourdispatch/internal/core/domain/model/tour"
	"tourdispatch/internal/core/domain/services"
	"tourdispatch/internal/core/ports"
	"tourdispatch/internal/pkg/keylock"

	"github.com/stretchr/testify/require"
)

var planningDate = kernel.MustParseDate("2024-03-05")

type uowFactoryFunc func() commands.UoW

func (f uowFactoryFunc) Create() commands.UoW {
	return f()
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []ports.TourEvent
}

func (p *recordingPublisher) Publish(_ context.Context, events ...ports.TourEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, events...)
	return nil
}

func (p *recordingPublisher) Types() []ports.TourEventType {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]ports.TourEventType, len(p.events))
	for i, e := range p.events {
		out[i] = e.Type
	}
	return out
}

type fixture struct {
	store     *memory.Store
	catalog   *memory.Catalog
	locker    *keylock.Locker
	factory   commands.UoWFactory
	validator services.ConstraintValidator
	publisher *recordingPublisher
	logger    *slog.Logger
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := memory.NewStore()
	validator, err := services.NewConstraintValidator(services.DefaultLimits())
	require.NoError(t, err)

	catalog := memory.NewCatalog()
	for _, id := range []string{"D1", "D2"} {
		d, err := fleet.NewDriver(id, "Driver "+id)
		require.NoError(t, err)
		catalog.AddDrivers(d)
	}
	for _, v := range []struct {
		id          string
		maintenance bool
	}{{"V1", false}, {"V2", false}, {"V3", true}} {
		vehicle, err := fleet.NewVehicle(v.id, "Van", "PL-"+v.id, v.maintenance)
		require.NoError(t, err)
		catalog.AddVehicles(vehicle)
	}

	return &fixture{
		store:     store,
		catalog:   catalog,
		locker:    keylock.New(),
		factory:   uowFactoryFunc(func() commands.UoW { return store.Create() }),
		validator: validator,
		publisher: &recordingPublisher{},
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func (f *fixture) addOrder(t *testing.T, id, city, customer string) {
	t.Helper()
	o, err := order.NewOrder(id, order.Destination{
		City:         city,
		AddressLines: []string{id + " avenue"},
		PostalCode:   "00000",
	}, customer, planningDate, 1)
	require.NoError(t, err)
	f.catalog.AddOrders(o)
}

func (f *fixture) toggle(t *testing.T, city, orderID string) error {
	t.Helper()
	cmd, err := commands.NewToggleOrderCommand(city, planningDate, orderID)
	require.NoError(t, err)
	_, err = commands.NewToggleOrderCommandHandler(f.factory, f.locker, f.catalog, f.validator).Handle(t.Context(), cmd)
	return err
}

func (f *fixture) assignDriver(t *testing.T, city, driverID string) error {
	t.Helper()
	cmd, err := commands.NewAssignDriverCommand(city, planningDate, driverID)
	require.NoError(t, err)
	return commands.NewAssignDriverCommandHandler(f.factory, f.locker, f.catalog, f.validator).Handle(t.Context(), cmd)
}

func (f *fixture) assignVehicle(t *testing.T, city, vehicleID string) error {
	t.Helper()
	cmd, err := commands.NewAssignVehicleCommand(city, planningDate, vehicleID)
	require.NoError(t, err)
	return commands.NewAssignVehicleCommandHandler(f.factory, f.locker, f.catalog, f.validator).Handle(t.Context(), cmd)
}

func (f *fixture) validate(t *testing.T, city string) error {
	t.Helper()
	scheduler, err := services.NewStopScheduler(services.ScheduleParams{
		DepotDeparture: kernel.MustParseClock("08:00"),
		Travel:         20 * time.Minute,
		Service:        10 * time.Minute,
	})
	require.NoError(t, err)
	cmd, err := commands.NewValidateTourCommand(city, planningDate)
	require.NoError(t, err)
	handler := commands.NewValidateTourCommandHandler(f.factory, f.locker, timewindow.NewDefaultProvider(),
		f.validator, scheduler, f.publisher, f.logger)
	return handler.Handle(t.Context(), cmd)
}

func (f *fixture) setStatus(t *testing.T, city, orderID string, status tour.DeliveryStatus) error {
	t.Helper()
	cmd, err := commands.NewSetStopStatusCommand(city, planningDate, orderID, status)
	require.NoError(t, err)
	return commands.NewSetStopStatusCommandHandler(f.factory, f.locker, f.publisher, f.logger).Handle(t.Context(), cmd)
}

func (f *fixture) setIncludeReturns(t *testing.T, city string, include bool) error {
	t.Helper()
	cmd, err := commands.NewSetIncludeReturnsCommand(city, planningDate, include)
	require.NoError(t, err)
	return commands.NewSetIncludeReturnsCommandHandler(f.factory, f.locker).Handle(t.Context(), cmd)
}

func (f *fixture) close(t *testing.T, city string) error {
	t.Helper()
	cmd, err := commands.NewCloseTourCommand(city, planningDate)
	require.NoError(t, err)
	return commands.NewCloseTourCommandHandler(f.factory, f.locker, f.catalog, services.NewClosureGate(),
		f.publisher, f.logger).Handle(t.Context(), cmd)
}

func (f *fixture) reopen(t *testing.T, city string) error {
	t.Helper()
	cmd, err := commands.NewReopenTourCommand(city, planningDate)
	require.NoError(t, err)
	return commands.NewReopenTourCommandHandler(f.factory, f.locker, f.validator, f.publisher, f.logger).
		Handle(t.Context(), cmd)
}

func (f *fixture) tour(t *testing.T, city string) *tour.Tour {
	t.Helper()
	key, err := tour.NewKey(city, planningDate)
	require.NoError(t, err)
	tr, err := f.store.Create().TourRepository().Get(t.Context(), key)
	require.NoError(t, err)
	return tr
}

// readyTour builds a tour of city with the given orders, a driver and a vehicle.
func (f *fixture) readyTour(t *testing.T, city, driverID, vehicleID string, orderIDs ...string) {
	t.Helper()
	for _, id := range orderIDs {
		f.addOrder(t, id, city, "Customer "+id)
		require.NoError(t, f.toggle(t, city, id))
	}
	require.NoError(t, f.assignDriver(t, city, driverID))
	require.NoError(t, f.assignVehicle(t, city, vehicleID))
}

func (f *fixture) deliverAndClose(t *testing.T, city string, orderIDs ...string) {
	t.Helper()
	require.NoError(t, f.validate(t, city))
	for _, id := range orderIDs {
		require.NoError(t, f.setStatus(t, city, id, tour.Delivered))
	}
	f.catalog.RecordProofOfDelivery(orderIDs...)
	require.NoError(t, f.close(t, city))
}

func (f *fixture) optimizer(t *testing.T) services.RouteOptimizer {
	t.Helper()
	return services.NewRouteOptimizer(services.NewCoordinateSynthesizer())
}

func mustKey(t *testing.T, city string) tour.Key {
	t.Helper()
	key, err := tour.NewKey(city, planningDate)
	require.NoError(t, err)
	return key
}
