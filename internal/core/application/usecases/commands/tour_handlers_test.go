package commands_test

import (
	"sync"
	"sync/atomic"
	"testing"

	"tourdispatch/internal/core/application/usecases/commands"
	"tourdispatch/internal/core/domain/model/tour"
	"tourdispatch/internal/core/ports"
	"tourdispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToggleOrderCommandHandler(t *testing.T) {
	t.Run("should create the tour on the first added order", func(t *testing.T) {
		f := newFixture(t)
		f.addOrder(t, "O1", "Lyon", "Alice")

		cmd, err := commands.NewToggleOrderCommand("Lyon", planningDate, "O1")
		require.NoError(t, err)
		added, err := commands.NewToggleOrderCommandHandler(f.factory, f.locker, f.catalog, f.validator).
			Handle(t.Context(), cmd)

		require.NoError(t, err)
		assert.True(t, added)
		assert.Equal(t, []string{"O1"}, f.tour(t, "Lyon").OrderIDs())
	})

	t.Run("should remove an order the tour already holds", func(t *testing.T) {
		f := newFixture(t)
		f.addOrder(t, "O1", "Lyon", "Alice")
		require.NoError(t, f.toggle(t, "Lyon", "O1"))

		cmd, err := commands.NewToggleOrderCommand("Lyon", planningDate, "O1")
		require.NoError(t, err)
		added, err := commands.NewToggleOrderCommandHandler(f.factory, f.locker, f.catalog, f.validator).
			Handle(t.Context(), cmd)

		require.NoError(t, err)
		assert.False(t, added)
		assert.Empty(t, f.tour(t, "Lyon").OrderIDs())
	})

	t.Run("should reject the fourth order of a tour", func(t *testing.T) {
		f := newFixture(t)
		for _, id := range []string{"O1", "O2", "O3", "O4"} {
			f.addOrder(t, id, "Lyon", "Customer "+id)
		}
		require.NoError(t, f.toggle(t, "Lyon", "O1"))
		require.NoError(t, f.toggle(t, "Lyon", "O2"))
		require.NoError(t, f.toggle(t, "Lyon", "O3"))

		err := f.toggle(t, "Lyon", "O4")

		require.ErrorIs(t, err, tour.ErrTourFull)
		assert.Equal(t, []string{"O1", "O2", "O3"}, f.tour(t, "Lyon").OrderIDs())
	})

	t.Run("should reject an order unknown to the order source", func(t *testing.T) {
		f := newFixture(t)

		err := f.toggle(t, "Lyon", "NOPE")

		require.ErrorIs(t, err, tour.ErrUnknownOrder)
		_, getErr := f.store.Create().TourRepository().Get(t.Context(), mustKey(t, "Lyon"))
		assert.ErrorIs(t, getErr, errs.ErrObjectNotFound)
	})

	t.Run("should not create a tour when the order belongs to another city", func(t *testing.T) {
		f := newFixture(t)
		f.addOrder(t, "O1", "Paris", "Alice")

		err := f.toggle(t, "Lyon", "O1")

		require.ErrorIs(t, err, tour.ErrOrderNotEligible)
		_, getErr := f.store.Create().TourRepository().Get(t.Context(), mustKey(t, "Lyon"))
		assert.ErrorIs(t, getErr, errs.ErrObjectNotFound)
	})

	t.Run("should keep an order on one tour whatever the city spelling", func(t *testing.T) {
		f := newFixture(t)
		f.addOrder(t, "O1", "Lyon", "Alice")
		require.NoError(t, f.toggle(t, "Lyon", "O1"))

		for _, city := range []string{"LYON", "lyon"} {
			err := f.toggle(t, city, "O1")

			require.ErrorIs(t, err, tour.ErrOrderNotEligible, city)
			_, getErr := f.store.Create().TourRepository().Get(t.Context(), mustKey(t, city))
			assert.ErrorIs(t, getErr, errs.ErrObjectNotFound, city)
		}
		assert.Equal(t, []string{"O1"}, f.tour(t, "Lyon").OrderIDs())
	})

	t.Run("should reject an order already planned on another tour of the day", func(t *testing.T) {
		f := newFixture(t)
		f.addOrder(t, "O1", "Lyon", "Alice")

		// The stop was planned under a former city of the order.
		o, err := f.catalog.GetOrder(t.Context(), "O1")
		require.NoError(t, err)
		former, err := tour.NewTour(mustKey(t, "Villeurbanne"))
		require.NoError(t, err)
		require.NoError(t, former.AddStop(o, 3))
		uow := f.store.Create()
		require.NoError(t, uow.Begin(t.Context()))
		require.NoError(t, uow.TourRepository().Save(t.Context(), former))
		require.NoError(t, uow.Commit(t.Context()))

		err = f.toggle(t, "Lyon", "O1")

		require.ErrorIs(t, err, tour.ErrOrderNotEligible)
		_, getErr := f.store.Create().TourRepository().Get(t.Context(), mustKey(t, "Lyon"))
		assert.ErrorIs(t, getErr, errs.ErrObjectNotFound)
	})

	t.Run("should reject edits of a closed tour", func(t *testing.T) {
		f := newFixture(t)
		f.readyTour(t, "Lyon", "D1", "V1", "O1")
		f.deliverAndClose(t, "Lyon", "O1")
		f.addOrder(t, "O2", "Lyon", "Bob")

		err := f.toggle(t, "Lyon", "O2")

		require.ErrorIs(t, err, tour.ErrTourClosed)
	})
}

func TestAssignDriverCommandHandler(t *testing.T) {
	t.Run("should reject a tour that does not exist", func(t *testing.T) {
		f := newFixture(t)

		err := f.assignDriver(t, "Lyon", "D1")

		require.ErrorIs(t, err, tour.ErrUnknownTour)
	})

	t.Run("should reject a driver missing from the directory", func(t *testing.T) {
		f := newFixture(t)
		f.addOrder(t, "O1", "Lyon", "Alice")
		require.NoError(t, f.toggle(t, "Lyon", "O1"))

		err := f.assignDriver(t, "Lyon", "D9")

		require.ErrorIs(t, err, tour.ErrUnknownDriver)
		assert.Empty(t, f.tour(t, "Lyon").DriverID())
	})

	t.Run("should reject a third tour for the same driver and leave it unassigned", func(t *testing.T) {
		f := newFixture(t)
		for i, city := range []string{"Lyon", "Paris", "Nice"} {
			id := "O" + string(rune('1'+i))
			f.addOrder(t, id, city, "Customer "+id)
			require.NoError(t, f.toggle(t, city, id))
		}
		require.NoError(t, f.assignDriver(t, "Lyon", "D1"))
		require.NoError(t, f.assignDriver(t, "Paris", "D1"))

		err := f.assignDriver(t, "Nice", "D1")

		require.ErrorIs(t, err, tour.ErrDriverOverbooked)
		assert.Empty(t, f.tour(t, "Nice").DriverID())
	})

	t.Run("should unassign with an empty driver id", func(t *testing.T) {
		f := newFixture(t)
		f.addOrder(t, "O1", "Lyon", "Alice")
		require.NoError(t, f.toggle(t, "Lyon", "O1"))
		require.NoError(t, f.assignDriver(t, "Lyon", "D1"))

		require.NoError(t, f.assignDriver(t, "Lyon", ""))

		assert.Empty(t, f.tour(t, "Lyon").DriverID())
	})

	t.Run("should never exceed the driver cap under concurrent assignment", func(t *testing.T) {
		f := newFixture(t)
		cities := []string{"Lyon", "Paris", "Nice", "Lille", "Nantes"}
		for i, city := range cities {
			id := "O" + string(rune('1'+i))
			f.addOrder(t, id, city, "Customer "+id)
			require.NoError(t, f.toggle(t, city, id))
		}

		var succeeded atomic.Int32
		var wg sync.WaitGroup
		for _, city := range cities {
			wg.Add(1)
			go func() {
				defer wg.Done()
				cmd, err := commands.NewAssignDriverCommand(city, planningDate, "D1")
				if err != nil {
					return
				}
				handler := commands.NewAssignDriverCommandHandler(f.factory, f.locker, f.catalog, f.validator)
				if handler.Handle(t.Context(), cmd) == nil {
					succeeded.Add(1)
				}
			}()
		}
		wg.Wait()

		assert.Equal(t, int32(2), succeeded.Load())
	})
}

func TestAssignVehicleCommandHandler(t *testing.T) {
	t.Run("should reject a vehicle under maintenance", func(t *testing.T) {
		f := newFixture(t)
		f.addOrder(t, "O1", "Lyon", "Alice")
		require.NoError(t, f.toggle(t, "Lyon", "O1"))

		err := f.assignVehicle(t, "Lyon", "V3")

		require.ErrorIs(t, err, tour.ErrVehicleUnavailable)
	})

	t.Run("should reject a vehicle already used that day", func(t *testing.T) {
		f := newFixture(t)
		f.addOrder(t, "O1", "Lyon", "Alice")
		f.addOrder(t, "O2", "Paris", "Bob")
		require.NoError(t, f.toggle(t, "Lyon", "O1"))
		require.NoError(t, f.toggle(t, "Paris", "O2"))
		require.NoError(t, f.assignVehicle(t, "Lyon", "V1"))

		err := f.assignVehicle(t, "Paris", "V1")

		require.ErrorIs(t, err, tour.ErrVehicleOverbooked)
		assert.Empty(t, f.tour(t, "Paris").VehicleID())
	})

	t.Run("should reject a vehicle missing from the directory", func(t *testing.T) {
		f := newFixture(t)
		f.addOrder(t, "O1", "Lyon", "Alice")
		require.NoError(t, f.toggle(t, "Lyon", "O1"))

		err := f.assignVehicle(t, "Lyon", "V9")

		require.ErrorIs(t, err, tour.ErrUnknownVehicle)
	})
}

func TestValidateTourCommandHandler(t *testing.T) {
	t.Run("should reject a tour without a driver", func(t *testing.T) {
		f := newFixture(t)
		f.addOrder(t, "O1", "Lyon", "Alice")
		require.NoError(t, f.toggle(t, "Lyon", "O1"))
		require.NoError(t, f.assignVehicle(t, "Lyon", "V1"))

		err := f.validate(t, "Lyon")

		require.ErrorIs(t, err, tour.ErrMissingDriver)
		assert.False(t, f.tour(t, "Lyon").IsValidated())
		assert.Empty(t, f.publisher.Types())
	})

	t.Run("should reject duplicate customers in the tour", func(t *testing.T) {
		f := newFixture(t)
		f.addOrder(t, "O1", "Lyon", "ACME")
		f.addOrder(t, "O2", "Lyon", "acme ")
		require.NoError(t, f.toggle(t, "Lyon", "O1"))
		require.NoError(t, f.toggle(t, "Lyon", "O2"))
		require.NoError(t, f.assignDriver(t, "Lyon", "D1"))
		require.NoError(t, f.assignVehicle(t, "Lyon", "V1"))

		err := f.validate(t, "Lyon")

		require.ErrorIs(t, err, tour.ErrDuplicateCustomerInTour)
		rejection, ok := tour.AsRejection(err)
		require.True(t, ok)
		assert.Equal(t, []string{"O1", "O2"}, rejection.OrderIDs)
	})

	t.Run("should put stops in progress and write one plan per stop", func(t *testing.T) {
		f := newFixture(t)
		f.readyTour(t, "Lyon", "D1", "V1", "O1", "O2")

		require.NoError(t, f.validate(t, "Lyon"))

		validated := f.tour(t, "Lyon")
		assert.True(t, validated.IsValidated())
		for _, s := range validated.Stops() {
			assert.Equal(t, tour.InProgress, s.Status())
		}

		plans, err := f.store.Create().StopPlanRepository().ListForTour(t.Context(), validated.Key())
		require.NoError(t, err)
		require.Len(t, plans, 2)
		assert.Equal(t, "O1", plans[0].OrderID)
		assert.Equal(t, 1, plans[0].Sequence)
		assert.Equal(t, "D1", plans[0].DriverID)
		assert.Equal(t, "V1", plans[0].VehicleID)
		assert.True(t, plans[0].ETA.Before(plans[1].ETA))
		assert.Equal(t, []ports.TourEventType{ports.TourValidated}, f.publisher.Types())
	})

	t.Run("should put stops back in progress when validated again", func(t *testing.T) {
		f := newFixture(t)
		f.readyTour(t, "Nice", "D1", "V1", "A1", "A2")
		require.NoError(t, f.validate(t, "Nice"))
		require.NoError(t, f.setStatus(t, "Nice", "A1", tour.Delivered))

		require.NoError(t, f.validate(t, "Nice"))

		for _, s := range f.tour(t, "Nice").Stops() {
			assert.Equal(t, tour.InProgress, s.Status(), s.OrderID())
		}
	})

	t.Run("should reset validation when the composition changes", func(t *testing.T) {
		f := newFixture(t)
		f.readyTour(t, "Lyon", "D1", "V1", "O1")
		require.NoError(t, f.validate(t, "Lyon"))
		f.addOrder(t, "O2", "Lyon", "Bob")

		require.NoError(t, f.toggle(t, "Lyon", "O2"))

		assert.False(t, f.tour(t, "Lyon").IsValidated())
	})
}

func TestOptimizeRouteCommandHandler(t *testing.T) {
	t.Run("should persist the optimized order", func(t *testing.T) {
		f := newFixture(t)
		f.readyTour(t, "Lyon", "D1", "V1", "O1", "O2", "O3")

		cmd, err := commands.NewOptimizeRouteCommand("Lyon", planningDate)
		require.NoError(t, err)
		sequence, err := commands.NewOptimizeRouteCommandHandler(f.factory, f.locker, f.optimizer(t)).
			Handle(t.Context(), cmd)

		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"O1", "O2", "O3"}, sequence)
		assert.Equal(t, sequence, f.tour(t, "Lyon").OrderIDs())
	})
}

func TestSetStopStatusCommandHandler(t *testing.T) {
	t.Run("should reject a stop the tour does not hold", func(t *testing.T) {
		f := newFixture(t)
		f.readyTour(t, "Lyon", "D1", "V1", "O1")

		err := f.setStatus(t, "Lyon", "O2", tour.Delivered)

		require.ErrorIs(t, err, tour.ErrStopNotInTour)
	})

	t.Run("should store the status and publish a change", func(t *testing.T) {
		f := newFixture(t)
		f.readyTour(t, "Lyon", "D1", "V1", "O1")
		require.NoError(t, f.validate(t, "Lyon"))

		require.NoError(t, f.setStatus(t, "Lyon", "O1", tour.Delivered))

		stop, ok := f.tour(t, "Lyon").Stop("O1")
		require.True(t, ok)
		assert.Equal(t, tour.Delivered, stop.Status())
		assert.Equal(t, []ports.TourEventType{ports.TourValidated, ports.StopStatusChanged}, f.publisher.Types())
	})

	t.Run("should refuse an invalid status at construction", func(t *testing.T) {
		_, err := commands.NewSetStopStatusCommand("Lyon", planningDate, "O1", tour.DeliveryStatus(42))

		require.ErrorIs(t, err, tour.ErrInvalidStatus)
	})
}

func TestCloseTourCommandHandler(t *testing.T) {
	t.Run("should block closure until stops are delivered and proven", func(t *testing.T) {
		f := newFixture(t)
		f.readyTour(t, "Lyon", "D1", "V1", "O1", "O2")
		require.NoError(t, f.validate(t, "Lyon"))
		require.NoError(t, f.setStatus(t, "Lyon", "O1", tour.Delivered))
		f.catalog.RecordProofOfDelivery("O1")

		err := f.close(t, "Lyon")
		require.ErrorIs(t, err, tour.ErrStopsNotDelivered)
		rejection, ok := tour.AsRejection(err)
		require.True(t, ok)
		assert.Equal(t, []string{"O2"}, rejection.OrderIDs)

		require.NoError(t, f.setStatus(t, "Lyon", "O2", tour.Delivered))
		err = f.close(t, "Lyon")
		require.ErrorIs(t, err, tour.ErrMissingProofOfDelivery)

		f.catalog.RecordProofOfDelivery("O2")
		require.NoError(t, f.close(t, "Lyon"))
		assert.True(t, f.tour(t, "Lyon").IsClosed())
	})

	t.Run("should require returns records only when returns are included", func(t *testing.T) {
		f := newFixture(t)
		f.readyTour(t, "Lyon", "D1", "V1", "O1")
		require.NoError(t, f.setIncludeReturns(t, "Lyon", true))
		require.NoError(t, f.validate(t, "Lyon"))
		require.NoError(t, f.setStatus(t, "Lyon", "O1", tour.Delivered))
		f.catalog.RecordProofOfDelivery("O1")

		err := f.close(t, "Lyon")
		require.ErrorIs(t, err, tour.ErrMissingReturnsRecord)

		f.catalog.RecordReturns("O1")
		require.NoError(t, f.close(t, "Lyon"))
	})

	t.Run("should refuse to close a tour that was never validated", func(t *testing.T) {
		f := newFixture(t)
		f.readyTour(t, "Lyon", "D1", "V1", "O1")

		err := f.close(t, "Lyon")

		require.ErrorIs(t, err, tour.ErrTourNotValidated)
	})
}

func TestReopenTourCommandHandler(t *testing.T) {
	t.Run("should reject a tour that is not closed", func(t *testing.T) {
		f := newFixture(t)
		f.readyTour(t, "Lyon", "D1", "V1", "O1")

		err := f.reopen(t, "Lyon")

		require.ErrorIs(t, err, tour.ErrTourNotClosed)
	})

	t.Run("should reopen a closed tour", func(t *testing.T) {
		f := newFixture(t)
		f.readyTour(t, "Lyon", "D1", "V1", "O1")
		f.deliverAndClose(t, "Lyon", "O1")

		require.NoError(t, f.reopen(t, "Lyon"))

		reopened := f.tour(t, "Lyon")
		assert.False(t, reopened.IsClosed())
		assert.True(t, reopened.IsValidated())
		assert.Contains(t, f.publisher.Types(), ports.TourReopened)
	})

	t.Run("should refuse to reopen when the vehicle was taken meanwhile", func(t *testing.T) {
		f := newFixture(t)
		f.readyTour(t, "Lyon", "D1", "V1", "O1")
		f.deliverAndClose(t, "Lyon", "O1")
		f.readyTour(t, "Paris", "D2", "V1", "O2")

		err := f.reopen(t, "Lyon")

		require.ErrorIs(t, err, tour.ErrVehicleOverbooked)
		assert.True(t, f.tour(t, "Lyon").IsClosed())
	})
}

func TestSetIncludeReturnsCommandHandler(t *testing.T) {
	t.Run("should keep the tour validated", func(t *testing.T) {
		f := newFixture(t)
		f.readyTour(t, "Lyon", "D1", "V1", "O1")
		require.NoError(t, f.validate(t, "Lyon"))

		require.NoError(t, f.setIncludeReturns(t, "Lyon", true))

		updated := f.tour(t, "Lyon")
		assert.True(t, updated.IncludeReturns())
		assert.True(t, updated.IsValidated())
	})
}
