package commands

import (
	"context"
	"errors"

	"tourdispatch/internal/core/domain/model/fleet"
	"tourdispatch/internal/core/domain/model/tour"
	"tourdispatch/internal/core/domain/services"
	"tourdispatch/internal/core/ports"
	"tourdispatch/internal/pkg/errs"
)

// AssignDriverCommandHandler checks the driver against the directory and the
// driver cap of the planning date, then stores the assignment. The driver's
// date lock is held together with the tour lock so that two tours cannot take
// the last slot of the same driver at once.
type AssignDriverCommandHandler struct {
	tx        tourTransaction
	drivers   ports.DriverDirectory
	validator services.ConstraintValidator
}

func NewAssignDriverCommandHandler(
	uowFactory UoWFactory,
	locker ports.TourLocker,
	drivers ports.DriverDirectory,
	validator services.ConstraintValidator,
) AssignDriverCommandHandler {
	return AssignDriverCommandHandler{
		tx:        newTourTransaction(uowFactory, locker),
		drivers:   drivers,
		validator: validator,
	}
}

func (h AssignDriverCommandHandler) Handle(ctx context.Context, command AssignDriverCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	key := command.Key()
	var driver *fleet.Driver
	var locks []string
	if id := command.DriverID(); id != "" {
		found, err := h.drivers.GetDriver(ctx, id)
		if errors.Is(err, errs.ErrObjectNotFound) {
			return tour.Reject(tour.ReasonUnknownDriver, "driver "+id+" is not in the directory")
		}
		if err != nil {
			return tour.RejectWithCause(tour.ReasonExternalLookupFailed, "driver directory", err)
		}
		driver = found
		locks = append(locks, ports.DriverLockKey(key.Date, id))
	}

	_, err := h.tx.run(ctx, key, false, locks, func(ctx context.Context, uow UoW, t *tour.Tour) error {
		sameDay, err := uow.TourRepository().ListByDate(ctx, key.Date)
		if err != nil {
			return err
		}
		return h.validator.AssignDriver(t, driver, sameDay)
	})
	return err
}
