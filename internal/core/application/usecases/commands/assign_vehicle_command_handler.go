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

// AssignVehicleCommandHandler works like AssignDriverCommandHandler, with the
// maintenance rule and a cap of one active tour per vehicle and date.
type AssignVehicleCommandHandler struct {
	tx        tourTransaction
	vehicles  ports.VehicleDirectory
	validator services.ConstraintValidator
}

func NewAssignVehicleCommandHandler(
	uowFactory UoWFactory,
	locker ports.TourLocker,
	vehicles ports.VehicleDirectory,
	validator services.ConstraintValidator,
) AssignVehicleCommandHandler {
	return AssignVehicleCommandHandler{
		tx:        newTourTransaction(uowFactory, locker),
		vehicles:  vehicles,
		validator: validator,
	}
}

func (h AssignVehicleCommandHandler) Handle(ctx context.Context, command AssignVehicleCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	key := command.Key()
	var vehicle *fleet.Vehicle
	var locks []string
	if id := command.VehicleID(); id != "" {
		found, err := h.vehicles.GetVehicle(ctx, id)
		if errors.Is(err, errs.ErrObjectNotFound) {
			return tour.Reject(tour.ReasonUnknownVehicle, "vehicle "+id+" is not in the directory")
		}
		if err != nil {
			return tour.RejectWithCause(tour.ReasonExternalLookupFailed, "vehicle directory", err)
		}
		vehicle = found
		locks = append(locks, ports.VehicleLockKey(key.Date, id))
	}

	_, err := h.tx.run(ctx, key, false, locks, func(ctx context.Context, uow UoW, t *tour.Tour) error {
		sameDay, err := uow.TourRepository().ListByDate(ctx, key.Date)
		if err != nil {
			return err
		}
		return h.validator.AssignVehicle(t, vehicle, sameDay)
	})
	return err
}
