package commands

import (
	"context"
	"log/slog"

	"tourdispatch/internal/core/domain/model/tour"
	"tourdispatch/internal/core/domain/services"
	"tourdispatch/internal/core/ports"
)

// ReopenTourCommandHandler re-checks the driver and vehicle caps before a
// closed tour counts as active again. The tour is read once without locks to
// learn which resource keys to lock; a closed tour cannot change its
// resources, so the read stays accurate.
type ReopenTourCommandHandler struct {
	tx        tourTransaction
	validator services.ConstraintValidator
	events    eventSink
}

func NewReopenTourCommandHandler(
	uowFactory UoWFactory,
	locker ports.TourLocker,
	validator services.ConstraintValidator,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) ReopenTourCommandHandler {
	return ReopenTourCommandHandler{
		tx:        newTourTransaction(uowFactory, locker),
		validator: validator,
		events:    newEventSink(publisher, logger),
	}
}

func (h ReopenTourCommandHandler) Handle(ctx context.Context, command ReopenTourCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	key := command.Key()
	current, err := h.tx.peek(ctx, key)
	if err != nil {
		return err
	}

	var locks []string
	if id := current.DriverID(); id != "" {
		locks = append(locks, ports.DriverLockKey(key.Date, id))
	}
	if id := current.VehicleID(); id != "" {
		locks = append(locks, ports.VehicleLockKey(key.Date, id))
	}

	t, err := h.tx.run(ctx, key, false, locks, func(ctx context.Context, uow UoW, t *tour.Tour) error {
		sameDay, err := uow.TourRepository().ListByDate(ctx, key.Date)
		if err != nil {
			return err
		}
		return h.validator.Reopen(t, sameDay)
	})
	if err != nil {
		return err
	}

	h.events.publish(ctx, newTourEvent(ports.TourReopened, t))
	return nil
}
