package commands

import (
	"context"
	"fmt"
	"log/slog"

	"tourdispatch/internal/core/domain/model/kernel"
	"tourdispatch/internal/core/domain/model/tour"
	"tourdispatch/internal/core/domain/services"
	"tourdispatch/internal/core/ports"
)

// ValidateTourCommandHandler validates a tour and, in the same transaction,
// replaces its stop plans and puts every stop in progress. A TourValidated
// event is published once the transaction has committed.
type ValidateTourCommandHandler struct {
	tx        tourTransaction
	windows   ports.TimeWindowProvider
	validator services.ConstraintValidator
	scheduler services.StopScheduler
	events    eventSink
}

func NewValidateTourCommandHandler(
	uowFactory UoWFactory,
	locker ports.TourLocker,
	windows ports.TimeWindowProvider,
	validator services.ConstraintValidator,
	scheduler services.StopScheduler,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) ValidateTourCommandHandler {
	return ValidateTourCommandHandler{
		tx:        newTourTransaction(uowFactory, locker),
		windows:   windows,
		validator: validator,
		scheduler: scheduler,
		events:    newEventSink(publisher, logger),
	}
}

func (h ValidateTourCommandHandler) Handle(ctx context.Context, command ValidateTourCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	key := command.Key()
	t, err := h.tx.run(ctx, key, false, nil, func(ctx context.Context, uow UoW, t *tour.Tour) error {
		if err := h.validator.ValidateTour(t); err != nil {
			return err
		}

		windows := make(map[string]kernel.TimeWindow, len(t.OrderIDs()))
		for _, id := range t.OrderIDs() {
			w, err := h.windows.WindowFor(ctx, id)
			if err != nil {
				return tour.RejectWithCause(tour.ReasonExternalLookupFailed,
					fmt.Sprintf("time window of %s", id), err)
			}
			windows[id] = w
		}

		plans, err := h.scheduler.Schedule(t, windows)
		if err != nil {
			return err
		}
		return uow.StopPlanRepository().ReplaceForTour(ctx, key, plans)
	})
	if err != nil {
		return err
	}

	event := newTourEvent(ports.TourValidated, t)
	event.Status = tour.InProgress.String()
	h.events.publish(ctx, event)
	return nil
}
