package commands

import (
	"context"
	"log/slog"

	"tourdispatch/internal/core/domain/model/tour"
	"tourdispatch/internal/core/ports"
)

type SetStopStatusCommandHandler struct {
	tx     tourTransaction
	events eventSink
}

func NewSetStopStatusCommandHandler(
	uowFactory UoWFactory,
	locker ports.TourLocker,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) SetStopStatusCommandHandler {
	return SetStopStatusCommandHandler{
		tx:     newTourTransaction(uowFactory, locker),
		events: newEventSink(publisher, logger),
	}
}

func (h SetStopStatusCommandHandler) Handle(ctx context.Context, command SetStopStatusCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	t, err := h.tx.run(ctx, command.Key(), false, nil, func(_ context.Context, _ UoW, t *tour.Tour) error {
		return t.SetStopStatus(command.OrderID(), command.Status())
	})
	if err != nil {
		return err
	}

	event := newTourEvent(ports.StopStatusChanged, t, command.OrderID())
	event.Status = command.Status().String()
	h.events.publish(ctx, event)
	return nil
}
