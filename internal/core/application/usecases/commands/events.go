package commands

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"tourdispatch/internal/core/domain/model/tour"
	"tourdispatch/internal/core/ports"
)

// eventSink publishes committed changes. Publishing failures are logged only:
// the change is already durable.
type eventSink struct {
	publisher ports.EventPublisher
	logger    *slog.Logger
}

func newEventSink(publisher ports.EventPublisher, logger *slog.Logger) eventSink {
	if logger == nil {
		logger = slog.Default()
	}
	return eventSink{publisher: publisher, logger: logger.With("component", "tour-events")}
}

func (s eventSink) publish(ctx context.Context, events ...ports.TourEvent) {
	if s.publisher == nil || len(events) == 0 {
		return
	}

	if err := s.publisher.Publish(ctx, events...); err != nil {
		s.logger.WarnContext(ctx, "failed to publish tour events",
			"type", events[0].Type,
			"city", events[0].City,
			"date", events[0].Date,
			"error", err,
		)
	}
}

func newTourEvent(eventType ports.TourEventType, t *tour.Tour, orderIDs ...string) ports.TourEvent {
	key := t.Key()
	if orderIDs == nil {
		orderIDs = t.OrderIDs()
	}
	return ports.TourEvent{
		ID:         uuid.NewString(),
		Type:       eventType,
		City:       key.City,
		Date:       key.Date.String(),
		OrderIDs:   orderIDs,
		DriverID:   t.DriverID(),
		VehicleID:  t.VehicleID(),
		OccurredAt: time.Now().UTC(),
	}
}
