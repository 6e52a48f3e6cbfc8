package events

import (
	"context"
	"log/slog"

	"tourdispatch/internal/core/ports"
)

var _ ports.EventPublisher = LogPublisher{}

// LogPublisher writes events to the log. It is used when no broker is
// configured.
type LogPublisher struct {
	logger *slog.Logger
}

func NewLogPublisher(logger *slog.Logger) LogPublisher {
	if logger == nil {
		logger = slog.Default()
	}
	return LogPublisher{logger: logger.With("component", "tour-events")}
}

func (p LogPublisher) Publish(ctx context.Context, events ...ports.TourEvent) error {
	for _, e := range events {
		p.logger.InfoContext(ctx, "tour event",
			"id", e.ID,
			"type", e.Type,
			"city", e.City,
			"date", e.Date,
			"orders", e.OrderIDs,
			"status", e.Status,
		)
	}
	return nil
}
