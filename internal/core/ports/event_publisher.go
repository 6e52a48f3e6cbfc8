package ports

import (
	"context"
	"time"
)

type TourEventType string

const (
	TourValidated     TourEventType = "tour.validated"
	TourClosed        TourEventType = "tour.closed"
	TourReopened      TourEventType = "tour.reopened"
	StopStatusChanged TourEventType = "stop.status_changed"
)

// TourEvent notifies downstream systems (ERP status sync) of a committed
// lifecycle change. OrderIDs lists the stops concerned; Status is set for
// stop events.
type TourEvent struct {
	ID         string        `json:"id"`
	Type       TourEventType `json:"type"`
	City       string        `json:"city"`
	Date       string        `json:"date"`
	OrderIDs   []string      `json:"orderIds"`
	Status     string        `json:"status,omitempty"`
	DriverID   string        `json:"driverId,omitempty"`
	VehicleID  string        `json:"vehicleId,omitempty"`
	OccurredAt time.Time     `json:"occurredAt"`
}

// EventPublisher delivers events after the transaction that produced them
// has committed. Failures never undo the change.
type EventPublisher interface {
	Publish(ctx context.Context, events ...TourEvent) error
}
