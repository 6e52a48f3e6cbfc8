package ports

import (
	"context"

	"tourdispatch/internal/core/domain/model/kernel"
	"tourdispatch/internal/core/domain/model/schedule"
	"tourdispatch/internal/core/domain/model/tour"
)

// TourRepository persists Tour aggregates.
type TourRepository interface {
	// Get loads the tour. Inside a transaction the row stays locked until
	// commit or rollback.
	Get(ctx context.Context, key tour.Key) (*tour.Tour, error)

	// Save inserts or replaces the tour together with its stops.
	Save(ctx context.Context, aggregate *tour.Tour) error

	// ListByDate returns every tour of the planning date, ordered by city.
	ListByDate(ctx context.Context, date kernel.Date) ([]*tour.Tour, error)
}

// StopPlanRepository persists the schedule of validated tours.
type StopPlanRepository interface {
	// ReplaceForTour drops every plan of the tour and stores plans instead.
	ReplaceForTour(ctx context.Context, key tour.Key, plans []schedule.StopPlan) error

	// ListForTour returns the tour's plans by sequence.
	ListForTour(ctx context.Context, key tour.Key) ([]schedule.StopPlan, error)

	// DeleteBefore removes plans whose date is strictly before date and
	// reports how many were removed.
	DeleteBefore(ctx context.Context, date kernel.Date) (int64, error)
}
