package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is a business transaction boundary. Nothing written through its
// repositories is visible to others before Commit. Handlers always defer
// Rollback and ignore its error once Commit has succeeded.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error

	TourRepository() TourRepository
	StopPlanRepository() StopPlanRepository
}
