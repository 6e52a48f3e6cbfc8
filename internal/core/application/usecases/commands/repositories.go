// Package commands contains the operations that change tours. Every handler
// follows the same shape: validate the command, take the tour lock, open a
// unit of work, apply the domain rule, persist, commit, then publish events.
// A handler that returns an error has persisted nothing.
package commands

import (
	"context"

	"tourdispatch/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	TourRepoFactory interface {
		TourRepository() ports.TourRepository
	}

	StopPlanRepoFactory interface {
		StopPlanRepository() ports.StopPlanRepository
	}

	// UoW manages transactions across tours and their stop plans.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   tours := uow.TourRepository()
	//   plans := uow.StopPlanRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		TourRepoFactory
		StopPlanRepoFactory
	}

	// UoWFactory creates new unit of work instances.
	UoWFactory interface {
		Create() UoW
	}
)
