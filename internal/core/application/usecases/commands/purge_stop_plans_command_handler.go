package commands

import (
	"context"
)

// PurgeStopPlansCommandHandler deletes outdated stop plans in one transaction.
// Tours are left untouched; their plans are only a schedule snapshot.
type PurgeStopPlansCommandHandler struct {
	uowFactory UoWFactory
}

func NewPurgeStopPlansCommandHandler(uowFactory UoWFactory) PurgeStopPlansCommandHandler {
	return PurgeStopPlansCommandHandler{uowFactory: uowFactory}
}

// Handle reports how many plans were deleted.
func (h PurgeStopPlansCommandHandler) Handle(ctx context.Context, command PurgeStopPlansCommand) (int64, error) {
	if err := command.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	deleted, err := uow.StopPlanRepository().DeleteBefore(ctx, command.Before())
	if err != nil {
		return 0, err
	}

	if err := uow.Commit(ctx); err != nil {
		return 0, err
	}
	return deleted, nil
}
