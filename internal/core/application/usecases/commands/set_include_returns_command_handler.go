package commands

import (
	"context"

	"tourdispatch/internal/core/domain/model/tour"
	"tourdispatch/internal/core/ports"
)

type SetIncludeReturnsCommandHandler struct {
	tx tourTransaction
}

func NewSetIncludeReturnsCommandHandler(uowFactory UoWFactory, locker ports.TourLocker) SetIncludeReturnsCommandHandler {
	return SetIncludeReturnsCommandHandler{tx: newTourTransaction(uowFactory, locker)}
}

func (h SetIncludeReturnsCommandHandler) Handle(ctx context.Context, command SetIncludeReturnsCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	_, err := h.tx.run(ctx, command.Key(), false, nil, func(_ context.Context, _ UoW, t *tour.Tour) error {
		return t.SetIncludeReturns(command.IncludeReturns())
	})
	return err
}
