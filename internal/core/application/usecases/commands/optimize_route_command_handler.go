package commands

import (
	"context"

	"tourdispatch/internal/core/domain/model/tour"
	"tourdispatch/internal/core/domain/services"
	"tourdispatch/internal/core/ports"
)

type OptimizeRouteCommandHandler struct {
	tx        tourTransaction
	optimizer services.RouteOptimizer
}

func NewOptimizeRouteCommandHandler(
	uowFactory UoWFactory,
	locker ports.TourLocker,
	optimizer services.RouteOptimizer,
) OptimizeRouteCommandHandler {
	return OptimizeRouteCommandHandler{
		tx:        newTourTransaction(uowFactory, locker),
		optimizer: optimizer,
	}
}

// Handle returns the new stop sequence. Only the order of stops changes.
func (h OptimizeRouteCommandHandler) Handle(ctx context.Context, command OptimizeRouteCommand) ([]string, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	t, err := h.tx.run(ctx, command.Key(), false, nil, func(_ context.Context, _ UoW, t *tour.Tour) error {
		route, err := h.optimizer.OptimizeTour(t)
		if err != nil {
			return err
		}
		return t.Reorder(route)
	})
	if err != nil {
		return nil, err
	}
	return t.OrderIDs(), nil
}
