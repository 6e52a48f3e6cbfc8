package commands

import (
	"context"
	"errors"

	"tourdispatch/internal/core/domain/model/tour"
	"tourdispatch/internal/core/domain/services"
	"tourdispatch/internal/core/ports"
	"tourdispatch/internal/pkg/errs"
)

// ToggleOrderCommandHandler reads the order from the ERP before taking the
// lock. Removing a stop never needs the order, so a stop whose order vanished
// from the ERP can still be taken off the tour.
type ToggleOrderCommandHandler struct {
	tx        tourTransaction
	orders    ports.OrderSource
	validator services.ConstraintValidator
}

func NewToggleOrderCommandHandler(
	uowFactory UoWFactory,
	locker ports.TourLocker,
	orders ports.OrderSource,
	validator services.ConstraintValidator,
) ToggleOrderCommandHandler {
	return ToggleOrderCommandHandler{
		tx:        newTourTransaction(uowFactory, locker),
		orders:    orders,
		validator: validator,
	}
}

// Handle reports whether the order was added (true) or removed (false).
func (h ToggleOrderCommandHandler) Handle(ctx context.Context, command ToggleOrderCommand) (bool, error) {
	if err := command.Validate(); err != nil {
		return false, err
	}

	id := command.OrderID()
	o, err := h.orders.GetOrder(ctx, id)
	if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
		return false, tour.RejectWithCause(tour.ReasonExternalLookupFailed, "order source", err)
	}

	var added bool
	_, err = h.tx.run(ctx, command.Key(), true, nil, func(ctx context.Context, uow UoW, t *tour.Tour) error {
		if t.HasStop(id) {
			return t.RemoveStop(id)
		}
		if o == nil {
			return tour.Reject(tour.ReasonUnknownOrder, "order is not in the ERP", id)
		}
		sameDay, err := uow.TourRepository().ListByDate(ctx, t.Key().Date)
		if err != nil {
			return err
		}
		if err = h.validator.CheckNotPlanned(t, o, sameDay); err != nil {
			return err
		}
		added, err = h.validator.ToggleOrder(t, o)
		return err
	})
	if err != nil {
		return false, err
	}
	return added, nil
}
