package commands

import (
	"errors"
	"strings"

	"tourdispatch/internal/core/domain/model/kernel"
	"tourdispatch/internal/core/domain/model/tour"
	"tourdispatch/internal/pkg/guard"
)

var ErrSetStopStatusCommandIsNotConstructed = errors.New(
	"SetStopStatusCommand must be created via NewSetStopStatusCommand constructor",
)

// SetStopStatusCommand overrides the delivery status of one stop.
type SetStopStatusCommand struct {
	key     tour.Key
	orderID string
	status  tour.DeliveryStatus

	guard guard.ConstructorGuard
}

func NewSetStopStatusCommand(
	city string,
	date kernel.Date,
	orderID string,
	status tour.DeliveryStatus,
) (SetStopStatusCommand, error) {
	key, errKey := tour.NewKey(city, date)

	var errOrder error
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		errOrder = ErrOrderIDIsRequired
	}

	var errStatus error
	if err := status.Validate(); err != nil {
		errStatus = tour.RejectWithCause(tour.ReasonInvalidStatus, status.String(), err)
	}

	if err := errors.Join(errKey, errOrder, errStatus); err != nil {
		return SetStopStatusCommand{}, err
	}

	return SetStopStatusCommand{
		key:     key,
		orderID: orderID,
		status:  status,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c SetStopStatusCommand) Validate() error {
	return c.guard.Validate(ErrSetStopStatusCommandIsNotConstructed)
}

func (c SetStopStatusCommand) Key() tour.Key {
	return c.key
}

func (c SetStopStatusCommand) OrderID() string {
	return c.orderID
}

func (c SetStopStatusCommand) Status() tour.DeliveryStatus {
	return c.status
}
