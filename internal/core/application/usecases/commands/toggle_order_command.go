package commands

import (
	"errors"
	"strings"

	"tourdispatch/internal/core/domain/model/kernel"
	"tourdispatch/internal/core/domain/model/tour"
	"tourdispatch/internal/pkg/errs"
	"tourdispatch/internal/pkg/guard"
)

var (
	ErrToggleOrderCommandIsNotConstructed = errors.New(
		"ToggleOrderCommand must be created via NewToggleOrderCommand constructor",
	)
	ErrOrderIDIsRequired = errs.NewValueIsRequiredError("order id")
)

// ToggleOrderCommand adds an order to the tour of its city, or removes it if
// the tour already holds it. The tour is created on the first added order.
type ToggleOrderCommand struct {
	key     tour.Key
	orderID string

	guard guard.ConstructorGuard
}

func NewToggleOrderCommand(city string, date kernel.Date, orderID string) (ToggleOrderCommand, error) {
	key, errKey := tour.NewKey(city, date)

	var errOrder error
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		errOrder = ErrOrderIDIsRequired
	}
	if err := errors.Join(errKey, errOrder); err != nil {
		return ToggleOrderCommand{}, err
	}

	return ToggleOrderCommand{
		key:     key,
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c ToggleOrderCommand) Validate() error {
	return c.guard.Validate(ErrToggleOrderCommandIsNotConstructed)
}

func (c ToggleOrderCommand) Key() tour.Key {
	return c.key
}

func (c ToggleOrderCommand) OrderID() string {
	return c.orderID
}
