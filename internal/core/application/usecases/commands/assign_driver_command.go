package commands

import (
	"errors"
	"strings"

	"tourdispatch/internal/core/domain/model/kernel"
	"tourdispatch/internal/core/domain/model/tour"
	"tourdispatch/internal/pkg/guard"
)

var ErrAssignDriverCommandIsNotConstructed = errors.New(
	"AssignDriverCommand must be created via NewAssignDriverCommand constructor",
)

// AssignDriverCommand attaches a driver to the tour of a city on a planning
// date. An empty driver id detaches the current driver.
//
// Example:
//
//	cmd, err := NewAssignDriverCommand("Lyon", date, "D1")
//	if err != nil {
//	    return err
//	}
//	err = handler.Handle(ctx, cmd)
//	if errors.Is(err, tour.ErrDriverOverbooked) {
//	    // D1 already drives two tours that day
//	}
type AssignDriverCommand struct {
	key      tour.Key
	driverID string

	guard guard.ConstructorGuard
}

func NewAssignDriverCommand(city string, date kernel.Date, driverID string) (AssignDriverCommand, error) {
	key, err := tour.NewKey(city, date)
	if err != nil {
		return AssignDriverCommand{}, err
	}

	return AssignDriverCommand{
		key:      key,
		driverID: strings.TrimSpace(driverID),
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c AssignDriverCommand) Validate() error {
	return c.guard.Validate(ErrAssignDriverCommandIsNotConstructed)
}

func (c AssignDriverCommand) Key() tour.Key {
	return c.key
}

// DriverID is empty when the driver is being detached.
func (c AssignDriverCommand) DriverID() string {
	return c.driverID
}
