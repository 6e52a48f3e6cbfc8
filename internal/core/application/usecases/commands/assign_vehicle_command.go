package commands

import (
	"errors"
	"strings"

	"tourdispatch/internal/core/domain/model/kernel"
	"tourdispatch/internal/core/domain/model/tour"
	"tourdispatch/internal/pkg/guard"
)

var ErrAssignVehicleCommandIsNotConstructed = errors.New(
	"AssignVehicleCommand must be created via NewAssignVehicleCommand constructor",
)

// AssignVehicleCommand attaches a vehicle to a tour; an empty id detaches it.
type AssignVehicleCommand struct {
	key       tour.Key
	vehicleID string

	guard guard.ConstructorGuard
}

func NewAssignVehicleCommand(city string, date kernel.Date, vehicleID string) (AssignVehicleCommand, error) {
	key, err := tour.NewKey(city, date)
	if err != nil {
		return AssignVehicleCommand{}, err
	}

	return AssignVehicleCommand{
		key:       key,
		vehicleID: strings.TrimSpace(vehicleID),
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c AssignVehicleCommand) Validate() error {
	return c.guard.Validate(ErrAssignVehicleCommandIsNotConstructed)
}

func (c AssignVehicleCommand) Key() tour.Key {
	return c.key
}

func (c AssignVehicleCommand) VehicleID() string {
	return c.vehicleID
}
