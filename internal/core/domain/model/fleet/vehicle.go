package fleet

import (
	"errors"
	"strings"

	"tourdispatch/internal/pkg/errs"
	"tourdispatch/internal/pkg/guard"
)

var (
	ErrVehicleIsNotConstructed = errors.New("Vehicle must be created via NewVehicle constructor")
	ErrVehicleIDIsRequired     = errs.NewValueIsRequiredError("vehicle id")
)

// Vehicle is an entry of the vehicle directory. A vehicle under maintenance
// cannot be newly assigned to a tour, but a tour that already uses it keeps it.
type Vehicle struct {
	id               string
	description      string
	plate            string
	underMaintenance bool
	guard            guard.ConstructorGuard
}

func NewVehicle(id, description, plate string, underMaintenance bool) (*Vehicle, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, ErrVehicleIDIsRequired
	}

	return &Vehicle{
		id:               id,
		description:      strings.TrimSpace(description),
		plate:            strings.ToUpper(strings.TrimSpace(plate)),
		underMaintenance: underMaintenance,
		guard:            guard.NewConstructorGuard(),
	}, nil
}

func (v *Vehicle) Validate() error {
	if v == nil {
		return ErrVehicleIsNotConstructed
	}
	return v.guard.Validate(ErrVehicleIsNotConstructed)
}

func (v *Vehicle) ID() string {
	return v.id
}

func (v *Vehicle) Description() string {
	return v.description
}

func (v *Vehicle) Plate() string {
	return v.plate
}

func (v *Vehicle) UnderMaintenance() bool {
	return v.underMaintenance
}

// Available reports whether the vehicle may be newly assigned.
func (v *Vehicle) Available() bool {
	return !v.underMaintenance
}
