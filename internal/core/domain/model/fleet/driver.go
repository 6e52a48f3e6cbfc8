package fleet

import (
	"errors"
	"strings"

	"tourdispatch/internal/pkg/errs"
	"tourdispatch/internal/pkg/guard"
)

var (
	ErrDriverIsNotConstructed = errors.New("Driver must be created via NewDriver constructor")
	ErrDriverIDIsRequired     = errs.NewValueIsRequiredError("driver id")
)

// Driver is an entry of the driver directory.
type Driver struct {
	id    string
	name  string
	guard guard.ConstructorGuard
}

// NewDriver trims both fields. A blank name falls back to the identifier.
func NewDriver(id, name string) (*Driver, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, ErrDriverIDIsRequired
	}

	name = strings.TrimSpace(name)
	if name == "" {
		name = id
	}

	return &Driver{id: id, name: name, guard: guard.NewConstructorGuard()}, nil
}

func (d *Driver) Validate() error {
	if d == nil {
		return ErrDriverIsNotConstructed
	}
	return d.guard.Validate(ErrDriverIsNotConstructed)
}

func (d *Driver) ID() string {
	return d.id
}

func (d *Driver) Name() string {
	return d.name
}
