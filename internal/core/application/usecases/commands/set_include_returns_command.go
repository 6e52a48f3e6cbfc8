package commands

import (
	"errors"

	"tourdispatch/internal/core/domain/model/kernel"
	"tourdispatch/internal/core/domain/model/tour"
	"tourdispatch/internal/pkg/guard"
)

var ErrSetIncludeReturnsCommandIsNotConstructed = errors.New(
	"SetIncludeReturnsCommand must be created via NewSetIncludeReturnsCommand constructor",
)

// SetIncludeReturnsCommand makes returns capture mandatory (or optional)
// before the tour can be closed.
type SetIncludeReturnsCommand struct {
	key            tour.Key
	includeReturns bool

	guard guard.ConstructorGuard
}

func NewSetIncludeReturnsCommand(city string, date kernel.Date, includeReturns bool) (SetIncludeReturnsCommand, error) {
	key, err := tour.NewKey(city, date)
	if err != nil {
		return SetIncludeReturnsCommand{}, err
	}

	return SetIncludeReturnsCommand{
		key:            key,
		includeReturns: includeReturns,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

func (c SetIncludeReturnsCommand) Validate() error {
	return c.guard.Validate(ErrSetIncludeReturnsCommandIsNotConstructed)
}

func (c SetIncludeReturnsCommand) Key() tour.Key {
	return c.key
}

func (c SetIncludeReturnsCommand) IncludeReturns() bool {
	return c.includeReturns
}
