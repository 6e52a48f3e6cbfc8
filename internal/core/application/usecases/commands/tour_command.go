package commands

import (
	"errors"

	"tourdispatch/internal/core/domain/model/kernel"
	"tourdispatch/internal/core/domain/model/tour"
	"tourdispatch/internal/pkg/guard"
)

var (
	ErrOptimizeRouteCommandIsNotConstructed = errors.New(
		"OptimizeRouteCommand must be created via NewOptimizeRouteCommand constructor",
	)
	ErrValidateTourCommandIsNotConstructed = errors.New(
		"ValidateTourCommand must be created via NewValidateTourCommand constructor",
	)
	ErrCloseTourCommandIsNotConstructed = errors.New(
		"CloseTourCommand must be created via NewCloseTourCommand constructor",
	)
	ErrReopenTourCommandIsNotConstructed = errors.New(
		"ReopenTourCommand must be created via NewReopenTourCommand constructor",
	)
)

// tourCommand carries only the tour key.
type tourCommand struct {
	key   tour.Key
	guard guard.ConstructorGuard
}

func newTourCommand(city string, date kernel.Date) (tourCommand, error) {
	key, err := tour.NewKey(city, date)
	if err != nil {
		return tourCommand{}, err
	}
	return tourCommand{key: key, guard: guard.NewConstructorGuard()}, nil
}

func (c tourCommand) Key() tour.Key {
	return c.key
}

// OptimizeRouteCommand reorders the stops of a tour by nearest neighbour.
type OptimizeRouteCommand struct{ tourCommand }

func NewOptimizeRouteCommand(city string, date kernel.Date) (OptimizeRouteCommand, error) {
	c, err := newTourCommand(city, date)
	return OptimizeRouteCommand{c}, err
}

func (c OptimizeRouteCommand) Validate() error {
	return c.guard.Validate(ErrOptimizeRouteCommandIsNotConstructed)
}

// ValidateTourCommand locks a tour's composition for execution.
type ValidateTourCommand struct{ tourCommand }

func NewValidateTourCommand(city string, date kernel.Date) (ValidateTourCommand, error) {
	c, err := newTourCommand(city, date)
	return ValidateTourCommand{c}, err
}

func (c ValidateTourCommand) Validate() error {
	return c.guard.Validate(ErrValidateTourCommandIsNotConstructed)
}

// CloseTourCommand finishes a tour once every stop is delivered and proven.
type CloseTourCommand struct{ tourCommand }

func NewCloseTourCommand(city string, date kernel.Date) (CloseTourCommand, error) {
	c, err := newTourCommand(city, date)
	return CloseTourCommand{c}, err
}

func (c CloseTourCommand) Validate() error {
	return c.guard.Validate(ErrCloseTourCommandIsNotConstructed)
}

// ReopenTourCommand brings a closed tour back to validated.
type ReopenTourCommand struct{ tourCommand }

func NewReopenTourCommand(city string, date kernel.Date) (ReopenTourCommand, error) {
	c, err := newTourCommand(city, date)
	return ReopenTourCommand{c}, err
}

func (c ReopenTourCommand) Validate() error {
	return c.guard.Validate(ErrReopenTourCommandIsNotConstructed)
}
