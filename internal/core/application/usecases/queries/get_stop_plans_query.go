package queries

import (
	"errors"

	"tourdispatch/internal/core/domain/model/kernel"
	"tourdispatch/internal/core/domain/model/tour"
	"tourdispatch/internal/pkg/guard"
)

var ErrGetStopPlansQueryIsNotConstructed = errors.New(
	"GetStopPlansQuery must be created via NewGetStopPlansQuery constructor",
)

// GetStopPlansQuery reads the schedule written by the last validation of a
// tour.
type GetStopPlansQuery struct {
	key   tour.Key
	guard guard.ConstructorGuard
}

func NewGetStopPlansQuery(city string, date kernel.Date) (GetStopPlansQuery, error) {
	key, err := tour.NewKey(city, date)
	if err != nil {
		return GetStopPlansQuery{}, err
	}
	return GetStopPlansQuery{key: key, guard: guard.NewConstructorGuard()}, nil
}

func (q GetStopPlansQuery) Validate() error {
	return q.guard.Validate(ErrGetStopPlansQueryIsNotConstructed)
}

func (q GetStopPlansQuery) Key() tour.Key {
	return q.key
}

// StopPlanView renders clocks as HH:MM.
type StopPlanView struct {
	Sequence    int
	OrderID     string
	WindowStart string
	WindowEnd   string
	ETA         string
	Late        bool
	DriverID    string
	VehicleID   string
}
