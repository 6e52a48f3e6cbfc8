// Package queries contains read operations for the planning screen. Tours and
// stop plans are read straight from the store with SQL; candidate orders come
// from the order source.
package queries

import (
	"errors"
	"strings"

	"tourdispatch/internal/core/domain/model/kernel"
	"tourdispatch/internal/core/domain/services"
	"tourdispatch/internal/pkg/errs"
	"tourdispatch/internal/pkg/guard"
)

var (
	ErrGetToursQueryIsNotConstructed = errors.New(
		"GetToursQuery must be created via NewGetToursQuery constructor",
	)
	ErrDateIsRequired = errs.NewValueIsRequiredError("date")
)

// GetToursQuery lists the tours of one planning date, or of the Monday to
// Sunday week containing it, optionally for one city.
//
// Example:
//
//	query, err := NewGetToursQuery(date, true, "")
//	tours, err := handler.Handle(ctx, query)
type GetToursQuery struct {
	filter services.DateFilter
	city   string

	guard guard.ConstructorGuard
}

func NewGetToursQuery(date kernel.Date, week bool, city string) (GetToursQuery, error) {
	if date.IsZero() {
		return GetToursQuery{}, ErrDateIsRequired
	}
	return GetToursQuery{
		filter: services.DateFilter{Date: date, Week: week},
		city:   strings.TrimSpace(city),
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (q GetToursQuery) Validate() error {
	return q.guard.Validate(ErrGetToursQueryIsNotConstructed)
}

func (q GetToursQuery) Filter() services.DateFilter {
	return q.filter
}

func (q GetToursQuery) City() string {
	return q.city
}

// TourView is the read model of one tour.
type TourView struct {
	Date           string
	City           string
	DriverID       string
	VehicleID      string
	Lifecycle      string
	IncludeReturns bool
	Stops          []StopView
}

type StopView struct {
	OrderID    string
	Customer   string
	Address    string
	PostalCode string
	Status     string
}
