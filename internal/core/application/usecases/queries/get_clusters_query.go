package queries

import (
	"errors"
	"strings"

	"tourdispatch/internal/core/domain/model/kernel"
	"tourdispatch/internal/core/domain/services"
	"tourdispatch/internal/pkg/guard"
)

var ErrGetClustersQueryIsNotConstructed = errors.New(
	"GetClustersQuery must be created via NewGetClustersQuery constructor",
)

// GetClustersQuery groups the candidate orders of a date or week by city.
type GetClustersQuery struct {
	filter services.DateFilter
	city   string

	guard guard.ConstructorGuard
}

func NewGetClustersQuery(date kernel.Date, week bool, city string) (GetClustersQuery, error) {
	if date.IsZero() {
		return GetClustersQuery{}, ErrDateIsRequired
	}
	return GetClustersQuery{
		filter: services.DateFilter{Date: date, Week: week},
		city:   strings.TrimSpace(city),
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (q GetClustersQuery) Validate() error {
	return q.guard.Validate(ErrGetClustersQueryIsNotConstructed)
}

func (q GetClustersQuery) Filter() services.DateFilter {
	return q.filter
}

func (q GetClustersQuery) City() string {
	return q.city
}

type ClusterView struct {
	City   string
	Orders []OrderView
}

// OrderView carries synthetic map coordinates for the planning screen.
type OrderView struct {
	ID           string
	Customer     string
	Address      string
	PostalCode   string
	DeliveryDate string
	Volume       float64
	Lat          float64
	Lng          float64
}
