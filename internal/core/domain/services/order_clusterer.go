package services

import (
	"slices"
	"strings"

	"github.com/samber/lo"

	"tourdispatch/internal/core/domain/model/kernel"
	"tourdispatch/internal/core/domain/model/order"
)

// UnassignedCity collects eligible orders whose city is only whitespace.
const UnassignedCity = "Unassigned"

// DateFilter selects either one planning date or the Monday to Sunday week
// containing it.
type DateFilter struct {
	Date kernel.Date
	Week bool
}

// Range returns the inclusive bounds of the filter.
func (f DateFilter) Range() (kernel.Date, kernel.Date) {
	if f.Week {
		return f.Date.Week()
	}
	return f.Date, f.Date
}

func (f DateFilter) Contains(d kernel.Date) bool {
	if d.IsZero() {
		return false
	}
	from, to := f.Range()
	return d.Between(from, to)
}

// CityCluster is the list of candidate orders for one city.
type CityCluster struct {
	City   string
	Orders []*order.Order
}

// OrderClusterer groups eligible orders by destination city.
type OrderClusterer struct{}

func NewOrderClusterer() OrderClusterer {
	return OrderClusterer{}
}

// Cluster keeps eligible orders inside the date filter and, when cityFilter
// is not blank, in the matching city (trimmed, case-insensitive). Clusters come
// sorted by city; orders keep their input order inside a cluster.
func (OrderClusterer) Cluster(orders []*order.Order, filter DateFilter, cityFilter string) []CityCluster {
	cityFilter = strings.TrimSpace(cityFilter)

	eligible := lo.Filter(orders, func(o *order.Order, _ int) bool {
		if o.Validate() != nil || !o.IsEligible() || !filter.Contains(o.DeliveryDate()) {
			return false
		}
		return cityFilter == "" || strings.EqualFold(ClusterCity(o), cityFilter)
	})

	groups := lo.GroupBy(eligible, ClusterCity)
	cities := lo.Keys(groups)
	slices.Sort(cities)

	return lo.Map(cities, func(city string, _ int) CityCluster {
		return CityCluster{City: city, Orders: groups[city]}
	})
}

// ClusterCity is the city bucket an order falls into.
func ClusterCity(o *order.Order) string {
	if city := o.City(); city != "" {
		return city
	}
	return UnassignedCity
}
