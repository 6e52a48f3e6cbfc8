package services_test

import (
	"testing"

	"tourdispatch/internal/core/domain/model/kernel"
	"tourdispatch/internal/core/domain/model/order"
	"tourdispatch/internal/core/domain/model/tour"

	"github.com/stretchr/testify/require"
)

var planningDate = kernel.MustParseDate("2024-03-05")

func newOrder(t *testing.T, id, city, customer string, date kernel.Date) *order.Order {
	t.Helper()
	o, err := order.NewOrder(id, order.Destination{
		City:         city,
		AddressLines: []string{id + " main street"},
	}, customer, date, 1)
	require.NoError(t, err)
	return o
}

func newTour(t *testing.T, city string) *tour.Tour {
	t.Helper()
	key, err := tour.NewKey(city, planningDate)
	require.NoError(t, err)
	tr, err := tour.NewTour(key)
	require.NoError(t, err)
	return tr
}
