package queries

import (
	"context"

	"github.com/samber/lo"

	"tourdispatch/internal/core/domain/model/order"
	"tourdispatch/internal/core/domain/services"
	"tourdispatch/internal/core/ports"
)

type GetClustersQueryHandler struct {
	orders      ports.OrderSource
	clusterer   services.OrderClusterer
	synthesizer services.CoordinateSynthesizer
}

func NewGetClustersQueryHandler(
	orders ports.OrderSource,
	clusterer services.OrderClusterer,
	synthesizer services.CoordinateSynthesizer,
) GetClustersQueryHandler {
	return GetClustersQueryHandler{orders: orders, clusterer: clusterer, synthesizer: synthesizer}
}

// Handle reads every order in the date range and clusters it; the city filter
// is applied by the clusterer so that the Unassigned bucket can be selected.
func (h GetClustersQueryHandler) Handle(ctx context.Context, query GetClustersQuery) ([]ClusterView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	from, to := query.Filter().Range()
	orders, err := h.orders.ListOrders(ctx, from, to, "")
	if err != nil {
		return nil, err
	}

	clusters := h.clusterer.Cluster(orders, query.Filter(), query.City())
	return lo.Map(clusters, func(c services.CityCluster, _ int) ClusterView {
		return ClusterView{
			City: c.City,
			Orders: lo.Map(c.Orders, func(o *order.Order, _ int) OrderView {
				at := h.synthesizer.Synthesize(o.ID(), o.Address(), c.City)
				return OrderView{
					ID:           o.ID(),
					Customer:     o.Customer(),
					Address:      o.Address(),
					PostalCode:   o.PostalCode(),
					DeliveryDate: o.DeliveryDate().String(),
					Volume:       o.Volume(),
					Lat:          at.Lat(),
					Lng:          at.Lng(),
				}
			}),
		}
	}), nil
}
