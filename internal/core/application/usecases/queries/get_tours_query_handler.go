package queries

import (
	"context"
	"time"

	"gorm.io/gorm"

	"tourdispatch/internal/core/domain/model/kernel"
	"tourdispatch/internal/core/domain/model/tour"
)

type GetToursQueryHandler struct {
	db *gorm.DB
}

func NewGetToursQueryHandler(db *gorm.DB) GetToursQueryHandler {
	return GetToursQueryHandler{db: db}
}

// Handle returns tours sorted by date then city, each with its stops in route
// order.
func (h GetToursQueryHandler) Handle(ctx context.Context, query GetToursQuery) ([]TourView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	from, to := query.Filter().Range()
	tours, index, err := h.tours(ctx, from, to, query.City())
	if err != nil {
		return nil, err
	}
	if len(tours) == 0 {
		return tours, nil
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			s.tour_date,
			s.tour_city,
			s.order_id,
			s.customer,
			s.address,
			s.postal_code,
			s.status
		FROM tour_stops s
		JOIN tours t ON t.date = s.tour_date AND t.city = s.tour_city
		WHERE s.tour_date BETWEEN ? AND ?
		ORDER BY s.tour_date, s.tour_city, array_position(t.stop_order, s.order_id::text)
	`, from.Time(), to.Time()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var date time.Time
		var city string
		var stop StopView
		if err = rows.Scan(&date, &city, &stop.OrderID, &stop.Customer, &stop.Address, &stop.PostalCode,
			&stop.Status); err != nil {
			return nil, err
		}
		if i, ok := index[tourIndexKey(date, city)]; ok {
			tours[i].Stops = append(tours[i].Stops, stop)
		}
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return tours, nil
}

func (h GetToursQueryHandler) tours(
	ctx context.Context,
	from, to kernel.Date,
	city string,
) ([]TourView, map[string]int, error) {
	query := `
		SELECT date, city, driver_id, vehicle_id, validated, include_returns, closed
		FROM tours
		WHERE date BETWEEN ? AND ?`
	args := []any{from.Time(), to.Time()}
	if city != "" {
		query += ` AND LOWER(city) = LOWER(?)`
		args = append(args, city)
	}
	query += ` ORDER BY date, city`

	rows, err := h.db.WithContext(ctx).Raw(query, args...).Rows()
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	tours := make([]TourView, 0)
	index := make(map[string]int)
	for rows.Next() {
		var date time.Time
		var view TourView
		var validated, closed bool
		if err = rows.Scan(&date, &view.City, &view.DriverID, &view.VehicleID, &validated,
			&view.IncludeReturns, &closed); err != nil {
			return nil, nil, err
		}
		view.Date = kernel.DateOf(date).String()
		view.Lifecycle = lifecycle(validated, closed).String()
		view.Stops = make([]StopView, 0)

		index[tourIndexKey(date, view.City)] = len(tours)
		tours = append(tours, view)
	}
	if err = rows.Err(); err != nil {
		return nil, nil, err
	}
	return tours, index, nil
}

func tourIndexKey(date time.Time, city string) string {
	return kernel.DateOf(date).String() + "|" + city
}

func lifecycle(validated, closed bool) tour.Lifecycle {
	switch {
	case closed:
		return tour.Closed
	case validated:
		return tour.Validated
	default:
		return tour.Open
	}
}
