package queries

import (
	"context"

	"gorm.io/gorm"

	"tourdispatch/internal/core/domain/model/kernel"
)

type GetStopPlansQueryHandler struct {
	db *gorm.DB
}

func NewGetStopPlansQueryHandler(db *gorm.DB) GetStopPlansQueryHandler {
	return GetStopPlansQueryHandler{db: db}
}

// Handle returns the plans in stop sequence. A tour never validated has none.
func (h GetStopPlansQueryHandler) Handle(ctx context.Context, query GetStopPlansQuery) ([]StopPlanView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	key := query.Key()
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			sequence,
			order_id,
			window_start,
			window_end,
			eta,
			driver_id,
			vehicle_id
		FROM stop_plans
		WHERE date = ? AND city = ?
		ORDER BY sequence
	`, key.Date.Time(), key.City).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	plans := make([]StopPlanView, 0)
	for rows.Next() {
		var view StopPlanView
		var start, end, eta int
		if err = rows.Scan(&view.Sequence, &view.OrderID, &start, &end, &eta, &view.DriverID,
			&view.VehicleID); err != nil {
			return nil, err
		}

		startClock, startErr := kernel.ClockOfMinutes(start)
		if startErr != nil {
			return nil, startErr
		}
		endClock, endErr := kernel.ClockOfMinutes(end)
		if endErr != nil {
			return nil, endErr
		}
		etaClock, etaErr := kernel.ClockOfMinutes(eta)
		if etaErr != nil {
			return nil, etaErr
		}

		view.WindowStart = startClock.String()
		view.WindowEnd = endClock.String()
		view.ETA = etaClock.String()
		view.Late = etaClock.After(endClock)
		plans = append(plans, view)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return plans, nil
}
