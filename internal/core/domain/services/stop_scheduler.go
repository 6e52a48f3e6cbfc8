package services

import (
	"errors"
	"fmt"
	"time"

	"tourdispatch/internal/core/domain/model/kernel"
	"tourdispatch/internal/core/domain/model/schedule"
	"tourdispatch/internal/core/domain/model/tour"
	"tourdispatch/internal/pkg/errs"
)

// ScheduleParams are the fixed timings of a tour.
type ScheduleParams struct {
	DepotDeparture kernel.Clock
	Travel         time.Duration
	Service        time.Duration
}

func (p ScheduleParams) Validate() error {
	var errTravel, errService error
	if p.Travel < 0 {
		errTravel = errs.NewValueIsInvalidErrorWithCause("travel duration", fmt.Errorf("%s is negative", p.Travel))
	}
	if p.Service < 0 {
		errService = errs.NewValueIsInvalidErrorWithCause("service duration", fmt.Errorf("%s is negative", p.Service))
	}
	return errors.Join(errTravel, errService)
}

// StopScheduler derives stop plans from the route order of a tour.
type StopScheduler struct {
	params ScheduleParams
}

func NewStopScheduler(params ScheduleParams) (StopScheduler, error) {
	if err := params.Validate(); err != nil {
		return StopScheduler{}, err
	}
	return StopScheduler{params: params}, nil
}

// Schedule computes one plan per stop. The first stop is reached at the later
// of the depot departure and its window start; every stop then takes the
// service duration and every following stop adds the travel duration.
// windows must hold an entry for each stop.
func (s StopScheduler) Schedule(t *tour.Tour, windows map[string]kernel.TimeWindow) ([]schedule.StopPlan, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}

	key := t.Key()
	stops := t.Stops()
	plans := make([]schedule.StopPlan, 0, len(stops))

	var cursor kernel.Clock
	for i, stop := range stops {
		window, ok := windows[stop.OrderID()]
		if !ok {
			return nil, errs.NewValueIsRequiredErrorWithCause("time window",
				fmt.Errorf("no window for order %s", stop.OrderID()))
		}

		if i == 0 {
			cursor = kernel.Later(s.params.DepotDeparture, window.Start)
		} else {
			cursor = cursor.Add(s.params.Travel)
		}

		plan, err := schedule.NewStopPlan(key.Date, key.City, stop.OrderID(), i+1, window, cursor,
			t.DriverID(), t.VehicleID())
		if err != nil {
			return nil, err
		}
		plans = append(plans, plan)

		cursor = cursor.Add(s.params.Service)
	}

	return plans, nil
}
