package schedule

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"tourdispatch/internal/core/domain/model/kernel"
	"tourdispatch/internal/pkg/errs"
)

// StopPlan is the schedule entry of one stop, keyed by (Date, City, OrderID).
// A tour's plans are always written as a whole set; a new validation
// supersedes every previous plan of the tour.
type StopPlan struct {
	Date      kernel.Date
	City      string
	OrderID   string
	Sequence  int
	Window    kernel.TimeWindow
	ETA       kernel.Clock
	DriverID  string
	VehicleID string
}

func NewStopPlan(
	date kernel.Date,
	city, orderID string,
	sequence int,
	window kernel.TimeWindow,
	eta kernel.Clock,
	driverID, vehicleID string,
) (StopPlan, error) {
	p := StopPlan{
		Date:      date,
		City:      strings.TrimSpace(city),
		OrderID:   strings.TrimSpace(orderID),
		Sequence:  sequence,
		Window:    window,
		ETA:       eta,
		DriverID:  driverID,
		VehicleID: vehicleID,
	}
	if err := p.Validate(); err != nil {
		return StopPlan{}, err
	}
	return p, nil
}

func (p StopPlan) Validate() error {
	var errDate, errCity, errOrder, errSeq error
	if p.Date.IsZero() {
		errDate = errs.NewValueIsRequiredError("plan date")
	}
	if p.City == "" {
		errCity = errs.NewValueIsRequiredError("plan city")
	}
	if p.OrderID == "" {
		errOrder = errs.NewValueIsRequiredError("plan order id")
	}
	if p.Sequence < 1 {
		errSeq = errs.NewValueIsInvalidErrorWithCause("sequence", fmt.Errorf("%d is not 1-based", p.Sequence))
	}
	return errors.Join(errDate, errCity, errOrder, errSeq)
}

// ETATime anchors the ETA on the plan date.
func (p StopPlan) ETATime() time.Time {
	return p.ETA.On(p.Date)
}

// Late reports whether the ETA falls after the promised window.
func (p StopPlan) Late() bool {
	return p.ETA.After(p.Window.End)
}
