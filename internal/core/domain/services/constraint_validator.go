package services

import (
	"fmt"
	"strings"

	"github.com/samber/lo"

	"tourdispatch/internal/core/domain/model/fleet"
	"tourdispatch/internal/core/domain/model/order"
	"tourdispatch/internal/core/domain/model/tour"
	"tourdispatch/internal/pkg/errs"
)

const (
	DefaultTourCapacity    = 3
	DefaultDriverTourLimit = 2
	// VehicleTourLimit is fixed: a vehicle serves one active tour per day.
	VehicleTourLimit = 1
)

// Limits are the configurable caps enforced by ConstraintValidator.
type Limits struct {
	TourCapacity    int
	DriverTourLimit int
}

func DefaultLimits() Limits {
	return Limits{TourCapacity: DefaultTourCapacity, DriverTourLimit: DefaultDriverTourLimit}
}

// ConstraintValidator applies the rules that need more than one tour: the
// driver and vehicle caps across the active tours of a planning date, order
// eligibility and the tour capacity. Each method mutates the tour only when
// it returns nil.
//
// sameDay is the list of other tours sharing the planning date. Tours with
// the same key as the edited tour and closed tours are ignored.
type ConstraintValidator struct {
	limits Limits
}

func NewConstraintValidator(limits Limits) (ConstraintValidator, error) {
	if limits.TourCapacity < 1 {
		return ConstraintValidator{}, errs.NewValueIsOutOfRangeError("tour capacity", limits.TourCapacity, 1, "unbounded")
	}
	if limits.DriverTourLimit < 1 {
		return ConstraintValidator{}, errs.NewValueIsOutOfRangeError("driver tour limit", limits.DriverTourLimit, 1, "unbounded")
	}
	return ConstraintValidator{limits: limits}, nil
}

func (v ConstraintValidator) Limits() Limits {
	return v.limits
}

// AssignDriver attaches driver to t, or detaches the current one when driver
// is nil. Re-assigning the tour's own driver always succeeds.
func (v ConstraintValidator) AssignDriver(t *tour.Tour, driver *fleet.Driver, sameDay []*tour.Tour) error {
	if driver == nil {
		return t.AssignDriver("")
	}
	if err := driver.Validate(); err != nil {
		return err
	}
	if t.DriverID() == driver.ID() {
		return t.AssignDriver(driver.ID())
	}

	if held := v.activeToursWith(t, sameDay, (*tour.Tour).DriverID, driver.ID()); len(held) >= v.limits.DriverTourLimit {
		return tour.Reject(tour.ReasonDriverOverbooked, fmt.Sprintf(
			"driver %s already holds %d tours on %s: %s",
			driver.ID(), len(held), t.Key().Date, strings.Join(held, ", ")))
	}

	return t.AssignDriver(driver.ID())
}

// AssignVehicle attaches vehicle to t, or detaches the current one when
// vehicle is nil. A vehicle under maintenance may stay on the tour it already
// serves but cannot be newly assigned.
func (v ConstraintValidator) AssignVehicle(t *tour.Tour, vehicle *fleet.Vehicle, sameDay []*tour.Tour) error {
	if vehicle == nil {
		return t.AssignVehicle("")
	}
	if err := vehicle.Validate(); err != nil {
		return err
	}
	if t.VehicleID() == vehicle.ID() {
		return t.AssignVehicle(vehicle.ID())
	}

	if vehicle.UnderMaintenance() {
		return tour.Reject(tour.ReasonVehicleUnavailable,
			fmt.Sprintf("vehicle %s is under maintenance", vehicle.ID()))
	}
	if held := v.activeToursWith(t, sameDay, (*tour.Tour).VehicleID, vehicle.ID()); len(held) >= VehicleTourLimit {
		return tour.Reject(tour.ReasonVehicleOverbooked, fmt.Sprintf(
			"vehicle %s already serves %s", vehicle.ID(), strings.Join(held, ", ")))
	}

	return t.AssignVehicle(vehicle.ID())
}

// ToggleOrder removes o from t when present. Otherwise o must be eligible,
// belong to the tour's city and be due on the planning date, and t must have
// room for it. It reports whether the order was added.
func (v ConstraintValidator) ToggleOrder(t *tour.Tour, o *order.Order) (bool, error) {
	if err := o.Validate(); err != nil {
		return false, err
	}
	if t.HasStop(o.ID()) {
		return false, t.RemoveStop(o.ID())
	}
	if err := v.CheckEligible(t, o); err != nil {
		return false, err
	}
	return true, t.AddStop(o, v.limits.TourCapacity)
}

// CheckEligible reports why o cannot join t, if it cannot.
func (v ConstraintValidator) CheckEligible(t *tour.Tour, o *order.Order) error {
	key := t.Key()
	switch {
	case !o.IsEligible():
		return tour.Reject(tour.ReasonOrderNotEligible, "order has no city or no address line", o.ID())
	case ClusterCity(o) != key.City:
		return tour.Reject(tour.ReasonOrderNotEligible,
			fmt.Sprintf("order is for %q, not %q", ClusterCity(o), key.City), o.ID())
	case !o.DeliveryDate().Equal(key.Date):
		return tour.Reject(tour.ReasonOrderNotEligible,
			fmt.Sprintf("order is due on %s, not %s", o.DeliveryDate(), key.Date), o.ID())
	}
	return nil
}

// CheckNotPlanned rejects o when another tour of the same day already holds
// it. An order belongs to at most one tour.
func (v ConstraintValidator) CheckNotPlanned(t *tour.Tour, o *order.Order, sameDay []*tour.Tour) error {
	for _, other := range sameDay {
		if other.Key().Equal(t.Key()) || !other.HasStop(o.ID()) {
			continue
		}
		return tour.Reject(tour.ReasonOrderNotEligible,
			"order is already planned on tour "+other.Key().String(), o.ID())
	}
	return nil
}

// ValidateTour runs the readiness rules and marks the tour validated, which
// also puts every stop in progress.
func (v ConstraintValidator) ValidateTour(t *tour.Tour) error {
	return t.MarkValidated()
}

// Reopen brings a closed tour back to validated. Its driver and vehicle count
// against the caps again, so they are re-checked first.
func (v ConstraintValidator) Reopen(t *tour.Tour, sameDay []*tour.Tour) error {
	if !t.IsClosed() {
		return t.Reopen()
	}
	if held := v.activeToursWith(t, sameDay, (*tour.Tour).DriverID, t.DriverID()); len(held) >= v.limits.DriverTourLimit {
		return tour.Reject(tour.ReasonDriverOverbooked, fmt.Sprintf(
			"driver %s already holds %d tours on %s: %s",
			t.DriverID(), len(held), t.Key().Date, strings.Join(held, ", ")))
	}
	if held := v.activeToursWith(t, sameDay, (*tour.Tour).VehicleID, t.VehicleID()); len(held) >= VehicleTourLimit {
		return tour.Reject(tour.ReasonVehicleOverbooked, fmt.Sprintf(
			"vehicle %s already serves %s", t.VehicleID(), strings.Join(held, ", ")))
	}
	return t.Reopen()
}

// activeToursWith lists the keys of other active tours on t's date whose
// resource equals id.
func (v ConstraintValidator) activeToursWith(
	t *tour.Tour,
	sameDay []*tour.Tour,
	resource func(*tour.Tour) string,
	id string,
) []string {
	if id == "" {
		return nil
	}
	key := t.Key()
	held := lo.Filter(sameDay, func(other *tour.Tour, _ int) bool {
		return other != nil &&
			!other.Key().Equal(key) &&
			other.Key().Date.Equal(key.Date) &&
			other.IsActive() &&
			resource(other) == id
	})
	return lo.Map(held, func(other *tour.Tour, _ int) string { return other.Key().String() })
}
