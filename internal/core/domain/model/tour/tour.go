package tour

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"tourdispatch/internal/core/domain/model/kernel"
	"tourdispatch/internal/core/domain/model/order"
	"tourdispatch/internal/pkg/errs"
	"tourdispatch/internal/pkg/guard"
)

var (
	ErrTourIsNotConstructed = errors.New("Tour must be created via NewTour or RestoreTour constructor")
	ErrCityIsRequired       = errs.NewValueIsRequiredError("city")
	ErrDateIsRequired       = errs.NewValueIsRequiredError("planning date")
	ErrCapacityIsInvalid    = errs.NewValueIsInvalidError("tour capacity")
)

// Key identifies a tour: one per destination city and planning date.
type Key struct {
	City string
	Date kernel.Date
}

func NewKey(city string, date kernel.Date) (Key, error) {
	city = strings.TrimSpace(city)

	var errCity, errDate error
	if city == "" {
		errCity = ErrCityIsRequired
	}
	if date.IsZero() {
		errDate = ErrDateIsRequired
	}
	if err := errors.Join(errCity, errDate); err != nil {
		return Key{}, err
	}

	return Key{City: city, Date: date}, nil
}

func (k Key) Equal(other Key) bool {
	return k.City == other.City && k.Date.Equal(other.Date)
}

func (k Key) String() string {
	return k.Date.String() + "/" + k.City
}

// Tour is the aggregate root of the dispatch engine. It owns the ordered stops
// of one city on one planning date together with the driver and vehicle
// references and the lifecycle flags.
//
// Invariants kept by every method:
//   - a validated tour has a driver, a vehicle and at least one stop
//   - a closed tour is validated
//   - an order appears at most once
//
// Every mutating method either applies fully or returns a *Rejection and
// leaves the tour untouched. Rules that look at other tours (driver and
// vehicle caps) live in services.ConstraintValidator.
type Tour struct {
	key            Key
	stops          []Stop
	driverID       string
	vehicleID      string
	validated      bool
	includeReturns bool
	closed         bool
	guard          guard.ConstructorGuard
}

// NewTour creates an empty open tour.
func NewTour(key Key) (*Tour, error) {
	if _, err := NewKey(key.City, key.Date); err != nil {
		return nil, err
	}

	return &Tour{
		key:   key,
		stops: []Stop{},
		guard: guard.NewConstructorGuard(),
	}, nil
}

// RestoreTour rebuilds a tour from storage and checks its invariants.
func RestoreTour(
	key Key,
	stops []Stop,
	driverID, vehicleID string,
	validated, includeReturns, closed bool,
) (*Tour, error) {
	t, err := NewTour(key)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(stops))
	for _, s := range stops {
		if _, dup := seen[s.orderID]; dup {
			return nil, errs.NewValueIsInvalidErrorWithCause("stops", fmt.Errorf("order %s appears twice", s.orderID))
		}
		seen[s.orderID] = struct{}{}
	}

	t.stops = slices.Clone(stops)
	t.driverID = driverID
	t.vehicleID = vehicleID
	t.validated = validated
	t.includeReturns = includeReturns
	t.closed = closed

	if err := t.checkInvariants(); err != nil {
		return nil, err
	}

	return t, nil
}

func (t *Tour) Validate() error {
	if t == nil {
		return ErrTourIsNotConstructed
	}
	return t.guard.Validate(ErrTourIsNotConstructed)
}

func (t *Tour) Key() Key {
	return t.key
}

func (t *Tour) Stops() []Stop {
	return slices.Clone(t.stops)
}

func (t *Tour) OrderIDs() []string {
	ids := make([]string, len(t.stops))
	for i, s := range t.stops {
		ids[i] = s.orderID
	}
	return ids
}

func (t *Tour) Stop(orderID string) (Stop, bool) {
	if i := t.indexOf(orderID); i >= 0 {
		return t.stops[i], true
	}
	return Stop{}, false
}

func (t *Tour) HasStop(orderID string) bool {
	return t.indexOf(orderID) >= 0
}

func (t *Tour) DriverID() string {
	return t.driverID
}

func (t *Tour) VehicleID() string {
	return t.vehicleID
}

func (t *Tour) IsValidated() bool {
	return t.validated
}

func (t *Tour) IncludeReturns() bool {
	return t.includeReturns
}

func (t *Tour) IsClosed() bool {
	return t.closed
}

// IsActive reports whether the tour counts against driver and vehicle caps.
func (t *Tour) IsActive() bool {
	return !t.closed
}

func (t *Tour) Lifecycle() Lifecycle {
	switch {
	case t.closed:
		return Closed
	case t.validated:
		return Validated
	default:
		return Open
	}
}

// ToggleOrder removes the order if the tour already holds it, otherwise
// appends it as a new stop. It reports whether the order was added.
// Eligibility of the order is checked by the caller.
func (t *Tour) ToggleOrder(o *order.Order, capacity int) (bool, error) {
	if err := o.Validate(); err != nil {
		return false, err
	}
	if t.HasStop(o.ID()) {
		return false, t.RemoveStop(o.ID())
	}
	return true, t.AddStop(o, capacity)
}

// AddStop appends the order unless the tour is already at capacity.
func (t *Tour) AddStop(o *order.Order, capacity int) error {
	if capacity < 1 {
		return ErrCapacityIsInvalid
	}
	if err := t.ensureOpenForEdit(); err != nil {
		return err
	}
	if t.HasStop(o.ID()) {
		return nil
	}
	if len(t.stops) >= capacity {
		return Reject(ReasonTourFull,
			fmt.Sprintf("tour %s already holds %d stops", t.key, capacity), o.ID())
	}

	stop, err := NewStop(o)
	if err != nil {
		return err
	}

	t.stops = append(t.stops, stop)
	t.validated = false
	return nil
}

func (t *Tour) RemoveStop(orderID string) error {
	if err := t.ensureOpenForEdit(); err != nil {
		return err
	}
	i := t.indexOf(orderID)
	if i < 0 {
		return Reject(ReasonStopNotInTour, "tour "+t.key.String(), orderID)
	}

	t.stops = slices.Delete(t.stops, i, i+1)
	t.validated = false
	return nil
}

// AssignDriver sets or, with an empty id, clears the driver. Changing the
// driver of a validated tour sends it back to open.
func (t *Tour) AssignDriver(driverID string) error {
	if err := t.ensureOpenForEdit(); err != nil {
		return err
	}
	driverID = strings.TrimSpace(driverID)
	if driverID == t.driverID {
		return nil
	}

	t.driverID = driverID
	t.validated = false
	return nil
}

// AssignVehicle works like AssignDriver.
func (t *Tour) AssignVehicle(vehicleID string) error {
	if err := t.ensureOpenForEdit(); err != nil {
		return err
	}
	vehicleID = strings.TrimSpace(vehicleID)
	if vehicleID == t.vehicleID {
		return nil
	}

	t.vehicleID = vehicleID
	t.validated = false
	return nil
}

// Reorder applies a new stop sequence. orderIDs must be a permutation of the
// current stops. A validated tour whose sequence changes goes back to open so
// that its schedule is regenerated on the next validation.
func (t *Tour) Reorder(orderIDs []string) error {
	if err := t.ensureOpenForEdit(); err != nil {
		return err
	}
	if len(orderIDs) != len(t.stops) {
		return errs.NewValueIsInvalidErrorWithCause("stop sequence",
			fmt.Errorf("got %d ids for %d stops", len(orderIDs), len(t.stops)))
	}

	reordered := make([]Stop, 0, len(t.stops))
	used := make(map[string]struct{}, len(orderIDs))
	for _, id := range orderIDs {
		i := t.indexOf(id)
		if _, dup := used[id]; dup || i < 0 {
			return errs.NewValueIsInvalidErrorWithCause("stop sequence",
				fmt.Errorf("%s is not a distinct stop of the tour", id))
		}
		used[id] = struct{}{}
		reordered = append(reordered, t.stops[i])
	}

	if slices.Equal(orderIDs, t.OrderIDs()) {
		return nil
	}
	t.stops = reordered
	t.validated = false
	return nil
}

func (t *Tour) SetIncludeReturns(include bool) error {
	if t.closed {
		return t.closedRejection()
	}
	t.includeReturns = include
	return nil
}

// CheckReadiness runs the validation rules without changing the tour.
// Checks are ordered: empty tour, missing driver, missing vehicle, then
// duplicate customers.
func (t *Tour) CheckReadiness() error {
	if t.closed {
		return t.closedRejection()
	}
	if len(t.stops) == 0 {
		return Reject(ReasonEmptyTour, "tour "+t.key.String()+" has no stops")
	}
	if t.driverID == "" {
		return Reject(ReasonMissingDriver, "tour "+t.key.String()+" has no driver", t.OrderIDs()...)
	}
	if t.vehicleID == "" {
		return Reject(ReasonMissingVehicle, "tour "+t.key.String()+" has no vehicle", t.OrderIDs()...)
	}
	if ids := t.duplicateCustomerOrders(); len(ids) > 0 {
		return Reject(ReasonDuplicateCustomerInTour,
			"a tour serves at most one order per customer", ids...)
	}
	return nil
}

// MarkValidated validates the tour and moves every stop to InProgress, also
// when the tour was already validated. A validated tour is considered
// dispatched.
func (t *Tour) MarkValidated() error {
	if err := t.CheckReadiness(); err != nil {
		return err
	}

	t.validated = true
	for i := range t.stops {
		t.stops[i].status = InProgress
	}
	return nil
}

// SetStopStatus overrides one stop's status. Any transition is allowed.
func (t *Tour) SetStopStatus(orderID string, status DeliveryStatus) error {
	if t.closed {
		return t.closedRejection()
	}
	if err := status.Validate(); err != nil {
		return RejectWithCause(ReasonInvalidStatus, status.String(), err)
	}
	i := t.indexOf(orderID)
	if i < 0 {
		return Reject(ReasonStopNotInTour, "tour "+t.key.String(), orderID)
	}

	t.stops[i].status = status
	return nil
}

// UndeliveredOrders lists stops whose status is not Delivered, in route order.
func (t *Tour) UndeliveredOrders() []string {
	var ids []string
	for _, s := range t.stops {
		if s.status != Delivered {
			ids = append(ids, s.orderID)
		}
	}
	return ids
}

// Close flips a validated tour to closed. The proof checks happen before, in
// services.ClosureGate.
func (t *Tour) Close() error {
	if t.closed {
		return t.closedRejection()
	}
	if !t.validated {
		return Reject(ReasonTourNotValidated, "tour "+t.key.String()+" must be validated before closing")
	}

	t.closed = true
	return nil
}

// Reopen brings a closed tour back to validated. Statuses are kept.
func (t *Tour) Reopen() error {
	if !t.closed {
		return Reject(ReasonTourNotClosed, "tour "+t.key.String()+" is not closed")
	}

	t.closed = false
	return nil
}

// ensureOpenForEdit rejects edits of closed tours.
func (t *Tour) ensureOpenForEdit() error {
	if t.closed {
		return t.closedRejection()
	}
	return nil
}

func (t *Tour) closedRejection() *Rejection {
	return Reject(ReasonTourClosed, "tour "+t.key.String()+" is closed")
}

func (t *Tour) indexOf(orderID string) int {
	return slices.IndexFunc(t.stops, func(s Stop) bool { return s.orderID == orderID })
}

// duplicateCustomerOrders returns, in route order, every order whose customer
// appears more than once. Customer names compare trimmed and case-insensitive;
// blank names never collide.
func (t *Tour) duplicateCustomerOrders() []string {
	counts := make(map[string]int, len(t.stops))
	for _, s := range t.stops {
		if c := customerKey(s.customer); c != "" {
			counts[c]++
		}
	}

	var ids []string
	for _, s := range t.stops {
		if c := customerKey(s.customer); c != "" && counts[c] > 1 {
			ids = append(ids, s.orderID)
		}
	}
	return ids
}

func (t *Tour) checkInvariants() error {
	if t.validated && (t.driverID == "" || t.vehicleID == "" || len(t.stops) == 0) {
		return errs.NewValueIsInvalidErrorWithCause("tour",
			fmt.Errorf("validated tour %s needs a driver, a vehicle and stops", t.key))
	}
	if t.closed && !t.validated {
		return errs.NewValueIsInvalidErrorWithCause("tour",
			fmt.Errorf("closed tour %s is not validated", t.key))
	}
	return nil
}

func customerKey(customer string) string {
	return strings.ToLower(strings.TrimSpace(customer))
}
