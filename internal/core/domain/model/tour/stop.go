package tour

import (
	"errors"
	"strings"

	"tourdispatch/internal/core/domain/model/order"
	"tourdispatch/internal/pkg/errs"
)

// Stop is an order's planned visit inside a tour. It keeps a snapshot of the
// order fields the tour rules and the schedule need.
type Stop struct {
	orderID    string
	customer   string
	address    string
	postalCode string
	status     DeliveryStatus
}

// NewStop snapshots an order as a not-started stop.
func NewStop(o *order.Order) (Stop, error) {
	if err := o.Validate(); err != nil {
		return Stop{}, err
	}

	return Stop{
		orderID:    o.ID(),
		customer:   o.Customer(),
		address:    o.Address(),
		postalCode: o.PostalCode(),
		status:     NotStarted,
	}, nil
}

// RestoreStop rebuilds a stop from storage.
func RestoreStop(orderID, customer, address, postalCode string, status DeliveryStatus) (Stop, error) {
	var errID error
	if strings.TrimSpace(orderID) == "" {
		errID = errs.NewValueIsRequiredError("stop order id")
	}
	if err := errors.Join(errID, status.Validate()); err != nil {
		return Stop{}, err
	}

	return Stop{
		orderID:    orderID,
		customer:   customer,
		address:    address,
		postalCode: postalCode,
		status:     status,
	}, nil
}

func (s Stop) OrderID() string {
	return s.orderID
}

func (s Stop) Customer() string {
	return s.customer
}

func (s Stop) Address() string {
	return s.address
}

func (s Stop) PostalCode() string {
	return s.postalCode
}

func (s Stop) Status() DeliveryStatus {
	return s.status
}
