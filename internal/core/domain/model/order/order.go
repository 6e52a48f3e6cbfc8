package order

import (
	"errors"
	"fmt"
	"strings"

	"tourdispatch/internal/core/domain/model/kernel"
	"tourdispatch/internal/pkg/errs"
	"tourdispatch/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order was not created through NewOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
	// ErrIDIsRequired is returned for a blank order identifier.
	ErrIDIsRequired = errs.NewValueIsRequiredError("order id")
)

// Destination is where an order is delivered, as received from the ERP.
type Destination struct {
	City         string
	AddressLines []string
	PostalCode   string
}

// Order is one delivery unit of a planning run. Orders are read-only for the
// dispatch engine: they are ingested from the ERP, normalized once by NewOrder,
// and never mutated afterwards.
//
// An order may be structurally valid yet not eligible for dispatch (no city or
// no address line); see IsEligible.
type Order struct {
	id           string
	rawCity      string
	addressLines []string
	postalCode   string
	customer     string
	deliveryDate kernel.Date
	volume       float64
	guard        guard.ConstructorGuard
}

// NewOrder normalizes an ERP order. Only the identifier is mandatory; a zero
// delivery date means the ERP date could not be parsed and the order will never
// match a planning date.
func NewOrder(
	id string,
	destination Destination,
	customer string,
	deliveryDate kernel.Date,
	volume float64,
) (*Order, error) {
	o := &Order{
		rawCity:      destination.City,
		postalCode:   strings.TrimSpace(destination.PostalCode),
		customer:     strings.TrimSpace(customer),
		deliveryDate: deliveryDate,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setAddressLines(destination.AddressLines),
		o.setVolume(volume),
	); err != nil {
		return nil, err
	}

	return o, nil
}

func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

func (o *Order) ID() string {
	return o.id
}

// City returns the trimmed destination city; it may be empty.
func (o *Order) City() string {
	return strings.TrimSpace(o.rawCity)
}

func (o *Order) AddressLines() []string {
	out := make([]string, len(o.addressLines))
	copy(out, o.addressLines)
	return out
}

// Address joins the address lines on one line.
func (o *Order) Address() string {
	return strings.Join(o.addressLines, ", ")
}

func (o *Order) PostalCode() string {
	return o.postalCode
}

func (o *Order) Customer() string {
	return o.customer
}

func (o *Order) DeliveryDate() kernel.Date {
	return o.deliveryDate
}

func (o *Order) Volume() float64 {
	return o.volume
}

// IsEligible reports whether the order carries enough destination data to be
// put on a tour: a city and at least one address line.
func (o *Order) IsEligible() bool {
	return o.rawCity != "" && len(o.addressLines) > 0
}

func (o *Order) setID(id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrIDIsRequired
	}

	o.id = id
	return nil
}

// setAddressLines drops blank lines.
func (o *Order) setAddressLines(lines []string) error {
	o.addressLines = make([]string, 0, len(lines))
	for _, line := range lines {
		if line = strings.TrimSpace(line); line != "" {
			o.addressLines = append(o.addressLines, line)
		}
	}
	return nil
}

func (o *Order) setVolume(volume float64) error {
	if volume < 0 {
		return errs.NewValueIsInvalidErrorWithCause("volume is invalid", fmt.Errorf("%g is negative", volume))
	}

	o.volume = volume
	return nil
}
