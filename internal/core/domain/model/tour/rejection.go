package tour

import (
	"errors"
	"fmt"
	"strings"
)

// Reason is the machine-readable cause of a rejected tour operation.
type Reason string

const (
	ReasonTourFull                Reason = "TourFull"
	ReasonDriverOverbooked        Reason = "DriverOverbooked"
	ReasonVehicleOverbooked       Reason = "VehicleOverbooked"
	ReasonVehicleUnavailable      Reason = "VehicleUnavailable"
	ReasonDuplicateCustomerInTour Reason = "DuplicateCustomerInTour"
	ReasonMissingDriver           Reason = "MissingDriver"
	ReasonMissingVehicle          Reason = "MissingVehicle"
	ReasonEmptyTour               Reason = "EmptyTour"
	ReasonStopsNotDelivered       Reason = "StopsNotDelivered"
	ReasonMissingProofOfDelivery  Reason = "MissingProofOfDelivery"
	ReasonMissingReturnsRecord    Reason = "MissingReturnsRecord"
	ReasonUnknownTour             Reason = "UnknownTour"
	ReasonExternalLookupFailed    Reason = "ExternalLookupFailed"
	ReasonUnknownOrder            Reason = "UnknownOrder"
	ReasonUnknownDriver           Reason = "UnknownDriver"
	ReasonUnknownVehicle          Reason = "UnknownVehicle"
	ReasonOrderNotEligible        Reason = "OrderNotEligible"
	ReasonStopNotInTour           Reason = "StopNotInTour"
	ReasonTourClosed              Reason = "TourClosed"
	ReasonTourNotValidated        Reason = "TourNotValidated"
	ReasonTourNotClosed           Reason = "TourNotClosed"
	ReasonInvalidStatus           Reason = "InvalidStatus"
)

// Sentinels for errors.Is. They match any Rejection carrying the same reason.
var (
	ErrTourFull                = &Rejection{Reason: ReasonTourFull}
	ErrDriverOverbooked        = &Rejection{Reason: ReasonDriverOverbooked}
	ErrVehicleOverbooked       = &Rejection{Reason: ReasonVehicleOverbooked}
	ErrVehicleUnavailable      = &Rejection{Reason: ReasonVehicleUnavailable}
	ErrDuplicateCustomerInTour = &Rejection{Reason: ReasonDuplicateCustomerInTour}
	ErrMissingDriver           = &Rejection{Reason: ReasonMissingDriver}
	ErrMissingVehicle          = &Rejection{Reason: ReasonMissingVehicle}
	ErrEmptyTour               = &Rejection{Reason: ReasonEmptyTour}
	ErrStopsNotDelivered       = &Rejection{Reason: ReasonStopsNotDelivered}
	ErrMissingProofOfDelivery  = &Rejection{Reason: ReasonMissingProofOfDelivery}
	ErrMissingReturnsRecord    = &Rejection{Reason: ReasonMissingReturnsRecord}
	ErrUnknownTour             = &Rejection{Reason: ReasonUnknownTour}
	ErrExternalLookupFailed    = &Rejection{Reason: ReasonExternalLookupFailed}
	ErrUnknownOrder            = &Rejection{Reason: ReasonUnknownOrder}
	ErrUnknownDriver           = &Rejection{Reason: ReasonUnknownDriver}
	ErrUnknownVehicle          = &Rejection{Reason: ReasonUnknownVehicle}
	ErrOrderNotEligible        = &Rejection{Reason: ReasonOrderNotEligible}
	ErrStopNotInTour           = &Rejection{Reason: ReasonStopNotInTour}
	ErrTourClosed              = &Rejection{Reason: ReasonTourClosed}
	ErrTourNotValidated        = &Rejection{Reason: ReasonTourNotValidated}
	ErrTourNotClosed           = &Rejection{Reason: ReasonTourNotClosed}
	ErrInvalidStatus           = &Rejection{Reason: ReasonInvalidStatus}
)

// Rejection is an expected business-rule failure. It is returned as an error
// value; an operation that returns a Rejection has not changed anything.
type Rejection struct {
	Reason   Reason
	OrderIDs []string
	Detail   string
	Cause    error
}

// Reject builds a Rejection naming the offending orders.
func Reject(reason Reason, detail string, orderIDs ...string) *Rejection {
	return &Rejection{Reason: reason, Detail: detail, OrderIDs: orderIDs}
}

// RejectWithCause keeps the underlying error reachable through Unwrap.
func RejectWithCause(reason Reason, detail string, cause error) *Rejection {
	return &Rejection{Reason: reason, Detail: detail, Cause: cause}
}

func (r *Rejection) Error() string {
	var b strings.Builder
	b.WriteString(string(r.Reason))
	if r.Detail != "" {
		b.WriteString(": ")
		b.WriteString(r.Detail)
	}
	if len(r.OrderIDs) > 0 {
		fmt.Fprintf(&b, " [%s]", strings.Join(r.OrderIDs, ", "))
	}
	if r.Cause != nil {
		fmt.Fprintf(&b, " (cause: %v)", r.Cause)
	}
	return b.String()
}

func (r *Rejection) Is(target error) bool {
	var t *Rejection
	if !errors.As(target, &t) {
		return false
	}
	return t.Reason == r.Reason
}

func (r *Rejection) Unwrap() error {
	return r.Cause
}

// AsRejection extracts the first Rejection in err's chain.
func AsRejection(err error) (*Rejection, bool) {
	var r *Rejection
	if errors.As(err, &r) {
		return r, true
	}
	return nil, false
}
