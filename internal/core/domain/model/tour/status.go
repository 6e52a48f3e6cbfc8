package tour

import (
	"fmt"
	"strings"

	"tourdispatch/internal/pkg/errs"
)

// DeliveryStatus is the execution state of one stop.
//
// Operators may set any status directly, including going backwards:
//
//	NotStarted <──> InProgress <──> Delivered
//	     ^                              │
//	     └──────────────────────────────┘
//
// Validating a tour moves all of its stops to InProgress.
type DeliveryStatus int

const (
	// UnknownStatus catches uninitialized values.
	UnknownStatus DeliveryStatus = iota
	NotStarted
	InProgress
	Delivered
)

func getStatusStrings() map[DeliveryStatus]string {
	return map[DeliveryStatus]string{
		UnknownStatus: "unknown",
		NotStarted:    "not_started",
		InProgress:    "in_progress",
		Delivered:     "delivered",
	}
}

func (s DeliveryStatus) Validate() error {
	if s < NotStarted || s > Delivered {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s DeliveryStatus) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// ParseDeliveryStatus accepts the wire names, case-insensitively.
func ParseDeliveryStatus(s string) (DeliveryStatus, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for status, str := range getStatusStrings() {
		if status != UnknownStatus && str == key {
			return status, nil
		}
	}
	return UnknownStatus, Reject(ReasonInvalidStatus, fmt.Sprintf("%q is not a delivery status", s))
}

// Lifecycle is the tour-level state derived from the validated and closed flags.
//
//	Open ──> Validated ──> Closed
//	  ^          │  ^         │
//	  └──────────┘  └─────────┘
//	   (edited)      (reopened)
type Lifecycle int

const (
	Open Lifecycle = iota
	Validated
	Closed
)

func (l Lifecycle) String() string {
	switch l {
	case Open:
		return "open"
	case Validated:
		return "validated"
	case Closed:
		return "closed"
	default:
		return "unknown"
	}
}
