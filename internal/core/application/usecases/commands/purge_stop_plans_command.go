package commands

import (
	"errors"

	"tourdispatch/internal/core/domain/model/kernel"
	"tourdispatch/internal/pkg/errs"
	"tourdispatch/internal/pkg/guard"
)

var ErrPurgeStopPlansCommandIsNotConstructed = errors.New(
	"PurgeStopPlansCommand must be created via NewPurgeStopPlansCommand constructor",
)

// PurgeStopPlansCommand removes stop plans of dates strictly before Before.
type PurgeStopPlansCommand struct {
	before kernel.Date

	guard guard.ConstructorGuard
}

func NewPurgeStopPlansCommand(before kernel.Date) (PurgeStopPlansCommand, error) {
	if before.IsZero() {
		return PurgeStopPlansCommand{}, errs.NewValueIsRequiredError("before")
	}
	return PurgeStopPlansCommand{before: before, guard: guard.NewConstructorGuard()}, nil
}

// NewPurgeStopPlansCommandForRetention keeps the last retentionDays days
// before today.
func NewPurgeStopPlansCommandForRetention(today kernel.Date, retentionDays int) (PurgeStopPlansCommand, error) {
	if retentionDays < 1 {
		return PurgeStopPlansCommand{}, errs.NewValueIsOutOfRangeError("retention days", retentionDays, 1, "unbounded")
	}
	return NewPurgeStopPlansCommand(today.AddDays(-retentionDays))
}

func (c PurgeStopPlansCommand) Validate() error {
	return c.guard.Validate(ErrPurgeStopPlansCommandIsNotConstructed)
}

func (c PurgeStopPlansCommand) Before() kernel.Date {
	return c.before
}
