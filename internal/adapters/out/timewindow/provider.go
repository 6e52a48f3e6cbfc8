// Package timewindow provides promised delivery windows when no real source
// exists. Each order gets a stable window derived from a hash of its id.
package timewindow

import (
	"context"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"

	"tourdispatch/internal/core/domain/model/kernel"
	"tourdispatch/internal/pkg/errs"
)

const (
	DefaultFirstStart = "08:00"
	DefaultLastStart  = "14:00"
	DefaultSlot       = 30 * time.Minute
	DefaultLength     = 2 * time.Hour
)

// Provider places every window start on a slot boundary between firstStart
// and lastStart inclusive.
type Provider struct {
	firstStart kernel.Clock
	slots      int
	slot       time.Duration
	length     time.Duration
}

func NewProvider(firstStart, lastStart kernel.Clock, slot, length time.Duration) (*Provider, error) {
	if slot <= 0 || length < 0 {
		return nil, errs.NewValueIsInvalidError("window slot and length")
	}
	if lastStart.Before(firstStart) {
		return nil, errs.NewValueIsOutOfRangeError("last window start", lastStart, firstStart, "23:59")
	}

	slots := int(time.Duration(lastStart.Minutes()-firstStart.Minutes())*time.Minute/slot) + 1
	return &Provider{firstStart: firstStart, slots: slots, slot: slot, length: length}, nil
}

// NewDefaultProvider uses two-hour windows starting every half hour from
// 08:00 to 14:00.
func NewDefaultProvider() *Provider {
	p, err := NewProvider(
		kernel.MustParseClock(DefaultFirstStart),
		kernel.MustParseClock(DefaultLastStart),
		DefaultSlot,
		DefaultLength,
	)
	if err != nil {
		panic(err)
	}
	return p
}

func (p *Provider) WindowFor(_ context.Context, orderID string) (kernel.TimeWindow, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return kernel.TimeWindow{}, errs.NewValueIsRequiredError("order id")
	}

	n := int(xxhash.Sum64String(orderID) % uint64(p.slots))
	start := p.firstStart.Add(time.Duration(n) * p.slot)
	return kernel.NewTimeWindow(start, start.Add(p.length))
}
