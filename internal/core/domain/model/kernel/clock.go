package kernel

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"tourdispatch/internal/pkg/errs"
)

// Clock is a time of day with minute precision. Values past midnight are kept
// as-is so that late ETAs stay ordered.
type Clock struct {
	minutes int
}

func NewClock(hour, minute int) (Clock, error) {
	if hour < 0 || hour > 23 {
		return Clock{}, errs.NewValueIsOutOfRangeError("hour", hour, 0, 23)
	}
	if minute < 0 || minute > 59 {
		return Clock{}, errs.NewValueIsOutOfRangeError("minute", minute, 0, 59)
	}
	return Clock{minutes: hour*60 + minute}, nil
}

// ParseClock parses "HH:MM" (also accepts "H:MM" and "HHhMM").
func ParseClock(s string) (Clock, error) {
	s = strings.TrimSpace(strings.ReplaceAll(strings.ToLower(s), "h", ":"))
	hh, mm, ok := strings.Cut(s, ":")
	if !ok {
		return Clock{}, errs.NewValueIsInvalidErrorWithCause("clock", fmt.Errorf("%q is not HH:MM", s))
	}

	hour, err := strconv.Atoi(hh)
	if err != nil {
		return Clock{}, errs.NewValueIsInvalidErrorWithCause("clock", err)
	}
	minute := 0
	if mm != "" {
		if minute, err = strconv.Atoi(mm); err != nil {
			return Clock{}, errs.NewValueIsInvalidErrorWithCause("clock", err)
		}
	}

	return NewClock(hour, minute)
}

func MustParseClock(s string) Clock {
	c, err := ParseClock(s)
	if err != nil {
		panic(err)
	}
	return c
}

// ClockOfMinutes restores a clock stored as minutes since midnight, past
// midnight included.
func ClockOfMinutes(minutes int) (Clock, error) {
	if minutes < 0 {
		return Clock{}, errs.NewValueIsOutOfRangeError("minutes", minutes, 0, "unbounded")
	}
	return Clock{minutes: minutes}, nil
}

// Minutes since midnight.
func (c Clock) Minutes() int {
	return c.minutes
}

func (c Clock) Add(d time.Duration) Clock {
	return Clock{minutes: c.minutes + int(d/time.Minute)}
}

func (c Clock) Before(other Clock) bool {
	return c.minutes < other.minutes
}

func (c Clock) After(other Clock) bool {
	return c.minutes > other.minutes
}

// Later returns the later of the two clocks.
func Later(a, b Clock) Clock {
	if a.After(b) {
		return a
	}
	return b
}

func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.minutes/60, c.minutes%60)
}

// On anchors the clock on a calendar day.
func (c Clock) On(d Date) time.Time {
	return d.Time().Add(time.Duration(c.minutes) * time.Minute)
}

// TimeWindow is a promised delivery interval.
type TimeWindow struct {
	Start Clock
	End   Clock
}

func NewTimeWindow(start, end Clock) (TimeWindow, error) {
	if end.Before(start) {
		return TimeWindow{}, errs.NewValueIsInvalidErrorWithCause(
			"time window", fmt.Errorf("end %s is before start %s", end, start))
	}
	return TimeWindow{Start: start, End: end}, nil
}

func (w TimeWindow) String() string {
	return w.Start.String() + "-" + w.End.String()
}
