package kernel

import (
	"fmt"
	"strings"
	"time"

	"tourdispatch/internal/pkg/errs"
)

// DateLayout is the canonical YYYY-MM-DD form used for comparison and storage.
const DateLayout = "2006-01-02"

// acceptedDateLayouts are tried in order by ParseDate. Day-first forms win over
// month-first ones: the ERP exports European dates.
var acceptedDateLayouts = []string{
	DateLayout,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006/01/02",
	"02/01/2006",
	"02-01-2006",
	"02.01.2006",
	"2/1/2006",
	"20060102",
}

// Date is a calendar day without time zone.
type Date struct {
	t time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf truncates t to its calendar day in t's own location.
func DateOf(t time.Time) Date {
	return NewDate(t.Date())
}

// ParseDate accepts ISO and DD/MM/YYYY style inputs and normalizes them.
func ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Date{}, errs.NewValueIsRequiredError("date")
	}

	for _, layout := range acceptedDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return DateOf(t), nil
		}
	}

	return Date{}, errs.NewValueIsInvalidErrorWithCause("date", fmt.Errorf("unrecognized date %q", s))
}

// MustParseDate is ParseDate for literals in tests and defaults.
func MustParseDate(s string) Date {
	d, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

func (d Date) IsZero() bool {
	return d.t.IsZero()
}

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.t.Format(DateLayout)
}

// Time returns midnight UTC of the day.
func (d Date) Time() time.Time {
	return d.t
}

func (d Date) Equal(other Date) bool {
	return d.t.Equal(other.t)
}

func (d Date) Before(other Date) bool {
	return d.t.Before(other.t)
}

func (d Date) After(other Date) bool {
	return d.t.After(other.t)
}

func (d Date) AddDays(n int) Date {
	return Date{t: d.t.AddDate(0, 0, n)}
}

// Week returns the Monday and Sunday of the ISO week containing d.
func (d Date) Week() (Date, Date) {
	offset := (int(d.t.Weekday()) + 6) % 7
	monday := d.AddDays(-offset)
	return monday, monday.AddDays(6)
}

// Between reports whether from <= d <= to.
func (d Date) Between(from, to Date) bool {
	return !d.Before(from) && !d.After(to)
}
