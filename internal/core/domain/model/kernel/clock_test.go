package kernel_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tourdispatch/internal/core/domain/model/kernel"
	"tourdispatch/internal/pkg/errs"
)

func TestParseClock(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr error
	}{
		{in: "08:30", want: "08:30"},
		{in: "8:05", want: "08:05"},
		{in: "14h15", want: "14:15"},
		{in: "9h", want: "09:00"},
		{in: "24:00", wantErr: errs.ErrValueIsOutOfRange},
		{in: "12:60", wantErr: errs.ErrValueIsOutOfRange},
		{in: "noon", wantErr: errs.ErrValueIsInvalid},
		{in: "ab:10", wantErr: errs.ErrValueIsInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := kernel.ParseClock(tt.in)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestClock_Arithmetic(t *testing.T) {
	c := kernel.MustParseClock("23:50").Add(20 * time.Minute)

	assert.Equal(t, 24*60+10, c.Minutes())
	assert.Equal(t, "24:10", c.String(), "clocks past midnight stay ordered")

	a, b := kernel.MustParseClock("08:00"), kernel.MustParseClock("09:30")
	assert.Equal(t, b, kernel.Later(a, b))
	assert.Equal(t, b, kernel.Later(b, a))
	assert.True(t, a.Before(b))
	assert.True(t, b.After(a))
}

func TestClock_On(t *testing.T) {
	at := kernel.MustParseClock("09:15").On(kernel.MustParseDate("2024-03-05"))

	assert.Equal(t, time.Date(2024, time.March, 5, 9, 15, 0, 0, time.UTC), at)
}

func TestNewTimeWindow(t *testing.T) {
	w, err := kernel.NewTimeWindow(kernel.MustParseClock("10:00"), kernel.MustParseClock("12:00"))
	require.NoError(t, err)
	assert.Equal(t, "10:00-12:00", w.String())

	_, err = kernel.NewTimeWindow(kernel.MustParseClock("12:00"), kernel.MustParseClock("10:00"))
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestClockOfMinutes(t *testing.T) {
	c, err := kernel.ClockOfMinutes(24*60 + 10)
	require.NoError(t, err)
	assert.Equal(t, "24:10", c.String())

	_, err = kernel.ClockOfMinutes(-1)
	assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}
