package cmd

import (
	"testing"
	"time"

	"tourdispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envOf(values map[string]string) func(string) string {
	return func(key string) string {
		return values[key]
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(envOf(nil))

	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, 3, cfg.TourCapacity)
	assert.Equal(t, 2, cfg.DriverTourLimit)
	assert.Equal(t, "08:00", cfg.DepotDeparture.String())
	assert.Equal(t, 20*time.Minute, cfg.TravelTime)
	assert.Equal(t, 10*time.Minute, cfg.ServiceTime)
	assert.Equal(t, 3, cfg.ProofLookupAttempts)
	assert.Equal(t, 90, cfg.StopPlanRetentionDays)
	assert.Empty(t, cfg.StopPlanPurgeCron)
	assert.Empty(t, cfg.RedisAddr)
	assert.Empty(t, cfg.KafkaBrokers())
	assert.Equal(t, "tour-events", cfg.KafkaTourEventsTopic)
}

func TestLoadConfig_Overrides(t *testing.T) {
	cfg, err := LoadConfig(envOf(map[string]string{
		"TOUR_CAPACITY":     "5",
		"DRIVER_TOUR_LIMIT": "1",
		"DEPOT_DEPARTURE":   "7h30",
		"TRAVEL_MINUTES":    "0",
		"KAFKA_HOST":        "k1:9092, k2:9092,",
		"DB_HOST":           "db",
		"DB_PASSWORD":       "secret",
	}))

	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Limits().TourCapacity)
	assert.Equal(t, 1, cfg.Limits().DriverTourLimit)
	assert.Equal(t, "07:30", cfg.ScheduleParams().DepotDeparture.String())
	assert.Equal(t, time.Duration(0), cfg.ScheduleParams().Travel)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.KafkaBrokers())
	assert.Contains(t, cfg.DSN(), "host=db")
	assert.Contains(t, cfg.DSN(), "password=secret")
}

func TestLoadConfig_ReportsEveryMalformedValue(t *testing.T) {
	_, err := LoadConfig(envOf(map[string]string{
		"TOUR_CAPACITY":   "many",
		"SERVICE_MINUTES": "-5",
		"DEPOT_DEPARTURE": "25:00",
	}))

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	assert.Contains(t, err.Error(), "TOUR_CAPACITY")
	assert.Contains(t, err.Error(), "DEPOT_DEPARTURE")
}
