package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"tourdispatch/internal/core/domain/model/kernel"
	"tourdispatch/internal/core/domain/services"
	"tourdispatch/internal/pkg/errs"
)

type Config struct {
	HTTPPort    string
	Environment string
	LogLevel    string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// RedisAddr switches tour locks to Redis. Empty keeps them in process.
	RedisAddr string

	// KafkaHost enables tour event publishing. Empty logs events instead.
	KafkaHost            string
	KafkaTourEventsTopic string

	OTLPEndpoint string

	TourCapacity        int
	DriverTourLimit     int
	DepotDeparture      kernel.Clock
	TravelTime          time.Duration
	ServiceTime         time.Duration
	ProofLookupAttempts int

	StopPlanRetentionDays int
	// StopPlanPurgeCron enables the purge job. Empty disables it.
	StopPlanPurgeCron string
}

// LoadConfig reads the configuration through getenv and applies defaults.
// Every malformed value is reported.
func LoadConfig(getenv func(string) string) (Config, error) {
	p := envParser{getenv: getenv}

	cfg := Config{
		HTTPPort:    p.string("HTTP_PORT", "8080"),
		Environment: p.string("APP_ENV", "development"),
		LogLevel:    p.string("LOG_LEVEL", "info"),

		DBHost:     p.string("DB_HOST", "localhost"),
		DBPort:     p.string("DB_PORT", "5432"),
		DBUser:     p.string("DB_USER", "postgres"),
		DBPassword: p.string("DB_PASSWORD", ""),
		DBName:     p.string("DB_NAME", "tourdispatch"),
		DBSslMode:  p.string("DB_SSLMODE", "disable"),

		RedisAddr: p.string("REDIS_ADDR", ""),

		KafkaHost:            p.string("KAFKA_HOST", ""),
		KafkaTourEventsTopic: p.string("KAFKA_TOUR_EVENTS_TOPIC", "tour-events"),

		OTLPEndpoint: p.string("OTEL_EXPORTER_OTLP_ENDPOINT", ""),

		TourCapacity:        p.positiveInt("TOUR_CAPACITY", services.DefaultTourCapacity),
		DriverTourLimit:     p.positiveInt("DRIVER_TOUR_LIMIT", services.DefaultDriverTourLimit),
		DepotDeparture:      p.clock("DEPOT_DEPARTURE", "08:00"),
		TravelTime:          p.minutes("TRAVEL_MINUTES", 20),
		ServiceTime:         p.minutes("SERVICE_MINUTES", 10),
		ProofLookupAttempts: p.positiveInt("PROOF_LOOKUP_ATTEMPTS", 3),

		StopPlanRetentionDays: p.positiveInt("STOP_PLAN_RETENTION_DAYS", 90),
		StopPlanPurgeCron:     p.string("STOP_PLAN_PURGE_CRON", ""),
	}

	return cfg, errors.Join(p.errs...)
}

// DSN is the PostgreSQL connection string.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

func (c Config) Limits() services.Limits {
	return services.Limits{TourCapacity: c.TourCapacity, DriverTourLimit: c.DriverTourLimit}
}

func (c Config) ScheduleParams() services.ScheduleParams {
	return services.ScheduleParams{
		DepotDeparture: c.DepotDeparture,
		Travel:         c.TravelTime,
		Service:        c.ServiceTime,
	}
}

// KafkaBrokers splits KAFKA_HOST on commas.
func (c Config) KafkaBrokers() []string {
	var brokers []string
	for _, b := range strings.Split(c.KafkaHost, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}

type envParser struct {
	getenv func(string) string
	errs   []error
}

func (p *envParser) string(key, def string) string {
	if v := strings.TrimSpace(p.getenv(key)); v != "" {
		return v
	}
	return def
}

func (p *envParser) positiveInt(key string, def int) int {
	raw := strings.TrimSpace(p.getenv(key))
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		p.errs = append(p.errs, errs.NewValueIsInvalidErrorWithCause(key, err))
		return def
	}
	if v < 1 {
		p.errs = append(p.errs, errs.NewValueIsOutOfRangeError(key, v, 1, "unbounded"))
		return def
	}
	return v
}

func (p *envParser) minutes(key string, def int) time.Duration {
	raw := strings.TrimSpace(p.getenv(key))
	if raw == "" {
		return time.Duration(def) * time.Minute
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		p.errs = append(p.errs, errs.NewValueIsInvalidErrorWithCause(key, err))
		return time.Duration(def) * time.Minute
	}
	if v < 0 {
		p.errs = append(p.errs, errs.NewValueIsOutOfRangeError(key, v, 0, "unbounded"))
		return time.Duration(def) * time.Minute
	}
	return time.Duration(v) * time.Minute
}

func (p *envParser) clock(key, def string) kernel.Clock {
	c, err := kernel.ParseClock(p.string(key, def))
	if err != nil {
		p.errs = append(p.errs, fmt.Errorf("%s: %w", key, err))
		return kernel.MustParseClock(def)
	}
	return c
}
