package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	httpadapter "tourdispatch/internal/adapters/in/http"
	"tourdispatch/internal/adapters/out/events"
	"tourdispatch/internal/adapters/out/postgres"
	"tourdispatch/internal/adapters/out/postgres/fleetrepo"
	"tourdispatch/internal/adapters/out/postgres/orderrepo"
	"tourdispatch/internal/adapters/out/postgres/proofrepo"
	"tourdispatch/internal/adapters/out/proofretry"
	"tourdispatch/internal/adapters/out/redislock"
	"tourdispatch/internal/adapters/out/timewindow"
	"tourdispatch/internal/core/application/usecases/commands"
	"tourdispatch/internal/core/application/usecases/queries"
	"tourdispatch/internal/core/domain/services"
	"tourdispatch/internal/core/ports"
	"tourdispatch/internal/jobs"
	"tourdispatch/internal/pkg/keylock"
	"tourdispatch/internal/platform/observability"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	cfg         Config
	gormDB      *gorm.DB
	instruments *observability.Instruments
	logger      *slog.Logger

	uowFactory commands.UoWFactory
	locker     ports.TourLocker
	publisher  ports.EventPublisher
	orders     ports.OrderSource
	fleet      *fleetrepo.GormDirectory
	proofs     ports.ProofRegistry
	windows    ports.TimeWindowProvider

	validator   services.ConstraintValidator
	scheduler   services.StopScheduler
	synthesizer services.CoordinateSynthesizer

	closers []func() error
}

// NewCompositionRoot wires the adapters chosen by cfg. Close releases the
// Redis and Kafka connections it opened.
func NewCompositionRoot(
	ctx context.Context,
	cfg Config,
	gormDB *gorm.DB,
	instruments *observability.Instruments,
) (*CompositionRoot, error) {
	validator, err := services.NewConstraintValidator(cfg.Limits())
	if err != nil {
		return nil, err
	}
	scheduler, err := services.NewStopScheduler(cfg.ScheduleParams())
	if err != nil {
		return nil, err
	}

	c := &CompositionRoot{
		cfg:         cfg,
		gormDB:      gormDB,
		instruments: instruments,
		logger:      instruments.Logger,
		orders:      orderrepo.NewGormOrderSource(gormDB),
		fleet:       fleetrepo.NewGormDirectory(gormDB),
		windows:     timewindow.NewDefaultProvider(),
		validator:   validator,
		scheduler:   scheduler,
		synthesizer: services.NewCoordinateSynthesizer(),
	}

	factory := postgres.NewGormUnitOfWorkFactory(gormDB)
	c.uowFactory = FuncUoWFactory(func() commands.UoW {
		return factory.Create()
	})

	// Closing a tour runs two lookups under the tour lock; both must end
	// before the lock expires.
	c.proofs, err = proofretry.New(proofrepo.NewGormProofRegistry(gormDB), cfg.ProofLookupAttempts,
		proofretry.WithTimeout(redislock.DefaultTTL/3),
		proofretry.WithLogger(c.logger))
	if err != nil {
		return nil, err
	}

	if c.locker, err = c.newLocker(ctx); err != nil {
		return nil, errors.Join(err, c.Close())
	}
	if c.publisher, err = c.newPublisher(); err != nil {
		return nil, errors.Join(err, c.Close())
	}

	return c, nil
}

func (c *CompositionRoot) newLocker(ctx context.Context) (ports.TourLocker, error) {
	if c.cfg.RedisAddr == "" {
		c.logger.Info("tour locks are held in process")
		return keylock.New(), nil
	}

	client := redis.NewUniversalClient(&redis.UniversalOptions{Addrs: []string{c.cfg.RedisAddr}})
	c.closers = append(c.closers, client.Close)
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connect to redis at %s: %w", c.cfg.RedisAddr, err)
	}

	locker, err := redislock.New(client, redislock.DefaultTTL, c.logger)
	if err != nil {
		return nil, err
	}
	c.logger.Info("tour locks are held in redis", "addr", c.cfg.RedisAddr)
	return locker, nil
}

func (c *CompositionRoot) newPublisher() (ports.EventPublisher, error) {
	brokers := c.cfg.KafkaBrokers()
	if len(brokers) == 0 {
		return events.NewLogPublisher(c.logger), nil
	}

	publisher, err := events.NewKafkaPublisher(events.NewKafkaWriter(brokers), c.cfg.KafkaTourEventsTopic)
	if err != nil {
		return nil, err
	}
	c.closers = append(c.closers, publisher.Close)
	return publisher, nil
}

// Close releases connections in reverse opening order.
func (c *CompositionRoot) Close() error {
	var errs []error
	for i := len(c.closers) - 1; i >= 0; i-- {
		errs = append(errs, c.closers[i]())
	}
	c.closers = nil
	return errors.Join(errs...)
}

func (c *CompositionRoot) CreateToggleOrderCommandHandler() commands.ToggleOrderCommandHandler {
	return commands.NewToggleOrderCommandHandler(c.uowFactory, c.locker, c.orders, c.validator)
}

func (c *CompositionRoot) CreateAssignDriverCommandHandler() commands.AssignDriverCommandHandler {
	return commands.NewAssignDriverCommandHandler(c.uowFactory, c.locker, c.fleet, c.validator)
}

func (c *CompositionRoot) CreateAssignVehicleCommandHandler() commands.AssignVehicleCommandHandler {
	return commands.NewAssignVehicleCommandHandler(c.uowFactory, c.locker, c.fleet, c.validator)
}

func (c *CompositionRoot) CreateOptimizeRouteCommandHandler() commands.OptimizeRouteCommandHandler {
	return commands.NewOptimizeRouteCommandHandler(c.uowFactory, c.locker, services.NewRouteOptimizer(c.synthesizer))
}

func (c *CompositionRoot) CreateSetIncludeReturnsCommandHandler() commands.SetIncludeReturnsCommandHandler {
	return commands.NewSetIncludeReturnsCommandHandler(c.uowFactory, c.locker)
}

func (c *CompositionRoot) CreateValidateTourCommandHandler() commands.ValidateTourCommandHandler {
	return commands.NewValidateTourCommandHandler(c.uowFactory, c.locker, c.windows, c.validator, c.scheduler,
		c.publisher, c.logger)
}

func (c *CompositionRoot) CreateSetStopStatusCommandHandler() commands.SetStopStatusCommandHandler {
	return commands.NewSetStopStatusCommandHandler(c.uowFactory, c.locker, c.publisher, c.logger)
}

func (c *CompositionRoot) CreateCloseTourCommandHandler() commands.CloseTourCommandHandler {
	return commands.NewCloseTourCommandHandler(c.uowFactory, c.locker, c.proofs, services.NewClosureGate(),
		c.publisher, c.logger)
}

func (c *CompositionRoot) CreateReopenTourCommandHandler() commands.ReopenTourCommandHandler {
	return commands.NewReopenTourCommandHandler(c.uowFactory, c.locker, c.validator, c.publisher, c.logger)
}

func (c *CompositionRoot) CreatePurgeStopPlansCommandHandler() commands.PurgeStopPlansCommandHandler {
	return commands.NewPurgeStopPlansCommandHandler(c.uowFactory)
}

func (c *CompositionRoot) CreateGetToursQueryHandler() queries.GetToursQueryHandler {
	return queries.NewGetToursQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetClustersQueryHandler() queries.GetClustersQueryHandler {
	return queries.NewGetClustersQueryHandler(c.orders, services.NewOrderClusterer(), c.synthesizer)
}

func (c *CompositionRoot) CreateGetStopPlansQueryHandler() queries.GetStopPlansQueryHandler {
	return queries.NewGetStopPlansQueryHandler(c.gormDB)
}

// CreateHTTPServer builds the echo instance serving the tour API.
func (c *CompositionRoot) CreateHTTPServer() (*echo.Echo, error) {
	server, err := httpadapter.NewServer(httpadapter.Handlers{
		ToggleOrder:       c.CreateToggleOrderCommandHandler(),
		AssignDriver:      c.CreateAssignDriverCommandHandler(),
		AssignVehicle:     c.CreateAssignVehicleCommandHandler(),
		OptimizeRoute:     c.CreateOptimizeRouteCommandHandler(),
		SetIncludeReturns: c.CreateSetIncludeReturnsCommandHandler(),
		ValidateTour:      c.CreateValidateTourCommandHandler(),
		SetStopStatus:     c.CreateSetStopStatusCommandHandler(),
		CloseTour:         c.CreateCloseTourCommandHandler(),
		ReopenTour:        c.CreateReopenTourCommandHandler(),
		GetTours:          c.CreateGetToursQueryHandler(),
		GetClusters:       c.CreateGetClustersQueryHandler(),
		GetStopPlans:      c.CreateGetStopPlansQueryHandler(),
	}, c.logger, c.instruments.Meter("tourdispatch/http"))
	if err != nil {
		return nil, err
	}
	return httpadapter.NewRouter(server, c.instruments.Tracer("tourdispatch/http"))
}

// CreateJobManager returns the background jobs enabled by the configuration.
func (c *CompositionRoot) CreateJobManager() (*jobs.JobManager, error) {
	if c.cfg.StopPlanPurgeCron == "" {
		return jobs.NewJobManager(), nil
	}

	purge, err := jobs.NewStopPlanPurgeJob(
		c.CreatePurgeStopPlansCommandHandler(),
		c.cfg.StopPlanPurgeCron,
		c.cfg.StopPlanRetentionDays,
		c.logger,
	)
	if err != nil {
		return nil, err
	}
	return jobs.NewJobManager(purge), nil
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
