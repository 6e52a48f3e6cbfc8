package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tourdispatch/cmd"
	"tourdispatch/internal/adapters/out/postgres"
	"tourdispatch/internal/platform/observability"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

func main() {
	configs := getConfigs()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	instruments, shutdownTelemetry, err := observability.Init(ctx, observability.Config{
		ServiceName:  "tourdispatch",
		Environment:  configs.Environment,
		LogLevel:     observability.ParseLevel(configs.LogLevel),
		OTLPEndpoint: configs.OTLPEndpoint,
	})
	if err != nil {
		log.Fatalf("Error initializing telemetry: %v", err)
	}

	gormDB := mustOpenDatabase(configs)

	app, err := cmd.NewCompositionRoot(ctx, configs, gormDB, instruments)
	if err != nil {
		log.Fatalf("Error wiring application: %v", err)
	}

	jobManager, err := app.CreateJobManager()
	if err != nil {
		log.Fatalf("Error creating jobs: %v", err)
	}
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}

	startWebServer(ctx, app, configs.HTTPPort)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	jobManager.StopAll()
	if err := errors.Join(app.Close(), shutdownTelemetry(shutdownCtx)); err != nil {
		instruments.Logger.Error("shutdown finished with errors", "error", err)
	}
}

func getConfigs() cmd.Config {
	// A missing .env is fine: the environment may already be populated.
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Fatalf("Error loading .env file: %v", err)
	}

	config, err := cmd.LoadConfig(os.Getenv)
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	return config
}

func mustOpenDatabase(configs cmd.Config) *gorm.DB {
	gormDB, err := gorm.Open(gorm_postgres.Open(configs.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	if err := postgres.Migrate(gormDB); err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}
	return gormDB
}

func startWebServer(ctx context.Context, app *cmd.CompositionRoot, port string) {
	e, err := app.CreateHTTPServer()
	if err != nil {
		log.Fatalf("Error creating HTTP server: %v", err)
	}

	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			e.Logger.Fatal(err)
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		e.Logger.Error(err)
	}
}
