package jobs

import (
	"context"
	"log/slog"
	"time"

	"tourdispatch/internal/core/application/usecases/commands"
	"tourdispatch/internal/core/domain/model/kernel"
	"tourdispatch/internal/pkg/errs"

	"github.com/robfig/cron/v3"
)

// PurgeStopPlansHandler is the use case run by StopPlanPurgeJob.
type PurgeStopPlansHandler interface {
	Handle(ctx context.Context, command commands.PurgeStopPlansCommand) (int64, error)
}

// StopPlanPurgeJob deletes stop plans older than the retention window on a
// cron schedule.
type StopPlanPurgeJob struct {
	handler       PurgeStopPlansHandler
	schedule      string
	retentionDays int
	cron          *cron.Cron
	logger        *slog.Logger
	now           func() time.Time
}

// NewStopPlanPurgeJob accepts standard five-field cron expressions and
// descriptors such as @daily.
func NewStopPlanPurgeJob(
	handler PurgeStopPlansHandler,
	schedule string,
	retentionDays int,
	logger *slog.Logger,
) (*StopPlanPurgeJob, error) {
	if handler == nil {
		return nil, errs.NewValueIsRequiredError("purge stop plans handler")
	}
	if _, err := cron.ParseStandard(schedule); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("purge schedule", err)
	}
	if retentionDays < 1 {
		return nil, errs.NewValueIsOutOfRangeError("retention days", retentionDays, 1, "unbounded")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &StopPlanPurgeJob{
		handler:       handler,
		schedule:      schedule,
		retentionDays: retentionDays,
		cron:          cron.New(),
		logger:        logger.With("component", "stop_plan_purge_job"),
		now:           time.Now,
	}, nil
}

// Start registers the purge and starts the scheduler.
func (j *StopPlanPurgeJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.Run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stop plan purge job started",
		"schedule", j.schedule, "retention_days", j.retentionDays)
	return nil
}

// Run purges once. Failures are logged and retried on the next tick.
func (j *StopPlanPurgeJob) Run(ctx context.Context) {
	cmd, err := commands.NewPurgeStopPlansCommandForRetention(kernel.DateOf(j.now().UTC()), j.retentionDays)
	if err != nil {
		j.logger.ErrorContext(ctx, "Stop plan purge job misconfigured", "error", err)
		return
	}

	deleted, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "Stop plan purge job failed", "before", cmd.Before().String(), "error", err)
		return
	}
	j.logger.InfoContext(ctx, "Stop plans purged", "before", cmd.Before().String(), "deleted", deleted)
}

// Stop waits for a running purge to finish.
func (j *StopPlanPurgeJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Stop plan purge job stopped")
}
