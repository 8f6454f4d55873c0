package jobs

import (
	"context"
	"log/slog"

	"housebuilder/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// EverySecond is the default schedule of HouseConstructionJob.
const EverySecond = "* * * * * *"

// HousesFinisher runs the FinishHouses use case.
type HousesFinisher interface {
	Handle(ctx context.Context, cmd commands.FinishHousesCommand) (int, error)
}

// HouseConstructionJob finishes queued house orders on a schedule.
// A tick that is still running when the next one fires causes that next one to
// be skipped, so a house is never built by two ticks at once.
type HouseConstructionJob struct {
	handler  HousesFinisher
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewHouseConstructionJob creates a job running handler every second.
func NewHouseConstructionJob(handler HousesFinisher, logger *slog.Logger) *HouseConstructionJob {
	return NewHouseConstructionJobWithSchedule(handler, EverySecond, logger)
}

// NewHouseConstructionJobWithSchedule creates a job running handler on a
// six-field (seconds first) cron schedule.
func NewHouseConstructionJobWithSchedule(handler HousesFinisher, schedule string, logger *slog.Logger) *HouseConstructionJob {
	return &HouseConstructionJob{
		handler:  handler,
		schedule: schedule,
		cron: cron.New(
			cron.WithSeconds(),
			cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
		),
		logger: logger.With("component", "house_construction_job"),
	}
}

// Start registers the job and starts the scheduler.
func (j *HouseConstructionJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() {
		j.RunOnce(context.Background())
	}); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "House construction job started", "schedule", j.schedule)
	return nil
}

// RunOnce performs a single tick.
func (j *HouseConstructionJob) RunOnce(ctx context.Context) {
	finished, err := j.handler.Handle(ctx, commands.NewFinishHousesCommand())
	if err != nil {
		j.logger.ErrorContext(ctx, "House construction job failed", "error", err)
		return
	}

	if finished > 0 {
		j.logger.InfoContext(ctx, "Queued houses finished", "count", finished)
	}
}

// Stop stops the scheduler and waits for a running tick to return.
func (j *HouseConstructionJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "House construction job stopped")
}
