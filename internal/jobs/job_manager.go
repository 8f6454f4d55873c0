package jobs

import (
	"fmt"
	"log/slog"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	houseConstructionJob *HouseConstructionJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(finishHousesHandler HousesFinisher, schedule string, logger *slog.Logger) *JobManager {
	return &JobManager{
		houseConstructionJob: NewHouseConstructionJobWithSchedule(finishHousesHandler, schedule, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.houseConstructionJob.Start(); err != nil {
		return fmt.Errorf("failed to start house construction job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.houseConstructionJob.Stop()
}
