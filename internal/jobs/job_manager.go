package jobs

import (
	"fmt"
	"log/slog"
)

// Config holds the scheduling parameters of the background jobs.
type Config struct {
	NotificationSchedule    string
	NotificationBatchSize   int
	NotificationMaxAttempts int
}

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	notificationDeliveryJob *NotificationDeliveryJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	deliverNotificationsHandler NotificationDeliverer,
	cfg Config,
	logger *slog.Logger,
) (*JobManager, error) {
	if logger == nil {
		logger = slog.Default()
	}

	deliveryJob, err := NewNotificationDeliveryJob(
		deliverNotificationsHandler,
		cfg.NotificationSchedule,
		cfg.NotificationBatchSize,
		cfg.NotificationMaxAttempts,
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create notification delivery job: %w", err)
	}

	return &JobManager{
		notificationDeliveryJob: deliveryJob,
	}, nil
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.notificationDeliveryJob.Start(); err != nil {
		return fmt.Errorf("failed to start notification delivery job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.notificationDeliveryJob.Stop()
}
