package jobs

import (
	"context"
	"log/slog"

	"workorders/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DefaultNotificationSchedule drains the outbox every five seconds.
const DefaultNotificationSchedule = "@every 5s"

// NotificationDeliverer runs one outbox delivery batch.
type NotificationDeliverer interface {
	Handle(ctx context.Context, cmd commands.DeliverNotificationsCommand) (commands.DeliveryReport, error)
}

// NotificationDeliveryJob periodically sends pending outbox entries to asset owners.
// A run that is still in progress when the next one is due is skipped.
type NotificationDeliveryJob struct {
	handler  NotificationDeliverer
	command  commands.DeliverNotificationsCommand
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewNotificationDeliveryJob creates the delivery job. An empty schedule uses
// DefaultNotificationSchedule; six-field cron specs with seconds are accepted.
func NewNotificationDeliveryJob(
	handler NotificationDeliverer,
	schedule string,
	batchSize, maxAttempts int,
	logger *slog.Logger,
) (*NotificationDeliveryJob, error) {
	cmd, err := commands.NewDeliverNotificationsCommand(batchSize, maxAttempts)
	if err != nil {
		return nil, err
	}
	if schedule == "" {
		schedule = DefaultNotificationSchedule
	}

	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("component", "notification_delivery_job")
	cronLog := cronLogger{logger: logger}

	return &NotificationDeliveryJob{
		handler:  handler,
		command:  cmd,
		schedule: schedule,
		cron: cron.New(
			cron.WithSeconds(),
			cron.WithLogger(cronLog),
			cron.WithChain(cron.Recover(cronLog), cron.SkipIfStillRunning(cronLog)),
		),
		logger: logger,
	}, nil
}

// Start schedules the job and starts the cron runner.
func (j *NotificationDeliveryJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.Run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Notification delivery job started", "schedule", j.schedule)
	return nil
}

// Run delivers one batch. Errors are logged; the next run retries.
func (j *NotificationDeliveryJob) Run(ctx context.Context) {
	if _, err := j.handler.Handle(ctx, j.command); err != nil {
		j.logger.ErrorContext(ctx, "Notification delivery job failed", "error", err)
	}
}

// Stop stops scheduling and waits for a running batch to finish.
func (j *NotificationDeliveryJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Notification delivery job stopped")
}

// cronLogger routes cron's own messages to slog.
type cronLogger struct {
	logger *slog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Debug(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.logger.Error(msg, append(keysAndValues, "error", err)...)
}
