// Package jobs provides scheduled background tasks for the work order service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// NotificationDeliveryJob drains the notification outbox: every run sends a
// batch of pending conflict notifications to asset owners and records the
// outcome of each attempt. Failed entries are retried on later runs until
// they reach the configured attempt limit.
//
// # Usage
//
//	jobManager, err := jobs.NewJobManager(deliverHandler, jobs.Config{
//		NotificationSchedule:    "@every 5s",
//		NotificationBatchSize:   50,
//		NotificationMaxAttempts: 5,
//	}, logger)
//	if err != nil {
//		return err
//	}
//
//	if err := jobManager.StartAll(); err != nil {
//		return err
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Job failures are logged and never stop the scheduler. Overlapping runs are
// skipped, and a panic inside a run is recovered and logged.
package jobs
