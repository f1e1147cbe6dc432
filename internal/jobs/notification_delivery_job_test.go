package jobs

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"workorders/internal/core/application/usecases/commands"
	"workorders/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingDeliverer struct {
	calls   atomic.Int32
	lastCmd atomic.Value
	err     error
}

func (d *countingDeliverer) Handle(
	_ context.Context,
	cmd commands.DeliverNotificationsCommand,
) (commands.DeliveryReport, error) {
	d.calls.Add(1)
	d.lastCmd.Store(cmd)
	return commands.DeliveryReport{}, d.err
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNewNotificationDeliveryJob(t *testing.T) {
	t.Run("invalid batch parameters", func(t *testing.T) {
		_, err := NewNotificationDeliveryJob(&countingDeliverer{}, "", 0, 3, discardLogger())

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("default schedule", func(t *testing.T) {
		job, err := NewNotificationDeliveryJob(&countingDeliverer{}, "", 10, 3, nil)

		require.NoError(t, err)
		assert.Equal(t, DefaultNotificationSchedule, job.schedule)
	})
}

func TestNotificationDeliveryJob_Run(t *testing.T) {
	deliverer := &countingDeliverer{err: errors.New("database is gone")}
	job, err := NewNotificationDeliveryJob(deliverer, "", 25, 4, discardLogger())
	require.NoError(t, err)

	job.Run(context.Background())

	assert.EqualValues(t, 1, deliverer.calls.Load())
	cmd, ok := deliverer.lastCmd.Load().(commands.DeliverNotificationsCommand)
	require.True(t, ok)
	assert.Equal(t, 25, cmd.BatchSize())
	assert.Equal(t, 4, cmd.MaxAttempts())
}

func TestNotificationDeliveryJob_StartStop(t *testing.T) {
	t.Run("runs on schedule", func(t *testing.T) {
		deliverer := &countingDeliverer{}
		job, err := NewNotificationDeliveryJob(deliverer, "@every 1s", 10, 3, discardLogger())
		require.NoError(t, err)

		require.NoError(t, job.Start())
		t.Cleanup(job.Stop)

		assert.Eventually(t, func() bool {
			return deliverer.calls.Load() > 0
		}, 5*time.Second, 50*time.Millisecond)
	})

	t.Run("bad schedule", func(t *testing.T) {
		job, err := NewNotificationDeliveryJob(&countingDeliverer{}, "every now and then", 10, 3, discardLogger())
		require.NoError(t, err)

		assert.Error(t, job.Start())
	})
}

func TestJobManager(t *testing.T) {
	t.Run("rejects invalid config", func(t *testing.T) {
		_, err := NewJobManager(&countingDeliverer{}, Config{}, discardLogger())

		require.Error(t, err)
	})

	t.Run("start and stop", func(t *testing.T) {
		jm, err := NewJobManager(&countingDeliverer{}, Config{
			NotificationSchedule:    "@every 1h",
			NotificationBatchSize:   10,
			NotificationMaxAttempts: 3,
		}, discardLogger())
		require.NoError(t, err)

		require.NoError(t, jm.StartAll())
		jm.StopAll()
	})

	t.Run("start fails on bad schedule", func(t *testing.T) {
		jm, err := NewJobManager(&countingDeliverer{}, Config{
			NotificationSchedule:    "sometimes",
			NotificationBatchSize:   10,
			NotificationMaxAttempts: 3,
		}, discardLogger())
		require.NoError(t, err)

		assert.Error(t, jm.StartAll())
	})
}
