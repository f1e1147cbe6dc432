package commands_test

import (
	"errors"
	"testing"

	"workorders/internal/core/application/usecases/commands"
	"workorders/internal/core/domain/model/notification"
	"workorders/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewDeliverNotificationsCommand(t *testing.T) {
	cmd, err := commands.NewDeliverNotificationsCommand(10, 5)
	require.NoError(t, err)
	assert.Equal(t, 10, cmd.BatchSize())
	assert.Equal(t, 5, cmd.MaxAttempts())

	_, err = commands.NewDeliverNotificationsCommand(0, 0)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	assert.Contains(t, err.Error(), "batchSize")
	assert.Contains(t, err.Error(), "maxAttempts")
}

func TestDeliverNotificationsCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewDeliverNotificationsCommand(10, 5)
	ok, _ := notification.NewNotification("Gas Company", "CRITICAL CONFLICT", now)
	failing, _ := notification.NewNotification("Water Board", "CRITICAL CONFLICT", now)

	outbox := new(MockNotificationOutbox)
	sender := new(MockSender)
	uow := new(MockNotificationUoW)
	factory := new(MockNotificationUoWFactory)
	factory.On("Create").Return(uow).Once()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("NotificationOutbox").Return(outbox).Once()
	outbox.On("GetPending", ctx, 10, 5).Return([]*notification.Notification{ok, failing}, nil).Once()
	sender.On("Send", ctx, "Gas Company", "CRITICAL CONFLICT").Return(nil).Once()
	sender.On("Send", ctx, "Water Board", "CRITICAL CONFLICT").Return(errors.New("503")).Once()
	outbox.On("Update", ctx, ok).Return(nil).Once()
	outbox.On("Update", ctx, failing).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	h := commands.NewDeliverNotificationsCommandHandler(factory, sender, fixedClock(now), nil)
	report, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, commands.DeliveryReport{Delivered: 1, Failed: 1}, report)
	assert.True(t, ok.IsDelivered())
	assert.False(t, failing.IsDelivered())
	assert.Equal(t, 1, failing.Attempts())
	assert.Equal(t, "503", failing.LastError())
	outbox.AssertExpectations(t)
	sender.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestDeliverNotificationsCommandHandler_Handle_Empty(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewDeliverNotificationsCommand(10, 5)

	outbox := new(MockNotificationOutbox)
	sender := new(MockSender)
	uow := new(MockNotificationUoW)
	factory := new(MockNotificationUoWFactory)
	factory.On("Create").Return(uow).Once()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("NotificationOutbox").Return(outbox).Once()
	outbox.On("GetPending", ctx, 10, 5).Return(nil, nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	h := commands.NewDeliverNotificationsCommandHandler(factory, sender, fixedClock(now), nil)
	report, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Zero(t, report)
	sender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything)
}

func TestDeliverNotificationsCommandHandler_Handle_GetPendingError(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewDeliverNotificationsCommand(10, 5)

	outbox := new(MockNotificationOutbox)
	uow := new(MockNotificationUoW)
	factory := new(MockNotificationUoWFactory)
	factory.On("Create").Return(uow).Once()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("NotificationOutbox").Return(outbox).Once()
	outbox.On("GetPending", ctx, 10, 5).Return(nil, errors.New("db down")).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	h := commands.NewDeliverNotificationsCommandHandler(factory, new(MockSender), fixedClock(now), nil)
	_, err := h.Handle(ctx, cmd)

	require.Error(t, err)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}
