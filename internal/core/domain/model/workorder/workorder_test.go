package workorder_test

import (
	"testing"
	"time"

	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/core/domain/model/workorder"
	"workorders/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var scheduled = time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)

func site(t *testing.T, lat, lon, radius float64) kernel.Zone {
	t.Helper()
	loc, err := kernel.NewLocation(lat, lon)
	require.NoError(t, err)
	zone, err := kernel.NewZone(loc, radius)
	require.NoError(t, err)
	return zone
}

func TestNewWorkOrder(t *testing.T) {
	t.Run("no conflict yields pending approval", func(t *testing.T) {
		wo, err := workorder.NewWorkOrder("Fix leak", site(t, 34.0522, -118.2437, 10), scheduled, "")

		require.NoError(t, err)
		require.NoError(t, wo.Validate())
		assert.Zero(t, wo.ID())
		assert.Equal(t, "Fix leak", wo.Description())
		assert.Equal(t, workorder.PendingApproval, wo.Status())
		assert.Equal(t, workorder.NoConflictReason, wo.ConflictReason())
		assert.False(t, wo.HasConflict())
		assert.True(t, scheduled.Equal(wo.ScheduledTime()))
		assert.InDelta(t, 10, wo.Site().RadiusMeters(), 0)
	})

	t.Run("conflict yields conflict detected", func(t *testing.T) {
		reason := "CRITICAL CONFLICT: Overlaps with High Pressure Gas Main (ID: GAS-99)."

		wo, err := workorder.NewWorkOrder("Dig", site(t, 40.7128, -74.0060, 10), scheduled, reason)

		require.NoError(t, err)
		assert.Equal(t, workorder.ConflictDetected, wo.Status())
		assert.Equal(t, reason, wo.ConflictReason())
		assert.True(t, wo.HasConflict())
	})

	t.Run("blank reason counts as no conflict", func(t *testing.T) {
		wo, err := workorder.NewWorkOrder("", site(t, 0, 0, 0), scheduled, "   ")

		require.NoError(t, err)
		assert.Equal(t, workorder.PendingApproval, wo.Status())
		assert.Empty(t, wo.Description())
	})

	t.Run("None cannot describe a conflict", func(t *testing.T) {
		_, err := workorder.NewWorkOrder("Dig", site(t, 0, 0, 1), scheduled, workorder.NoConflictReason)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("scheduled time is required", func(t *testing.T) {
		_, err := workorder.NewWorkOrder("Dig", site(t, 0, 0, 1), time.Time{}, "")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("site must be constructed", func(t *testing.T) {
		_, err := workorder.NewWorkOrder("Dig", kernel.Zone{}, scheduled, "")

		require.ErrorIs(t, err, kernel.ErrZoneIsNotConstructed)
	})
}

func TestRestoreWorkOrder(t *testing.T) {
	t.Run("restores every field", func(t *testing.T) {
		wo, err := workorder.RestoreWorkOrder(7, "Fix", site(t, 1, 2, 3), scheduled, workorder.Approved, "reason")

		require.NoError(t, err)
		assert.Equal(t, int64(7), wo.ID())
		assert.Equal(t, workorder.Approved, wo.Status())
		assert.Equal(t, "reason", wo.ConflictReason())
	})

	t.Run("overridden conflict keeps its reason", func(t *testing.T) {
		wo, err := workorder.RestoreWorkOrder(1, "Fix", site(t, 1, 2, 3), scheduled, workorder.Approved, "CRITICAL CONFLICT")

		require.NoError(t, err)
		assert.True(t, wo.HasConflict())
	})

	t.Run("rejects broken rows", func(t *testing.T) {
		_, err := workorder.RestoreWorkOrder(0, "Fix", site(t, 1, 2, 3), scheduled, workorder.Approved, "None")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)

		_, err = workorder.RestoreWorkOrder(1, "Fix", site(t, 1, 2, 3), scheduled, workorder.Unknown, "None")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)

		_, err = workorder.RestoreWorkOrder(1, "Fix", site(t, 1, 2, 3), scheduled, workorder.Approved, "")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("manually flagged conflict without reason", func(t *testing.T) {
		wo, err := workorder.NewWorkOrder("Fix", site(t, 1, 2, 3), scheduled, "")
		require.NoError(t, err)
		require.NoError(t, wo.AssignID(5))
		require.NoError(t, wo.ChangeStatus(workorder.ConflictDetected, nil))

		restored, err := workorder.RestoreWorkOrder(
			wo.ID(), wo.Description(), wo.Site(), wo.ScheduledTime(), wo.Status(), wo.ConflictReason())

		require.NoError(t, err)
		assert.Equal(t, workorder.ConflictDetected, restored.Status())
		assert.Equal(t, workorder.NoConflictReason, restored.ConflictReason())
	})
}

func TestWorkOrder_AssignID(t *testing.T) {
	wo, err := workorder.NewWorkOrder("Fix", site(t, 1, 2, 3), scheduled, "")
	require.NoError(t, err)

	require.ErrorIs(t, wo.AssignID(0), errs.ErrValueIsInvalid)
	require.ErrorIs(t, wo.AssignID(-5), errs.ErrValueIsInvalid)
	require.NoError(t, wo.AssignID(12))
	require.ErrorIs(t, wo.AssignID(13), workorder.ErrIDIsAlreadyAssigned)
	assert.Equal(t, int64(12), wo.ID())
}

func TestWorkOrder_IsEqual(t *testing.T) {
	a, _ := workorder.RestoreWorkOrder(1, "a", site(t, 1, 2, 3), scheduled, workorder.Approved, "None")
	b, _ := workorder.RestoreWorkOrder(1, "b", site(t, 4, 5, 6), scheduled, workorder.Rejected, "None")
	c, _ := workorder.RestoreWorkOrder(2, "a", site(t, 1, 2, 3), scheduled, workorder.Approved, "None")
	fresh, _ := workorder.NewWorkOrder("a", site(t, 1, 2, 3), scheduled, "")
	other, _ := workorder.NewWorkOrder("a", site(t, 1, 2, 3), scheduled, "")

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
	assert.False(t, a.IsEqual(nil))
	assert.False(t, fresh.IsEqual(other))
}

func TestWorkOrder_ChangeStatus(t *testing.T) {
	t.Run("permissive policy overrides a conflict", func(t *testing.T) {
		wo, _ := workorder.NewWorkOrder("Dig", site(t, 1, 2, 3), scheduled, "CRITICAL CONFLICT")

		require.NoError(t, wo.ChangeStatus(workorder.Approved, workorder.PermissivePolicy{}))

		assert.Equal(t, workorder.Approved, wo.Status())
		assert.Equal(t, "CRITICAL CONFLICT", wo.ConflictReason())
	})

	t.Run("nil policy is permissive", func(t *testing.T) {
		wo, _ := workorder.NewWorkOrder("Dig", site(t, 1, 2, 3), scheduled, "")

		require.NoError(t, wo.ChangeStatus(workorder.Completed, nil))
		require.NoError(t, wo.ChangeStatus(workorder.Completed, nil))

		assert.Equal(t, workorder.Completed, wo.Status())
	})

	t.Run("strict policy refusal leaves status untouched", func(t *testing.T) {
		wo, _ := workorder.NewWorkOrder("Dig", site(t, 1, 2, 3), scheduled, "CRITICAL CONFLICT")

		err := wo.ChangeStatus(workorder.Approved, workorder.StrictPolicy{})

		require.ErrorIs(t, err, workorder.ErrTransitionIsNotAllowed)
		assert.Equal(t, workorder.ConflictDetected, wo.Status())
	})

	t.Run("invalid target is rejected", func(t *testing.T) {
		wo, _ := workorder.NewWorkOrder("Dig", site(t, 1, 2, 3), scheduled, "")

		require.ErrorIs(t, wo.ChangeStatus(workorder.Unknown, nil), errs.ErrValueIsInvalid)
		assert.Equal(t, workorder.PendingApproval, wo.Status())
	})

	t.Run("unconstructed order", func(t *testing.T) {
		wo := &workorder.WorkOrder{}

		require.ErrorIs(t, wo.ChangeStatus(workorder.Approved, nil), workorder.ErrWorkOrderIsNotConstructed)
	})
}
