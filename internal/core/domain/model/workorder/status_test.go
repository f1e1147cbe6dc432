package workorder_test

import (
	"testing"

	"workorders/internal/core/domain/model/workorder"
	"workorders/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_String(t *testing.T) {
	tests := []struct {
		status workorder.Status
		want   string
	}{
		{workorder.Draft, "DRAFT"},
		{workorder.PendingApproval, "PENDING_APPROVAL"},
		{workorder.ConflictDetected, "CONFLICT_DETECTED"},
		{workorder.Approved, "APPROVED"},
		{workorder.InProgress, "IN_PROGRESS"},
		{workorder.Completed, "COMPLETED"},
		{workorder.Rejected, "REJECTED"},
		{workorder.Unknown, "UNKNOWN"},
		{workorder.Status(42), "UNKNOWN"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.status.String())
		})
	}
}

func TestParseStatus(t *testing.T) {
	t.Run("round trips every status", func(t *testing.T) {
		for _, status := range workorder.Statuses() {
			parsed, err := workorder.ParseStatus(status.String())

			require.NoError(t, err)
			assert.Equal(t, status, parsed)
		}
	})

	t.Run("rejects unknown literals", func(t *testing.T) {
		for _, literal := range []string{"", "UNKNOWN", "approved", "ARCHIVED", " APPROVED"} {
			status, err := workorder.ParseStatus(literal)

			require.ErrorIs(t, err, errs.ErrValueIsInvalid, literal)
			assert.Equal(t, workorder.Unknown, status)
		}
	})
}

func TestStatus_Validate(t *testing.T) {
	for _, status := range workorder.Statuses() {
		assert.NoError(t, status.Validate(), status.String())
	}

	assert.ErrorIs(t, workorder.Unknown.Validate(), errs.ErrValueIsInvalid)
	assert.ErrorIs(t, workorder.Status(-1).Validate(), errs.ErrValueIsInvalid)
	assert.ErrorIs(t, workorder.Status(99).Validate(), errs.ErrValueIsInvalid)
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.True(t, workorder.Completed.IsTerminal())
	assert.True(t, workorder.Rejected.IsTerminal())
	assert.False(t, workorder.PendingApproval.IsTerminal())
	assert.False(t, workorder.ConflictDetected.IsTerminal())
}
