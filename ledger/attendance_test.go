package ledger

import (
	"errors"
	"testing"

	"attendpro-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		want      float64
		wantField string
	}{
		{name: "integer", raw: "150", want: 150},
		{name: "decimal", raw: "99.99", want: 99.99},
		{name: "zero", raw: "0", want: 0},
		{name: "whitespace trimmed", raw: " 42 ", want: 42},
		{name: "empty", raw: "", wantField: "amount"},
		{name: "not a number", raw: "abc", wantField: "amount"},
		{name: "negative", raw: "-5", wantField: "amount"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseAmount(tt.raw)
			if tt.wantField != "" {
				var validation *ValidationError
				require.ErrorAs(t, err, &validation)
				assert.Equal(t, tt.wantField, validation.Field)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeStatus(t *testing.T) {
	for _, valid := range []string{"", "Won", "Lost"} {
		got, err := normalizeStatus(valid)
		require.NoError(t, err)
		assert.Equal(t, valid, got)
	}

	_, err := normalizeStatus("Pending")
	var validation *ValidationError
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, "status", validation.Field)
}

func TestApplyAttendanceUpdateChangesAmountOnly(t *testing.T) {
	record := &models.Attendance{
		CustomerName: "Alice",
		ServiceName:  "Haircut",
		Amount:       100,
		Status:       models.StatusWon,
	}

	amount := "75.5"
	err := applyAttendanceUpdate(record, AttendanceUpdate{Amount: &amount})

	require.NoError(t, err)
	assert.Equal(t, 75.5, record.Amount)
	// The captured names cannot be touched by an update.
	assert.Equal(t, "Alice", record.CustomerName)
	assert.Equal(t, "Haircut", record.ServiceName)
	assert.Equal(t, models.StatusWon, record.Status)
}

func TestApplyAttendanceUpdateStatus(t *testing.T) {
	record := &models.Attendance{CustomerName: "Alice", Amount: 10}

	status := models.StatusLost
	err := applyAttendanceUpdate(record, AttendanceUpdate{Status: &status})

	require.NoError(t, err)
	assert.Equal(t, models.StatusLost, record.Status)
	assert.Equal(t, 10.0, record.Amount)
}

func TestApplyAttendanceUpdateRejectsBadAmount(t *testing.T) {
	record := &models.Attendance{CustomerName: "Alice", Amount: 100}

	amount := "abc"
	err := applyAttendanceUpdate(record, AttendanceUpdate{Amount: &amount})

	var validation *ValidationError
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, "amount", validation.Field)
	assert.Equal(t, 100.0, record.Amount)
}

func TestValidationErrorMessage(t *testing.T) {
	err := invalidField("amount", "must be a number")
	assert.Equal(t, "invalid amount: must be a number", err.Error())
	assert.False(t, errors.Is(err, ErrNotFound))
}
