package domain

import (
	"testing"
	"time"

	"github.com/depanneo/booking-platform/shared/apperrors"
	"github.com/depanneo/booking-platform/shared/events"
	"github.com/depanneo/booking-platform/shared/models"
	"github.com/depanneo/booking-platform/shared/status"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssignment_Respond(t *testing.T) {
	partnerID := models.GenerateUUID()

	tests := []struct {
		name        string
		prepare     func(a *Assignment)
		partnerID   models.ID
		action      status.AssignmentAction
		expected    status.AssignmentStatus
		expectedErr func(error) bool
	}{
		{name: "accept", partnerID: partnerID, action: status.ActionAccept, expected: status.AssignmentAccepted},
		{name: "reject", partnerID: partnerID, action: status.ActionReject, expected: status.AssignmentRejected},
		{name: "unknown action", partnerID: partnerID, action: "maybe", expected: status.AssignmentSent, expectedErr: apperrors.IsValidation},
		{name: "other partner", partnerID: models.GenerateUUID(), action: status.ActionAccept, expected: status.AssignmentSent, expectedErr: apperrors.IsAuthorization},
		{
			name:        "superseded",
			prepare:     func(a *Assignment) { a.Supersede(time.Now()) },
			partnerID:   partnerID,
			action:      status.ActionAccept,
			expected:    status.AssignmentSent,
			expectedErr: apperrors.IsConflict,
		},
		{
			name:        "already answered",
			prepare:     func(a *Assignment) { a.Status = status.AssignmentRejected },
			partnerID:   partnerID,
			action:      status.ActionAccept,
			expected:    status.AssignmentRejected,
			expectedErr: apperrors.IsConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assignment := NewAssignment(newTestReservation(t), partnerID)
			if tt.prepare != nil {
				tt.prepare(assignment)
			}
			assignment.ClearEvents()

			err := assignment.Respond(tt.partnerID, tt.action)

			assert.Equal(t, tt.expected, assignment.Status)
			if tt.expectedErr != nil {
				require.Error(t, err)
				assert.True(t, tt.expectedErr(err))
				assert.Empty(t, assignment.Events())
				return
			}
			require.NoError(t, err)
			require.Len(t, assignment.Events(), 1)
			assert.Equal(t, events.AssignmentRespondedEvent, assignment.Events()[0].EventType)
		})
	}
}

func TestAssignment_Supersede(t *testing.T) {
	reservation := newTestReservation(t)
	assignment := NewAssignment(reservation, models.GenerateUUID())
	assert.True(t, assignment.IsActive())
	assert.Equal(t, status.AssignmentSent, assignment.Status)

	first := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	assignment.Supersede(first)
	assignment.Supersede(first.Add(time.Hour))

	assert.False(t, assignment.IsActive())
	assert.Equal(t, first, *assignment.SupersededAt)
	// The status token is kept as it was
	assert.Equal(t, status.AssignmentSent, assignment.Status)
	assert.Len(t, assignment.Events(), 2)
}

func TestAssignment_RejectedIsInactive(t *testing.T) {
	partnerID := models.GenerateUUID()
	assignment := NewAssignment(newTestReservation(t), partnerID)

	require.NoError(t, assignment.Respond(partnerID, status.ActionReject))
	assert.False(t, assignment.IsActive())
}
