package status

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVocabularies(t *testing.T) {
	assert.Len(t, ReservationStatuses, 5)
	assert.Len(t, PaymentStatuses, 4)
	assert.Len(t, AssignmentStatuses, 3)

	for _, s := range ReservationStatuses {
		assert.True(t, IsValidReservationStatus(string(s)), s)
	}
	for _, s := range PaymentStatuses {
		assert.True(t, IsValidPaymentStatus(string(s)), s)
	}
	for _, s := range AssignmentStatuses {
		assert.True(t, IsValidAssignmentStatus(string(s)), s)
	}

	// Tokens are exact
	assert.False(t, IsValidReservationStatus("Nouvelle"))
	assert.False(t, IsValidReservationStatus("confirmee"))
	assert.False(t, IsValidPaymentStatus("paye"))
	assert.False(t, IsValidAssignmentStatus("envoyee"))
	assert.False(t, IsValidReservationStatus(""))
}

func TestCanTransitionReservation(t *testing.T) {
	for _, from := range ReservationStatuses {
		for _, to := range ReservationStatuses {
			assert.True(t, CanTransitionReservation(from, to, RoleAdmin), "%s -> %s", from, to)
			assert.False(t, CanTransitionReservation(from, to, RoleClient), "%s -> %s", from, to)
			assert.False(t, CanTransitionReservation(from, to, RolePartner), "%s -> %s", from, to)
		}
	}
	assert.False(t, CanTransitionReservation(ReservationNew, "archivée", RoleAdmin))
}

func TestCanRespondToAssignment(t *testing.T) {
	tests := []struct {
		current  AssignmentStatus
		expected bool
	}{
		{current: AssignmentSent, expected: true},
		{current: AssignmentAccepted, expected: false},
		{current: AssignmentRejected, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.current.String(), func(t *testing.T) {
			assert.Equal(t, tt.expected, CanRespondToAssignment(tt.current))
		})
	}
}

func TestAssignmentAction_Result(t *testing.T) {
	accepted, ok := ActionAccept.Result()
	assert.True(t, ok)
	assert.Equal(t, AssignmentAccepted, accepted)

	rejected, ok := ActionReject.Result()
	assert.True(t, ok)
	assert.Equal(t, AssignmentRejected, rejected)

	_, ok = AssignmentAction("maybe").Result()
	assert.False(t, ok)
}

func TestTerminalStatuses(t *testing.T) {
	assert.True(t, ReservationCompleted.IsTerminal())
	assert.True(t, ReservationCancelled.IsTerminal())
	assert.False(t, ReservationInProgress.IsTerminal())
	assert.False(t, PaymentPending.IsTerminal())
	assert.True(t, PaymentFailed.IsTerminal())
}
