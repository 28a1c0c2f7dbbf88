package domain

import (
	"context"
	"time"

	"github.com/depanneo/booking-platform/shared/apperrors"
	"github.com/depanneo/booking-platform/shared/events"
	"github.com/depanneo/booking-platform/shared/models"
	"github.com/depanneo/booking-platform/shared/status"
)

// Assignment links a reservation to a partner awaiting their decision.
// A superseded assignment keeps its status token but is no longer active.
type Assignment struct {
	ID            models.ID
	ReservationID models.ID
	PartnerID     models.ID
	Status        status.AssignmentStatus
	SupersededAt  *time.Time
	Timestamps    models.Timestamps

	events []*events.Event
}

// NewAssignment factory method
func NewAssignment(reservation *Reservation, partnerID models.ID) *Assignment {
	assignment := &Assignment{
		ID:            models.GenerateUUID(),
		ReservationID: reservation.ID,
		PartnerID:     partnerID,
		Status:        status.AssignmentSent,
		Timestamps:    models.NewTimestamps(),
	}

	assignment.recordEvent(events.NewEvent(assignment.ID, events.AssignmentCreatedEvent, AssignmentData{
		AssignmentID:  assignment.ID,
		ReservationID: assignment.ReservationID,
		ClientID:      reservation.ClientID,
		PartnerID:     partnerID,
		Status:        assignment.Status,
	}).WithCorrelationID(reservation.ID))

	return assignment
}

// IsActive reports whether the assignment still binds its partner
func (a *Assignment) IsActive() bool {
	return a.SupersededAt == nil && a.Status != status.AssignmentRejected
}

// Respond applies the addressed partner's answer exactly once
func (a *Assignment) Respond(partnerID models.ID, action status.AssignmentAction) error {
	next, ok := action.Result()
	if !ok {
		return apperrors.NewValidationError("action", "Action inconnue, attendu accept ou reject.")
	}
	if a.PartnerID != partnerID {
		return &apperrors.AuthorizationError{Message: "Cette mission ne vous est pas adressée."}
	}
	if a.SupersededAt != nil {
		return &apperrors.ConflictError{Message: "Cette mission a été réattribuée."}
	}
	if !status.CanRespondToAssignment(a.Status) {
		return &apperrors.ConflictError{Message: "Vous avez déjà répondu à cette mission."}
	}

	a.Status = next
	a.Timestamps = a.Timestamps.Update()

	a.recordEvent(events.NewEvent(a.ID, events.AssignmentRespondedEvent, AssignmentData{
		AssignmentID:  a.ID,
		ReservationID: a.ReservationID,
		PartnerID:     a.PartnerID,
		Status:        a.Status,
	}).WithCorrelationID(a.ReservationID))

	return nil
}

// Supersede retires the assignment after an administrator reassigned the reservation
func (a *Assignment) Supersede(at time.Time) {
	if a.SupersededAt != nil {
		return
	}
	a.SupersededAt = &at
	a.Timestamps = a.Timestamps.Update()

	a.recordEvent(events.NewEvent(a.ID, events.AssignmentSupersededEvent, AssignmentData{
		AssignmentID:  a.ID,
		ReservationID: a.ReservationID,
		PartnerID:     a.PartnerID,
		Status:        a.Status,
	}).WithCorrelationID(a.ReservationID))
}

// Events returns domain events
func (a *Assignment) Events() []*events.Event {
	return a.events
}

// ClearEvents clears domain events
func (a *Assignment) ClearEvents() {
	a.events = nil
}

func (a *Assignment) recordEvent(event *events.Event) {
	a.events = append(a.events, event)
}

type AssignmentData struct {
	AssignmentID  models.ID               `json:"assignment_id"`
	ReservationID models.ID               `json:"reservation_id"`
	ClientID      models.ID               `json:"client_id,omitempty"`
	PartnerID     models.ID               `json:"partner_id"`
	Status        status.AssignmentStatus `json:"status"`
}

type AssignmentRepository interface {
	FindByID(ctx context.Context, id models.ID) (*Assignment, error)
	FindActiveByReservationID(ctx context.Context, reservationID models.ID) ([]*Assignment, error)
	// SaveResponse stores a partner's answer only if the assignment is still
	// envoyée and not superseded, and mirrors it onto the reservation. A lost
	// race returns a ConflictError.
	SaveResponse(ctx context.Context, assignment *Assignment) error
	// Reassign supersedes every active assignment of the reservation, inserts
	// the new one and saves the reservation in one transaction.
	Reassign(ctx context.Context, reservation *Reservation, superseded []*Assignment, assignment *Assignment) error
}
