package domain

import (
	"context"
	"fmt"

	"github.com/depanneo/booking-platform/shared/apperrors"
	"github.com/depanneo/booking-platform/shared/events"
	"github.com/depanneo/booking-platform/shared/models"
	"github.com/depanneo/booking-platform/shared/status"
	"github.com/depanneo/booking-platform/shared/validation"
)

// SagaStep is the step a booking run has reached
type SagaStep string

const (
	StepCreatingReservation SagaStep = "creating_reservation"
	StepCreatingIntent      SagaStep = "creating_intent"
	StepConfirmingPayment   SagaStep = "confirming_payment"
	StepDone                SagaStep = "done"
)

func (s SagaStep) String() string {
	return string(s)
}

// SagaStatus is the outcome of a booking run so far
type SagaStatus string

const (
	SagaStatusStarted    SagaStatus = "started"
	SagaStatusInProgress SagaStatus = "in_progress"
	SagaStatusCompleted  SagaStatus = "completed"
	SagaStatusFailed     SagaStatus = "failed"
	SagaStatusCancelled  SagaStatus = "cancelled"
)

// SagaRun records one booking: reservation, payment intent, confirmation.
// Steps only move forward, except that resuming a declined payment opens a
// new intent. A failed or cancelled run keeps the step it stopped at so it
// can be reported and resumed.
type SagaRun struct {
	ID              models.ID
	ClientID        models.ID
	ServiceID       models.ID
	Price           models.Money
	Reservation     validation.ReservationInput
	SimulateSuccess bool
	Step            SagaStep
	Status          SagaStatus
	ReservationID   *models.ID
	PaymentIntentID *string
	PaymentStatus   *status.PaymentStatus
	PaymentAttempt  int
	FailureKind     apperrors.Kind
	FailureMessage  string
	Timestamps      models.Timestamps
	Version         models.Version

	events []*events.Event
}

// NewSagaRun factory method
func NewSagaRun(clientID, serviceID models.ID, price models.Money, reservation validation.ReservationInput, simulateSuccess bool) *SagaRun {
	run := &SagaRun{
		ID:              models.GenerateUUID(),
		ClientID:        clientID,
		ServiceID:       serviceID,
		Price:           price,
		Reservation:     reservation,
		SimulateSuccess: simulateSuccess,
		Step:            StepCreatingReservation,
		Status:          SagaStatusStarted,
		PaymentAttempt:  1,
		Timestamps:      models.NewTimestamps(),
		Version:         models.NewVersion(),
	}

	run.recordEvent(events.BookingSagaStartedEvent)

	return run
}

// IdempotencyKey identifies the current step's request to the marketplace.
// It is stable across resumes of the same run; payment steps after a decline
// carry the attempt number so the marketplace does not replay the refusal.
func (r *SagaRun) IdempotencyKey() string {
	if r.PaymentAttempt > 1 && (r.Step == StepCreatingIntent || r.Step == StepConfirmingPayment) {
		return fmt.Sprintf("%s:%s:%d", r.ID, r.Step, r.PaymentAttempt)
	}
	return fmt.Sprintf("%s:%s", r.ID, r.Step)
}

// ReservationCreated advances past step 1
func (r *SagaRun) ReservationCreated(reservationID models.ID) {
	r.ReservationID = &reservationID
	r.advance(StepCreatingIntent)
}

// IntentCreated advances past step 2
func (r *SagaRun) IntentCreated(paymentIntentID string) {
	r.PaymentIntentID = &paymentIntentID
	r.advance(StepConfirmingPayment)
}

// PaymentConfirmed completes the run
func (r *SagaRun) PaymentConfirmed(paymentStatus status.PaymentStatus) {
	r.PaymentStatus = &paymentStatus
	r.advance(StepDone)
	r.Status = SagaStatusCompleted
	r.recordEvent(events.BookingSagaCompletedEvent)
}

// PaymentDeclined records the refusal of the confirmation and stops the run
func (r *SagaRun) PaymentDeclined(err error) {
	declined := status.PaymentFailed
	r.PaymentStatus = &declined
	r.Fail(err)
}

// IsPaymentDeclined reports whether the run stopped on a refused payment
func (r *SagaRun) IsPaymentDeclined() bool {
	return r.Step == StepConfirmingPayment && r.PaymentStatus != nil && *r.PaymentStatus == status.PaymentFailed
}

// Fail stops the run at its current step
func (r *SagaRun) Fail(err error) {
	r.Status = SagaStatusFailed
	r.FailureKind = apperrors.KindOf(err)
	r.FailureMessage = apperrors.UserMessage(err)
	r.touch()
	r.recordEvent(events.BookingSagaFailedEvent)
}

// Cancel stops the run at its current step because the caller went away
func (r *SagaRun) Cancel() {
	r.Status = SagaStatusCancelled
	r.FailureKind = ""
	r.FailureMessage = ""
	r.touch()
	r.recordEvent(events.BookingSagaCancelledEvent)
}

// Resume reopens a run that stopped before completing. A declined payment
// cannot be confirmed again, so the run goes back to opening a new intent.
func (r *SagaRun) Resume() error {
	if r.Status == SagaStatusCompleted {
		return &apperrors.ConflictError{Message: "Cette réservation est déjà finalisée."}
	}
	if r.IsPaymentDeclined() {
		r.Step = StepCreatingIntent
		r.PaymentIntentID = nil
		r.PaymentStatus = nil
		r.PaymentAttempt++
	}
	r.Status = SagaStatusInProgress
	r.FailureKind = ""
	r.FailureMessage = ""
	r.touch()
	return nil
}

// IsFinished reports whether no further step will run
func (r *SagaRun) IsFinished() bool {
	return r.Step == StepDone
}

func (r *SagaRun) advance(step SagaStep) {
	r.Step = step
	r.Status = SagaStatusInProgress
	r.touch()
}

func (r *SagaRun) touch() {
	r.Timestamps = r.Timestamps.Update()
	r.Version = r.Version.Update()
}

// Events returns domain events
func (r *SagaRun) Events() []*events.Event {
	return r.events
}

// ClearEvents clears domain events
func (r *SagaRun) ClearEvents() {
	r.events = nil
}

func (r *SagaRun) recordEvent(eventType string) {
	r.events = append(r.events, events.NewEvent(r.ID, eventType, SagaRunData{
		RunID:           r.ID,
		ClientID:        r.ClientID,
		ServiceID:       r.ServiceID,
		Step:            r.Step,
		Status:          r.Status,
		ReservationID:   r.ReservationID,
		PaymentIntentID: r.PaymentIntentID,
		PaymentStatus:   r.PaymentStatus,
		PaymentAttempt:  r.PaymentAttempt,
		FailureKind:     r.FailureKind,
		FailureMessage:  r.FailureMessage,
	}).WithCorrelationID(r.ID))
}

// SagaRunData is the payload of booking.saga.* events
type SagaRunData struct {
	RunID           models.ID             `json:"run_id"`
	ClientID        models.ID             `json:"client_id"`
	ServiceID       models.ID             `json:"service_id"`
	Step            SagaStep              `json:"step"`
	Status          SagaStatus            `json:"status"`
	ReservationID   *models.ID            `json:"reservation_id,omitempty"`
	PaymentIntentID *string               `json:"payment_intent_id,omitempty"`
	PaymentStatus   *status.PaymentStatus `json:"payment_status,omitempty"`
	PaymentAttempt  int                   `json:"payment_attempt"`
	FailureKind     apperrors.Kind        `json:"failure_kind,omitempty"`
	FailureMessage  string                `json:"failure_message,omitempty"`
}

type SagaRunRepository interface {
	Save(ctx context.Context, run *SagaRun) error
	FindByID(ctx context.Context, id models.ID) (*SagaRun, error)
}
