package domain

import (
	"context"
	"time"

	"github.com/depanneo/booking-platform/shared/apperrors"
	"github.com/depanneo/booking-platform/shared/events"
	"github.com/depanneo/booking-platform/shared/models"
	"github.com/depanneo/booking-platform/shared/status"
)

// Payment aggregate root; one per reservation
type Payment struct {
	ID              models.ID
	PaymentIntentID string
	ReservationID   models.ID
	ClientID        models.ID
	Amount          models.Money
	Status          status.PaymentStatus
	Timestamps      models.Timestamps
	Version         models.Version

	events []*events.Event
}

// CreatePaymentIntent factory method. The amount must match the reservation's
// price snapshot so it cannot be edited by the client.
func CreatePaymentIntent(reservation *Reservation, amount models.Money) (*Payment, error) {
	if !amount.IsPositive() {
		return nil, apperrors.NewValidationError("amount", "Le montant doit être positif.")
	}
	if !amount.Equal(reservation.Price) {
		return nil, apperrors.NewValidationError("amount", "Le montant ne correspond pas au prix du service.")
	}
	if reservation.Status == status.ReservationCancelled {
		return nil, &apperrors.ConflictError{Message: "La réservation a été annulée."}
	}

	payment := &Payment{
		ID:              models.GenerateUUID(),
		PaymentIntentID: "pi_" + models.GenerateUUID().String(),
		ReservationID:   reservation.ID,
		ClientID:        reservation.ClientID,
		Amount:          amount,
		Status:          status.PaymentPending,
		Timestamps:      models.NewTimestamps(),
		Version:         models.NewVersion(),
	}

	payment.recordEvent(events.NewEvent(payment.ID, events.PaymentIntentCreatedEvent, PaymentIntentCreatedData{
		PaymentID:       payment.ID,
		PaymentIntentID: payment.PaymentIntentID,
		ReservationID:   payment.ReservationID,
		ClientID:        payment.ClientID,
		Amount:          payment.Amount,
	}).WithCorrelationID(reservation.ID))

	return payment, nil
}

// Confirm settles a pending payment. Confirmation is simulated: success
// decides between payé and échoué.
func (p *Payment) Confirm(success bool) error {
	if p.Status != status.PaymentPending {
		return &apperrors.ConflictError{Message: "Ce paiement a déjà été traité (" + p.Status.String() + ")."}
	}

	eventType := events.PaymentConfirmedEvent
	p.Status = status.PaymentPaid
	if !success {
		eventType = events.PaymentFailedEvent
		p.Status = status.PaymentFailed
	}
	p.Timestamps = p.Timestamps.Update()
	p.Version = p.Version.Update()

	p.recordEvent(events.NewEvent(p.ID, eventType, PaymentSettledData{
		PaymentID:       p.ID,
		PaymentIntentID: p.PaymentIntentID,
		ReservationID:   p.ReservationID,
		ClientID:        p.ClientID,
		Status:          p.Status,
		SettledAt:       p.Timestamps.UpdatedAt,
	}).WithCorrelationID(p.ReservationID))

	return nil
}

// Events returns domain events
func (p *Payment) Events() []*events.Event {
	return p.events
}

// ClearEvents clears domain events
func (p *Payment) ClearEvents() {
	p.events = nil
}

func (p *Payment) recordEvent(event *events.Event) {
	p.events = append(p.events, event)
}

// Event Data Structures
type PaymentIntentCreatedData struct {
	PaymentID       models.ID    `json:"payment_id"`
	PaymentIntentID string       `json:"payment_intent_id"`
	ReservationID   models.ID    `json:"reservation_id"`
	ClientID        models.ID    `json:"client_id"`
	Amount          models.Money `json:"amount"`
}

type PaymentSettledData struct {
	PaymentID       models.ID            `json:"payment_id"`
	PaymentIntentID string               `json:"payment_intent_id"`
	ReservationID   models.ID            `json:"reservation_id"`
	ClientID        models.ID            `json:"client_id"`
	Status          status.PaymentStatus `json:"status"`
	SettledAt       time.Time            `json:"settled_at"`
}

type PaymentRepository interface {
	Save(ctx context.Context, payment *Payment) error
	FindByIntentID(ctx context.Context, paymentIntentID string) (*Payment, error)
	FindByReservationID(ctx context.Context, reservationID models.ID) (*Payment, error)
}
