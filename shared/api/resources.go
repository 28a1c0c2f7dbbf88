package api

import (
	"encoding/json"
	"time"

	"github.com/depanneo/booking-platform/shared/models"
	"github.com/depanneo/booking-platform/shared/status"
)

// IdempotencyKeyHeader carries the key a replayed request is matched on
const IdempotencyKeyHeader = "Idempotency-Key"

// Reservation is the wire shape of a reservation
type Reservation struct {
	ID            models.ID                `json:"_id"`
	ClientID      models.ID                `json:"client_id"`
	ServiceID     models.ID                `json:"service_id"`
	Address       string                   `json:"address"`
	PostalCode    string                   `json:"postal_code"`
	Description   *string                  `json:"description,omitempty"`
	Urgent        bool                     `json:"urgent"`
	DateRequested *string                  `json:"date_requested,omitempty"`
	TimeSlot      *string                  `json:"time_slot,omitempty"`
	Status        status.ReservationStatus `json:"status"`
	PartnerID     *models.ID               `json:"partner_id,omitempty"`
	PartnerStatus *status.AssignmentStatus `json:"partner_status,omitempty"`
	Price         models.Money             `json:"price"`
	CreatedAt     time.Time                `json:"created_at"`
	UpdatedAt     time.Time                `json:"updated_at"`
}

// CreateReservationRequest is the body of POST /reservations
type CreateReservationRequest struct {
	ServiceID     string  `json:"serviceId"`
	Address       string  `json:"address"`
	PostalCode    string  `json:"postal_code"`
	Description   *string `json:"description,omitempty"`
	Urgent        bool    `json:"urgent"`
	DateRequested *string `json:"date_requested,omitempty"`
	TimeSlot      *string `json:"time_slot,omitempty"`
}

// CreatePaymentIntentRequest is the body of POST /payments/intents; amount is in cents
type CreatePaymentIntentRequest struct {
	ReservationID string `json:"reservationId"`
	Amount        int64  `json:"amount"`
}

// PaymentIntent is returned by POST /payments/intents
type PaymentIntent struct {
	PaymentIntentID string               `json:"paymentIntentId"`
	ReservationID   models.ID            `json:"reservationId"`
	Amount          models.Money         `json:"amount"`
	Status          status.PaymentStatus `json:"status"`
}

// ConfirmPaymentRequest is the body of POST /payments/confirm
type ConfirmPaymentRequest struct {
	PaymentIntentID string `json:"paymentIntentId"`
	SimulateSuccess *bool  `json:"simulate_success,omitempty"`
}

// PaymentConfirmation is returned by POST /payments/confirm
type PaymentConfirmation struct {
	PaymentIntentID string               `json:"paymentIntentId"`
	ReservationID   models.ID            `json:"reservationId"`
	Status          status.PaymentStatus `json:"status"`
	ConfirmedAt     time.Time            `json:"confirmed_at"`
}

// Assignment is the wire shape of a partner assignment
type Assignment struct {
	ID            models.ID               `json:"_id"`
	ReservationID models.ID               `json:"reservation_id"`
	PartnerID     models.ID               `json:"partner_id"`
	Status        status.AssignmentStatus `json:"status"`
	SupersededAt  *time.Time              `json:"superseded_at,omitempty"`
	CreatedAt     time.Time               `json:"created_at"`
	UpdatedAt     time.Time               `json:"updated_at"`
}

// RespondToAssignmentRequest is the body of POST /assignments/{id}/respond
type RespondToAssignmentRequest struct {
	Action status.AssignmentAction `json:"action"`
}

// UpdateReservationStatusRequest is the body of PUT /reservations/{id}/status
type UpdateReservationStatusRequest struct {
	Status status.ReservationStatus `json:"status"`
}

// AssignPartnerRequest is the body of PUT /reservations/{id}/partner
type AssignPartnerRequest struct {
	PartnerID string `json:"partnerId"`
}

// HistoryEntry is one audit trail event of GET /reservations/{id}/events
type HistoryEntry struct {
	ID          models.ID       `json:"id"`
	AggregateID models.ID       `json:"aggregate_id"`
	EventType   string          `json:"event_type"`
	Data        json.RawMessage `json:"data,omitempty"`
	Timestamp   time.Time       `json:"timestamp"`
}
