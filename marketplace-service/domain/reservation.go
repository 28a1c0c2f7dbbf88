package domain

import (
	"context"
	"time"

	"github.com/depanneo/booking-platform/shared/apperrors"
	"github.com/depanneo/booking-platform/shared/events"
	"github.com/depanneo/booking-platform/shared/models"
	"github.com/depanneo/booking-platform/shared/status"
)

// Reservation aggregate root
type Reservation struct {
	ID            models.ID
	ClientID      models.ID
	ServiceID     models.ID
	Address       string
	PostalCode    string
	Description   *string
	Urgent        bool
	DateRequested *time.Time
	TimeSlot      *string
	Status        status.ReservationStatus
	PartnerID     *models.ID
	PartnerStatus *status.AssignmentStatus
	Price         models.Money
	Timestamps    models.Timestamps
	Version       models.Version

	events []*events.Event
}

// ReservationDetails is the validated client input for a new reservation
type ReservationDetails struct {
	Address       string
	PostalCode    string
	Description   *string
	Urgent        bool
	DateRequested *time.Time
	TimeSlot      *string
}

// CreateReservation factory method; the price is snapshotted from the service
func CreateReservation(clientID models.ID, service *Service, details ReservationDetails) (*Reservation, error) {
	if service == nil {
		return nil, &apperrors.NotFoundError{Message: "Service introuvable."}
	}
	if !service.Price.IsPositive() {
		return nil, apperrors.NewValidationError("serviceId", apperrors.PriceUnavailableMessage)
	}

	reservation := &Reservation{
		ID:            models.GenerateUUID(),
		ClientID:      clientID,
		ServiceID:     service.ID,
		Address:       details.Address,
		PostalCode:    details.PostalCode,
		Description:   details.Description,
		Urgent:        details.Urgent,
		DateRequested: details.DateRequested,
		TimeSlot:      details.TimeSlot,
		Status:        status.ReservationNew,
		Price:         service.Price,
		Timestamps:    models.NewTimestamps(),
		Version:       models.NewVersion(),
	}

	reservation.recordEvent(events.NewEvent(reservation.ID, events.ReservationCreatedEvent, ReservationCreatedData{
		ReservationID: reservation.ID,
		ClientID:      reservation.ClientID,
		ServiceID:     reservation.ServiceID,
		Urgent:        reservation.Urgent,
		Price:         reservation.Price,
	}))

	return reservation, nil
}

// ChangeStatus applies an administrator's status override
func (r *Reservation) ChangeStatus(to status.ReservationStatus, actor status.Role) error {
	if !status.IsValidReservationStatus(string(to)) {
		return apperrors.NewValidationError("status", "Statut de réservation inconnu.")
	}
	if !status.CanTransitionReservation(r.Status, to, actor) {
		return &apperrors.AuthorizationError{Message: "Seul un administrateur peut modifier le statut."}
	}

	from := r.Status
	r.Status = to
	r.touch()

	r.recordEvent(events.NewEvent(r.ID, events.ReservationStatusChangedEvent, ReservationStatusChangedData{
		ReservationID: r.ID,
		ClientID:      r.ClientID,
		PartnerID:     r.PartnerID,
		From:          from,
		To:            to,
	}))

	return nil
}

// AssignPartner points the reservation at a new partner awaiting their answer
func (r *Reservation) AssignPartner(partnerID models.ID) error {
	if r.Status.IsTerminal() {
		return &apperrors.ConflictError{Message: "Impossible d'assigner un partenaire à une réservation " + r.Status.String() + "."}
	}

	sent := status.AssignmentSent
	r.PartnerID = &partnerID
	r.PartnerStatus = &sent
	r.touch()

	r.recordEvent(events.NewEvent(r.ID, events.ReservationPartnerAssigned, ReservationPartnerAssignedData{
		ReservationID: r.ID,
		ClientID:      r.ClientID,
		PartnerID:     partnerID,
	}))

	return nil
}

// MirrorPartnerStatus copies the active assignment's status onto the reservation
func (r *Reservation) MirrorPartnerStatus(s status.AssignmentStatus) {
	r.PartnerStatus = &s
	r.touch()
}

// VisibleTo reports whether user may read the reservation
func (r *Reservation) VisibleTo(userID models.ID, role status.Role) bool {
	switch role {
	case status.RoleAdmin:
		return true
	case status.RoleClient:
		return r.ClientID == userID
	case status.RolePartner:
		return r.PartnerID != nil && *r.PartnerID == userID
	}
	return false
}

func (r *Reservation) touch() {
	r.Timestamps = r.Timestamps.Update()
	r.Version = r.Version.Update()
}

// Events returns domain events
func (r *Reservation) Events() []*events.Event {
	return r.events
}

// ClearEvents clears domain events
func (r *Reservation) ClearEvents() {
	r.events = nil
}

func (r *Reservation) recordEvent(event *events.Event) {
	r.events = append(r.events, event)
}

// Event Data Structures
type ReservationCreatedData struct {
	ReservationID models.ID    `json:"reservation_id"`
	ClientID      models.ID    `json:"client_id"`
	ServiceID     models.ID    `json:"service_id"`
	Urgent        bool         `json:"urgent"`
	Price         models.Money `json:"price"`
}

type ReservationStatusChangedData struct {
	ReservationID models.ID                `json:"reservation_id"`
	ClientID      models.ID                `json:"client_id"`
	PartnerID     *models.ID               `json:"partner_id,omitempty"`
	From          status.ReservationStatus `json:"from"`
	To            status.ReservationStatus `json:"to"`
}

type ReservationPartnerAssignedData struct {
	ReservationID models.ID `json:"reservation_id"`
	ClientID      models.ID `json:"client_id"`
	PartnerID     models.ID `json:"partner_id"`
}

// ReservationFilter narrows a reservation listing to what a caller may see
type ReservationFilter struct {
	ClientID  *models.ID
	PartnerID *models.ID
}

// Repository interfaces
type ReservationRepository interface {
	Save(ctx context.Context, reservation *Reservation) error
	FindByID(ctx context.Context, id models.ID) (*Reservation, error)
	Find(ctx context.Context, filter ReservationFilter) ([]*Reservation, error)
}
