package application

import (
	"context"

	"github.com/depanneo/booking-platform/marketplace-service/domain"
	"github.com/depanneo/booking-platform/shared/api"
	"github.com/depanneo/booking-platform/shared/apperrors"
	"github.com/depanneo/booking-platform/shared/models"
	"github.com/depanneo/booking-platform/shared/session"
	"github.com/depanneo/booking-platform/shared/status"
	"github.com/pkg/errors"
)

// ListReservations returns the reservations the actor may see: their own for
// a client, the assigned ones for a partner, all of them for an admin
type ListReservations struct {
	reservationRepository domain.ReservationRepository
}

// NewListReservations creates a new ListReservations use case
func NewListReservations(reservationRepository domain.ReservationRepository) *ListReservations {
	return &ListReservations{reservationRepository: reservationRepository}
}

// Execute lists reservations newest first
func (uc *ListReservations) Execute(ctx context.Context, actor session.User) ([]*api.Reservation, error) {
	var filter domain.ReservationFilter
	switch actor.Role {
	case status.RoleClient:
		filter.ClientID = &actor.ID
	case status.RolePartner:
		filter.PartnerID = &actor.ID
	case status.RoleAdmin:
	default:
		return nil, &apperrors.AuthorizationError{}
	}

	reservations, err := uc.reservationRepository.Find(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reservations")
	}

	resources := make([]*api.Reservation, len(reservations))
	for i, reservation := range reservations {
		resources[i] = toReservationResource(reservation)
	}
	return resources, nil
}

// GetReservation use case
type GetReservation struct {
	reservationRepository domain.ReservationRepository
}

// NewGetReservation creates a new GetReservation use case
func NewGetReservation(reservationRepository domain.ReservationRepository) *GetReservation {
	return &GetReservation{reservationRepository: reservationRepository}
}

// Execute returns one reservation if the actor may read it
func (uc *GetReservation) Execute(ctx context.Context, actor session.User, reservationID string) (*api.Reservation, error) {
	reservation, err := loadReservation(ctx, uc.reservationRepository, reservationID)
	if err != nil {
		return nil, err
	}

	if !reservation.VisibleTo(actor.ID, actor.Role) {
		return nil, &apperrors.AuthorizationError{Message: "Vous n'avez pas accès à cette réservation."}
	}

	return toReservationResource(reservation), nil
}

func loadReservation(ctx context.Context, repository domain.ReservationRepository, rawID string) (*domain.Reservation, error) {
	id, err := models.NewID(rawID)
	if err != nil {
		return nil, &apperrors.NotFoundError{Message: "Réservation introuvable."}
	}

	reservation, err := repository.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find reservation")
	}
	if reservation == nil {
		return nil, &apperrors.NotFoundError{Message: "Réservation introuvable."}
	}
	return reservation, nil
}

// GetReservationHistory use case
type GetReservationHistory struct {
	reservationRepository domain.ReservationRepository
	history               domain.EventHistory
}

// NewGetReservationHistory creates a new GetReservationHistory use case
func NewGetReservationHistory(reservationRepository domain.ReservationRepository, history domain.EventHistory) *GetReservationHistory {
	return &GetReservationHistory{
		reservationRepository: reservationRepository,
		history:               history,
	}
}

// Execute returns the audit trail of a reservation, its payment and its
// assignments, oldest first. Administrators only.
func (uc *GetReservationHistory) Execute(ctx context.Context, actor session.User, reservationID string) ([]*api.HistoryEntry, error) {
	if actor.Role != status.RoleAdmin {
		return nil, &apperrors.AuthorizationError{Message: "Seul un administrateur peut consulter l'historique."}
	}

	reservation, err := loadReservation(ctx, uc.reservationRepository, reservationID)
	if err != nil {
		return nil, err
	}

	evts, err := uc.history.GetCorrelatedEvents(ctx, reservation.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read reservation history")
	}

	entries := make([]*api.HistoryEntry, 0, len(evts))
	for _, event := range evts {
		data, err := event.MarshalPayload()
		if err != nil {
			return nil, errors.Wrap(err, "failed to encode history entry")
		}
		entries = append(entries, &api.HistoryEntry{
			ID:          event.ID,
			AggregateID: event.AggregateID,
			EventType:   event.EventType,
			Data:        data,
			Timestamp:   event.Timestamp,
		})
	}
	return entries, nil
}
