package application

import (
	"context"
	"log/slog"

	"github.com/depanneo/booking-platform/shared/api"
	"github.com/depanneo/booking-platform/shared/apperrors"
	"github.com/depanneo/booking-platform/shared/models"
	"github.com/depanneo/booking-platform/shared/session"
	"github.com/depanneo/booking-platform/shared/status"
)

// AdminOverride lets an administrator force a reservation's status or
// (re)assign its partner. The marketplace is the authority; the role check
// here only avoids a pointless round trip.
type AdminOverride struct {
	client MarketplaceClient
	view   ViewRefresher
	logger *slog.Logger
}

// NewAdminOverride creates a new AdminOverride use case
func NewAdminOverride(client MarketplaceClient, view ViewRefresher, logger *slog.Logger) *AdminOverride {
	return &AdminOverride{
		client: client,
		view:   view,
		logger: logger,
	}
}

// SetReservationStatus sets any of the five reservation statuses
func (uc *AdminOverride) SetReservationStatus(ctx context.Context, sess *session.Session, reservationID string, to status.ReservationStatus) (*api.Reservation, error) {
	if err := sess.RequireRole(status.RoleAdmin); err != nil {
		return nil, err
	}
	if !status.IsValidReservationStatus(string(to)) {
		return nil, apperrors.NewValidationError("status", "Statut de réservation inconnu.")
	}

	id, err := models.NewID(reservationID)
	if err != nil {
		return nil, &apperrors.NotFoundError{Message: "Réservation introuvable."}
	}

	reservation, err := uc.client.UpdateReservationStatus(ctx, sess, id, to)
	if err != nil {
		return nil, err
	}

	uc.refresh(ctx, sess, id)
	return reservation, nil
}

// AssignPartner assigns a partner, superseding any earlier assignment
func (uc *AdminOverride) AssignPartner(ctx context.Context, sess *session.Session, reservationID, partnerID string) (*api.Reservation, error) {
	if err := sess.RequireRole(status.RoleAdmin); err != nil {
		return nil, err
	}

	partner, err := models.NewID(partnerID)
	if err != nil {
		return nil, apperrors.NewValidationError("partnerId", "Partenaire invalide.")
	}
	id, err := models.NewID(reservationID)
	if err != nil {
		return nil, &apperrors.NotFoundError{Message: "Réservation introuvable."}
	}

	reservation, err := uc.client.AssignPartner(ctx, sess, id, partner)
	if err != nil {
		return nil, err
	}

	uc.refresh(ctx, sess, id)
	return reservation, nil
}

func (uc *AdminOverride) refresh(ctx context.Context, sess *session.Session, reservationID models.ID) {
	if _, err := uc.view.Refresh(ctx, sess); err != nil {
		uc.logger.WarnContext(ctx, "failed to refresh reservations after override",
			slog.String("reservation_id", reservationID.String()),
			slog.Any("error", err),
		)
	}
}
