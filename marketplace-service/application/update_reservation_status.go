package application

import (
	"context"
	"log/slog"

	"github.com/depanneo/booking-platform/marketplace-service/domain"
	"github.com/depanneo/booking-platform/shared/api"
	"github.com/depanneo/booking-platform/shared/apperrors"
	"github.com/depanneo/booking-platform/shared/events"
	"github.com/depanneo/booking-platform/shared/session"
	"github.com/depanneo/booking-platform/shared/status"
	"github.com/pkg/errors"
)

// UpdateReservationStatusCommand represents an administrator's status override
type UpdateReservationStatusCommand struct {
	ReservationID string
	Status        status.ReservationStatus
}

// UpdateReservationStatus use case
type UpdateReservationStatus struct {
	reservationRepository domain.ReservationRepository
	eventPublisher        events.Publisher
	logger                *slog.Logger
}

// NewUpdateReservationStatus creates a new UpdateReservationStatus use case
func NewUpdateReservationStatus(
	reservationRepository domain.ReservationRepository,
	eventPublisher events.Publisher,
	logger *slog.Logger,
) *UpdateReservationStatus {
	return &UpdateReservationStatus{
		reservationRepository: reservationRepository,
		eventPublisher:        eventPublisher,
		logger:                logger,
	}
}

// Execute sets the reservation to any valid status
func (uc *UpdateReservationStatus) Execute(ctx context.Context, actor session.User, cmd *UpdateReservationStatusCommand) (*api.Reservation, error) {
	if actor.Role != status.RoleAdmin {
		return nil, &apperrors.AuthorizationError{Message: "Seul un administrateur peut modifier le statut."}
	}
	if !status.IsValidReservationStatus(string(cmd.Status)) {
		return nil, apperrors.NewValidationError("status", "Statut de réservation inconnu.")
	}

	reservation, err := loadReservation(ctx, uc.reservationRepository, cmd.ReservationID)
	if err != nil {
		return nil, err
	}

	if err := reservation.ChangeStatus(cmd.Status, actor.Role); err != nil {
		return nil, err
	}

	if err := uc.reservationRepository.Save(ctx, reservation); err != nil {
		return nil, errors.Wrap(err, "failed to save reservation")
	}

	publishEvents(ctx, uc.eventPublisher, uc.logger, reservation.Events()...)

	return toReservationResource(reservation), nil
}
