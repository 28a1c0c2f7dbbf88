package application

import (
	"context"
	"log/slog"
	"time"

	"github.com/depanneo/booking-platform/marketplace-service/domain"
	"github.com/depanneo/booking-platform/shared/api"
	"github.com/depanneo/booking-platform/shared/apperrors"
	"github.com/depanneo/booking-platform/shared/events"
	"github.com/depanneo/booking-platform/shared/models"
	"github.com/depanneo/booking-platform/shared/session"
	"github.com/depanneo/booking-platform/shared/status"
	"github.com/pkg/errors"
)

// AssignPartnerCommand represents an administrator (re)assigning a partner
type AssignPartnerCommand struct {
	ReservationID string
	PartnerID     string
}

// AssignPartner creates a new envoyée assignment and supersedes every
// assignment still active on the reservation
type AssignPartner struct {
	reservationRepository domain.ReservationRepository
	assignmentRepository  domain.AssignmentRepository
	eventPublisher        events.Publisher
	logger                *slog.Logger
	now                   func() time.Time
}

// NewAssignPartner creates a new AssignPartner use case
func NewAssignPartner(
	reservationRepository domain.ReservationRepository,
	assignmentRepository domain.AssignmentRepository,
	eventPublisher events.Publisher,
	logger *slog.Logger,
) *AssignPartner {
	return &AssignPartner{
		reservationRepository: reservationRepository,
		assignmentRepository:  assignmentRepository,
		eventPublisher:        eventPublisher,
		logger:                logger,
		now:                   func() time.Time { return time.Now().UTC() },
	}
}

// Execute assigns the partner unless the reservation is annulée or terminée
func (uc *AssignPartner) Execute(ctx context.Context, actor session.User, cmd *AssignPartnerCommand) (*api.Reservation, error) {
	if actor.Role != status.RoleAdmin {
		return nil, &apperrors.AuthorizationError{Message: "Seul un administrateur peut assigner un partenaire."}
	}

	partnerID, err := models.NewID(cmd.PartnerID)
	if err != nil {
		return nil, apperrors.NewValidationError("partnerId", "Partenaire invalide.")
	}

	reservation, err := loadReservation(ctx, uc.reservationRepository, cmd.ReservationID)
	if err != nil {
		return nil, err
	}

	if err := reservation.AssignPartner(partnerID); err != nil {
		return nil, err
	}

	active, err := uc.assignmentRepository.FindActiveByReservationID(ctx, reservation.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find active assignments")
	}

	supersededAt := uc.now()
	for _, previous := range active {
		previous.Supersede(supersededAt)
	}

	assignment := domain.NewAssignment(reservation, partnerID)

	if err := uc.assignmentRepository.Reassign(ctx, reservation, active, assignment); err != nil {
		return nil, errors.Wrap(err, "failed to reassign reservation")
	}

	evts := reservation.Events()
	for _, previous := range active {
		evts = append(evts, previous.Events()...)
	}
	evts = append(evts, assignment.Events()...)
	publishEvents(ctx, uc.eventPublisher, uc.logger, evts...)

	return toReservationResource(reservation), nil
}
