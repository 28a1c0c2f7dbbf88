package application

import (
	"context"
	"log/slog"

	"github.com/depanneo/booking-platform/marketplace-service/domain"
	"github.com/depanneo/booking-platform/shared/api"
	"github.com/depanneo/booking-platform/shared/apperrors"
	"github.com/depanneo/booking-platform/shared/events"
	"github.com/depanneo/booking-platform/shared/models"
	"github.com/depanneo/booking-platform/shared/session"
	"github.com/depanneo/booking-platform/shared/status"
	"github.com/pkg/errors"
)

// GetAssignment use case
type GetAssignment struct {
	assignmentRepository domain.AssignmentRepository
}

// NewGetAssignment creates a new GetAssignment use case
func NewGetAssignment(assignmentRepository domain.AssignmentRepository) *GetAssignment {
	return &GetAssignment{assignmentRepository: assignmentRepository}
}

// Execute returns the assignment to its addressed partner or an admin
func (uc *GetAssignment) Execute(ctx context.Context, actor session.User, assignmentID string) (*api.Assignment, error) {
	assignment, err := loadAssignment(ctx, uc.assignmentRepository, assignmentID)
	if err != nil {
		return nil, err
	}
	if actor.Role != status.RoleAdmin && assignment.PartnerID != actor.ID {
		return nil, &apperrors.AuthorizationError{Message: "Cette mission ne vous est pas adressée."}
	}
	return toAssignmentResource(assignment), nil
}

// RespondToAssignmentCommand represents a partner's answer
type RespondToAssignmentCommand struct {
	AssignmentID string
	Action       status.AssignmentAction
}

// RespondToAssignment use case
type RespondToAssignment struct {
	assignmentRepository domain.AssignmentRepository
	eventPublisher       events.Publisher
	logger               *slog.Logger
}

// NewRespondToAssignment creates a new RespondToAssignment use case
func NewRespondToAssignment(
	assignmentRepository domain.AssignmentRepository,
	eventPublisher events.Publisher,
	logger *slog.Logger,
) *RespondToAssignment {
	return &RespondToAssignment{
		assignmentRepository: assignmentRepository,
		eventPublisher:       eventPublisher,
		logger:               logger,
	}
}

// Execute accepts or rejects an envoyée assignment. Of concurrent answers only
// the first one stored wins; the others get a ConflictError.
func (uc *RespondToAssignment) Execute(ctx context.Context, actor session.User, cmd *RespondToAssignmentCommand) (*api.Assignment, error) {
	if actor.Role != status.RolePartner {
		return nil, &apperrors.AuthorizationError{Message: "Seul un partenaire peut répondre à une mission."}
	}
	if !cmd.Action.IsValid() {
		return nil, apperrors.NewValidationError("action", "Action inconnue, attendu accept ou reject.")
	}

	assignment, err := loadAssignment(ctx, uc.assignmentRepository, cmd.AssignmentID)
	if err != nil {
		return nil, err
	}

	if err := assignment.Respond(actor.ID, cmd.Action); err != nil {
		return nil, err
	}

	if err := uc.assignmentRepository.SaveResponse(ctx, assignment); err != nil {
		if apperrors.IsConflict(err) {
			return nil, err
		}
		return nil, errors.Wrap(err, "failed to save assignment response")
	}

	publishEvents(ctx, uc.eventPublisher, uc.logger, assignment.Events()...)

	return toAssignmentResource(assignment), nil
}

func loadAssignment(ctx context.Context, repository domain.AssignmentRepository, rawID string) (*domain.Assignment, error) {
	id, err := models.NewID(rawID)
	if err != nil {
		return nil, &apperrors.NotFoundError{Message: "Mission introuvable."}
	}

	assignment, err := repository.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find assignment")
	}
	if assignment == nil {
		return nil, &apperrors.NotFoundError{Message: "Mission introuvable."}
	}
	return assignment, nil
}
