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

// RespondToAssignmentCommand represents a partner's answer to an assignment
type RespondToAssignmentCommand struct {
	AssignmentID string
	Action       status.AssignmentAction
}

// RespondToAssignment use case
type RespondToAssignment struct {
	client MarketplaceClient
	view   ViewRefresher
	logger *slog.Logger
}

// NewRespondToAssignment creates a new RespondToAssignment use case
func NewRespondToAssignment(client MarketplaceClient, view ViewRefresher, logger *slog.Logger) *RespondToAssignment {
	return &RespondToAssignment{
		client: client,
		view:   view,
		logger: logger,
	}
}

// Execute accepts or rejects an assignment addressed to the session's partner.
// An assignment already answered is refused locally without a write; a race
// lost on the marketplace comes back as a ConflictError.
func (uc *RespondToAssignment) Execute(ctx context.Context, sess *session.Session, cmd *RespondToAssignmentCommand) (*api.Assignment, error) {
	if err := sess.RequireRole(status.RolePartner); err != nil {
		return nil, err
	}
	if !cmd.Action.IsValid() {
		return nil, apperrors.NewValidationError("action", "Action inconnue, attendu accept ou reject.")
	}

	assignmentID, err := models.NewID(cmd.AssignmentID)
	if err != nil {
		return nil, &apperrors.NotFoundError{Message: "Mission introuvable."}
	}

	current, err := uc.client.GetAssignment(ctx, sess, assignmentID)
	if err != nil {
		return nil, err
	}
	if current.PartnerID != sess.User().ID {
		return nil, &apperrors.AuthorizationError{Message: "Cette mission ne vous est pas adressée."}
	}
	if current.SupersededAt != nil {
		return nil, &apperrors.ConflictError{Message: "Cette mission a été réattribuée."}
	}
	if !status.CanRespondToAssignment(current.Status) {
		return nil, &apperrors.ConflictError{Message: "Vous avez déjà répondu à cette mission."}
	}

	updated, err := uc.client.RespondToAssignment(ctx, sess, assignmentID, cmd.Action)
	if err != nil {
		return nil, err
	}

	if _, err := uc.view.Refresh(ctx, sess); err != nil {
		uc.logger.WarnContext(ctx, "failed to refresh reservations after response",
			slog.String("assignment_id", assignmentID.String()),
			slog.Any("error", err),
		)
	}

	return updated, nil
}
