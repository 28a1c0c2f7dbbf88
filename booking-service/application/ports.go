package application

import (
	"context"

	"github.com/depanneo/booking-platform/shared/api"
	"github.com/depanneo/booking-platform/shared/models"
	"github.com/depanneo/booking-platform/shared/session"
	"github.com/depanneo/booking-platform/shared/status"
)

// MarketplaceClient is the authenticated HTTP/JSON boundary to the marketplace.
// Every failure is one of the apperrors types, so callers never see transport
// detail; idempotencyKey may be empty.
type MarketplaceClient interface {
	CurrentUser(ctx context.Context, token string) (*session.User, error)
	CreateReservation(ctx context.Context, sess *session.Session, idempotencyKey string, req *api.CreateReservationRequest) (*api.Reservation, error)
	CreatePaymentIntent(ctx context.Context, sess *session.Session, idempotencyKey string, req *api.CreatePaymentIntentRequest) (*api.PaymentIntent, error)
	ConfirmPayment(ctx context.Context, sess *session.Session, idempotencyKey string, req *api.ConfirmPaymentRequest) (*api.PaymentConfirmation, error)
	ListReservations(ctx context.Context, sess *session.Session) ([]*api.Reservation, error)
	GetReservation(ctx context.Context, sess *session.Session, reservationID models.ID) (*api.Reservation, error)
	UpdateReservationStatus(ctx context.Context, sess *session.Session, reservationID models.ID, reservationStatus status.ReservationStatus) (*api.Reservation, error)
	AssignPartner(ctx context.Context, sess *session.Session, reservationID, partnerID models.ID) (*api.Reservation, error)
	GetAssignment(ctx context.Context, sess *session.Session, assignmentID models.ID) (*api.Assignment, error)
	RespondToAssignment(ctx context.Context, sess *session.Session, assignmentID models.ID, action status.AssignmentAction) (*api.Assignment, error)
}

// ViewRefresher reloads the reservation list a session's user sees
type ViewRefresher interface {
	Refresh(ctx context.Context, sess *session.Session) ([]*api.Reservation, error)
}
