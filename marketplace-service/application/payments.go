package application

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/depanneo/booking-platform/marketplace-service/domain"
	"github.com/depanneo/booking-platform/shared/api"
	"github.com/depanneo/booking-platform/shared/apperrors"
	"github.com/depanneo/booking-platform/shared/events"
	"github.com/depanneo/booking-platform/shared/models"
	"github.com/depanneo/booking-platform/shared/session"
	"github.com/depanneo/booking-platform/shared/status"
	"github.com/pkg/errors"
)

// PaymentDeclinedMessage is returned when a simulated confirmation fails
const PaymentDeclinedMessage = "Le paiement a été refusé."

// CreatePaymentIntentCommand represents the command to open a payment for a reservation
type CreatePaymentIntentCommand struct {
	api.CreatePaymentIntentRequest
	IdempotencyKey string `json:"-"`
}

// CreatePaymentIntent use case
type CreatePaymentIntent struct {
	reservationRepository domain.ReservationRepository
	paymentRepository     domain.PaymentRepository
	idempotencyStore      domain.IdempotencyStore
	eventPublisher        events.Publisher
	logger                *slog.Logger
}

// NewCreatePaymentIntent creates a new CreatePaymentIntent use case
func NewCreatePaymentIntent(
	reservationRepository domain.ReservationRepository,
	paymentRepository domain.PaymentRepository,
	idempotencyStore domain.IdempotencyStore,
	eventPublisher events.Publisher,
	logger *slog.Logger,
) *CreatePaymentIntent {
	return &CreatePaymentIntent{
		reservationRepository: reservationRepository,
		paymentRepository:     paymentRepository,
		idempotencyStore:      idempotencyStore,
		eventPublisher:        eventPublisher,
		logger:                logger,
	}
}

// Execute opens the payment of a reservation in status en attente. Only a
// declined payment may be followed by another one.
func (uc *CreatePaymentIntent) Execute(ctx context.Context, actor session.User, cmd *CreatePaymentIntentCommand) (*api.PaymentIntent, error) {
	if cmd.IdempotencyKey != "" {
		raw, ok, err := uc.idempotencyStore.Lookup(ctx, actor.ID, cmd.IdempotencyKey)
		if err != nil {
			return nil, errors.Wrap(err, "failed to look up idempotency key")
		}
		if ok {
			var intent api.PaymentIntent
			if err := json.Unmarshal(raw, &intent); err != nil {
				return nil, errors.Wrap(err, "failed to decode stored response")
			}
			return &intent, nil
		}
	}

	reservation, err := loadReservation(ctx, uc.reservationRepository, cmd.ReservationID)
	if err != nil {
		return nil, err
	}
	if reservation.ClientID != actor.ID {
		return nil, &apperrors.AuthorizationError{Message: "Cette réservation ne vous appartient pas."}
	}

	existing, err := uc.paymentRepository.FindByReservationID(ctx, reservation.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find payment")
	}
	// A declined payment is final, so the client may open a new one
	if existing != nil && existing.Status != status.PaymentFailed {
		return nil, &apperrors.ConflictError{Message: "Un paiement existe déjà pour cette réservation."}
	}

	payment, err := domain.CreatePaymentIntent(reservation, models.Euros(cmd.Amount))
	if err != nil {
		return nil, err
	}

	if err := uc.paymentRepository.Save(ctx, payment); err != nil {
		return nil, errors.Wrap(err, "failed to save payment")
	}

	intent := toPaymentIntentResource(payment)
	if cmd.IdempotencyKey != "" {
		if raw, err := json.Marshal(intent); err == nil {
			if err := uc.idempotencyStore.Remember(ctx, actor.ID, cmd.IdempotencyKey, raw); err != nil {
				uc.logger.WarnContext(ctx, "failed to store idempotent response",
					slog.String("key", cmd.IdempotencyKey), slog.Any("error", err))
			}
		}
	}

	publishEvents(ctx, uc.eventPublisher, uc.logger, payment.Events()...)

	return intent, nil
}

// ConfirmPaymentCommand represents the simulated confirmation of a payment intent
type ConfirmPaymentCommand struct {
	PaymentIntentID string
	SimulateSuccess bool
	IdempotencyKey  string
}

// ConfirmPayment use case
type ConfirmPayment struct {
	paymentRepository domain.PaymentRepository
	idempotencyStore  domain.IdempotencyStore
	eventPublisher    events.Publisher
	logger            *slog.Logger
}

// NewConfirmPayment creates a new ConfirmPayment use case
func NewConfirmPayment(
	paymentRepository domain.PaymentRepository,
	idempotencyStore domain.IdempotencyStore,
	eventPublisher events.Publisher,
	logger *slog.Logger,
) *ConfirmPayment {
	return &ConfirmPayment{
		paymentRepository: paymentRepository,
		idempotencyStore:  idempotencyStore,
		eventPublisher:    eventPublisher,
		logger:            logger,
	}
}

// Execute moves a pending payment to payé or échoué. A declined payment is
// returned together with a RequestError so callers see both.
func (uc *ConfirmPayment) Execute(ctx context.Context, actor session.User, cmd *ConfirmPaymentCommand) (*api.PaymentConfirmation, error) {
	if cmd.PaymentIntentID == "" {
		return nil, apperrors.NewValidationError("paymentIntentId", "Identifiant de paiement requis.")
	}

	if cmd.IdempotencyKey != "" {
		raw, ok, err := uc.idempotencyStore.Lookup(ctx, actor.ID, cmd.IdempotencyKey)
		if err != nil {
			return nil, errors.Wrap(err, "failed to look up idempotency key")
		}
		if ok {
			var confirmation api.PaymentConfirmation
			if err := json.Unmarshal(raw, &confirmation); err != nil {
				return nil, errors.Wrap(err, "failed to decode stored response")
			}
			return settled(&confirmation)
		}
	}

	payment, err := uc.paymentRepository.FindByIntentID(ctx, cmd.PaymentIntentID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find payment")
	}
	if payment == nil {
		return nil, &apperrors.NotFoundError{Message: "Paiement introuvable."}
	}
	if payment.ClientID != actor.ID && actor.Role != status.RoleAdmin {
		return nil, &apperrors.AuthorizationError{Message: "Ce paiement ne vous appartient pas."}
	}

	if err := payment.Confirm(cmd.SimulateSuccess); err != nil {
		return nil, err
	}

	if err := uc.paymentRepository.Save(ctx, payment); err != nil {
		return nil, errors.Wrap(err, "failed to save payment")
	}

	publishEvents(ctx, uc.eventPublisher, uc.logger, payment.Events()...)

	confirmation := &api.PaymentConfirmation{
		PaymentIntentID: payment.PaymentIntentID,
		ReservationID:   payment.ReservationID,
		Status:          payment.Status,
		ConfirmedAt:     payment.Timestamps.UpdatedAt,
	}

	if cmd.IdempotencyKey != "" {
		if raw, err := json.Marshal(confirmation); err == nil {
			if err := uc.idempotencyStore.Remember(ctx, actor.ID, cmd.IdempotencyKey, raw); err != nil {
				uc.logger.WarnContext(ctx, "failed to store idempotent response",
					slog.String("key", cmd.IdempotencyKey), slog.Any("error", err))
			}
		}
	}

	return settled(confirmation)
}

func settled(confirmation *api.PaymentConfirmation) (*api.PaymentConfirmation, error) {
	if confirmation.Status == status.PaymentFailed {
		return confirmation, &apperrors.RequestError{Status: http.StatusPaymentRequired, Message: PaymentDeclinedMessage}
	}
	return confirmation, nil
}
