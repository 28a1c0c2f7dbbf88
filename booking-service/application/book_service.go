package application

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/depanneo/booking-platform/booking-service/domain"
	"github.com/depanneo/booking-platform/shared/api"
	"github.com/depanneo/booking-platform/shared/apperrors"
	"github.com/depanneo/booking-platform/shared/events"
	"github.com/depanneo/booking-platform/shared/models"
	"github.com/depanneo/booking-platform/shared/session"
	"github.com/depanneo/booking-platform/shared/status"
	"github.com/depanneo/booking-platform/shared/telemetry"
	"github.com/depanneo/booking-platform/shared/validation"
	"github.com/pkg/errors"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// DefaultStepTimeout bounds a single marketplace call of the saga
const DefaultStepTimeout = 10 * time.Second

// BookCommand represents a client's booking request
type BookCommand struct {
	ServiceID       string
	ServicePrice    models.Money
	Reservation     validation.ReservationInput
	SimulateSuccess *bool
}

// BookResult reports how far a booking run went
type BookResult struct {
	RunID           models.ID             `json:"run_id"`
	Status          domain.SagaStatus     `json:"status"`
	Step            domain.SagaStep       `json:"step"`
	ReservationID   *models.ID            `json:"reservation_id,omitempty"`
	PaymentIntentID *string               `json:"payment_intent_id,omitempty"`
	PaymentStatus   *status.PaymentStatus `json:"payment_status,omitempty"`
	FailureKind     apperrors.Kind        `json:"failure_kind,omitempty"`
	FailureMessage  string                `json:"failure_message,omitempty"`
	Reservation     *api.Reservation      `json:"reservation,omitempty"`
}

// BookService drives the reservation, payment intent and confirmation steps
// against the marketplace, one run at a time
type BookService struct {
	client      MarketplaceClient
	runs        domain.SagaRunRepository
	publisher   events.Publisher
	validator   *validation.ReservationValidator
	stepTimeout time.Duration
	logger      *slog.Logger
}

// NewBookService creates a new BookService use case
func NewBookService(
	client MarketplaceClient,
	runs domain.SagaRunRepository,
	publisher events.Publisher,
	validator *validation.ReservationValidator,
	stepTimeout time.Duration,
	logger *slog.Logger,
) *BookService {
	if stepTimeout <= 0 {
		stepTimeout = DefaultStepTimeout
	}
	return &BookService{
		client:      client,
		runs:        runs,
		publisher:   publisher,
		validator:   validator,
		stepTimeout: stepTimeout,
		logger:      logger,
	}
}

// Execute books a service: it creates the reservation, then the payment intent
// for the service price, then confirms the payment. Input is checked before
// any call is made. A failing step stops the run without undoing earlier
// steps; the returned result tells how far it got.
func (s *BookService) Execute(ctx context.Context, sess *session.Session, cmd *BookCommand) (*BookResult, error) {
	if err := sess.RequireRole(status.RoleClient); err != nil {
		return nil, err
	}
	if !cmd.ServicePrice.IsPositive() {
		return nil, apperrors.NewValidationError("service_price", apperrors.PriceUnavailableMessage)
	}
	if err := s.validator.Validate(&cmd.Reservation); err != nil {
		return nil, err
	}
	serviceID, err := models.NewID(cmd.ServiceID)
	if err != nil {
		return nil, apperrors.NewValidationError("serviceId", "Service inconnu.")
	}

	simulateSuccess := true
	if cmd.SimulateSuccess != nil {
		simulateSuccess = *cmd.SimulateSuccess
	}

	run := domain.NewSagaRun(sess.User().ID, serviceID, cmd.ServicePrice, cmd.Reservation, simulateSuccess)
	if err := s.runs.Save(ctx, run); err != nil {
		return nil, errors.Wrap(err, "failed to save booking run")
	}
	s.publish(ctx, run)

	return s.drive(ctx, sess, run)
}

// ResumeCommand represents a request to continue a stopped run
type ResumeCommand struct {
	RunID           string
	SimulateSuccess *bool
}

// Resume continues a failed, cancelled or interrupted run from the step it
// stopped at, reusing the reservation and intent it already created. After a
// declined payment the run opens a new intent instead.
func (s *BookService) Resume(ctx context.Context, sess *session.Session, cmd *ResumeCommand) (*BookResult, error) {
	if err := sess.RequireRole(status.RoleClient); err != nil {
		return nil, err
	}

	run, err := s.load(ctx, sess, cmd.RunID)
	if err != nil {
		return nil, err
	}

	if err := run.Resume(); err != nil {
		return nil, err
	}
	if cmd.SimulateSuccess != nil {
		run.SimulateSuccess = *cmd.SimulateSuccess
	}
	s.persist(ctx, run)

	return s.drive(ctx, sess, run)
}

// Get reports the state of one of the caller's runs
func (s *BookService) Get(ctx context.Context, sess *session.Session, runID string) (*BookResult, error) {
	if err := sess.RequireRole(status.RoleClient, status.RoleAdmin); err != nil {
		return nil, err
	}

	run, err := s.load(ctx, sess, runID)
	if err != nil {
		return nil, err
	}
	return toBookResult(run, nil), nil
}

func (s *BookService) load(ctx context.Context, sess *session.Session, rawID string) (*domain.SagaRun, error) {
	notFound := &apperrors.NotFoundError{Message: "Réservation en cours introuvable."}

	id, err := models.NewID(rawID)
	if err != nil {
		return nil, notFound
	}

	run, err := s.runs.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find booking run")
	}
	if run == nil {
		return nil, notFound
	}

	user := sess.User()
	if user.Role != status.RoleAdmin && run.ClientID != user.ID {
		return nil, &apperrors.AuthorizationError{Message: "Cette réservation ne vous appartient pas."}
	}
	return run, nil
}

// drive runs the remaining steps strictly in order. A cancelled caller stops
// the run before the next call is issued.
func (s *BookService) drive(ctx context.Context, sess *session.Session, run *domain.SagaRun) (*BookResult, error) {
	var reservation *api.Reservation

	for !run.IsFinished() {
		if err := ctx.Err(); err != nil {
			return s.cancel(ctx, run, reservation, err)
		}

		created, err := s.runStep(ctx, sess, run)
		if created != nil {
			reservation = created
		}
		if err != nil {
			if ctx.Err() != nil {
				return s.cancel(ctx, run, reservation, ctx.Err())
			}
			if isPaymentDecline(run, err) {
				run.PaymentDeclined(err)
			} else {
				run.Fail(err)
			}
			s.persist(ctx, run)
			s.logger.WarnContext(ctx, "booking run failed",
				slog.String("run_id", run.ID.String()),
				slog.String("step", run.Step.String()),
				slog.String("kind", string(run.FailureKind)),
				slog.Any("error", err),
			)
			return toBookResult(run, reservation), err
		}

		s.persist(ctx, run)
	}

	if reservation == nil && run.ReservationID != nil {
		fetched, err := s.client.GetReservation(ctx, sess, *run.ReservationID)
		if err != nil {
			s.logger.WarnContext(ctx, "failed to load booked reservation",
				slog.String("run_id", run.ID.String()),
				slog.Any("error", err),
			)
		}
		reservation = fetched
	}

	return toBookResult(run, reservation), nil
}

// runStep issues the marketplace call of the current step under its own
// deadline and advances the run on success
func (s *BookService) runStep(ctx context.Context, sess *session.Session, run *domain.SagaRun) (*api.Reservation, error) {
	step := run.Step
	start := time.Now()

	stepCtx, cancel := context.WithTimeout(ctx, s.stepTimeout)
	defer cancel()

	stepCtx, span := telemetry.StartSpan(stepCtx, "booking.saga."+step.String(),
		trace.WithAttributes(
			attribute.String("run_id", run.ID.String()),
			attribute.String("step", step.String()),
		),
	)
	defer span.End()

	outcome := "error"
	defer func() {
		telemetry.RecordCounter(ctx, "booking_saga_steps_total", "Total booking saga steps", 1,
			attribute.String("step", step.String()),
			attribute.String("outcome", outcome),
		)
		telemetry.RecordHistogram(ctx, "booking_saga_step_duration_seconds", "Booking saga step duration", time.Since(start).Seconds(),
			attribute.String("step", step.String()),
		)
	}()

	reservation, err := s.callStep(stepCtx, sess, run)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) && ctx.Err() == nil && !apperrors.IsNetwork(err) {
			err = &apperrors.NetworkError{Err: err}
		}
		if ctx.Err() != nil {
			outcome = "cancelled"
		}
		span.RecordError(err)
		return reservation, err
	}

	outcome = "ok"
	return reservation, nil
}

func (s *BookService) callStep(ctx context.Context, sess *session.Session, run *domain.SagaRun) (*api.Reservation, error) {
	key := run.IdempotencyKey()

	switch run.Step {
	case domain.StepCreatingReservation:
		reservation, err := s.client.CreateReservation(ctx, sess, key, toReservationRequest(run))
		if err != nil {
			return nil, err
		}
		run.ReservationCreated(reservation.ID)
		return reservation, nil

	case domain.StepCreatingIntent:
		intent, err := s.client.CreatePaymentIntent(ctx, sess, key, &api.CreatePaymentIntentRequest{
			ReservationID: run.ReservationID.String(),
			Amount:        run.Price.Amount,
		})
		if err != nil {
			return nil, err
		}
		run.IntentCreated(intent.PaymentIntentID)
		return nil, nil

	case domain.StepConfirmingPayment:
		simulateSuccess := run.SimulateSuccess
		confirmation, err := s.client.ConfirmPayment(ctx, sess, key, &api.ConfirmPaymentRequest{
			PaymentIntentID: *run.PaymentIntentID,
			SimulateSuccess: &simulateSuccess,
		})
		if err != nil {
			return nil, err
		}
		run.PaymentConfirmed(confirmation.Status)
		return nil, nil
	}

	return nil, errors.Errorf("unknown saga step %q", run.Step)
}

// isPaymentDecline reports whether the marketplace refused the confirmation
// itself, as opposed to the call failing
func isPaymentDecline(run *domain.SagaRun, err error) bool {
	if run.Step != domain.StepConfirmingPayment {
		return false
	}
	var requestErr *apperrors.RequestError
	return errors.As(err, &requestErr) && requestErr.Status == http.StatusPaymentRequired
}

func (s *BookService) cancel(ctx context.Context, run *domain.SagaRun, reservation *api.Reservation, cause error) (*BookResult, error) {
	run.Cancel()
	s.persist(ctx, run)
	s.logger.InfoContext(context.WithoutCancel(ctx), "booking run cancelled",
		slog.String("run_id", run.ID.String()),
		slog.String("step", run.Step.String()),
	)
	return toBookResult(run, reservation), errors.Wrap(cause, "booking cancelled")
}

// persist stores the run's progress even when the caller has gone away. The
// marketplace state is already changed at this point, so a store failure is
// logged and the run carries on.
func (s *BookService) persist(ctx context.Context, run *domain.SagaRun) {
	ctx = context.WithoutCancel(ctx)

	if err := s.runs.Save(ctx, run); err != nil {
		s.logger.ErrorContext(ctx, "failed to save booking run",
			slog.String("run_id", run.ID.String()),
			slog.String("step", run.Step.String()),
			slog.Any("error", err),
		)
	}
	s.publish(ctx, run)
}

func (s *BookService) publish(ctx context.Context, run *domain.SagaRun) {
	evts := run.Events()
	run.ClearEvents()
	if len(evts) == 0 {
		return
	}
	if err := s.publisher.Publish(ctx, evts...); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish booking events",
			slog.String("run_id", run.ID.String()),
			slog.String("event_type", evts[0].EventType),
			slog.Any("error", err),
		)
	}
}

func toReservationRequest(run *domain.SagaRun) *api.CreateReservationRequest {
	return &api.CreateReservationRequest{
		ServiceID:     run.ServiceID.String(),
		Address:       run.Reservation.Address,
		PostalCode:    run.Reservation.PostalCode,
		Description:   run.Reservation.Description,
		Urgent:        run.Reservation.Urgent,
		DateRequested: run.Reservation.DateRequested,
		TimeSlot:      run.Reservation.TimeSlot,
	}
}

func toBookResult(run *domain.SagaRun, reservation *api.Reservation) *BookResult {
	return &BookResult{
		RunID:           run.ID,
		Status:          run.Status,
		Step:            run.Step,
		ReservationID:   run.ReservationID,
		PaymentIntentID: run.PaymentIntentID,
		PaymentStatus:   run.PaymentStatus,
		FailureKind:     run.FailureKind,
		FailureMessage:  run.FailureMessage,
		Reservation:     reservation,
	}
}
