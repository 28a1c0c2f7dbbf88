package application

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/depanneo/booking-platform/marketplace-service/domain"
	"github.com/depanneo/booking-platform/shared/api"
	"github.com/depanneo/booking-platform/shared/apperrors"
	"github.com/depanneo/booking-platform/shared/events"
	"github.com/depanneo/booking-platform/shared/models"
	"github.com/depanneo/booking-platform/shared/session"
	"github.com/depanneo/booking-platform/shared/status"
	"github.com/depanneo/booking-platform/shared/validation"
	"github.com/pkg/errors"
)

// CreateReservationCommand represents the command to book a service
type CreateReservationCommand struct {
	api.CreateReservationRequest
	IdempotencyKey string `json:"-"`
}

// CreateReservation use case
type CreateReservation struct {
	serviceRepository     domain.ServiceRepository
	reservationRepository domain.ReservationRepository
	idempotencyStore      domain.IdempotencyStore
	validator             *validation.ReservationValidator
	eventPublisher        events.Publisher
	logger                *slog.Logger
}

// NewCreateReservation creates a new CreateReservation use case
func NewCreateReservation(
	serviceRepository domain.ServiceRepository,
	reservationRepository domain.ReservationRepository,
	idempotencyStore domain.IdempotencyStore,
	validator *validation.ReservationValidator,
	eventPublisher events.Publisher,
	logger *slog.Logger,
) *CreateReservation {
	return &CreateReservation{
		serviceRepository:     serviceRepository,
		reservationRepository: reservationRepository,
		idempotencyStore:      idempotencyStore,
		validator:             validator,
		eventPublisher:        eventPublisher,
		logger:                logger,
	}
}

// Execute creates a reservation in status nouvelle with the service's price.
// A request replaying an earlier idempotency key gets the reservation created the first time.
func (uc *CreateReservation) Execute(ctx context.Context, actor session.User, cmd *CreateReservationCommand) (*api.Reservation, error) {
	if actor.Role != status.RoleClient {
		return nil, &apperrors.AuthorizationError{Message: "Seul un client peut réserver un service."}
	}

	if replay, ok, err := uc.replay(ctx, actor, cmd.IdempotencyKey); err != nil || ok {
		return replay, err
	}

	serviceID, input, err := uc.validateCommand(cmd)
	if err != nil {
		return nil, err
	}

	service, err := uc.serviceRepository.FindByID(ctx, serviceID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find service")
	}

	date, err := input.ParsedDate()
	if err != nil {
		return nil, apperrors.NewValidationError("date_requested", "Date invalide.")
	}

	reservation, err := domain.CreateReservation(actor.ID, service, domain.ReservationDetails{
		Address:       input.Address,
		PostalCode:    input.PostalCode,
		Description:   input.Description,
		Urgent:        input.Urgent,
		DateRequested: date,
		TimeSlot:      input.TimeSlot,
	})
	if err != nil {
		return nil, err
	}

	if err := uc.reservationRepository.Save(ctx, reservation); err != nil {
		return nil, errors.Wrap(err, "failed to save reservation")
	}

	resource := toReservationResource(reservation)
	uc.remember(ctx, actor, cmd.IdempotencyKey, resource)
	publishEvents(ctx, uc.eventPublisher, uc.logger, reservation.Events()...)

	return resource, nil
}

func (uc *CreateReservation) replay(ctx context.Context, actor session.User, key string) (*api.Reservation, bool, error) {
	if key == "" {
		return nil, false, nil
	}

	raw, ok, err := uc.idempotencyStore.Lookup(ctx, actor.ID, key)
	if err != nil {
		return nil, false, errors.Wrap(err, "failed to look up idempotency key")
	}
	if !ok {
		return nil, false, nil
	}

	var reservation api.Reservation
	if err := json.Unmarshal(raw, &reservation); err != nil {
		return nil, false, errors.Wrap(err, "failed to decode stored response")
	}
	return &reservation, true, nil
}

func (uc *CreateReservation) remember(ctx context.Context, actor session.User, key string, resource *api.Reservation) {
	if key == "" {
		return
	}
	raw, err := json.Marshal(resource)
	if err == nil {
		err = uc.idempotencyStore.Remember(ctx, actor.ID, key, raw)
	}
	if err != nil {
		uc.logger.WarnContext(ctx, "failed to store idempotent response",
			slog.String("key", key), slog.Any("error", err))
	}
}

// validateCommand validates the booking form and returns the parsed service ID
func (uc *CreateReservation) validateCommand(cmd *CreateReservationCommand) (models.ID, *validation.ReservationInput, error) {
	input := &validation.ReservationInput{
		Address:       cmd.Address,
		PostalCode:    cmd.PostalCode,
		Description:   cmd.Description,
		Urgent:        cmd.Urgent,
		DateRequested: cmd.DateRequested,
		TimeSlot:      cmd.TimeSlot,
	}

	var fieldErrs []apperrors.FieldError

	serviceID, err := models.NewID(cmd.ServiceID)
	if err != nil {
		fieldErrs = append(fieldErrs, apperrors.FieldError{Param: "serviceId", Msg: "Service invalide."})
	}

	if err := uc.validator.Validate(input); err != nil {
		fieldErrs = append(fieldErrs, apperrors.FieldErrors(err)...)
	}

	if len(fieldErrs) > 0 {
		return "", nil, &apperrors.ValidationError{Errors: fieldErrs}
	}
	return serviceID, input, nil
}
