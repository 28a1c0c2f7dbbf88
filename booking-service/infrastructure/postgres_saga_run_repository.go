package infrastructure

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/depanneo/booking-platform/booking-service/domain"
	"github.com/depanneo/booking-platform/shared/apperrors"
	"github.com/depanneo/booking-platform/shared/events"
	sharedinfra "github.com/depanneo/booking-platform/shared/infrastructure"
	"github.com/depanneo/booking-platform/shared/models"
	"github.com/depanneo/booking-platform/shared/status"
	"github.com/depanneo/booking-platform/shared/validation"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
)

// PostgresSagaRunRepository implements SagaRunRepository using PostgreSQL
type PostgresSagaRunRepository struct {
	db *sqlx.DB
}

// NewPostgresSagaRunRepository creates a new PostgresSagaRunRepository
func NewPostgresSagaRunRepository(db *sqlx.DB) *PostgresSagaRunRepository {
	return &PostgresSagaRunRepository{db: db}
}

// postgresSagaRun represents a saga run in database
type postgresSagaRun struct {
	ID              string    `db:"id"`
	ClientID        string    `db:"client_id"`
	ServiceID       string    `db:"service_id"`
	Price           int64     `db:"price"`
	Currency        string    `db:"currency"`
	Reservation     []byte    `db:"reservation"`
	SimulateSuccess bool      `db:"simulate_success"`
	Step            string    `db:"step"`
	Status          string    `db:"status"`
	ReservationID   *string   `db:"reservation_id"`
	PaymentIntentID *string   `db:"payment_intent_id"`
	PaymentStatus   *string   `db:"payment_status"`
	PaymentAttempt  int       `db:"payment_attempt"`
	FailureKind     string    `db:"failure_kind"`
	FailureMessage  string    `db:"failure_message"`
	CreatedAt       time.Time `db:"created_at"`
	UpdatedAt       time.Time `db:"updated_at"`
	Version         int       `db:"version"`
	OldVersion      int       `db:"old_version"`
}

const sagaRunColumns = `
	id, client_id, service_id, price, currency, reservation, simulate_success,
	step, status, reservation_id, payment_intent_id, payment_status, payment_attempt,
	failure_kind, failure_message, created_at, updated_at, version`

// Save stores the run and appends its events in one transaction
func (r *PostgresSagaRunRepository) Save(ctx context.Context, run *domain.SagaRun) error {
	pgRun, err := toPostgresSagaRun(run)
	if err != nil {
		return err
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "failed to begin transaction")
	}
	defer tx.Rollback()

	if isNewRun(run) {
		err = r.insert(ctx, tx, pgRun)
	} else {
		err = r.update(ctx, tx, pgRun)
	}
	if err != nil {
		return err
	}

	if err := sharedinfra.AppendEvents(ctx, tx, run.ID, run.Events()); err != nil {
		return err
	}

	return errors.Wrap(tx.Commit(), "failed to commit booking run")
}

func isNewRun(run *domain.SagaRun) bool {
	for _, event := range run.Events() {
		if event.EventType == events.BookingSagaStartedEvent {
			return true
		}
	}
	return false
}

func (r *PostgresSagaRunRepository) insert(ctx context.Context, tx *sqlx.Tx, pgRun *postgresSagaRun) error {
	query := `
		INSERT INTO saga_runs (` + sagaRunColumns + `
		) VALUES (
			:id, :client_id, :service_id, :price, :currency, :reservation, :simulate_success,
			:step, :status, :reservation_id, :payment_intent_id, :payment_status, :payment_attempt,
			:failure_kind, :failure_message, :created_at, :updated_at, :version
		)`

	if _, err := tx.NamedExecContext(ctx, query, pgRun); err != nil {
		return errors.Wrap(err, "failed to insert booking run")
	}
	return nil
}

func (r *PostgresSagaRunRepository) update(ctx context.Context, tx *sqlx.Tx, pgRun *postgresSagaRun) error {
	query := `
		UPDATE saga_runs
		SET step = :step, status = :status, reservation_id = :reservation_id, simulate_success = :simulate_success,
			payment_intent_id = :payment_intent_id, payment_status = :payment_status, payment_attempt = :payment_attempt,
			failure_kind = :failure_kind, failure_message = :failure_message,
			updated_at = :updated_at, version = :version
		WHERE id = :id AND version = :old_version`

	result, err := tx.NamedExecContext(ctx, query, pgRun)
	if err != nil {
		return errors.Wrap(err, "failed to update booking run")
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "failed to read affected rows")
	}
	if rows == 0 {
		return &apperrors.ConflictError{Message: "La réservation est déjà en cours de traitement."}
	}
	return nil
}

// FindByID finds a run by ID
func (r *PostgresSagaRunRepository) FindByID(ctx context.Context, id models.ID) (*domain.SagaRun, error) {
	var pgRun postgresSagaRun
	err := r.db.GetContext(ctx, &pgRun, `SELECT `+sagaRunColumns+` FROM saga_runs WHERE id = $1`, id.String())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil // Run not found
		}
		return nil, errors.Wrap(err, "failed to find booking run")
	}
	return toDomainSagaRun(&pgRun)
}

func toPostgresSagaRun(run *domain.SagaRun) (*postgresSagaRun, error) {
	reservation, err := json.Marshal(run.Reservation)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal reservation input")
	}

	pgRun := &postgresSagaRun{
		ID:              run.ID.String(),
		ClientID:        run.ClientID.String(),
		ServiceID:       run.ServiceID.String(),
		Price:           run.Price.Amount,
		Currency:        run.Price.Currency,
		Reservation:     reservation,
		SimulateSuccess: run.SimulateSuccess,
		Step:            run.Step.String(),
		Status:          string(run.Status),
		PaymentIntentID: run.PaymentIntentID,
		PaymentAttempt:  run.PaymentAttempt,
		FailureKind:     string(run.FailureKind),
		FailureMessage:  run.FailureMessage,
		CreatedAt:       run.Timestamps.CreatedAt,
		UpdatedAt:       run.Timestamps.UpdatedAt,
		Version:         run.Version.Value,
		OldVersion:      run.Version.Value - 1, // Optimistic locking
	}
	if run.ReservationID != nil {
		id := run.ReservationID.String()
		pgRun.ReservationID = &id
	}
	if run.PaymentStatus != nil {
		s := run.PaymentStatus.String()
		pgRun.PaymentStatus = &s
	}
	return pgRun, nil
}

func toDomainSagaRun(pgRun *postgresSagaRun) (*domain.SagaRun, error) {
	id, err := models.NewID(pgRun.ID)
	if err != nil {
		return nil, errors.Wrap(err, "invalid run ID")
	}
	clientID, err := models.NewID(pgRun.ClientID)
	if err != nil {
		return nil, errors.Wrap(err, "invalid client ID")
	}
	serviceID, err := models.NewID(pgRun.ServiceID)
	if err != nil {
		return nil, errors.Wrap(err, "invalid service ID")
	}

	var reservation validation.ReservationInput
	if err := json.Unmarshal(pgRun.Reservation, &reservation); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal reservation input")
	}

	run := &domain.SagaRun{
		ID:              id,
		ClientID:        clientID,
		ServiceID:       serviceID,
		Price:           models.NewMoney(pgRun.Price, pgRun.Currency),
		Reservation:     reservation,
		SimulateSuccess: pgRun.SimulateSuccess,
		Step:            domain.SagaStep(pgRun.Step),
		Status:          domain.SagaStatus(pgRun.Status),
		PaymentIntentID: pgRun.PaymentIntentID,
		PaymentAttempt:  pgRun.PaymentAttempt,
		FailureKind:     apperrors.Kind(pgRun.FailureKind),
		FailureMessage:  pgRun.FailureMessage,
		Timestamps: models.Timestamps{
			CreatedAt: pgRun.CreatedAt,
			UpdatedAt: pgRun.UpdatedAt,
		},
		Version: models.Version{Value: pgRun.Version},
	}

	if pgRun.ReservationID != nil {
		reservationID, err := models.NewID(*pgRun.ReservationID)
		if err != nil {
			return nil, errors.Wrap(err, "invalid reservation ID")
		}
		run.ReservationID = &reservationID
	}
	if pgRun.PaymentStatus != nil {
		paymentStatus := status.PaymentStatus(*pgRun.PaymentStatus)
		run.PaymentStatus = &paymentStatus
	}

	return run, nil
}
