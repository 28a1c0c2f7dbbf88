package infrastructure

import (
	"context"
	"database/sql"
	"time"

	"github.com/depanneo/booking-platform/marketplace-service/domain"
	"github.com/depanneo/booking-platform/shared/apperrors"
	"github.com/depanneo/booking-platform/shared/events"
	sharedinfra "github.com/depanneo/booking-platform/shared/infrastructure"
	"github.com/depanneo/booking-platform/shared/models"
	"github.com/depanneo/booking-platform/shared/status"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/pkg/errors"
)

// PostgresPaymentRepository implements PaymentRepository using PostgreSQL
type PostgresPaymentRepository struct {
	db *sqlx.DB
}

// NewPostgresPaymentRepository creates a new PostgresPaymentRepository
func NewPostgresPaymentRepository(db *sqlx.DB) *PostgresPaymentRepository {
	return &PostgresPaymentRepository{db: db}
}

// postgresPayment represents payment in database
type postgresPayment struct {
	ID              string    `db:"id"`
	PaymentIntentID string    `db:"payment_intent_id"`
	ReservationID   string    `db:"reservation_id"`
	ClientID        string    `db:"client_id"`
	Amount          int64     `db:"amount"`
	Currency        string    `db:"currency"`
	Status          string    `db:"status"`
	CreatedAt       time.Time `db:"created_at"`
	UpdatedAt       time.Time `db:"updated_at"`
	Version         int       `db:"version"`
	OldVersion      int       `db:"old_version"`
}

const paymentColumns = `
	id, payment_intent_id, reservation_id, client_id, amount, currency,
	status, created_at, updated_at, version`

// uniqueViolation is the PostgreSQL code for a unique constraint failure
const uniqueViolation = "23505"

// Save saves a payment and appends its events in one transaction
func (r *PostgresPaymentRepository) Save(ctx context.Context, payment *domain.Payment) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "failed to begin transaction")
	}
	defer tx.Rollback()

	// Process events to determine operation type
	for _, event := range payment.Events() {
		switch event.EventType {
		case events.PaymentIntentCreatedEvent:
			err = r.insertPayment(ctx, tx, payment)
		case events.PaymentConfirmedEvent, events.PaymentFailedEvent:
			err = r.updatePayment(ctx, tx, payment)
		}
		if err != nil {
			return err
		}
	}

	if err := sharedinfra.AppendEvents(ctx, tx, payment.ID, payment.Events()); err != nil {
		return err
	}

	return errors.Wrap(tx.Commit(), "failed to commit payment")
}

// insertPayment inserts a new payment; a second live payment for the same
// reservation violates the partial unique index
func (r *PostgresPaymentRepository) insertPayment(ctx context.Context, tx *sqlx.Tx, payment *domain.Payment) error {
	query := `
		INSERT INTO payments (` + paymentColumns + `
		) VALUES (
			:id, :payment_intent_id, :reservation_id, :client_id, :amount, :currency,
			:status, :created_at, :updated_at, :version
		)`

	_, err := tx.NamedExecContext(ctx, query, toPostgresPayment(payment))
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return &apperrors.ConflictError{Message: "Un paiement existe déjà pour cette réservation."}
		}
		return errors.Wrap(err, "failed to insert payment")
	}
	return nil
}

// updatePayment moves a pending payment to its settled status
func (r *PostgresPaymentRepository) updatePayment(ctx context.Context, tx *sqlx.Tx, payment *domain.Payment) error {
	query := `
		UPDATE payments
		SET status = :status, updated_at = :updated_at, version = :version
		WHERE id = :id AND version = :old_version AND status = 'en attente'`

	result, err := tx.NamedExecContext(ctx, query, toPostgresPayment(payment))
	if err != nil {
		return errors.Wrap(err, "failed to update payment")
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "failed to read affected rows")
	}
	if rows == 0 {
		return &apperrors.ConflictError{Message: "Ce paiement a déjà été traité."}
	}
	return nil
}

// FindByIntentID finds a payment by its payment intent identifier
func (r *PostgresPaymentRepository) FindByIntentID(ctx context.Context, paymentIntentID string) (*domain.Payment, error) {
	return r.findOne(ctx, `SELECT `+paymentColumns+` FROM payments WHERE payment_intent_id = $1`, paymentIntentID)
}

// FindByReservationID finds the latest payment of a reservation
func (r *PostgresPaymentRepository) FindByReservationID(ctx context.Context, reservationID models.ID) (*domain.Payment, error) {
	return r.findOne(ctx, `
		SELECT `+paymentColumns+` FROM payments
		WHERE reservation_id = $1
		ORDER BY created_at DESC
		LIMIT 1`, reservationID.String())
}

func (r *PostgresPaymentRepository) findOne(ctx context.Context, query string, arg interface{}) (*domain.Payment, error) {
	var pgPayment postgresPayment
	err := r.db.GetContext(ctx, &pgPayment, query, arg)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil // Payment not found
		}
		return nil, errors.Wrap(err, "failed to find payment")
	}

	return toDomainPayment(&pgPayment)
}

func toPostgresPayment(payment *domain.Payment) *postgresPayment {
	return &postgresPayment{
		ID:              payment.ID.String(),
		PaymentIntentID: payment.PaymentIntentID,
		ReservationID:   payment.ReservationID.String(),
		ClientID:        payment.ClientID.String(),
		Amount:          payment.Amount.Amount,
		Currency:        payment.Amount.Currency,
		Status:          payment.Status.String(),
		CreatedAt:       payment.Timestamps.CreatedAt,
		UpdatedAt:       payment.Timestamps.UpdatedAt,
		Version:         payment.Version.Value,
		OldVersion:      payment.Version.Value - 1,
	}
}

func toDomainPayment(pg *postgresPayment) (*domain.Payment, error) {
	if !status.IsValidPaymentStatus(pg.Status) {
		return nil, errors.Errorf("invalid payment status %q", pg.Status)
	}

	return &domain.Payment{
		ID:              models.ID(pg.ID),
		PaymentIntentID: pg.PaymentIntentID,
		ReservationID:   models.ID(pg.ReservationID),
		ClientID:        models.ID(pg.ClientID),
		Amount:          models.NewMoney(pg.Amount, pg.Currency),
		Status:          status.PaymentStatus(pg.Status),
		Timestamps: models.Timestamps{
			CreatedAt: pg.CreatedAt,
			UpdatedAt: pg.UpdatedAt,
		},
		Version: models.Version{Value: pg.Version},
	}, nil
}
