package infrastructure

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/depanneo/booking-platform/marketplace-service/domain"
	"github.com/depanneo/booking-platform/shared/apperrors"
	"github.com/depanneo/booking-platform/shared/events"
	sharedinfra "github.com/depanneo/booking-platform/shared/infrastructure"
	"github.com/depanneo/booking-platform/shared/models"
	"github.com/depanneo/booking-platform/shared/status"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
)

var errStaleReservation = &apperrors.ConflictError{Message: "La réservation a été modifiée entre-temps, veuillez rafraîchir."}

// PostgresReservationRepository implements ReservationRepository using PostgreSQL
type PostgresReservationRepository struct {
	db *sqlx.DB
}

// NewPostgresReservationRepository creates a new PostgresReservationRepository
func NewPostgresReservationRepository(db *sqlx.DB) *PostgresReservationRepository {
	return &PostgresReservationRepository{db: db}
}

// postgresReservation represents reservation in database
type postgresReservation struct {
	ID            string     `db:"id"`
	ClientID      string     `db:"client_id"`
	ServiceID     string     `db:"service_id"`
	Address       string     `db:"address"`
	PostalCode    string     `db:"postal_code"`
	Description   *string    `db:"description"`
	Urgent        bool       `db:"urgent"`
	DateRequested *time.Time `db:"date_requested"`
	TimeSlot      *string    `db:"time_slot"`
	Status        string     `db:"status"`
	PartnerID     *string    `db:"partner_id"`
	PartnerStatus *string    `db:"partner_status"`
	Price         int64      `db:"price"`
	Currency      string     `db:"currency"`
	CreatedAt     time.Time  `db:"created_at"`
	UpdatedAt     time.Time  `db:"updated_at"`
	Version       int        `db:"version"`
	OldVersion    int        `db:"old_version"`
}

const reservationColumns = `
	id, client_id, service_id, address, postal_code, description, urgent,
	date_requested, time_slot, status, partner_id, partner_status,
	price, currency, created_at, updated_at, version`

// Save saves a reservation and appends its events in one transaction
func (r *PostgresReservationRepository) Save(ctx context.Context, reservation *domain.Reservation) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "failed to begin transaction")
	}
	defer tx.Rollback()

	if isNewReservation(reservation) {
		err = insertReservation(ctx, tx, reservation)
	} else {
		err = updateReservation(ctx, tx, reservation)
	}
	if err != nil {
		return err
	}

	if err := sharedinfra.AppendEvents(ctx, tx, reservation.ID, reservation.Events()); err != nil {
		return err
	}

	return errors.Wrap(tx.Commit(), "failed to commit reservation")
}

func isNewReservation(reservation *domain.Reservation) bool {
	for _, event := range reservation.Events() {
		if event.EventType == events.ReservationCreatedEvent {
			return true
		}
	}
	return false
}

// insertReservation inserts a new reservation
func insertReservation(ctx context.Context, tx *sqlx.Tx, reservation *domain.Reservation) error {
	query := `
		INSERT INTO reservations (` + reservationColumns + `
		) VALUES (
			:id, :client_id, :service_id, :address, :postal_code, :description, :urgent,
			:date_requested, :time_slot, :status, :partner_id, :partner_status,
			:price, :currency, :created_at, :updated_at, :version
		)`

	if _, err := tx.NamedExecContext(ctx, query, toPostgresReservation(reservation)); err != nil {
		return errors.Wrap(err, "failed to insert reservation")
	}
	return nil
}

// updateReservation updates the mutable fields of a reservation
func updateReservation(ctx context.Context, tx *sqlx.Tx, reservation *domain.Reservation) error {
	query := `
		UPDATE reservations
		SET status = :status, partner_id = :partner_id, partner_status = :partner_status,
			updated_at = :updated_at, version = :version
		WHERE id = :id AND version = :old_version`

	result, err := tx.NamedExecContext(ctx, query, toPostgresReservation(reservation))
	if err != nil {
		return errors.Wrap(err, "failed to update reservation")
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "failed to read affected rows")
	}
	if rows == 0 {
		return errStaleReservation
	}
	return nil
}

// FindByID finds a reservation by ID
func (r *PostgresReservationRepository) FindByID(ctx context.Context, id models.ID) (*domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE id = $1`

	var pgReservation postgresReservation
	err := r.db.GetContext(ctx, &pgReservation, query, id.String())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "failed to find reservation")
	}

	return toDomainReservation(&pgReservation)
}

// Find lists reservations matching filter, newest first
func (r *PostgresReservationRepository) Find(ctx context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error) {
	var (
		conditions []string
		args       []interface{}
	)
	if filter.ClientID != nil {
		args = append(args, filter.ClientID.String())
		conditions = append(conditions, "client_id = ?")
	}
	if filter.PartnerID != nil {
		args = append(args, filter.PartnerID.String())
		conditions = append(conditions, "partner_id = ?")
	}

	query := `SELECT ` + reservationColumns + ` FROM reservations`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY created_at DESC"

	var pgReservations []postgresReservation
	err := r.db.SelectContext(ctx, &pgReservations, r.db.Rebind(query), args...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reservations")
	}

	reservations := make([]*domain.Reservation, len(pgReservations))
	for i := range pgReservations {
		reservation, err := toDomainReservation(&pgReservations[i])
		if err != nil {
			return nil, err
		}
		reservations[i] = reservation
	}

	return reservations, nil
}

// toPostgresReservation converts domain reservation to postgres model
func toPostgresReservation(reservation *domain.Reservation) *postgresReservation {
	var partnerID, partnerStatus *string
	if reservation.PartnerID != nil {
		id := reservation.PartnerID.String()
		partnerID = &id
	}
	if reservation.PartnerStatus != nil {
		s := reservation.PartnerStatus.String()
		partnerStatus = &s
	}

	return &postgresReservation{
		ID:            reservation.ID.String(),
		ClientID:      reservation.ClientID.String(),
		ServiceID:     reservation.ServiceID.String(),
		Address:       reservation.Address,
		PostalCode:    reservation.PostalCode,
		Description:   reservation.Description,
		Urgent:        reservation.Urgent,
		DateRequested: reservation.DateRequested,
		TimeSlot:      reservation.TimeSlot,
		Status:        reservation.Status.String(),
		PartnerID:     partnerID,
		PartnerStatus: partnerStatus,
		Price:         reservation.Price.Amount,
		Currency:      reservation.Price.Currency,
		CreatedAt:     reservation.Timestamps.CreatedAt,
		UpdatedAt:     reservation.Timestamps.UpdatedAt,
		Version:       reservation.Version.Value,
		OldVersion:    reservation.Version.Value - 1, // Optimistic locking
	}
}

// toDomainReservation converts postgres model to domain reservation
func toDomainReservation(pg *postgresReservation) (*domain.Reservation, error) {
	if !status.IsValidReservationStatus(pg.Status) {
		return nil, errors.Errorf("invalid reservation status %q", pg.Status)
	}

	reservation := &domain.Reservation{
		ID:            models.ID(pg.ID),
		ClientID:      models.ID(pg.ClientID),
		ServiceID:     models.ID(pg.ServiceID),
		Address:       pg.Address,
		PostalCode:    pg.PostalCode,
		Description:   pg.Description,
		Urgent:        pg.Urgent,
		DateRequested: pg.DateRequested,
		TimeSlot:      pg.TimeSlot,
		Status:        status.ReservationStatus(pg.Status),
		Price:         models.NewMoney(pg.Price, pg.Currency),
		Timestamps: models.Timestamps{
			CreatedAt: pg.CreatedAt,
			UpdatedAt: pg.UpdatedAt,
		},
		Version: models.Version{Value: pg.Version},
	}

	if pg.PartnerID != nil {
		partnerID := models.ID(*pg.PartnerID)
		reservation.PartnerID = &partnerID
	}
	if pg.PartnerStatus != nil {
		if !status.IsValidAssignmentStatus(*pg.PartnerStatus) {
			return nil, errors.Errorf("invalid partner status %q", *pg.PartnerStatus)
		}
		partnerStatus := status.AssignmentStatus(*pg.PartnerStatus)
		reservation.PartnerStatus = &partnerStatus
	}

	return reservation, nil
}
