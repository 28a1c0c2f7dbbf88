package infrastructure

import (
	"context"
	"database/sql"
	"time"

	"github.com/depanneo/booking-platform/marketplace-service/domain"
	"github.com/depanneo/booking-platform/shared/apperrors"
	sharedinfra "github.com/depanneo/booking-platform/shared/infrastructure"
	"github.com/depanneo/booking-platform/shared/models"
	"github.com/depanneo/booking-platform/shared/status"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
)

// PostgresAssignmentRepository implements AssignmentRepository using PostgreSQL
type PostgresAssignmentRepository struct {
	db *sqlx.DB
}

// NewPostgresAssignmentRepository creates a new PostgresAssignmentRepository
func NewPostgresAssignmentRepository(db *sqlx.DB) *PostgresAssignmentRepository {
	return &PostgresAssignmentRepository{db: db}
}

// postgresAssignment represents assignment in database
type postgresAssignment struct {
	ID            string     `db:"id"`
	ReservationID string     `db:"reservation_id"`
	PartnerID     string     `db:"partner_id"`
	Status        string     `db:"status"`
	SupersededAt  *time.Time `db:"superseded_at"`
	CreatedAt     time.Time  `db:"created_at"`
	UpdatedAt     time.Time  `db:"updated_at"`
}

const assignmentColumns = `id, reservation_id, partner_id, status, superseded_at, created_at, updated_at`

// FindByID finds an assignment by ID
func (r *PostgresAssignmentRepository) FindByID(ctx context.Context, id models.ID) (*domain.Assignment, error) {
	var pgAssignment postgresAssignment
	err := r.db.GetContext(ctx, &pgAssignment,
		`SELECT `+assignmentColumns+` FROM assignments WHERE id = $1`, id.String())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "failed to find assignment")
	}

	return toDomainAssignment(&pgAssignment)
}

// FindActiveByReservationID lists the assignments still binding a partner
func (r *PostgresAssignmentRepository) FindActiveByReservationID(ctx context.Context, reservationID models.ID) ([]*domain.Assignment, error) {
	query := `
		SELECT ` + assignmentColumns + `
		FROM assignments
		WHERE reservation_id = $1 AND superseded_at IS NULL AND status <> 'refusée'
		ORDER BY created_at ASC`

	var pgAssignments []postgresAssignment
	if err := r.db.SelectContext(ctx, &pgAssignments, query, reservationID.String()); err != nil {
		return nil, errors.Wrap(err, "failed to find active assignments")
	}

	assignments := make([]*domain.Assignment, len(pgAssignments))
	for i := range pgAssignments {
		assignment, err := toDomainAssignment(&pgAssignments[i])
		if err != nil {
			return nil, err
		}
		assignments[i] = assignment
	}
	return assignments, nil
}

// SaveResponse stores the partner's answer with a single conditional update so
// that of two racing answers exactly one is applied
func (r *PostgresAssignmentRepository) SaveResponse(ctx context.Context, assignment *domain.Assignment) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "failed to begin transaction")
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx, `
		UPDATE assignments
		SET status = $1, updated_at = $2
		WHERE id = $3 AND status = 'envoyée' AND superseded_at IS NULL`,
		assignment.Status.String(), assignment.Timestamps.UpdatedAt, assignment.ID.String())
	if err != nil {
		return errors.Wrap(err, "failed to update assignment")
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "failed to read affected rows")
	}
	if rows == 0 {
		return &apperrors.ConflictError{Message: "Vous avez déjà répondu à cette mission."}
	}

	// Mirror onto the reservation while this partner is still its assignee
	_, err = tx.ExecContext(ctx, `
		UPDATE reservations
		SET partner_status = $1, updated_at = $2, version = version + 1
		WHERE id = $3 AND partner_id = $4`,
		assignment.Status.String(), assignment.Timestamps.UpdatedAt,
		assignment.ReservationID.String(), assignment.PartnerID.String())
	if err != nil {
		return errors.Wrap(err, "failed to mirror partner status")
	}

	if err := sharedinfra.AppendEvents(ctx, tx, assignment.ID, assignment.Events()); err != nil {
		return err
	}

	return errors.Wrap(tx.Commit(), "failed to commit assignment response")
}

// Reassign supersedes the active assignments, inserts the new one and saves the
// reservation in one transaction
func (r *PostgresAssignmentRepository) Reassign(ctx context.Context, reservation *domain.Reservation, superseded []*domain.Assignment, assignment *domain.Assignment) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "failed to begin transaction")
	}
	defer tx.Rollback()

	if err := updateReservation(ctx, tx, reservation); err != nil {
		return err
	}

	// Also catches assignments created after the caller read the active set
	supersededAt := assignment.Timestamps.CreatedAt
	if len(superseded) > 0 && superseded[0].SupersededAt != nil {
		supersededAt = *superseded[0].SupersededAt
	}
	_, err = tx.ExecContext(ctx, `
		UPDATE assignments
		SET superseded_at = $1, updated_at = $1
		WHERE reservation_id = $2 AND superseded_at IS NULL AND status <> 'refusée'`,
		supersededAt, reservation.ID.String())
	if err != nil {
		return errors.Wrap(err, "failed to supersede assignments")
	}

	_, err = tx.NamedExecContext(ctx, `
		INSERT INTO assignments (`+assignmentColumns+`)
		VALUES (:id, :reservation_id, :partner_id, :status, :superseded_at, :created_at, :updated_at)`,
		toPostgresAssignment(assignment))
	if err != nil {
		return errors.Wrap(err, "failed to insert assignment")
	}

	if err := sharedinfra.AppendEvents(ctx, tx, reservation.ID, reservation.Events()); err != nil {
		return err
	}
	for _, previous := range superseded {
		if err := sharedinfra.AppendEvents(ctx, tx, previous.ID, previous.Events()); err != nil {
			return err
		}
	}
	if err := sharedinfra.AppendEvents(ctx, tx, assignment.ID, assignment.Events()); err != nil {
		return err
	}

	return errors.Wrap(tx.Commit(), "failed to commit reassignment")
}

func toPostgresAssignment(assignment *domain.Assignment) *postgresAssignment {
	return &postgresAssignment{
		ID:            assignment.ID.String(),
		ReservationID: assignment.ReservationID.String(),
		PartnerID:     assignment.PartnerID.String(),
		Status:        assignment.Status.String(),
		SupersededAt:  assignment.SupersededAt,
		CreatedAt:     assignment.Timestamps.CreatedAt,
		UpdatedAt:     assignment.Timestamps.UpdatedAt,
	}
}

func toDomainAssignment(pg *postgresAssignment) (*domain.Assignment, error) {
	if !status.IsValidAssignmentStatus(pg.Status) {
		return nil, errors.Errorf("invalid assignment status %q", pg.Status)
	}

	return &domain.Assignment{
		ID:            models.ID(pg.ID),
		ReservationID: models.ID(pg.ReservationID),
		PartnerID:     models.ID(pg.PartnerID),
		Status:        status.AssignmentStatus(pg.Status),
		SupersededAt:  pg.SupersededAt,
		Timestamps: models.Timestamps{
			CreatedAt: pg.CreatedAt,
			UpdatedAt: pg.UpdatedAt,
		},
	}, nil
}
