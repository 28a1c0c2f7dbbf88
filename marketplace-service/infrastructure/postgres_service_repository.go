package infrastructure

import (
	"context"
	"database/sql"

	"github.com/depanneo/booking-platform/marketplace-service/domain"
	"github.com/depanneo/booking-platform/shared/models"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
)

// PostgresServiceRepository reads the service catalogue
type PostgresServiceRepository struct {
	db *sqlx.DB
}

// NewPostgresServiceRepository creates a new PostgresServiceRepository
func NewPostgresServiceRepository(db *sqlx.DB) *PostgresServiceRepository {
	return &PostgresServiceRepository{db: db}
}

type postgresService struct {
	ID         string `db:"id"`
	Name       string `db:"name"`
	PriceLabel string `db:"price_label"`
	Price      int64  `db:"price"`
	Currency   string `db:"currency"`
}

// FindByID finds a service by ID
func (r *PostgresServiceRepository) FindByID(ctx context.Context, id models.ID) (*domain.Service, error) {
	query := `
		SELECT id, name, price_label, price, currency
		FROM services
		WHERE id = $1`

	var pgService postgresService
	err := r.db.GetContext(ctx, &pgService, query, id.String())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "failed to find service")
	}

	return domain.NewService(
		models.ID(pgService.ID),
		pgService.Name,
		pgService.PriceLabel,
		models.NewMoney(pgService.Price, pgService.Currency),
	), nil
}
