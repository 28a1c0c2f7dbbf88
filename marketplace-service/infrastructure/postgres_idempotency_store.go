package infrastructure

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/depanneo/booking-platform/shared/models"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
)

// PostgresIdempotencyStore keeps replayable responses in idempotency_keys
type PostgresIdempotencyStore struct {
	db *sqlx.DB
}

// NewPostgresIdempotencyStore creates a new PostgresIdempotencyStore
func NewPostgresIdempotencyStore(db *sqlx.DB) *PostgresIdempotencyStore {
	return &PostgresIdempotencyStore{db: db}
}

// Lookup returns the stored response for key, if any
func (s *PostgresIdempotencyStore) Lookup(ctx context.Context, userID models.ID, key string) (json.RawMessage, bool, error) {
	var response []byte
	err := s.db.GetContext(ctx, &response,
		"SELECT response FROM idempotency_keys WHERE user_id = $1 AND key = $2",
		userID.String(), key)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, errors.Wrap(err, "failed to look up idempotency key")
	}
	return json.RawMessage(response), true, nil
}

// Remember stores the response of key; the first stored response is kept
func (s *PostgresIdempotencyStore) Remember(ctx context.Context, userID models.ID, key string, response json.RawMessage) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO idempotency_keys (user_id, key, response)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, key) DO NOTHING`,
		userID.String(), key, []byte(response))
	if err != nil {
		return errors.Wrap(err, "failed to store idempotency key")
	}
	return nil
}
