package domain

import (
	"context"
	"encoding/json"

	"github.com/depanneo/booking-platform/shared/models"
)

// IdempotencyStore remembers the response of a keyed request so a replay
// returns it instead of repeating the side effect. Keys are scoped per user.
type IdempotencyStore interface {
	Lookup(ctx context.Context, userID models.ID, key string) (json.RawMessage, bool, error)
	Remember(ctx context.Context, userID models.ID, key string, response json.RawMessage) error
}
