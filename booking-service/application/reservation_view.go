package application

import (
	"context"
	"sync"
	"time"

	"github.com/depanneo/booking-platform/shared/api"
	"github.com/depanneo/booking-platform/shared/models"
	"github.com/depanneo/booking-platform/shared/session"
	"github.com/depanneo/booking-platform/shared/status"
	"github.com/pkg/errors"
)

// DefaultViewTTL is how long a cached reservation list is served
const DefaultViewTTL = 30 * time.Second

type viewEntry struct {
	role         status.Role
	reservations []*api.Reservation
	loadedAt     time.Time
}

// ReservationView caches, per user, the reservation list the marketplace
// returns for that user. Entries expire after a TTL and are dropped when a
// marketplace event touches one of their reservations.
type ReservationView struct {
	client MarketplaceClient
	ttl    time.Duration
	now    func() time.Time

	mu      sync.RWMutex
	entries map[models.ID]*viewEntry
}

// NewReservationView creates a new ReservationView
func NewReservationView(client MarketplaceClient, ttl time.Duration) *ReservationView {
	if ttl <= 0 {
		ttl = DefaultViewTTL
	}
	return &ReservationView{
		client:  client,
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[models.ID]*viewEntry),
	}
}

// List returns the session user's reservations, from cache unless force is set
func (v *ReservationView) List(ctx context.Context, sess *session.Session, force bool) ([]*api.Reservation, error) {
	if err := sess.RequireRole(status.RoleClient, status.RolePartner, status.RoleAdmin); err != nil {
		return nil, err
	}

	if !force {
		if cached, ok := v.cached(sess.User().ID); ok {
			return cached, nil
		}
	}
	return v.Refresh(ctx, sess)
}

// Refresh reloads the session user's reservations from the marketplace
func (v *ReservationView) Refresh(ctx context.Context, sess *session.Session) ([]*api.Reservation, error) {
	reservations, err := v.client.ListReservations(ctx, sess)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reservations")
	}

	user := sess.User()
	v.mu.Lock()
	v.entries[user.ID] = &viewEntry{
		role:         user.Role,
		reservations: reservations,
		loadedAt:     v.now(),
	}
	v.mu.Unlock()

	return clone(reservations), nil
}

// Invalidate drops the lists of the given users and of every administrator,
// since administrators see all reservations
func (v *ReservationView) Invalidate(userIDs ...models.ID) {
	v.mu.Lock()
	defer v.mu.Unlock()

	for _, id := range userIDs {
		delete(v.entries, id)
	}
	for id, entry := range v.entries {
		if entry.role == status.RoleAdmin {
			delete(v.entries, id)
		}
	}
}

// InvalidateAll empties the cache
func (v *ReservationView) InvalidateAll() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.entries = make(map[models.ID]*viewEntry)
}

func (v *ReservationView) cached(userID models.ID) ([]*api.Reservation, bool) {
	v.mu.RLock()
	defer v.mu.RUnlock()

	entry, ok := v.entries[userID]
	if !ok || v.now().Sub(entry.loadedAt) >= v.ttl {
		return nil, false
	}
	return clone(entry.reservations), true
}

func clone(reservations []*api.Reservation) []*api.Reservation {
	out := make([]*api.Reservation, len(reservations))
	copy(out, reservations)
	return out
}
