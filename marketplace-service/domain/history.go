package domain

import (
	"context"

	"github.com/depanneo/booking-platform/shared/events"
	"github.com/depanneo/booking-platform/shared/models"
)

// EventHistory reads the audit trail of an aggregate together with the
// events of aggregates correlated to it, such as a reservation's payment
// and assignments
type EventHistory interface {
	GetCorrelatedEvents(ctx context.Context, id models.ID) ([]*events.Event, error)
}
