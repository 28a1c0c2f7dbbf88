package handlers

import (
	"context"
	"log/slog"

	"github.com/depanneo/booking-platform/booking-service/application"
	"github.com/depanneo/booking-platform/shared/events"
	"github.com/depanneo/booking-platform/shared/models"
	"github.com/pkg/errors"
)

var marketplaceTopics = []events.Topic{"reservation.#", "assignment.#", "payment.#"}

// BookingEventHandlers keeps the reservation views in step with marketplace events
type BookingEventHandlers struct {
	reservationView *application.ReservationView
	logger          *slog.Logger
}

// NewBookingEventHandlers creates new booking event handlers
func NewBookingEventHandlers(reservationView *application.ReservationView, logger *slog.Logger) *BookingEventHandlers {
	return &BookingEventHandlers{
		reservationView: reservationView,
		logger:          logger,
	}
}

// Handle implements the events.EventHandler interface
func (h *BookingEventHandlers) Handle(ctx context.Context, event *events.Event) error {
	if !matchesAny(event.Topic, marketplaceTopics) {
		// Unknown event type, ignore
		return nil
	}

	var data affectedUsers
	if err := event.UnmarshalPayload(&data); err != nil {
		return errors.Wrap(err, "failed to parse marketplace event data")
	}

	users := data.ids()
	if len(users) == 0 {
		h.reservationView.InvalidateAll()
		return nil
	}

	h.reservationView.Invalidate(users...)
	h.logger.DebugContext(ctx, "reservation views invalidated",
		slog.String("event_type", event.EventType),
		slog.Int("users", len(users)),
	)
	return nil
}

// HandlerID returns the unique identifier for this event handler
func (h *BookingEventHandlers) HandlerID() string {
	return "booking-service-event-handler"
}

func matchesAny(topic events.Topic, patterns []events.Topic) bool {
	for _, pattern := range patterns {
		if topic.Matches(pattern) {
			return true
		}
	}
	return false
}

// affectedUsers picks the users a marketplace event concerns out of any payload
type affectedUsers struct {
	ClientID  *models.ID `json:"client_id"`
	PartnerID *models.ID `json:"partner_id"`
}

func (a affectedUsers) ids() []models.ID {
	var ids []models.ID
	if a.ClientID != nil && !a.ClientID.IsZero() {
		ids = append(ids, *a.ClientID)
	}
	if a.PartnerID != nil && !a.PartnerID.IsZero() {
		ids = append(ids, *a.PartnerID)
	}
	return ids
}
