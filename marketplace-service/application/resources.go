package application

import (
	"context"
	"log/slog"

	"github.com/depanneo/booking-platform/marketplace-service/domain"
	"github.com/depanneo/booking-platform/shared/api"
	"github.com/depanneo/booking-platform/shared/events"
	"github.com/depanneo/booking-platform/shared/validation"
)

func toReservationResource(r *domain.Reservation) *api.Reservation {
	var date *string
	if r.DateRequested != nil {
		formatted := r.DateRequested.Format(validation.DateLayout)
		date = &formatted
	}

	return &api.Reservation{
		ID:            r.ID,
		ClientID:      r.ClientID,
		ServiceID:     r.ServiceID,
		Address:       r.Address,
		PostalCode:    r.PostalCode,
		Description:   r.Description,
		Urgent:        r.Urgent,
		DateRequested: date,
		TimeSlot:      r.TimeSlot,
		Status:        r.Status,
		PartnerID:     r.PartnerID,
		PartnerStatus: r.PartnerStatus,
		Price:         r.Price,
		CreatedAt:     r.Timestamps.CreatedAt,
		UpdatedAt:     r.Timestamps.UpdatedAt,
	}
}

func toAssignmentResource(a *domain.Assignment) *api.Assignment {
	return &api.Assignment{
		ID:            a.ID,
		ReservationID: a.ReservationID,
		PartnerID:     a.PartnerID,
		Status:        a.Status,
		SupersededAt:  a.SupersededAt,
		CreatedAt:     a.Timestamps.CreatedAt,
		UpdatedAt:     a.Timestamps.UpdatedAt,
	}
}

func toPaymentIntentResource(p *domain.Payment) *api.PaymentIntent {
	return &api.PaymentIntent{
		PaymentIntentID: p.PaymentIntentID,
		ReservationID:   p.ReservationID,
		Amount:          p.Amount,
		Status:          p.Status,
	}
}

// publishEvents forwards committed events to the bus. The rows are already in
// event_stream, so a publish failure is logged rather than failing the request.
func publishEvents(ctx context.Context, publisher events.Publisher, logger *slog.Logger, evts ...*events.Event) {
	if len(evts) == 0 {
		return
	}
	if err := publisher.Publish(ctx, evts...); err != nil {
		logger.ErrorContext(ctx, "failed to publish events",
			slog.Int("count", len(evts)),
			slog.String("event_type", evts[0].EventType),
			slog.Any("error", err),
		)
	}
}
