package handlers

import (
	"net/http"

	"github.com/depanneo/booking-platform/booking-service/application"
	"github.com/depanneo/booking-platform/shared/api"
	"github.com/depanneo/booking-platform/shared/models"
	"github.com/depanneo/booking-platform/shared/status"
	"github.com/depanneo/booking-platform/shared/validation"
	"github.com/go-chi/chi/v5"
)

// BookRequest is the body of POST /bookings; service_price is in cents
type BookRequest struct {
	ServiceID       string                      `json:"serviceId"`
	ServicePrice    int64                       `json:"service_price"`
	Reservation     validation.ReservationInput `json:"reservation"`
	SimulateSuccess *bool                       `json:"simulate_success,omitempty"`
}

// ResumeRequest is the optional body of POST /bookings/{runID}/resume
type ResumeRequest struct {
	SimulateSuccess *bool `json:"simulate_success,omitempty"`
}

// BookingHandlers contains the booking HTTP handlers
type BookingHandlers struct {
	auth                *Authenticator
	limiter             *RateLimiter
	bookService         *application.BookService
	reservationView     *application.ReservationView
	respondToAssignment *application.RespondToAssignment
	adminOverride       *application.AdminOverride
}

// NewBookingHandlers creates new booking handlers
func NewBookingHandlers(
	auth *Authenticator,
	limiter *RateLimiter,
	bookService *application.BookService,
	reservationView *application.ReservationView,
	respondToAssignment *application.RespondToAssignment,
	adminOverride *application.AdminOverride,
) *BookingHandlers {
	return &BookingHandlers{
		auth:                auth,
		limiter:             limiter,
		bookService:         bookService,
		reservationView:     reservationView,
		respondToAssignment: respondToAssignment,
		adminOverride:       adminOverride,
	}
}

// Book handles booking submissions
func (h *BookingHandlers) Book(w http.ResponseWriter, r *http.Request) {
	var body BookRequest
	if err := api.DecodeJSON(r, &body); err != nil {
		api.WriteError(w, err)
		return
	}

	result, err := h.bookService.Execute(r.Context(), sessionFrom(r), &application.BookCommand{
		ServiceID:       body.ServiceID,
		ServicePrice:    models.Euros(body.ServicePrice),
		Reservation:     body.Reservation,
		SimulateSuccess: body.SimulateSuccess,
	})
	writeBookResult(w, http.StatusCreated, result, err)
}

// ResumeBooking handles resuming a stopped run
func (h *BookingHandlers) ResumeBooking(w http.ResponseWriter, r *http.Request) {
	var body ResumeRequest
	if r.ContentLength != 0 {
		if err := api.DecodeJSON(r, &body); err != nil {
			api.WriteError(w, err)
			return
		}
	}

	result, err := h.bookService.Resume(r.Context(), sessionFrom(r), &application.ResumeCommand{
		RunID:           chi.URLParam(r, "runID"),
		SimulateSuccess: body.SimulateSuccess,
	})
	writeBookResult(w, http.StatusOK, result, err)
}

// GetBooking handles run status requests
func (h *BookingHandlers) GetBooking(w http.ResponseWriter, r *http.Request) {
	result, err := h.bookService.Get(r.Context(), sessionFrom(r), chi.URLParam(r, "runID"))
	writeBookResult(w, http.StatusOK, result, err)
}

// ListReservations handles reservation listing; ?refresh=1 bypasses the cache
func (h *BookingHandlers) ListReservations(w http.ResponseWriter, r *http.Request) {
	force := r.URL.Query().Get("refresh") == "1"

	reservations, err := h.reservationView.List(r.Context(), sessionFrom(r), force)
	if err != nil {
		api.WriteError(w, err)
		return
	}

	api.WriteData(w, http.StatusOK, reservations)
}

// RespondToAssignment handles a partner's accept or reject
func (h *BookingHandlers) RespondToAssignment(w http.ResponseWriter, r *http.Request) {
	var body api.RespondToAssignmentRequest
	if err := api.DecodeJSON(r, &body); err != nil {
		api.WriteError(w, err)
		return
	}

	assignment, err := h.respondToAssignment.Execute(r.Context(), sessionFrom(r), &application.RespondToAssignmentCommand{
		AssignmentID: chi.URLParam(r, "id"),
		Action:       body.Action,
	})
	if err != nil {
		api.WriteError(w, err)
		return
	}

	api.WriteData(w, http.StatusOK, assignment)
}

// SetReservationStatus handles administrator status overrides
func (h *BookingHandlers) SetReservationStatus(w http.ResponseWriter, r *http.Request) {
	var body api.UpdateReservationStatusRequest
	if err := api.DecodeJSON(r, &body); err != nil {
		api.WriteError(w, err)
		return
	}

	reservation, err := h.adminOverride.SetReservationStatus(r.Context(), sessionFrom(r), chi.URLParam(r, "id"), status.ReservationStatus(body.Status))
	if err != nil {
		api.WriteError(w, err)
		return
	}

	api.WriteData(w, http.StatusOK, reservation)
}

// AssignPartner handles administrator partner assignment
func (h *BookingHandlers) AssignPartner(w http.ResponseWriter, r *http.Request) {
	var body api.AssignPartnerRequest
	if err := api.DecodeJSON(r, &body); err != nil {
		api.WriteError(w, err)
		return
	}

	reservation, err := h.adminOverride.AssignPartner(r.Context(), sessionFrom(r), chi.URLParam(r, "id"), body.PartnerID)
	if err != nil {
		api.WriteError(w, err)
		return
	}

	api.WriteData(w, http.StatusOK, reservation)
}

// RegisterRoutes registers booking routes behind bearer authentication
func (h *BookingHandlers) RegisterRoutes(r chi.Router) {
	r.Group(func(r chi.Router) {
		r.Use(h.auth.Middleware)

		r.Route("/bookings", func(r chi.Router) {
			r.With(h.limiter.Middleware).Post("/", h.Book)
			r.Get("/{runID}", h.GetBooking)
			r.Post("/{runID}/resume", h.ResumeBooking)
		})

		r.Get("/reservations", h.ListReservations)
		r.Post("/assignments/{id}/respond", h.RespondToAssignment)

		r.Route("/admin/reservations", func(r chi.Router) {
			r.Put("/{id}/status", h.SetReservationStatus)
			r.Put("/{id}/partner", h.AssignPartner)
		})
	})
}

// writeBookResult reports a stopped run together with how far it got
func writeBookResult(w http.ResponseWriter, okStatus int, result *application.BookResult, err error) {
	if err != nil {
		if result != nil {
			api.WriteErrorWithData(w, err, result)
			return
		}
		api.WriteError(w, err)
		return
	}
	api.WriteData(w, okStatus, result)
}
