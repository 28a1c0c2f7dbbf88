package handlers

import (
	"net/http"

	"github.com/depanneo/booking-platform/marketplace-service/application"
	"github.com/depanneo/booking-platform/shared/api"
	"github.com/go-chi/chi/v5"
)

// MarketplaceHandlers contains the marketplace HTTP handlers
type MarketplaceHandlers struct {
	auth                    *Authenticator
	createReservation       *application.CreateReservation
	listReservations        *application.ListReservations
	getReservation          *application.GetReservation
	getReservationHistory   *application.GetReservationHistory
	updateReservationStatus *application.UpdateReservationStatus
	assignPartner           *application.AssignPartner
	createPaymentIntent     *application.CreatePaymentIntent
	confirmPayment          *application.ConfirmPayment
	getAssignment           *application.GetAssignment
	respondToAssignment     *application.RespondToAssignment
}

// NewMarketplaceHandlers creates new marketplace handlers
func NewMarketplaceHandlers(
	auth *Authenticator,
	createReservation *application.CreateReservation,
	listReservations *application.ListReservations,
	getReservation *application.GetReservation,
	getReservationHistory *application.GetReservationHistory,
	updateReservationStatus *application.UpdateReservationStatus,
	assignPartner *application.AssignPartner,
	createPaymentIntent *application.CreatePaymentIntent,
	confirmPayment *application.ConfirmPayment,
	getAssignment *application.GetAssignment,
	respondToAssignment *application.RespondToAssignment,
) *MarketplaceHandlers {
	return &MarketplaceHandlers{
		auth:                    auth,
		createReservation:       createReservation,
		listReservations:        listReservations,
		getReservation:          getReservation,
		getReservationHistory:   getReservationHistory,
		updateReservationStatus: updateReservationStatus,
		assignPartner:           assignPartner,
		createPaymentIntent:     createPaymentIntent,
		confirmPayment:          confirmPayment,
		getAssignment:           getAssignment,
		respondToAssignment:     respondToAssignment,
	}
}

// CurrentUser handles GET /auth/me
func (h *MarketplaceHandlers) CurrentUser(w http.ResponseWriter, r *http.Request) {
	api.WriteData(w, http.StatusOK, actorFrom(r))
}

// CreateReservation handles reservation creation requests
func (h *MarketplaceHandlers) CreateReservation(w http.ResponseWriter, r *http.Request) {
	var cmd application.CreateReservationCommand
	if err := api.DecodeJSON(r, &cmd.CreateReservationRequest); err != nil {
		api.WriteError(w, err)
		return
	}
	cmd.IdempotencyKey = r.Header.Get(api.IdempotencyKeyHeader)

	reservation, err := h.createReservation.Execute(r.Context(), actorFrom(r), &cmd)
	if err != nil {
		api.WriteError(w, err)
		return
	}

	api.WriteData(w, http.StatusCreated, reservation)
}

// ListReservations handles reservation listing requests
func (h *MarketplaceHandlers) ListReservations(w http.ResponseWriter, r *http.Request) {
	reservations, err := h.listReservations.Execute(r.Context(), actorFrom(r))
	if err != nil {
		api.WriteError(w, err)
		return
	}

	api.WriteData(w, http.StatusOK, reservations)
}

// GetReservation handles reservation retrieval requests
func (h *MarketplaceHandlers) GetReservation(w http.ResponseWriter, r *http.Request) {
	reservation, err := h.getReservation.Execute(r.Context(), actorFrom(r), chi.URLParam(r, "id"))
	if err != nil {
		api.WriteError(w, err)
		return
	}

	api.WriteData(w, http.StatusOK, reservation)
}

// GetReservationHistory handles audit trail requests
func (h *MarketplaceHandlers) GetReservationHistory(w http.ResponseWriter, r *http.Request) {
	entries, err := h.getReservationHistory.Execute(r.Context(), actorFrom(r), chi.URLParam(r, "id"))
	if err != nil {
		api.WriteError(w, err)
		return
	}

	api.WriteData(w, http.StatusOK, entries)
}

// UpdateReservationStatus handles administrator status overrides
func (h *MarketplaceHandlers) UpdateReservationStatus(w http.ResponseWriter, r *http.Request) {
	var body api.UpdateReservationStatusRequest
	if err := api.DecodeJSON(r, &body); err != nil {
		api.WriteError(w, err)
		return
	}

	reservation, err := h.updateReservationStatus.Execute(r.Context(), actorFrom(r), &application.UpdateReservationStatusCommand{
		ReservationID: chi.URLParam(r, "id"),
		Status:        body.Status,
	})
	if err != nil {
		api.WriteError(w, err)
		return
	}

	api.WriteData(w, http.StatusOK, reservation)
}

// AssignPartner handles partner (re)assignment
func (h *MarketplaceHandlers) AssignPartner(w http.ResponseWriter, r *http.Request) {
	var body api.AssignPartnerRequest
	if err := api.DecodeJSON(r, &body); err != nil {
		api.WriteError(w, err)
		return
	}

	reservation, err := h.assignPartner.Execute(r.Context(), actorFrom(r), &application.AssignPartnerCommand{
		ReservationID: chi.URLParam(r, "id"),
		PartnerID:     body.PartnerID,
	})
	if err != nil {
		api.WriteError(w, err)
		return
	}

	api.WriteData(w, http.StatusOK, reservation)
}

// CreatePaymentIntent handles payment intent creation
func (h *MarketplaceHandlers) CreatePaymentIntent(w http.ResponseWriter, r *http.Request) {
	var cmd application.CreatePaymentIntentCommand
	if err := api.DecodeJSON(r, &cmd.CreatePaymentIntentRequest); err != nil {
		api.WriteError(w, err)
		return
	}
	cmd.IdempotencyKey = r.Header.Get(api.IdempotencyKeyHeader)

	intent, err := h.createPaymentIntent.Execute(r.Context(), actorFrom(r), &cmd)
	if err != nil {
		api.WriteError(w, err)
		return
	}

	api.WriteData(w, http.StatusCreated, intent)
}

// ConfirmPayment handles simulated payment confirmation; simulate_success
// defaults to true
func (h *MarketplaceHandlers) ConfirmPayment(w http.ResponseWriter, r *http.Request) {
	var body api.ConfirmPaymentRequest
	if err := api.DecodeJSON(r, &body); err != nil {
		api.WriteError(w, err)
		return
	}

	success := true
	if body.SimulateSuccess != nil {
		success = *body.SimulateSuccess
	}

	confirmation, err := h.confirmPayment.Execute(r.Context(), actorFrom(r), &application.ConfirmPaymentCommand{
		PaymentIntentID: body.PaymentIntentID,
		SimulateSuccess: success,
		IdempotencyKey:  r.Header.Get(api.IdempotencyKeyHeader),
	})
	if err != nil {
		if confirmation != nil {
			api.WriteErrorWithData(w, err, confirmation)
			return
		}
		api.WriteError(w, err)
		return
	}

	api.WriteData(w, http.StatusOK, confirmation)
}

// GetAssignment handles assignment retrieval requests
func (h *MarketplaceHandlers) GetAssignment(w http.ResponseWriter, r *http.Request) {
	assignment, err := h.getAssignment.Execute(r.Context(), actorFrom(r), chi.URLParam(r, "id"))
	if err != nil {
		api.WriteError(w, err)
		return
	}

	api.WriteData(w, http.StatusOK, assignment)
}

// RespondToAssignment handles a partner's accept or reject
func (h *MarketplaceHandlers) RespondToAssignment(w http.ResponseWriter, r *http.Request) {
	var body api.RespondToAssignmentRequest
	if err := api.DecodeJSON(r, &body); err != nil {
		api.WriteError(w, err)
		return
	}

	assignment, err := h.respondToAssignment.Execute(r.Context(), actorFrom(r), &application.RespondToAssignmentCommand{
		AssignmentID: chi.URLParam(r, "id"),
		Action:       body.Action,
	})
	if err != nil {
		api.WriteError(w, err)
		return
	}

	api.WriteData(w, http.StatusOK, assignment)
}

// RegisterRoutes registers marketplace routes behind bearer authentication
func (h *MarketplaceHandlers) RegisterRoutes(r chi.Router) {
	r.Group(func(r chi.Router) {
		r.Use(h.auth.Middleware)

		r.Get("/auth/me", h.CurrentUser)

		r.Route("/reservations", func(r chi.Router) {
			r.Post("/", h.CreateReservation)
			r.Get("/", h.ListReservations)
			r.Get("/{id}", h.GetReservation)
			r.Get("/{id}/events", h.GetReservationHistory)
			r.Put("/{id}/status", h.UpdateReservationStatus)
			r.Put("/{id}/partner", h.AssignPartner)
		})

		r.Route("/payments", func(r chi.Router) {
			r.Post("/intents", h.CreatePaymentIntent)
			r.Post("/confirm", h.ConfirmPayment)
		})

		r.Route("/assignments", func(r chi.Router) {
			r.Get("/{id}", h.GetAssignment)
			r.Post("/{id}/respond", h.RespondToAssignment)
		})
	})
}
