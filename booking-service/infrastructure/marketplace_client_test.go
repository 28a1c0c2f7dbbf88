package infrastructure

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/depanneo/booking-platform/shared/api"
	"github.com/depanneo/booking-platform/shared/apperrors"
	"github.com/depanneo/booking-platform/shared/models"
	"github.com/depanneo/booking-platform/shared/session"
	"github.com/depanneo/booking-platform/shared/status"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSession(t *testing.T, role status.Role) *session.Session {
	t.Helper()
	sess, err := session.Open("secret-token", session.User{ID: models.GenerateUUID(), Name: "Test", Role: role})
	require.NoError(t, err)
	return sess
}

func newTestServer(t *testing.T, register func(r chi.Router)) *HTTPMarketplaceClient {
	t.Helper()
	r := chi.NewRouter()
	register(r)
	server := httptest.NewServer(r)
	t.Cleanup(server.Close)
	return NewHTTPMarketplaceClient(server.URL+"/", time.Second)
}

func TestHTTPMarketplaceClient_CreateReservation(t *testing.T) {
	reservationID := models.GenerateUUID()

	client := newTestServer(t, func(r chi.Router) {
		r.Post("/reservations", func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "Bearer secret-token", r.Header.Get("Authorization"))
			assert.Equal(t, "run-1:creating_reservation", r.Header.Get(api.IdempotencyKeyHeader))
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

			var body api.CreateReservationRequest
			require.NoError(t, api.DecodeJSON(r, &body))
			assert.Equal(t, "75002", body.PostalCode)

			api.WriteData(w, http.StatusCreated, &api.Reservation{
				ID:         reservationID,
				PostalCode: body.PostalCode,
				Status:     status.ReservationNew,
				Price:      models.Euros(5000),
			})
		})
	})

	reservation, err := client.CreateReservation(context.Background(), newTestSession(t, status.RoleClient), "run-1:creating_reservation", &api.CreateReservationRequest{
		ServiceID:  models.GenerateUUID().String(),
		Address:    "12 rue de la Paix",
		PostalCode: "75002",
	})

	require.NoError(t, err)
	assert.Equal(t, reservationID, reservation.ID)
	assert.Equal(t, status.ReservationNew, reservation.Status)
	assert.Equal(t, int64(5000), reservation.Price.Amount)
}

func TestHTTPMarketplaceClient_ErrorMapping(t *testing.T) {
	tests := []struct {
		name            string
		err             error
		status          int
		expectedKind    apperrors.Kind
		expectedMessage string
		expectedFields  int
	}{
		{
			name:            "unauthorized",
			err:             &apperrors.AuthorizationError{Message: "Session expirée, veuillez vous reconnecter."},
			status:          http.StatusUnauthorized,
			expectedKind:    apperrors.KindAuthorization,
			expectedMessage: "Session expirée, veuillez vous reconnecter.",
		},
		{
			name:            "forbidden",
			err:             &apperrors.AuthorizationError{Message: "Action non autorisée."},
			status:          http.StatusForbidden,
			expectedKind:    apperrors.KindAuthorization,
			expectedMessage: "Action non autorisée.",
		},
		{
			name:            "not found",
			err:             &apperrors.NotFoundError{Message: "Mission introuvable."},
			status:          http.StatusNotFound,
			expectedKind:    apperrors.KindNotFound,
			expectedMessage: "Mission introuvable.",
		},
		{
			name:            "conflict",
			err:             &apperrors.ConflictError{Message: "Vous avez déjà répondu à cette mission."},
			status:          http.StatusConflict,
			expectedKind:    apperrors.KindConflict,
			expectedMessage: "Vous avez déjà répondu à cette mission.",
		},
		{
			name:            "validation keeps field errors",
			err:             &apperrors.ValidationError{Errors: []apperrors.FieldError{{Param: "postal_code", Msg: "Le code postal doit contenir 5 chiffres."}}},
			status:          http.StatusUnprocessableEntity,
			expectedKind:    apperrors.KindRequest,
			expectedMessage: "Le code postal doit contenir 5 chiffres.",
			expectedFields:  1,
		},
		{
			name:            "server error without message",
			err:             &apperrors.RequestError{Status: http.StatusInternalServerError},
			status:          http.StatusInternalServerError,
			expectedKind:    apperrors.KindRequest,
			expectedMessage: apperrors.FallbackMessage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestServer(t, func(r chi.Router) {
				r.Get("/assignments/{id}", func(w http.ResponseWriter, r *http.Request) {
					api.WriteErrorStatus(w, tt.status, tt.err)
				})
			})

			_, err := client.GetAssignment(context.Background(), newTestSession(t, status.RolePartner), models.GenerateUUID())

			require.Error(t, err)
			assert.Equal(t, tt.expectedKind, apperrors.KindOf(err))
			assert.Equal(t, tt.expectedMessage, apperrors.UserMessage(err))
			assert.Len(t, apperrors.FieldErrors(err), tt.expectedFields)
		})
	}
}

func TestHTTPMarketplaceClient_ConfirmPaymentDeclined(t *testing.T) {
	client := newTestServer(t, func(r chi.Router) {
		r.Post("/payments/confirm", func(w http.ResponseWriter, r *http.Request) {
			api.WriteErrorWithData(w, &apperrors.RequestError{Status: http.StatusPaymentRequired, Message: "Le paiement a été refusé."}, &api.PaymentConfirmation{
				PaymentIntentID: "pi_1",
				Status:          status.PaymentFailed,
			})
		})
	})

	declined := false
	_, err := client.ConfirmPayment(context.Background(), newTestSession(t, status.RoleClient), "run-1:confirming_payment", &api.ConfirmPaymentRequest{
		PaymentIntentID: "pi_1",
		SimulateSuccess: &declined,
	})

	require.Error(t, err)
	var rerr *apperrors.RequestError
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, http.StatusPaymentRequired, rerr.Status)
	assert.Equal(t, "Le paiement a été refusé.", rerr.UserMessage())
}

func TestHTTPMarketplaceClient_NetworkFailures(t *testing.T) {
	t.Run("unreachable server", func(t *testing.T) {
		server := httptest.NewServer(http.NotFoundHandler())
		server.Close()
		client := NewHTTPMarketplaceClient(server.URL, time.Second)

		_, err := client.ListReservations(context.Background(), newTestSession(t, status.RoleAdmin))

		require.Error(t, err)
		assert.True(t, apperrors.IsNetwork(err))
		assert.Equal(t, apperrors.NetworkFallbackMessage, apperrors.UserMessage(err))
	})

	t.Run("deadline exceeded", func(t *testing.T) {
		client := newTestServer(t, func(r chi.Router) {
			r.Get("/reservations", func(w http.ResponseWriter, r *http.Request) {
				<-r.Context().Done()
			})
		})

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()

		_, err := client.ListReservations(ctx, newTestSession(t, status.RoleAdmin))

		require.Error(t, err)
		assert.True(t, apperrors.IsNetwork(err))
	})
}

func TestHTTPMarketplaceClient_RequiresOpenSession(t *testing.T) {
	client := NewHTTPMarketplaceClient("http://127.0.0.1:1", time.Second)

	_, err := client.ListReservations(context.Background(), nil)
	assert.True(t, apperrors.IsAuthorization(err))

	sess := newTestSession(t, status.RoleClient)
	sess.Close()
	_, err = client.ListReservations(context.Background(), sess)
	assert.True(t, apperrors.IsAuthorization(err))
}

func TestHTTPMarketplaceClient_CurrentUser(t *testing.T) {
	userID := models.GenerateUUID()
	client := newTestServer(t, func(r chi.Router) {
		r.Get("/auth/me", func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get("Authorization") != "Bearer good" {
				api.WriteErrorStatus(w, http.StatusUnauthorized, &apperrors.AuthorizationError{Message: "Jeton invalide."})
				return
			}
			api.WriteData(w, http.StatusOK, &session.User{ID: userID, Name: "Alex", Role: status.RolePartner})
		})
	})

	user, err := client.CurrentUser(context.Background(), "good")
	require.NoError(t, err)
	assert.Equal(t, userID, user.ID)
	assert.Equal(t, status.RolePartner, user.Role)

	_, err = client.CurrentUser(context.Background(), "bad")
	assert.True(t, apperrors.IsAuthorization(err))
}
