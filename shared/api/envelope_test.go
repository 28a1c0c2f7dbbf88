package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/depanneo/booking-platform/shared/apperrors"
	"github.com/depanneo/booking-platform/shared/models"
	"github.com/depanneo/booking-platform/shared/status"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) Envelope {
	t.Helper()
	var env Envelope
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&env))
	return env
}

func TestWriteData(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteData(rec, http.StatusCreated, &Reservation{ID: models.ID("r1"), Status: status.ReservationNew})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	env := decodeEnvelope(t, rec)
	assert.True(t, env.Success)

	var reservation Reservation
	require.NoError(t, json.Unmarshal(env.Data, &reservation))
	assert.Equal(t, models.ID("r1"), reservation.ID)
	assert.Equal(t, status.ReservationNew, reservation.Status)
}

func TestWriteError(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedKind   apperrors.Kind
		expectedFields int
	}{
		{
			name:           "validation with fields",
			err:            &apperrors.ValidationError{Errors: []apperrors.FieldError{{Param: "address", Msg: "Ce champ est requis."}, {Param: "postal_code", Msg: "Le code postal doit contenir 5 chiffres."}}},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedKind:   apperrors.KindValidation,
			expectedFields: 2,
		},
		{
			name:           "conflict",
			err:            &apperrors.ConflictError{Message: "Déjà répondu."},
			expectedStatus: http.StatusConflict,
			expectedKind:   apperrors.KindConflict,
		},
		{
			name:           "declined payment",
			err:            &apperrors.RequestError{Status: http.StatusPaymentRequired, Message: "Le paiement a été refusé."},
			expectedStatus: http.StatusPaymentRequired,
			expectedKind:   apperrors.KindRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			WriteError(rec, tt.err)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			env := decodeEnvelope(t, rec)
			assert.False(t, env.Success)
			assert.Equal(t, tt.expectedKind, env.Kind)
			assert.Equal(t, apperrors.UserMessage(tt.err), env.Message)
			assert.Len(t, env.Errors, tt.expectedFields)
		})
	}
}

func TestWriteErrorWithData(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteErrorWithData(rec, &apperrors.RequestError{Status: http.StatusPaymentRequired, Message: "Le paiement a été refusé."}, &PaymentConfirmation{
		PaymentIntentID: "pi_1",
		Status:          status.PaymentFailed,
	})

	assert.Equal(t, http.StatusPaymentRequired, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.False(t, env.Success)

	var confirmation PaymentConfirmation
	require.NoError(t, json.Unmarshal(env.Data, &confirmation))
	assert.Equal(t, status.PaymentFailed, confirmation.Status)
}

func TestWriteErrorStatus(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteErrorStatus(rec, http.StatusUnauthorized, &apperrors.AuthorizationError{Message: "Session expirée, veuillez vous reconnecter."})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Equal(t, apperrors.KindAuthorization, env.Kind)
	assert.Equal(t, "Session expirée, veuillez vous reconnecter.", env.Message)
}

func TestDecodeJSON(t *testing.T) {
	var body AssignPartnerRequest

	req := httptest.NewRequest(http.MethodPut, "/", strings.NewReader(`{"partnerId":"p1"}`))
	require.NoError(t, DecodeJSON(req, &body))
	assert.Equal(t, "p1", body.PartnerID)

	req = httptest.NewRequest(http.MethodPut, "/", strings.NewReader(`{"partnerId":`))
	err := DecodeJSON(req, &body)
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}
