package handlers

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/depanneo/booking-platform/booking-service/application"
	"github.com/depanneo/booking-platform/booking-service/mocks"
	"github.com/depanneo/booking-platform/shared/api"
	"github.com/depanneo/booking-platform/shared/apperrors"
	sharedmocks "github.com/depanneo/booking-platform/shared/mocks"
	"github.com/depanneo/booking-platform/shared/models"
	"github.com/depanneo/booking-platform/shared/session"
	"github.com/depanneo/booking-platform/shared/status"
	"github.com/depanneo/booking-platform/shared/validation"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type testRouter struct {
	router *chi.Mux
	client *mocks.MockMarketplaceClient
	runs   *mocks.MockSagaRunRepository
}

func newTestRouter(t *testing.T, burst int) *testRouter {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	client := mocks.NewMockMarketplaceClient(t)
	runs := mocks.NewMockSagaRunRepository(t)
	publisher := sharedmocks.NewMockPublisher(t)
	view := application.NewReservationView(client, time.Minute)
	limiter := NewRateLimiter(0.001, burst)
	t.Cleanup(limiter.Close)

	handlers := NewBookingHandlers(
		NewAuthenticator(client),
		limiter,
		application.NewBookService(client, runs, publisher, validation.NewReservationValidator(nil), time.Second, logger),
		view,
		application.NewRespondToAssignment(client, view, logger),
		application.NewAdminOverride(client, view, logger),
	)

	r := chi.NewRouter()
	handlers.RegisterRoutes(r)
	return &testRouter{router: r, client: client, runs: runs}
}

func (tr *testRouter) do(method, path, token, body string) (*httptest.ResponseRecorder, api.Envelope) {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	tr.router.ServeHTTP(rec, req)

	var env api.Envelope
	_ = json.Unmarshal(rec.Body.Bytes(), &env)
	return rec, env
}

func (tr *testRouter) signIn(token string, role status.Role) models.ID {
	id := models.GenerateUUID()
	tr.client.EXPECT().CurrentUser(mock.Anything, token).Return(&session.User{ID: id, Name: "Test", Role: role}, nil).Maybe()
	return id
}

func TestAuthentication(t *testing.T) {
	tests := []struct {
		name   string
		header string
		setup  func(*mocks.MockMarketplaceClient)
		status int
	}{
		{
			name:   "missing header",
			setup:  func(*mocks.MockMarketplaceClient) {},
			status: http.StatusUnauthorized,
		},
		{
			name:   "wrong scheme",
			header: "Basic abc",
			setup:  func(*mocks.MockMarketplaceClient) {},
			status: http.StatusUnauthorized,
		},
		{
			name:   "token refused by the marketplace",
			header: "Bearer expired",
			setup: func(client *mocks.MockMarketplaceClient) {
				client.EXPECT().CurrentUser(mock.Anything, "expired").
					Return(nil, &apperrors.AuthorizationError{Message: "Session expirée, veuillez vous reconnecter."}).Once()
			},
			status: http.StatusUnauthorized,
		},
		{
			name:   "marketplace unreachable",
			header: "Bearer good",
			setup: func(client *mocks.MockMarketplaceClient) {
				client.EXPECT().CurrentUser(mock.Anything, "good").Return(nil, &apperrors.NetworkError{}).Once()
			},
			status: http.StatusBadGateway,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := newTestRouter(t, 1)
			tt.setup(tr.client)

			req := httptest.NewRequest(http.MethodGet, "/reservations", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			tr.router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestListReservations(t *testing.T) {
	tr := newTestRouter(t, 1)
	clientID := tr.signIn("client-token", status.RoleClient)

	tr.client.EXPECT().ListReservations(mock.Anything, mock.Anything).Return([]*api.Reservation{
		{ID: models.GenerateUUID(), ClientID: clientID, Status: status.ReservationNew},
	}, nil).Once()

	rec, env := tr.do(http.MethodGet, "/reservations", "client-token", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, env.Success)

	var reservations []*api.Reservation
	require.NoError(t, json.Unmarshal(env.Data, &reservations))
	require.Len(t, reservations, 1)
	assert.Equal(t, clientID, reservations[0].ClientID)
}

func TestBook_RejectedBeforeAnyCall(t *testing.T) {
	tr := newTestRouter(t, 5)
	tr.signIn("client-token", status.RoleClient)

	body := `{"serviceId":"` + models.GenerateUUID().String() + `","service_price":0,"reservation":{"address":"1 rue de Rivoli","postal_code":"75001"}}`
	rec, env := tr.do(http.MethodPost, "/bookings/", "client-token", body)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, apperrors.KindValidation, env.Kind)
	assert.Equal(t, apperrors.PriceUnavailableMessage, env.Message)
	tr.client.AssertNotCalled(t, "CreateReservation", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestBook_RateLimited(t *testing.T) {
	tr := newTestRouter(t, 1)
	tr.signIn("client-token", status.RoleClient)

	body := `{"serviceId":"x","service_price":0,"reservation":{}}`

	first, _ := tr.do(http.MethodPost, "/bookings/", "client-token", body)
	assert.Equal(t, http.StatusUnprocessableEntity, first.Code)

	second, env := tr.do(http.MethodPost, "/bookings/", "client-token", body)
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
	assert.False(t, env.Success)
}

func TestRespondToAssignment_Conflict(t *testing.T) {
	tr := newTestRouter(t, 1)
	partnerID := tr.signIn("partner-token", status.RolePartner)
	assignmentID := models.GenerateUUID()

	tr.client.EXPECT().GetAssignment(mock.Anything, mock.Anything, assignmentID).Return(&api.Assignment{
		ID:        assignmentID,
		PartnerID: partnerID,
		Status:    status.AssignmentAccepted,
	}, nil).Once()

	rec, env := tr.do(http.MethodPost, "/assignments/"+assignmentID.String()+"/respond", "partner-token", `{"action":"reject"}`)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, apperrors.KindConflict, env.Kind)
	tr.client.AssertNotCalled(t, "RespondToAssignment", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestAdminRoutes_ForbiddenForClients(t *testing.T) {
	tr := newTestRouter(t, 1)
	tr.signIn("client-token", status.RoleClient)

	rec, env := tr.do(http.MethodPut, "/admin/reservations/"+models.GenerateUUID().String()+"/status", "client-token", `{"status":"annulée"}`)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, apperrors.KindAuthorization, env.Kind)
}

func TestGetBooking_NotFound(t *testing.T) {
	tr := newTestRouter(t, 1)
	tr.signIn("client-token", status.RoleClient)
	runID := models.GenerateUUID()
	tr.runs.EXPECT().FindByID(mock.Anything, runID).Return(nil, nil).Once()

	rec, env := tr.do(http.MethodGet, "/bookings/"+runID.String(), "client-token", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, apperrors.KindNotFound, env.Kind)
}

func TestResumeBooking_MalformedBody(t *testing.T) {
	tr := newTestRouter(t, 5)
	tr.signIn("client-token", status.RoleClient)

	rec, env := tr.do(http.MethodPost, "/bookings/"+models.GenerateUUID().String()+"/resume", "client-token", `{"simulate_success":`)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, apperrors.KindValidation, env.Kind)
	tr.runs.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}
