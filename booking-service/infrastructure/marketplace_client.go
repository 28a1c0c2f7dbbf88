package infrastructure

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/depanneo/booking-platform/shared/api"
	"github.com/depanneo/booking-platform/shared/apperrors"
	"github.com/depanneo/booking-platform/shared/models"
	"github.com/depanneo/booking-platform/shared/session"
	"github.com/depanneo/booking-platform/shared/status"
	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
)

// HTTPMarketplaceClient talks to the marketplace REST API. Every failure it
// returns is one of the apperrors types.
type HTTPMarketplaceClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewHTTPMarketplaceClient creates a new HTTPMarketplaceClient
func NewHTTPMarketplaceClient(baseURL string, timeout time.Duration) *HTTPMarketplaceClient {
	return &HTTPMarketplaceClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// CurrentUser resolves the user a bearer token belongs to
func (c *HTTPMarketplaceClient) CurrentUser(ctx context.Context, token string) (*session.User, error) {
	var user session.User
	if err := c.do(ctx, token, http.MethodGet, "/auth/me", "", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// CreateReservation implements createReservation
func (c *HTTPMarketplaceClient) CreateReservation(ctx context.Context, sess *session.Session, idempotencyKey string, req *api.CreateReservationRequest) (*api.Reservation, error) {
	var reservation api.Reservation
	if err := c.call(ctx, sess, http.MethodPost, "/reservations", idempotencyKey, req, &reservation); err != nil {
		return nil, err
	}
	return &reservation, nil
}

// CreatePaymentIntent implements createPaymentIntent
func (c *HTTPMarketplaceClient) CreatePaymentIntent(ctx context.Context, sess *session.Session, idempotencyKey string, req *api.CreatePaymentIntentRequest) (*api.PaymentIntent, error) {
	var intent api.PaymentIntent
	if err := c.call(ctx, sess, http.MethodPost, "/payments/intents", idempotencyKey, req, &intent); err != nil {
		return nil, err
	}
	return &intent, nil
}

// ConfirmPayment implements confirmPayment
func (c *HTTPMarketplaceClient) ConfirmPayment(ctx context.Context, sess *session.Session, idempotencyKey string, req *api.ConfirmPaymentRequest) (*api.PaymentConfirmation, error) {
	var confirmation api.PaymentConfirmation
	if err := c.call(ctx, sess, http.MethodPost, "/payments/confirm", idempotencyKey, req, &confirmation); err != nil {
		return nil, err
	}
	return &confirmation, nil
}

// ListReservations returns what the session's user may see
func (c *HTTPMarketplaceClient) ListReservations(ctx context.Context, sess *session.Session) ([]*api.Reservation, error) {
	var reservations []*api.Reservation
	if err := c.call(ctx, sess, http.MethodGet, "/reservations", "", nil, &reservations); err != nil {
		return nil, err
	}
	return reservations, nil
}

// GetReservation fetches one reservation
func (c *HTTPMarketplaceClient) GetReservation(ctx context.Context, sess *session.Session, reservationID models.ID) (*api.Reservation, error) {
	var reservation api.Reservation
	if err := c.call(ctx, sess, http.MethodGet, "/reservations/"+reservationID.String(), "", nil, &reservation); err != nil {
		return nil, err
	}
	return &reservation, nil
}

// UpdateReservationStatus implements updateReservationStatus
func (c *HTTPMarketplaceClient) UpdateReservationStatus(ctx context.Context, sess *session.Session, reservationID models.ID, reservationStatus status.ReservationStatus) (*api.Reservation, error) {
	var reservation api.Reservation
	body := &api.UpdateReservationStatusRequest{Status: reservationStatus}
	if err := c.call(ctx, sess, http.MethodPut, "/reservations/"+reservationID.String()+"/status", "", body, &reservation); err != nil {
		return nil, err
	}
	return &reservation, nil
}

// AssignPartner implements assignPartnerToReservation
func (c *HTTPMarketplaceClient) AssignPartner(ctx context.Context, sess *session.Session, reservationID, partnerID models.ID) (*api.Reservation, error) {
	var reservation api.Reservation
	body := &api.AssignPartnerRequest{PartnerID: partnerID.String()}
	if err := c.call(ctx, sess, http.MethodPut, "/reservations/"+reservationID.String()+"/partner", "", body, &reservation); err != nil {
		return nil, err
	}
	return &reservation, nil
}

// GetAssignment fetches one assignment
func (c *HTTPMarketplaceClient) GetAssignment(ctx context.Context, sess *session.Session, assignmentID models.ID) (*api.Assignment, error) {
	var assignment api.Assignment
	if err := c.call(ctx, sess, http.MethodGet, "/assignments/"+assignmentID.String(), "", nil, &assignment); err != nil {
		return nil, err
	}
	return &assignment, nil
}

// RespondToAssignment implements respondToAssignment
func (c *HTTPMarketplaceClient) RespondToAssignment(ctx context.Context, sess *session.Session, assignmentID models.ID, action status.AssignmentAction) (*api.Assignment, error) {
	var assignment api.Assignment
	body := &api.RespondToAssignmentRequest{Action: action}
	if err := c.call(ctx, sess, http.MethodPost, "/assignments/"+assignmentID.String()+"/respond", "", body, &assignment); err != nil {
		return nil, err
	}
	return &assignment, nil
}

func (c *HTTPMarketplaceClient) call(ctx context.Context, sess *session.Session, method, path, idempotencyKey string, body, out interface{}) error {
	if sess == nil {
		return &apperrors.AuthorizationError{Message: "Veuillez vous connecter."}
	}
	token, err := sess.Token()
	if err != nil {
		return err
	}
	return c.do(ctx, token, method, path, idempotencyKey, body, out)
}

func (c *HTTPMarketplaceClient) do(ctx context.Context, token, method, path, idempotencyKey string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, "failed to encode request")
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return errors.Wrap(err, "failed to build request")
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Authorization", "Bearer "+token)
	if idempotencyKey != "" {
		req.Header.Set(api.IdempotencyKeyHeader, idempotencyKey)
	}
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &apperrors.NetworkError{Err: err}
	}
	defer resp.Body.Close()

	var env api.Envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		if ctx.Err() != nil {
			return &apperrors.NetworkError{Err: ctx.Err()}
		}
		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return toAppError(resp.StatusCode, &api.Envelope{})
		}
		return &apperrors.RequestError{Status: resp.StatusCode}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 || !env.Success {
		return toAppError(resp.StatusCode, &env)
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return &apperrors.RequestError{Status: resp.StatusCode}
		}
	}
	return nil
}

// toAppError maps a failed envelope onto the error taxonomy by status code
func toAppError(statusCode int, env *api.Envelope) error {
	switch statusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return &apperrors.AuthorizationError{Message: env.Message}
	case http.StatusNotFound:
		return &apperrors.NotFoundError{Message: env.Message}
	case http.StatusConflict:
		return &apperrors.ConflictError{Message: env.Message}
	}
	return &apperrors.RequestError{
		Status:  statusCode,
		Message: env.Message,
		Errors:  env.Errors,
	}
}
