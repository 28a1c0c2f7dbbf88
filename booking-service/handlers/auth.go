package handlers

import (
	"net/http"
	"strings"

	"github.com/depanneo/booking-platform/booking-service/application"
	"github.com/depanneo/booking-platform/shared/api"
	"github.com/depanneo/booking-platform/shared/apperrors"
	"github.com/depanneo/booking-platform/shared/session"
)

// Authenticator opens a session per request from the caller's bearer token.
// The marketplace is asked who the token belongs to.
type Authenticator struct {
	client application.MarketplaceClient
}

// NewAuthenticator creates a new Authenticator
func NewAuthenticator(client application.MarketplaceClient) *Authenticator {
	return &Authenticator{client: client}
}

// Middleware answers 401 without a usable token and otherwise puts an open
// session in the request context, closing it when the request is done
func (a *Authenticator) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		parts := strings.Fields(r.Header.Get("Authorization"))
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			api.WriteErrorStatus(w, http.StatusUnauthorized, &apperrors.AuthorizationError{Message: "Veuillez vous connecter."})
			return
		}

		user, err := a.client.CurrentUser(r.Context(), parts[1])
		if err != nil {
			if apperrors.IsAuthorization(err) {
				api.WriteErrorStatus(w, http.StatusUnauthorized, err)
				return
			}
			api.WriteError(w, err)
			return
		}

		sess, err := session.Open(parts[1], *user)
		if err != nil {
			api.WriteErrorStatus(w, http.StatusUnauthorized, err)
			return
		}
		defer sess.Close()

		next.ServeHTTP(w, r.WithContext(session.WithSession(r.Context(), sess)))
	})
}

func sessionFrom(r *http.Request) *session.Session {
	return session.FromContext(r.Context())
}
