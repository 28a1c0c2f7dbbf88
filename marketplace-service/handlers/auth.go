package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/depanneo/booking-platform/shared/api"
	"github.com/depanneo/booking-platform/shared/apperrors"
	"github.com/depanneo/booking-platform/shared/models"
	"github.com/depanneo/booking-platform/shared/session"
	"github.com/depanneo/booking-platform/shared/status"
	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

// Claims are the bearer token claims; sub is the user ID
type Claims struct {
	Name string      `json:"name"`
	Role status.Role `json:"role"`
	jwt.RegisteredClaims
}

// Authenticator verifies HMAC bearer tokens and opens a request session
type Authenticator struct {
	secret []byte
}

// NewAuthenticator creates a new Authenticator
func NewAuthenticator(secret string) *Authenticator {
	return &Authenticator{secret: []byte(secret)}
}

// IssueToken signs a token for user, valid for ttl
func (a *Authenticator) IssueToken(user session.User, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		Name: user.Name,
		Role: user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}
	return signed, nil
}

// Verify parses a token and returns the user it was issued for
func (a *Authenticator) Verify(token string) (session.User, error) {
	var claims Claims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return a.secret, nil
	})
	if err != nil {
		return session.User{}, errors.Wrap(err, "invalid token")
	}
	if !parsed.Valid {
		return session.User{}, errors.New("invalid token")
	}

	userID, err := models.NewID(claims.Subject)
	if err != nil {
		return session.User{}, errors.Wrap(err, "invalid subject")
	}
	if !claims.Role.IsValid() {
		return session.User{}, errors.Errorf("invalid role %q", claims.Role)
	}

	return session.User{ID: userID, Name: claims.Name, Role: claims.Role}, nil
}

// Middleware rejects requests without a valid bearer token with 401 and puts
// the session of the others in the request context
func (a *Authenticator) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		unauthorized := &apperrors.AuthorizationError{Message: "Session expirée, veuillez vous reconnecter."}

		parts := strings.Fields(r.Header.Get("Authorization"))
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			api.WriteErrorStatus(w, http.StatusUnauthorized, unauthorized)
			return
		}

		user, err := a.Verify(parts[1])
		if err != nil {
			api.WriteErrorStatus(w, http.StatusUnauthorized, unauthorized)
			return
		}

		sess, err := session.Open(parts[1], user)
		if err != nil {
			api.WriteErrorStatus(w, http.StatusUnauthorized, err)
			return
		}
		defer sess.Close()

		next.ServeHTTP(w, r.WithContext(session.WithSession(r.Context(), sess)))
	})
}

func actorFrom(r *http.Request) session.User {
	if sess := session.FromContext(r.Context()); sess != nil {
		return sess.User()
	}
	return session.User{}
}
