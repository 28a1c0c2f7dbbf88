package handlers

import (
	"net"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/depanneo/booking-platform/shared/api"
	"github.com/depanneo/booking-platform/shared/apperrors"
	"github.com/depanneo/booking-platform/shared/session"
	"golang.org/x/time/rate"
)

const (
	limiterSweepInterval = 5 * time.Minute
	limiterIdleTimeout   = 30 * time.Minute
)

type callerLimiter struct {
	limiter  *rate.Limiter
	lastSeen atomic.Int64
}

// RateLimiter throttles booking submissions per user, or per address for
// anonymous callers, so a double click does not start two runs
type RateLimiter struct {
	rps   rate.Limit
	burst int

	limiters  sync.Map // map[string]*callerLimiter
	sweepOnce sync.Once
	stop      chan struct{}
	stopOnce  sync.Once
}

// NewRateLimiter creates a new RateLimiter
func NewRateLimiter(rps float64, burst int) *RateLimiter {
	if burst < 1 {
		burst = 1
	}
	return &RateLimiter{
		rps:   rate.Limit(rps),
		burst: burst,
		stop:  make(chan struct{}),
	}
}

// Allow reports whether key may make another request now
func (l *RateLimiter) Allow(key string) bool {
	now := time.Now()

	v, ok := l.limiters.Load(key)
	if !ok {
		fresh := &callerLimiter{limiter: rate.NewLimiter(l.rps, l.burst)}
		v, _ = l.limiters.LoadOrStore(key, fresh)
		l.sweepOnce.Do(func() {
			go l.sweep()
		})
	}

	cl := v.(*callerLimiter)
	cl.lastSeen.Store(now.UnixNano())
	return cl.limiter.AllowN(now, 1)
}

// Middleware answers 429 once the caller is over its limit
func (l *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !l.Allow(callerKey(r)) {
			api.WriteErrorStatus(w, http.StatusTooManyRequests, &apperrors.RequestError{
				Status:  http.StatusTooManyRequests,
				Message: "Trop de demandes, veuillez patienter quelques secondes.",
			})
			return
		}
		next.ServeHTTP(w, r)
	})
}

// Close stops the idle limiter sweep
func (l *RateLimiter) Close() {
	l.stopOnce.Do(func() {
		close(l.stop)
	})
}

func (l *RateLimiter) sweep() {
	t := time.NewTicker(limiterSweepInterval)
	defer t.Stop()
	for {
		select {
		case <-l.stop:
			return
		case now := <-t.C:
			l.limiters.Range(func(key, val any) bool {
				if now.Sub(time.Unix(0, val.(*callerLimiter).lastSeen.Load())) > limiterIdleTimeout {
					l.limiters.Delete(key)
				}
				return true
			})
		}
	}
}

func callerKey(r *http.Request) string {
	if sess := session.FromContext(r.Context()); sess != nil {
		return "user:" + sess.User().ID.String()
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	return "ip:" + host
}
