package middleware

import (
	"net"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/time/rate"

	"github.com/heartmarshall/dietrack-backend/pkg/ctxutil"
)

// idleCallerTTL is how long a caller's limiter survives without requests.
const idleCallerTTL = 10 * time.Minute

// RateLimiter keeps one token bucket per caller. Authenticated requests are
// keyed by user ID, anonymous ones by client IP.
type RateLimiter struct {
	callers sync.Map // map[string]*caller
	stop    chan struct{}
}

type caller struct {
	limiter  *rate.Limiter
	lastSeen atomic.Int64 // unix nanoseconds
}

// NewRateLimiter starts a limiter that evicts idle callers every
// cleanupInterval. Call Stop on shutdown.
func NewRateLimiter(cleanupInterval time.Duration) *RateLimiter {
	rl := &RateLimiter{stop: make(chan struct{})}
	go rl.cleanup(cleanupInterval)
	return rl
}

// Stop terminates the background cleanup goroutine.
func (rl *RateLimiter) Stop() {
	close(rl.stop)
}

// Limit allows each caller a burst of maxPerMinute requests, refilled
// evenly over a minute. A non-positive maxPerMinute disables limiting.
func (rl *RateLimiter) Limit(maxPerMinute int) Middleware {
	return func(next http.Handler) http.Handler {
		if maxPerMinute <= 0 {
			return next
		}
		every := rate.Every(time.Minute / time.Duration(maxPerMinute))
		retryAfter := strconv.Itoa(int(60/maxPerMinute) + 1)

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !rl.callerFor(callerKey(r), every, maxPerMinute).allow() {
				w.Header().Set("Retry-After", retryAfter)
				writeError(w, http.StatusTooManyRequests, "RATE_LIMITED", "rate limit exceeded")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func callerKey(r *http.Request) string {
	if userID, ok := ctxutil.UserIDFromCtx(r.Context()); ok {
		return "user:" + userID.String()
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	return "ip:" + host
}

func (rl *RateLimiter) callerFor(key string, every rate.Limit, burst int) *caller {
	if c, ok := rl.callers.Load(key); ok {
		return c.(*caller)
	}
	c, _ := rl.callers.LoadOrStore(key, &caller{limiter: rate.NewLimiter(every, burst)})
	return c.(*caller)
}

func (c *caller) allow() bool {
	c.lastSeen.Store(time.Now().UnixNano())
	return c.limiter.Allow()
}

func (rl *RateLimiter) cleanup(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-rl.stop:
			return
		case now := <-ticker.C:
			cutoff := now.Add(-idleCallerTTL).UnixNano()
			rl.callers.Range(func(key, value any) bool {
				if value.(*caller).lastSeen.Load() < cutoff {
					rl.callers.Delete(key)
				}
				return true
			})
		}
	}
}
