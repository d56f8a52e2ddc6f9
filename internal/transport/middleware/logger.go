package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/dietrack-backend/pkg/ctxutil"
)

// requestTrace collects what inner layers learn about a request so the
// outer Logger can report it. Inner handlers derive new requests, which
// Logger never sees.
type requestTrace struct {
	route  string
	userID uuid.UUID
}

type traceKey struct{}

func traceFrom(ctx context.Context) *requestTrace {
	t, _ := ctx.Value(traceKey{}).(*requestTrace)
	return t
}

// Logger logs one line per request. The route is the mux pattern that
// matched (e.g. "PATCH /v1/dishes/{id}") as recorded by Routed, so dish and
// day IDs stay out of the aggregation key. Status 5xx is logged at error
// level, 4xx at warn.
func Logger(logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
			trace := &requestTrace{}

			next.ServeHTTP(sw, r.WithContext(context.WithValue(r.Context(), traceKey{}, trace)))

			attrs := []slog.Attr{
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", sw.status),
				slog.Int("bytes", sw.bytes),
				slog.Duration("duration", time.Since(start)),
			}
			if trace.route != "" {
				attrs = append(attrs, slog.String("route", trace.route))
			}
			attrs = append(attrs, ctxutil.LogAttrs(r.Context())...)
			if trace.userID != uuid.Nil {
				attrs = append(attrs, slog.String("user_id", trace.userID.String()))
			}

			logger.LogAttrs(r.Context(), levelFor(sw.status), "http.request", attrs...)
		})
	}
}

// Routed records the mux pattern that matched the request. Wrap each
// registered handler with it.
func Routed(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if t := traceFrom(r.Context()); t != nil {
			t.route = r.Pattern
		}
		next.ServeHTTP(w, r)
	})
}

func levelFor(status int) slog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return slog.LevelError
	case status >= http.StatusBadRequest:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}

// statusWriter captures the response status code and body size.
type statusWriter struct {
	http.ResponseWriter
	status      int
	bytes       int
	wroteHeader bool
}

func (w *statusWriter) WriteHeader(code int) {
	if !w.wroteHeader {
		w.status = code
		w.wroteHeader = true
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	w.wroteHeader = true
	n, err := w.ResponseWriter.Write(b)
	w.bytes += n
	return n, err
}
