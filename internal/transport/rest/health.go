package rest

import (
	"context"
	"net/http"
	"time"
)

const probeTimeout = 3 * time.Second

const (
	statusOK       = "ok"
	statusDegraded = "degraded"
	statusDown     = "down"
)

type dbPinger interface {
	Ping(ctx context.Context) error
}

type catalogCounter interface {
	Count(ctx context.Context) (int64, error)
}

// HealthHandler serves the probe endpoints.
type HealthHandler struct {
	db      dbPinger
	catalog catalogCounter
	version string
}

// NewHealthHandler creates a HealthHandler.
func NewHealthHandler(db dbPinger, catalog catalogCounter, version string) *HealthHandler {
	return &HealthHandler{db: db, catalog: catalog, version: version}
}

type healthResponse struct {
	Status     string                     `json:"status"`
	Version    string                     `json:"version,omitempty"`
	Components map[string]componentStatus `json:"components,omitempty"`
	Timestamp  time.Time                  `json:"timestamp"`
}

type componentStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
	Entries *int64 `json:"entries,omitempty"`
}

// Live always answers 200.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: statusOK, Timestamp: time.Now()})
}

// Ready answers 503 while the database is unreachable.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), probeTimeout)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, healthResponse{Status: statusDown, Timestamp: time.Now()})
		return
	}
	writeJSON(w, http.StatusOK, healthResponse{Status: statusOK, Timestamp: time.Now()})
}

// Health reports every component. An empty food catalog does not stop
// the service, since unknown food is priced at the fallback rate, but it
// marks the service degraded.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), probeTimeout)
	defer cancel()

	resp := healthResponse{
		Status:     statusOK,
		Version:    h.version,
		Components: make(map[string]componentStatus, 2),
	}

	start := time.Now()
	if err := h.db.Ping(ctx); err != nil {
		resp.Components["database"] = componentStatus{Status: statusDown}
		resp.Components["food_catalog"] = componentStatus{Status: statusDown}
		resp.Status = statusDown
	} else {
		resp.Components["database"] = componentStatus{Status: statusOK, Latency: time.Since(start).String()}

		catalog := componentStatus{Status: statusOK}
		switch n, err := h.catalog.Count(ctx); {
		case err != nil:
			catalog.Status = statusDown
			resp.Status = statusDown
		case n == 0:
			catalog.Status = statusDegraded
			catalog.Entries = &n
			resp.Status = statusDegraded
		default:
			catalog.Entries = &n
		}
		resp.Components["food_catalog"] = catalog
	}

	code := http.StatusOK
	if resp.Status == statusDown {
		code = http.StatusServiceUnavailable
	}
	resp.Timestamp = time.Now()
	writeJSON(w, code, resp)
}
