package rest

import (
	"context"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

const checkTimeout = 3 * time.Second

type dbPinger interface {
	Ping(ctx context.Context) error
}

// poolStater is implemented by *pgxpool.Pool; /health reports its counters
// when available.
type poolStater interface {
	Stat() *pgxpool.Stat
}

// HealthHandler serves the liveness, readiness and health checks.
type HealthHandler struct {
	db      dbPinger
	version string
	started time.Time
}

// NewHealthHandler creates a HealthHandler. Uptime is measured from this call.
func NewHealthHandler(db dbPinger, version string) *HealthHandler {
	return &HealthHandler{db: db, version: version, started: time.Now()}
}

// HealthResponse is the JSON body of every health endpoint.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Uptime     string                `json:"uptime,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of one dependency.
type CompStatus struct {
	Status    string `json:"status"`
	Latency   string `json:"latency,omitempty"`
	OpenConns *int32 `json:"open_conns,omitempty"`
	IdleConns *int32 `json:"idle_conns,omitempty"`
}

// Live always answers 200 while the process is serving.
func (h *HealthHandler) Live(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: statusOK, Timestamp: time.Now()})
}

// Ready answers 503 until the database responds.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	db := h.checkDB(r.Context())
	writeJSON(w, httpStatus(db.Status), HealthResponse{Status: db.Status, Timestamp: time.Now()})
}

// Health reports version, uptime and per-component detail.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	db := h.checkDB(r.Context())
	writeJSON(w, httpStatus(db.Status), HealthResponse{
		Status:     db.Status,
		Version:    h.version,
		Uptime:     time.Since(h.started).Round(time.Second).String(),
		Components: map[string]CompStatus{"database": db},
		Timestamp:  time.Now(),
	})
}

const (
	statusOK   = "ok"
	statusDown = "down"
)

func (h *HealthHandler) checkDB(ctx context.Context) CompStatus {
	ctx, cancel := context.WithTimeout(ctx, checkTimeout)
	defer cancel()

	start := time.Now()
	if err := h.db.Ping(ctx); err != nil {
		return CompStatus{Status: statusDown}
	}
	st := CompStatus{Status: statusOK, Latency: time.Since(start).String()}

	if p, ok := h.db.(poolStater); ok {
		stat := p.Stat()
		open, idle := stat.TotalConns(), stat.IdleConns()
		st.OpenConns, st.IdleConns = &open, &idle
	}
	return st
}

func httpStatus(state string) int {
	if state != statusOK {
		return http.StatusServiceUnavailable
	}
	return http.StatusOK
}
