// Package health reports whether waypoint's dependencies are reachable.
package health

import (
	"context"
	"net/http"
	"time"

	"github.com/xy-planning-network/waypoint/http/resp"
	"github.com/xy-planning-network/waypoint/logger"
)

// Statuses of a dependency.
const (
	StatusOK          = "ok"
	StatusSkipped     = "skipped"
	StatusUnavailable = "unavailable"
)

const checkTimeout = 3 * time.Second

// A Pinger verifies its connection is alive.
type Pinger interface {
	Ping(ctx context.Context) error
}

// A Checker verifies a remote service is healthy.
type Checker interface {
	Health(ctx context.Context) error
}

// A Report is the status of each dependency.
type Report struct {
	Database string `json:"database"`
	Identity string `json:"identity"`
}

// OK asserts no dependency is unavailable.
func (r Report) OK() bool {
	return r.Database != StatusUnavailable && r.Identity != StatusUnavailable
}

// A Handler responds to health checks.
type Handler struct {
	d        *resp.Responder
	db       Pinger
	identity Checker
	logger   logger.Logger
}

// NewHandler constructs a *Handler checking db and identity.
//
// A nil identity is reported as skipped.
func NewHandler(d *resp.Responder, l logger.Logger, db Pinger, identity Checker) *Handler {
	if l == nil {
		l = logger.NewLogger()
	}

	return &Handler{d: d, db: db, identity: identity, logger: l}
}

// Check runs every check, bounding each by a timeout.
func (h *Handler) Check(ctx context.Context) Report {
	rep := Report{Database: StatusUnavailable, Identity: StatusSkipped}

	dbCtx, cancel := context.WithTimeout(ctx, checkTimeout)
	defer cancel()
	if h.db != nil {
		if err := h.db.Ping(dbCtx); err != nil {
			h.logger.Warn("database unavailable", &logger.LogContext{Error: err})
		} else {
			rep.Database = StatusOK
		}
	}

	if h.identity == nil {
		return rep
	}

	idCtx, cancel := context.WithTimeout(ctx, checkTimeout)
	defer cancel()
	rep.Identity = StatusOK
	if err := h.identity.Health(idCtx); err != nil {
		h.logger.Warn("identity provider unavailable", &logger.LogContext{Error: err})
		rep.Identity = StatusUnavailable
	}

	return rep
}

// Get responds with the Report of Check,
// using http.StatusServiceUnavailable when any dependency is unavailable.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	rep := h.Check(r.Context())

	code := http.StatusOK
	if !rep.OK() {
		code = http.StatusServiceUnavailable
	}

	h.d.Json(w, r, resp.Code(code), resp.Data(rep))
}
