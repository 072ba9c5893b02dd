package health

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/you-humble/material-catalog/platform/logger"
)

const pingTimeout = 2 * time.Second

type Pinger interface {
	Ping(ctx context.Context) error
}

// PingFunc adapts a function to Pinger.
type PingFunc func(ctx context.Context) error

func (f PingFunc) Ping(ctx context.Context) error { return f(ctx) }

type handler struct {
	db Pinger
}

func NewHealthHandler(db Pinger) *handler {
	return &handler{db: db}
}

type status struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

// HealthCheck reports SERVING while the process is up. A failed database ping
// only changes the database field.
func (h *handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	res := status{Status: "SERVING", Database: "up"}

	ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		logger.Warn(r.Context(), "health check: database ping", logger.ErrorF(err))
		res.Database = "down"
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if err := json.NewEncoder(w).Encode(res); err != nil {
		logger.Error(r.Context(), "health check", logger.ErrorF(err))
	}
}
