package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/sbilibin2017/gw-formation-admin/internal/logger"
)

//go:generate mockgen -source=health.go -destination=health_mock.go -package=handlers

const pingTimeout = 2 * time.Second

// Pinger checks that the database is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// HealthResponse
// swagger:model HealthResponse
type HealthResponse struct {
	// default: ok
	Status string `json:"status"`
	// default: ok
	Database string `json:"database"`
}

// NewRootHandler returns the welcome message.
// @Summary Welcome
// @Tags health
// @Produce json
// @Success 200 {object} handlers.MessageResponse
// @Router / [get]
func NewRootHandler(name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, MessageResponse{Message: "Welcome to the " + name + " API"})
	}
}

// NewHealthHandler reports service and database health.
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} handlers.HealthResponse
// @Failure 503 {object} handlers.HealthResponse
// @Router /health [get]
func NewHealthHandler(db Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
		defer cancel()

		if err := db.PingContext(ctx); err != nil {
			logger.Log.Errorw("database ping failed", "err", err)
			writeJSON(w, http.StatusServiceUnavailable, HealthResponse{Status: "degraded", Database: "unreachable"})
			return
		}

		writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Database: "ok"})
	}
}
