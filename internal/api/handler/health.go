package handler

import (
	"context"
	"net/http"

	"github.com/buildbridge/dashboard/internal/api/response"
)

// Pinger reports backing store connectivity for readiness checks.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthCheck returns a simple health check response
func HealthCheck(w http.ResponseWriter, r *http.Request) {
	response.OK(w, map[string]string{
		"status": "ok",
	})
}

// ReadyCheck returns readiness status including session slot connectivity
func ReadyCheck(slot Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := slot.Ping(r.Context()); err != nil {
			response.Error(w, http.StatusServiceUnavailable, "session slot not ready")
			return
		}

		response.OK(w, map[string]string{
			"status": "ready",
		})
	}
}
