package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/resumehub/resumehub-backend/pkg/logger"
	"go.uber.org/multierr"
)

const healthProbeTimeout = 5 * time.Second

type healthPayload struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
	Error     string `json:"error,omitempty"`
}

type pinger interface {
	Ping(ctx context.Context) error
}

// Health probes the critical dependencies and reports 503 when any fails.
// The payload is deliberately not enveloped so load balancers can parse it.
func Health(db pinger, cache pinger, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), healthProbeTimeout)
		defer cancel()

		var probeErr error
		if db != nil {
			probeErr = multierr.Append(probeErr, db.Ping(ctx))
		}
		if cache != nil {
			probeErr = multierr.Append(probeErr, cache.Ping(ctx))
		}

		payload := healthPayload{
			Status:    "healthy",
			Message:   "service is running",
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		}
		status := http.StatusOK
		if probeErr != nil {
			logg.Error(ctx, "health probe failed", probeErr)
			payload.Status = "unhealthy"
			payload.Message = "service is unavailable"
			payload.Error = probeErr.Error()
			status = http.StatusServiceUnavailable
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(payload)
	}
}
