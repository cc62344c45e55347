package handlers

import (
	"context"
	"net/http"
)

// Pinger reports reachability of one backing dependency.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler reports service and dependency health
type HealthHandler struct {
	dependencies map[string]Pinger
}

// NewHealthHandler creates a new health handler. Nil pingers are skipped so
// optional dependencies (Redis) can be absent.
func NewHealthHandler(dependencies map[string]Pinger) *HealthHandler {
	return &HealthHandler{dependencies: dependencies}
}

// Health handles GET /api/health
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	status := http.StatusOK
	checks := make(map[string]string, len(h.dependencies))

	for name, dep := range h.dependencies {
		if dep == nil {
			continue
		}
		if err := dep.Ping(r.Context()); err != nil {
			checks[name] = "unreachable"
			status = http.StatusServiceUnavailable
			continue
		}
		checks[name] = "ok"
	}

	body := map[string]interface{}{
		"status": "ok",
		"checks": checks,
	}
	if status != http.StatusOK {
		body["status"] = "degraded"
	}
	respondWithJSON(w, status, body)
}
