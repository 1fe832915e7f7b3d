package health

import (
	"net/http"

	"github.com/aatuh/ulid-toolkit/httpx"
	"github.com/aatuh/ulid-toolkit/ports"
	"github.com/aatuh/ulid-toolkit/specs"
)

// Handler provides HTTP handlers for health endpoints.
type Handler struct {
	manager ports.HealthManager
}

// NewHandler creates a new health handler.
func NewHandler(manager ports.HealthManager) *Handler {
	return &Handler{manager: manager}
}

// RegisterRoutes mounts the probe endpoints on the router.
func (h *Handler) RegisterRoutes(r ports.HTTPRouter) {
	r.Get(specs.Livez, h.LivenessHandler)
	r.Get(specs.Readyz, h.ReadinessHandler)
}

// LivenessHandler handles liveness probes.
func (h *Handler) LivenessHandler(w http.ResponseWriter, r *http.Request) {
	writeResult(w, h.manager.GetLiveness(r.Context()))
}

// ReadinessHandler handles readiness probes.
func (h *Handler) ReadinessHandler(w http.ResponseWriter, r *http.Request) {
	writeResult(w, h.manager.GetReadiness(r.Context()))
}

func writeResult(w http.ResponseWriter, result ports.HealthResult) {
	status := http.StatusOK
	if result.Status == ports.HealthStatusUnhealthy {
		status = http.StatusServiceUnavailable
	}
	httpx.WriteJSON(w, status, result)
}
