package rest

import (
	"context"
	"net/http"
	"strconv"
	"time"
)

// excuseCounter reports how many excuses the store holds.
type excuseCounter interface {
	Count(ctx context.Context) int
}

// HealthHandler serves health check endpoints.
type HealthHandler struct {
	store   excuseCounter
	llm     string
	version string
}

// NewHealthHandler creates a HealthHandler. llm is the active provider
// name, or empty when generation runs on fallback pools only.
func NewHealthHandler(store excuseCounter, llm, version string) *HealthHandler {
	return &HealthHandler{store: store, llm: llm, version: version}
}

// HealthResponse is the JSON response for /health and /ready.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of an individual component.
type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
	Detail  string `json:"detail,omitempty"`
}

// Live is the liveness probe. Always returns 200.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
	})
}

// Ready is the readiness probe. The store is in memory, so the service is
// ready as soon as it serves requests.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
	})
}

// Health is the full health check with version and component details.
// A disabled LLM is reported but does not degrade the overall status.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	components := make(map[string]CompStatus, 2)

	start := time.Now()
	count := h.store.Count(r.Context())
	components["excuse_store"] = CompStatus{
		Status:  "ok",
		Latency: time.Since(start).String(),
		Detail:  strconv.Itoa(count) + " excuses",
	}

	if h.llm == "" {
		components["llm"] = CompStatus{Status: "disabled", Detail: "fallback pools only"}
	} else {
		components["llm"] = CompStatus{Status: "ok", Detail: h.llm}
	}

	writeJSON(w, http.StatusOK, HealthResponse{
		Status:     "ok",
		Version:    h.version,
		Components: components,
		Timestamp:  time.Now(),
	})
}
