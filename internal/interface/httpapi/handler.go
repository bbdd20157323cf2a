// Thin HTTP adapter over the monitoring core. Handlers only translate
// request/response shapes; all behavior lives in the use cases.
package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"skywatch-service/internal/domain/entity"
	"skywatch-service/internal/domain/repository"
	"skywatch-service/internal/usecase"
	"skywatch-service/pkg/logger"
	"skywatch-service/pkg/metrics"
)

// Handler exposes the ingestion and read endpoints
type Handler struct {
	positions  repository.PositionRepository
	alerts     repository.AlertRepository
	aggregator *usecase.FlightAggregator
	collision  *usecase.CollisionDetector
	altitude   *usecase.AltitudeDetector
	logger     logger.Logger
	metrics    *metrics.Metrics
}

// NewHandler creates a new API handler
func NewHandler(
	positions repository.PositionRepository,
	alerts repository.AlertRepository,
	aggregator *usecase.FlightAggregator,
	collision *usecase.CollisionDetector,
	altitude *usecase.AltitudeDetector,
	logger logger.Logger,
	metrics *metrics.Metrics,
) *Handler {
	return &Handler{
		positions:  positions,
		alerts:     alerts,
		aggregator: aggregator,
		collision:  collision,
		altitude:   altitude,
		logger:     logger,
		metrics:    metrics,
	}
}

// Register mounts all API routes on the mux
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/positions", h.ingestPosition)
	mux.HandleFunc("GET /api/flights", h.listFlights)
	mux.HandleFunc("GET /api/flights/{id}", h.getFlight)
	mux.HandleFunc("GET /api/terminals/{name}/flights", h.listByTerminal)
	mux.HandleFunc("GET /api/summary", h.getSummary)
	mux.HandleFunc("GET /api/alerts/collisions", h.activeCollisions)
	mux.HandleFunc("GET /api/alerts/collisions/history", h.collisionHistory)
	mux.HandleFunc("GET /api/alerts/altitude", h.activeAltitude)
	mux.HandleFunc("GET /api/alerts/altitude/history", h.altitudeHistory)
	mux.HandleFunc("POST /api/collisions/check", h.checkCollisions)
	mux.HandleFunc("POST /api/altitude/check", h.checkAltitude)
}

type positionRequest struct {
	Callsign  string  `json:"callsign"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Altitude  float64 `json:"altitude"`
	Velocity  float64 `json:"velocity"`
	Heading   float64 `json:"heading"`
	OnGround  bool    `json:"onGround"`
	Timestamp *int64  `json:"timestamp,omitempty"` // unix seconds
}

func (h *Handler) ingestPosition(w http.ResponseWriter, r *http.Request) {
	var req positionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.Callsign == "" {
		http.Error(w, "callsign is required", http.StatusBadRequest)
		return
	}

	updatedAt := time.Now()
	if req.Timestamp != nil {
		updatedAt = time.Unix(*req.Timestamp, 0)
	}

	state := &entity.AircraftState{
		Callsign:  req.Callsign,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		Altitude:  req.Altitude,
		Velocity:  req.Velocity,
		Heading:   req.Heading,
		OnGround:  req.OnGround,
		UpdatedAt: updatedAt,
	}
	if err := h.positions.Upsert(r.Context(), state); err != nil {
		h.fail(w, "ingest_position", err)
		return
	}
	h.metrics.PositionsWritten.Inc()
	w.WriteHeader(http.StatusAccepted)
}

func (h *Handler) listFlights(w http.ResponseWriter, r *http.Request) {
	views, err := h.aggregator.ListLiveFlights(r.Context())
	if err != nil {
		h.fail(w, "list_flights", err)
		return
	}
	h.writeJSON(w, views)
}

func (h *Handler) getFlight(w http.ResponseWriter, r *http.Request) {
	view, err := h.aggregator.GetFlight(r.Context(), r.PathValue("id"))
	if err != nil {
		h.fail(w, "get_flight", err)
		return
	}
	if view == nil {
		http.Error(w, "flight not found", http.StatusNotFound)
		return
	}
	h.writeJSON(w, view)
}

func (h *Handler) listByTerminal(w http.ResponseWriter, r *http.Request) {
	views, err := h.aggregator.ListByTerminal(r.Context(), r.PathValue("name"))
	if err != nil {
		h.fail(w, "list_by_terminal", err)
		return
	}
	h.writeJSON(w, views)
}

func (h *Handler) getSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.aggregator.GetSummary(r.Context())
	if err != nil {
		h.fail(w, "get_summary", err)
		return
	}
	h.writeJSON(w, summary)
}

func (h *Handler) activeCollisions(w http.ResponseWriter, r *http.Request) {
	alerts, err := h.alerts.ActiveCollisions(r.Context())
	if err != nil {
		h.fail(w, "active_collisions", err)
		return
	}
	h.writeJSON(w, alerts)
}

func (h *Handler) collisionHistory(w http.ResponseWriter, r *http.Request) {
	alerts, err := h.alerts.CollisionHistory(r.Context(), limitParam(r))
	if err != nil {
		h.fail(w, "collision_history", err)
		return
	}
	h.writeJSON(w, alerts)
}

// activeAltitude returns the active altitude alerts together with a fresh
// monitored-aircraft snapshot (an on-demand evaluation, equivalent to an
// early timer fire).
func (h *Handler) activeAltitude(w http.ResponseWriter, r *http.Request) {
	result, err := h.altitude.EvaluateAltitudeRisk(r.Context())
	if err != nil {
		h.fail(w, "active_altitude", err)
		return
	}
	active, err := h.alerts.ActiveAltitude(r.Context())
	if err != nil {
		h.fail(w, "active_altitude", err)
		return
	}
	h.writeJSON(w, map[string]interface{}{
		"activeAlerts":      active,
		"monitoredAircraft": result.MonitoredAircraft,
	})
}

func (h *Handler) altitudeHistory(w http.ResponseWriter, r *http.Request) {
	alerts, err := h.alerts.AltitudeHistory(r.Context(), limitParam(r))
	if err != nil {
		h.fail(w, "altitude_history", err)
		return
	}
	h.writeJSON(w, alerts)
}

func (h *Handler) checkCollisions(w http.ResponseWriter, r *http.Request) {
	alerts, err := h.collision.EvaluateCollisions(r.Context())
	if err != nil {
		h.fail(w, "check_collisions", err)
		return
	}
	h.writeJSON(w, alerts)
}

func (h *Handler) checkAltitude(w http.ResponseWriter, r *http.Request) {
	result, err := h.altitude.EvaluateAltitudeRisk(r.Context())
	if err != nil {
		h.fail(w, "check_altitude", err)
		return
	}
	h.writeJSON(w, result)
}

func limitParam(r *http.Request) int {
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit <= 0 {
		return 0
	}
	return limit
}

func (h *Handler) writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("Failed to encode response", "error", err)
	}
}

func (h *Handler) fail(w http.ResponseWriter, operation string, err error) {
	h.metrics.ErrorsCount.WithLabelValues(operation).Inc()
	h.logger.Error("Request failed", "operation", operation, "error", err)
	http.Error(w, "internal error", http.StatusInternalServerError)
}
