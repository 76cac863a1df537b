package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"flight-tracker-service/internal/domain/entity"
	"flight-tracker-service/pkg/logger"
)

// FlightTracker is the part of the flight store the API reads and edits
type FlightTracker interface {
	List() []*entity.Flight
	Get(id string) (*entity.Flight, error)
	Remove(ctx context.Context, id string) error
}

// Ingestor is the add-flight workflow
type Ingestor interface {
	Submit(ctx context.Context, req entity.LookupRequest) (*entity.Flight, error)
	SubmitDraft(ctx context.Context) (*entity.Flight, error)
	IsPending() bool
	Draft() entity.LookupRequest
	SetDraft(req entity.LookupRequest)
}

// FlightHandler serves the flight tracking JSON API
type FlightHandler struct {
	tracker   FlightTracker
	ingestion Ingestor
	logger    logger.Logger
}

// NewFlightHandler creates a new handler
func NewFlightHandler(tracker FlightTracker, ingestion Ingestor, logger logger.Logger) *FlightHandler {
	return &FlightHandler{
		tracker:   tracker,
		ingestion: ingestion,
		logger:    logger,
	}
}

// Register adds the API routes to mux
func (h *FlightHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/v1/flights", h.ListFlights)
	mux.HandleFunc("POST /api/v1/flights", h.AddFlight)
	mux.HandleFunc("GET /api/v1/flights/{id}", h.GetFlight)
	mux.HandleFunc("DELETE /api/v1/flights/{id}", h.RemoveFlight)

	mux.HandleFunc("GET /api/v1/ingestion", h.IngestionState)
	mux.HandleFunc("PUT /api/v1/ingestion", h.UpdateDraft)
	mux.HandleFunc("POST /api/v1/ingestion/submit", h.SubmitDraft)
}

// Response is the envelope of every API response
type Response struct {
	Success bool           `json:"success"`
	Data    interface{}    `json:"data,omitempty"`
	Warning string         `json:"warning,omitempty"`
	Error   *ErrorResponse `json:"error,omitempty"`
}

// ErrorResponse describes a failed request
type ErrorResponse struct {
	Message string `json:"message"`
	Code    string `json:"code"`
}

// IngestionState is the add-flight form as seen by a client
type IngestionState struct {
	Pending bool                 `json:"pending"`
	Draft   entity.LookupRequest `json:"draft"`
}

// ListFlights returns every tracked flight
func (h *FlightHandler) ListFlights(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, Response{Success: true, Data: h.tracker.List()})
}

// GetFlight returns one flight by id
func (h *FlightHandler) GetFlight(w http.ResponseWriter, r *http.Request) {
	flight, err := h.tracker.Get(r.PathValue("id"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, Response{Success: true, Data: flight})
}

// AddFlight submits a lookup request and returns the created flight
func (h *FlightHandler) AddFlight(w http.ResponseWriter, r *http.Request) {
	var req entity.LookupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, Response{
			Error: &ErrorResponse{Message: "invalid request body", Code: "INVALID_BODY"},
		})
		return
	}

	flight, err := h.ingestion.Submit(r.Context(), req)
	h.writeCreated(w, flight, err)
}

// RemoveFlight stops tracking a flight. Unknown ids succeed too.
// A removal that was not persisted answers 200 with a warning.
func (h *FlightHandler) RemoveFlight(w http.ResponseWriter, r *http.Request) {
	err := h.tracker.Remove(r.Context(), r.PathValue("id"))
	switch {
	case err == nil:
		w.WriteHeader(http.StatusNoContent)
	case errors.Is(err, entity.ErrPersistence):
		h.logger.Warn("Flight removed but not persisted", "id", r.PathValue("id"), "error", err)
		h.writeJSON(w, http.StatusOK, Response{Success: true, Warning: err.Error()})
	default:
		h.writeError(w, err)
	}
}

// IngestionState reports the draft and whether a submission is pending
func (h *FlightHandler) IngestionState(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, Response{Success: true, Data: h.state()})
}

// UpdateDraft replaces the draft without submitting it
func (h *FlightHandler) UpdateDraft(w http.ResponseWriter, r *http.Request) {
	var req entity.LookupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, Response{
			Error: &ErrorResponse{Message: "invalid request body", Code: "INVALID_BODY"},
		})
		return
	}

	h.ingestion.SetDraft(req)
	h.writeJSON(w, http.StatusOK, Response{Success: true, Data: h.state()})
}

// SubmitDraft submits the stored draft
func (h *FlightHandler) SubmitDraft(w http.ResponseWriter, r *http.Request) {
	flight, err := h.ingestion.SubmitDraft(r.Context())
	h.writeCreated(w, flight, err)
}

func (h *FlightHandler) state() IngestionState {
	return IngestionState{
		Pending: h.ingestion.IsPending(),
		Draft:   h.ingestion.Draft(),
	}
}

// writeCreated answers a submission. A flight that was tracked but not
// persisted is still reported as created, with a warning.
func (h *FlightHandler) writeCreated(w http.ResponseWriter, flight *entity.Flight, err error) {
	if flight == nil {
		h.writeError(w, err)
		return
	}

	resp := Response{Success: true, Data: flight}
	if err != nil {
		resp.Warning = err.Error()
	}
	h.writeJSON(w, http.StatusCreated, resp)
}

func (h *FlightHandler) writeError(w http.ResponseWriter, err error) {
	status, code := classify(err)
	if status >= http.StatusInternalServerError {
		h.logger.Error("Request failed", "error", err)
	}
	h.writeJSON(w, status, Response{Error: &ErrorResponse{Message: err.Error(), Code: code}})
}

// classify maps engine errors to HTTP statuses
func classify(err error) (int, string) {
	switch {
	case errors.Is(err, entity.ErrValidation):
		return http.StatusBadRequest, "VALIDATION_ERROR"
	case errors.Is(err, entity.ErrNotFound):
		return http.StatusNotFound, "NOT_FOUND"
	case errors.Is(err, entity.ErrBusy):
		return http.StatusConflict, "BUSY"
	case errors.Is(err, entity.ErrLookup):
		return http.StatusBadGateway, "LOOKUP_FAILED"
	case errors.Is(err, entity.ErrPersistence):
		return http.StatusInternalServerError, "PERSISTENCE_ERROR"
	default:
		return http.StatusInternalServerError, "INTERNAL_ERROR"
	}
}

func (h *FlightHandler) writeJSON(w http.ResponseWriter, status int, body Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Error("Failed to encode response", "error", err)
	}
}
