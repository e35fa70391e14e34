// Package server exposes conversion over HTTP. A client posts a page and
// a set of options with the "convert" action and receives the conversion
// result as JSON.
package server

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/gaurav-prasanna/wikimd/core"
	"github.com/gaurav-prasanna/wikimd/core/extract"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"
)

const (
	// ActionConvert is the only supported request action.
	ActionConvert = "convert"

	maxRequestSize = 50 * 1024 * 1024 // 50MB max request size
)

// Converter is the conversion engine the handler delegates to.
type Converter interface {
	Convert(doc core.Document, opts core.Options) core.Result
}

// Handler manages HTTP request handling
type Handler struct {
	converter Converter
	defaults  core.Options
}

// NewHandler creates a new Handler. defaults apply when a request carries
// no options object.
func NewHandler(converter Converter, defaults core.Options) *Handler {
	return &Handler{
		converter: converter,
		defaults:  defaults,
	}
}

// RegisterRoutes registers all HTTP routes
func (h *Handler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/health", h.HealthCheck).Methods("GET")
	router.HandleFunc("/convert", h.Convert).Methods("POST")
	router.HandleFunc("/", h.Index).Methods("GET")
}

// HealthCheckResponse represents the health check response
type HealthCheckResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Service   string    `json:"service"`
}

// HealthCheck handles health check requests
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthCheckResponse{
		Status:    "healthy",
		Timestamp: time.Now(),
		Service:   "wikimd",
	})
}

// IndexResponse represents the index page response
type IndexResponse struct {
	Service     string   `json:"service"`
	Version     string   `json:"version"`
	Description string   `json:"description"`
	Endpoints   []string `json:"endpoints"`
}

// Index handles root path requests
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, IndexResponse{
		Service:     "Wikipedia to Markdown Converter",
		Version:     "1.0.0",
		Description: "Converts Wikipedia article pages into clean Markdown",
		Endpoints: []string{
			"GET  /health - Health check endpoint",
			"POST /convert - Convert an article page to Markdown",
		},
	})
}

// ConvertRequest is the conversion request payload.
type ConvertRequest struct {
	Action  string        `json:"action"`
	URL     string        `json:"url"`
	HTML    string        `json:"html"`
	Options *core.Options `json:"options,omitempty"`
}

// ErrorResponse represents a malformed-request response
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
	Success bool   `json:"success"`
}

// Convert handles conversion requests. Successful conversions answer 200;
// conversions that fail answer 422 with the failure result.
func (h *Handler) Convert(w http.ResponseWriter, r *http.Request) {
	startTime := time.Now()

	// Extract request ID from header for logging
	requestID := r.Header.Get("X-Request-ID")
	logger := log.Logger
	if requestID != "" {
		logger = log.With().Str("request_id", requestID).Logger()
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxRequestSize)
	body, err := io.ReadAll(r.Body)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to read request body")
		h.sendError(w, "Failed to read request body", err.Error(), http.StatusBadRequest)
		return
	}

	var req ConvertRequest
	if err := json.Unmarshal(body, &req); err != nil {
		logger.Error().Err(err).Msg("Failed to parse request body")
		h.sendError(w, "Invalid JSON in request body", err.Error(), http.StatusBadRequest)
		return
	}

	if req.Action != ActionConvert {
		logger.Warn().Str("action", req.Action).Msg("Unsupported action")
		h.sendError(w, "Unsupported action", "The 'action' field must be \"convert\"", http.StatusBadRequest)
		return
	}
	if req.HTML == "" {
		logger.Warn().Msg("Empty HTML field in request")
		h.sendError(w, "HTML field is required", "The 'html' field cannot be empty", http.StatusBadRequest)
		return
	}

	opts := h.defaults
	if req.Options != nil {
		opts = *req.Options
	}

	page, err := extract.Parse(req.HTML, req.URL)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to parse page")
		h.sendError(w, "Failed to parse page", err.Error(), http.StatusBadRequest)
		return
	}

	result := h.converter.Convert(page, opts)

	logger.Info().
		Dur("duration_ms", time.Since(startTime)).
		Int("input_size", len(req.HTML)).
		Int("output_size", len(result.Markdown)).
		Bool("success", result.Success).
		Msg("Article conversion completed")

	status := http.StatusOK
	if !result.Success {
		status = http.StatusUnprocessableEntity
	}
	writeJSON(w, status, result)
}

// sendError sends an error response
func (h *Handler) sendError(w http.ResponseWriter, message string, details string, statusCode int) {
	writeJSON(w, statusCode, ErrorResponse{
		Error:   message,
		Details: details,
		Success: false,
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("Failed to encode response")
	}
}
