// ABOUTME: HTTP handlers for the disk advisor API endpoints
// ABOUTME: Holds shared dependencies and JSON response helpers

package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"golang.org/x/sync/singleflight"

	"github.com/markalston/gcp-disk-advisor/cache"
	"github.com/markalston/gcp-disk-advisor/config"
	"github.com/markalston/gcp-disk-advisor/models"
	"github.com/markalston/gcp-disk-advisor/services"
)

// maxRequestBodySize limits JSON request bodies to 1MB to prevent DOS attacks
const maxRequestBodySize = 1 << 20 // 1MB

type Handler struct {
	cfg     *config.Config
	cache   *cache.Cache
	catalog *services.Catalog
	calc    *services.SizingCalculator

	// llm is nil when no provider credential is configured; the explanation
	// endpoints then return 503 without touching the calculator.
	llm      services.TextGenerator
	llmCalls singleflight.Group
}

// NewHandler wires the catalog, calculator, cache, and optional LLM provider.
func NewHandler(cfg *config.Config, catalog *services.Catalog, llm services.TextGenerator, c *cache.Cache) *Handler {
	return &Handler{
		cfg:     cfg,
		cache:   c,
		catalog: catalog,
		calc:    services.NewSizingCalculator(),
		llm:     llm,
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func (h *Handler) writeError(w http.ResponseWriter, message string, code int) {
	h.writeJSON(w, code, models.ErrorResponse{
		Error: message,
		Code:  code,
	})
}

// writeServiceError maps service-layer error kinds onto HTTP status codes.
// All errors surface as structured JSON; none are fatal to the process.
func (h *Handler) writeServiceError(w http.ResponseWriter, err error) {
	var sizeErr *services.SizeRangeError
	var upstreamErr *services.UpstreamError

	switch {
	case errors.Is(err, services.ErrUnknownFamily),
		errors.Is(err, services.ErrUnknownMachineType),
		errors.Is(err, services.ErrUnknownDiskType):
		h.writeError(w, err.Error(), http.StatusNotFound)
	case errors.As(err, &sizeErr):
		h.writeError(w, sizeErr.Error(), http.StatusBadRequest)
	case errors.As(err, &upstreamErr):
		h.writeError(w, upstreamErr.Error(), http.StatusInternalServerError)
	default:
		h.writeError(w, err.Error(), http.StatusInternalServerError)
	}
}

// decodeJSONBody decodes a size-limited JSON request body into dst.
// Returns a client-appropriate message on failure.
func (h *Handler) decodeJSONBody(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		if err.Error() == "http: request body too large" {
			h.writeError(w, "Request body too large", http.StatusBadRequest)
			return false
		}
		h.writeError(w, "Invalid JSON", http.StatusBadRequest)
		return false
	}
	return true
}
