// ABOUTME: HTTP handlers for LLM-backed explanation and recommendation endpoints
// ABOUTME: Degrades to 503 when no provider credential is configured

package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/markalston/gcp-disk-advisor/models"
	"github.com/markalston/gcp-disk-advisor/services"
)

const llmUnavailableMsg = "LLM provider not configured. Set ANTHROPIC_API_KEY or GEMINI_API_KEY."

// generate runs one LLM call under the configured timeout.
func (h *Handler) generate(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, time.Duration(h.cfg.LLMTimeout)*time.Second)
	defer cancel()
	return h.llm.Generate(ctx, prompt)
}

// Explain returns an LLM-generated description of a machine type's use
// cases. Responses are cached, and concurrent identical requests share a
// single upstream call.
func (h *Handler) Explain(w http.ResponseWriter, r *http.Request) {
	if h.llm == nil {
		h.writeError(w, llmUnavailableMsg, http.StatusServiceUnavailable)
		return
	}

	family := r.PathValue("family")
	typeName := r.PathValue("type")
	if err := services.ValidateFamilyName(family); err != nil {
		h.writeError(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := services.ValidateMachineTypeName(typeName); err != nil {
		h.writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	machine, err := h.catalog.Machine(family, typeName)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	cacheKey := "explain:" + family + ":" + typeName
	if text, ok := h.cache.Get(cacheKey); ok {
		h.writeJSON(w, http.StatusOK, models.ExplanationResponse{Explanation: text})
		return
	}

	result, err, _ := h.llmCalls.Do(cacheKey, func() (interface{}, error) {
		return h.generate(r.Context(), services.ExplainPrompt(machine))
	})
	if err != nil {
		slog.Error("Explanation generation failed", "machine_type", typeName, "error", err)
		h.writeError(w, "Failed to generate explanation: "+err.Error(), http.StatusInternalServerError)
		return
	}

	text := result.(string)
	h.cache.Set(cacheKey, text)
	h.writeJSON(w, http.StatusOK, models.ExplanationResponse{Explanation: text})
}

// RecommendRequest is the recommend endpoint's input.
type RecommendRequest struct {
	Workload string `json:"workload"`
}

// Recommend returns LLM-generated machine type recommendations for a
// workload description.
func (h *Handler) Recommend(w http.ResponseWriter, r *http.Request) {
	if h.llm == nil {
		h.writeError(w, llmUnavailableMsg, http.StatusServiceUnavailable)
		return
	}

	var req RecommendRequest
	if !h.decodeJSONBody(w, r, &req) {
		return
	}
	if req.Workload == "" {
		h.writeError(w, "Workload description required", http.StatusBadRequest)
		return
	}

	prompt := services.RecommendPrompt(req.Workload, h.catalog.AllMachines(), h.catalog.Families())
	text, err := h.generate(r.Context(), prompt)
	if err != nil {
		slog.Error("Recommendation generation failed", "error", err)
		h.writeError(w, "Failed to generate recommendation: "+err.Error(), http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, http.StatusOK, models.RecommendationResponse{Recommendation: text})
}

// Analyze returns an LLM-generated plain-language reading of a computed
// effective performance result.
func (h *Handler) Analyze(w http.ResponseWriter, r *http.Request) {
	if h.llm == nil {
		h.writeError(w, llmUnavailableMsg, http.StatusServiceUnavailable)
		return
	}

	var result models.EffectivePerformance
	if !h.decodeJSONBody(w, r, &result) {
		return
	}
	if result.MachineType == "" || result.DiskType == "" {
		h.writeError(w, "machine_type and disk_type are required", http.StatusBadRequest)
		return
	}

	text, err := h.generate(r.Context(), services.AnalyzePrompt(result))
	if err != nil {
		slog.Error("Analysis generation failed", "machine_type", result.MachineType, "error", err)
		h.writeError(w, "Failed to generate analysis: "+err.Error(), http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, http.StatusOK, models.AnalysisResponse{Analysis: text})
}
