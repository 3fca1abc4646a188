// ABOUTME: Health check endpoint with catalog and LLM status
// ABOUTME: Reports entry counts so operators can spot a bad catalog load

package handlers

import "net/http"

// Health reports service status. The catalog is loaded at startup, so the
// counts are constant for a process lifetime.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	families, machines, diskTypes := h.catalog.Counts()

	resp := map[string]interface{}{
		"status": "ok",
		"llm":    "not_configured",
		"catalog": map[string]int{
			"families":   families,
			"machines":   machines,
			"disk_types": diskTypes,
		},
	}
	if h.llm != nil {
		resp["llm"] = h.llm.Provider()
	}

	h.writeJSON(w, http.StatusOK, resp)
}
