// ABOUTME: JSON error response helper for middleware
// ABOUTME: Reuses the API error model so middleware rejections look like handler errors

package middleware

import (
	"encoding/json"
	"net/http"

	"github.com/markalston/gcp-disk-advisor/models"
)

// writeJSONError writes an error response as JSON with the given status code.
func writeJSONError(w http.ResponseWriter, message string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(models.ErrorResponse{
		Error: message,
		Code:  code,
	})
}
