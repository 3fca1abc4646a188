// ABOUTME: Declarative route table for API endpoints
// ABOUTME: Defines all routes with their HTTP methods, handlers, and rate class

package handlers

import "net/http"

// Route defines an API endpoint with its HTTP method and handler.
type Route struct {
	Method  string           // HTTP method (GET, POST, etc.)
	Path    string           // URL path pattern (Go 1.22+ wildcards)
	Handler http.HandlerFunc // Handler function
	LLM     bool             // true for LLM-backed endpoints (tighter rate limit)
}

// Routes returns all API routes for registration. HTTP method validation is
// handled by Go 1.22+ router pattern matching.
func (h *Handler) Routes() []Route {
	return []Route{
		// Health & Documentation
		{Method: http.MethodGet, Path: "/api/v1/health", Handler: h.Health},
		{Method: http.MethodGet, Path: "/api/v1/openapi.yaml", Handler: h.OpenAPISpec},

		// Catalog
		{Method: http.MethodGet, Path: "/api/v1/families", Handler: h.ListFamilies},
		{Method: http.MethodGet, Path: "/api/v1/families/{family}/machines", Handler: h.ListFamilyMachines},
		{Method: http.MethodGet, Path: "/api/v1/machines", Handler: h.ListMachines},
		{Method: http.MethodGet, Path: "/api/v1/machines/{family}/{type}", Handler: h.GetMachine},
		{Method: http.MethodGet, Path: "/api/v1/disks", Handler: h.ListDisks},

		// Calculator
		{Method: http.MethodPost, Path: "/api/v1/calculate", Handler: h.Calculate},
		{Method: http.MethodPost, Path: "/api/v1/optimal-size", Handler: h.OptimalSize},

		// LLM-backed explanations
		{Method: http.MethodGet, Path: "/api/v1/explain/{family}/{type}", Handler: h.Explain, LLM: true},
		{Method: http.MethodPost, Path: "/api/v1/recommend", Handler: h.Recommend, LLM: true},
		{Method: http.MethodPost, Path: "/api/v1/analyze", Handler: h.Analyze, LLM: true},
	}
}
