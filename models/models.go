// ABOUTME: Shared API response models for the disk advisor service
// ABOUTME: JSON-serializable structures matching frontend expectations

package models

// ErrorResponse represents a structured error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
	Code    int    `json:"code"`
}

// ExplanationResponse wraps LLM-generated machine type explanations.
type ExplanationResponse struct {
	Explanation string `json:"explanation"`
}

// RecommendationResponse wraps LLM-generated machine type recommendations.
type RecommendationResponse struct {
	Recommendation string `json:"recommendation"`
}

// AnalysisResponse wraps LLM-generated bottleneck analysis text.
type AnalysisResponse struct {
	Analysis string `json:"analysis"`
}
