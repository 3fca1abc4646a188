// ABOUTME: Capability interface for LLM text generation providers
// ABOUTME: Calculator and HTTP layers never depend on a concrete provider

package services

import "context"

// TextGenerator is the capability interface for LLM providers. A nil
// generator means no credential was configured; the explanation endpoints
// degrade to 503 without affecting the calculator endpoints.
type TextGenerator interface {
	// Generate sends a prompt and returns the generated text. Failures are
	// reported as *UpstreamError. Callers bound the call with a context
	// deadline.
	Generate(ctx context.Context, prompt string) (string, error)
	// Provider returns the provider name for logging and health reporting.
	Provider() string
}
