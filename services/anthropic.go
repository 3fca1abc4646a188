// ABOUTME: Anthropic Messages API provider for the TextGenerator interface
// ABOUTME: Wraps the official SDK and surfaces failures as UpstreamError

package services

import (
	"context"
	"errors"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

const anthropicMaxTokens = 1024

// AnthropicGenerator generates text via the Anthropic Messages API.
type AnthropicGenerator struct {
	client anthropic.Client
	model  anthropic.Model
}

// NewAnthropicGenerator creates a generator using the given API key. An
// empty model selects a current Claude Sonnet model.
func NewAnthropicGenerator(apiKey, model string) *AnthropicGenerator {
	m := anthropic.ModelClaudeSonnet4_20250514
	if model != "" {
		m = anthropic.Model(model)
	}
	return &AnthropicGenerator{
		client: anthropic.NewClient(option.WithAPIKey(apiKey)),
		model:  m,
	}
}

func (g *AnthropicGenerator) Provider() string {
	return "anthropic"
}

// Generate sends the prompt as a single user message and concatenates the
// text blocks of the response.
func (g *AnthropicGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	msg, err := g.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     g.model,
		MaxTokens: anthropicMaxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return "", &UpstreamError{Provider: g.Provider(), Err: err}
	}

	var sb strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}
	if sb.Len() == 0 {
		return "", &UpstreamError{Provider: g.Provider(), Err: errors.New("response contained no text")}
	}
	return sb.String(), nil
}
