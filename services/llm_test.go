package services

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestGemini(serverURL string) *GeminiGenerator {
	g := NewGeminiGenerator("test-key", "")
	g.baseURL = serverURL
	return g
}

func TestGeminiGenerate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("Expected POST, got %s", r.Method)
		}
		if r.URL.Query().Get("key") != "test-key" {
			t.Errorf("Expected API key in query, got %q", r.URL.Query().Get("key"))
		}

		var req geminiRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("Failed to decode request: %v", err)
		}
		if len(req.Contents) != 1 || req.Contents[0].Parts[0].Text != "explain n2-standard-32" {
			t.Errorf("Unexpected prompt payload: %+v", req)
		}

		json.NewEncoder(w).Encode(geminiResponse{
			Candidates: []struct {
				Content geminiContent `json:"content"`
			}{
				{Content: geminiContent{Parts: []geminiPart{{Text: "A 32 vCPU machine."}}}},
			},
		})
	}))
	defer server.Close()

	g := newTestGemini(server.URL)
	text, err := g.Generate(context.Background(), "explain n2-standard-32")
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if text != "A 32 vCPU machine." {
		t.Errorf("Unexpected response text: %q", text)
	}
}

func TestGeminiGenerateUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer server.Close()

	g := newTestGemini(server.URL)
	_, err := g.Generate(context.Background(), "prompt")
	if err == nil {
		t.Fatal("Expected error for non-200 response")
	}

	var upstream *UpstreamError
	if !errors.As(err, &upstream) {
		t.Fatalf("Expected *UpstreamError, got %T", err)
	}
	if upstream.Provider != "gemini" {
		t.Errorf("Expected provider gemini, got %q", upstream.Provider)
	}
}

func TestGeminiGenerateEmptyCandidates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates": []}`))
	}))
	defer server.Close()

	g := newTestGemini(server.URL)
	if _, err := g.Generate(context.Background(), "prompt"); err == nil {
		t.Error("Expected error for empty candidate list")
	}
}

func TestGeminiGenerateContextCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	g := newTestGemini(server.URL)
	if _, err := g.Generate(ctx, "prompt"); err == nil {
		t.Error("Expected error for cancelled context")
	}
}

func TestGeminiDefaultModel(t *testing.T) {
	g := NewGeminiGenerator("key", "")
	if g.model != defaultGeminiModel {
		t.Errorf("Expected default model %s, got %s", defaultGeminiModel, g.model)
	}
	g = NewGeminiGenerator("key", "gemini-1.5-pro")
	if g.model != "gemini-1.5-pro" {
		t.Errorf("Expected explicit model, got %s", g.model)
	}
}

func TestAnthropicProviderName(t *testing.T) {
	g := NewAnthropicGenerator("test-key", "")
	if g.Provider() != "anthropic" {
		t.Errorf("Expected provider anthropic, got %q", g.Provider())
	}
}
