package providers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveOllamaModel_Default(t *testing.T) {
	t.Setenv("LEGALCOPILOT_OLLAMA_MODEL", "")
	if got := resolveOllamaModel(""); got != "llama3.1" {
		t.Fatalf("expected default llama3.1, got %q", got)
	}
}

func TestResolveOllamaModel_DirectAndAlias(t *testing.T) {
	t.Setenv("LEGALCOPILOT_OLLAMA_MODEL_LAW", "mistral-nemo")
	if got := resolveOllamaModel("law"); got != "mistral-nemo" {
		t.Fatalf("alias lookup failed: %q", got)
	}
	if got := resolveOllamaModel("qwen2.5"); got != "qwen2.5" {
		t.Fatalf("direct model failed: %q", got)
	}
}

func TestOllamaGenerate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/generate", r.URL.Path)
		var body map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, false, body["stream"])
		assert.Equal(t, "summarize", body["prompt"])
		assert.Equal(t, map[string]any{"num_ctx": float64(4096)}, body["options"])
		_ = json.NewEncoder(w).Encode(map[string]any{"response": "# Summary"})
	}))
	defer srv.Close()
	t.Setenv("LEGALCOPILOT_OLLAMA_BASE_URL", srv.URL+"/")
	t.Setenv("LEGALCOPILOT_OLLAMA_NUM_CTX", "4096")

	p := NewOllamaProvider("")
	resp, info, err := p.Generate(context.Background(), GenerateRequest{Operation: OpSummary, Prompt: "summarize"})
	require.NoError(t, err)
	require.Equal(t, "# Summary", resp.Text)
	require.Equal(t, "ollama", info.Name)
}

func TestOllamaGenerateHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model not found", http.StatusNotFound)
	}))
	defer srv.Close()
	t.Setenv("LEGALCOPILOT_OLLAMA_BASE_URL", srv.URL)

	_, _, err := NewOllamaProvider("").Generate(context.Background(), GenerateRequest{Prompt: "x"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "404")
}

func TestResolveOllamaNumCtx(t *testing.T) {
	t.Setenv("LEGALCOPILOT_OLLAMA_NUM_CTX", "")
	require.Equal(t, defaultOllamaNumCtx, resolveOllamaNumCtx())
	t.Setenv("LEGALCOPILOT_OLLAMA_NUM_CTX", "-3")
	require.Equal(t, defaultOllamaNumCtx, resolveOllamaNumCtx())
	t.Setenv("LEGALCOPILOT_OLLAMA_NUM_CTX", "32768")
	require.Equal(t, 32768, resolveOllamaNumCtx())
}
