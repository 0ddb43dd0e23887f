package providers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"
)

// OllamaProvider runs generation against a local Ollama server.
type OllamaProvider struct {
	alias   string
	baseURL string
	model   string
	numCtx  int
	client  *http.Client
}

// defaultOllamaNumCtx fits a typical contract plus the prompt template.
const defaultOllamaNumCtx = 16384

func NewOllamaProvider(alias string) *OllamaProvider {
	baseURL := strings.TrimSpace(os.Getenv("LEGALCOPILOT_OLLAMA_BASE_URL"))
	if baseURL == "" {
		baseURL = "http://localhost:11434"
	}
	return &OllamaProvider{
		alias:   alias,
		baseURL: strings.TrimRight(baseURL, "/"),
		model:   resolveOllamaModel(alias),
		numCtx:  resolveOllamaNumCtx(),
		client:  &http.Client{Timeout: 180 * time.Second},
	}
}

func (o *OllamaProvider) Generate(ctx context.Context, req GenerateRequest) (GenerateResponse, ProviderInfo, error) {
	info := o.Info()
	payload, err := json.Marshal(map[string]any{
		"model":   o.model,
		"system":  systemPrompt,
		"prompt":  req.Prompt,
		"stream":  false,
		"options": map[string]any{"num_ctx": o.numCtx},
	})
	if err != nil {
		return GenerateResponse{}, info, fmt.Errorf("encode ollama request: %w", err)
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, o.baseURL+"/api/generate", bytes.NewReader(payload))
	if err != nil {
		return GenerateResponse{}, info, fmt.Errorf("build ollama request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := o.client.Do(httpReq)
	if err != nil {
		return GenerateResponse{}, info, fmt.Errorf("ollama generate request failed: %w", err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if resp.StatusCode >= 400 {
		return GenerateResponse{}, info, fmt.Errorf("ollama generate error %d: %s", resp.StatusCode, truncate(string(body), 512))
	}
	var parsed struct {
		Response string `json:"response"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return GenerateResponse{}, info, fmt.Errorf("decode ollama response: %w", err)
	}
	if strings.TrimSpace(parsed.Response) == "" {
		return GenerateResponse{}, info, fmt.Errorf("ollama: %w", ErrEmptyResponse)
	}
	return GenerateResponse{Text: parsed.Response}, info, nil
}

func resolveOllamaModel(alias string) string {
	alias = strings.TrimSpace(alias)
	if alias != "" {
		key := "LEGALCOPILOT_OLLAMA_MODEL_" + sanitizeEnvToken(alias)
		if v := strings.TrimSpace(os.Getenv(key)); v != "" {
			return v
		}
		// Allow a direct model in the provider list, e.g. ollama:llama3.1
		if strings.ContainsAny(alias, "-/.:") || strings.ContainsAny(alias, "0123456789") {
			return alias
		}
	}
	if v := strings.TrimSpace(os.Getenv("LEGALCOPILOT_OLLAMA_MODEL")); v != "" {
		return v
	}
	return "llama3.1"
}

func resolveOllamaNumCtx() int {
	v := strings.TrimSpace(os.Getenv("LEGALCOPILOT_OLLAMA_NUM_CTX"))
	if v == "" {
		return defaultOllamaNumCtx
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return defaultOllamaNumCtx
	}
	return n
}

func sanitizeEnvToken(s string) string {
	s = strings.ToUpper(s)
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, ".", "_")
	s = strings.ReplaceAll(s, "/", "_")
	return s
}

func (o *OllamaProvider) Info() ProviderInfo {
	return ProviderInfo{Name: "ollama", Model: o.model, Key: o.alias}
}
