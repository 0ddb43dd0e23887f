package providers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

// chatVendor describes one OpenAI-compatible chat completions endpoint and
// where its model and key come from.
type chatVendor struct {
	name         string
	endpoint     string
	modelEnv     string
	defaultModel string
	keyEnvPrefix string
	defaultKey   string
	timeout      time.Duration
}

var (
	openAIVendor = chatVendor{
		name:         "openai",
		endpoint:     "https://api.openai.com/v1/chat/completions",
		modelEnv:     "LEGALCOPILOT_OPENAI_MODEL",
		defaultModel: "gpt-4o-mini",
		keyEnvPrefix: "LEGALCOPILOT_OPENAI_KEY_",
		defaultKey:   "OPENAI_API_KEY",
		timeout:      120 * time.Second,
	}
	groqVendor = chatVendor{
		name:         "groq",
		endpoint:     "https://api.groq.com/openai/v1/chat/completions",
		modelEnv:     "LEGALCOPILOT_GROQ_MODEL",
		defaultModel: "llama-3.1-8b-instant",
		keyEnvPrefix: "LEGALCOPILOT_GROQ_KEY_",
		defaultKey:   "GROQ_API_KEY",
		timeout:      60 * time.Second,
	}
)

// ChatCompletionsProvider serves OpenAI and Groq, which share one wire format.
type ChatCompletionsProvider struct {
	vendor   string
	keyName  string
	apiKey   string
	model    string
	endpoint string
	client   *http.Client
}

func NewOpenAIProvider(keyName string) *ChatCompletionsProvider {
	return newChatCompletionsProvider(openAIVendor, keyName)
}

func NewGroqProvider(keyName string) *ChatCompletionsProvider {
	return newChatCompletionsProvider(groqVendor, keyName)
}

func newChatCompletionsProvider(v chatVendor, keyName string) *ChatCompletionsProvider {
	model := strings.TrimSpace(os.Getenv(v.modelEnv))
	if model == "" {
		model = v.defaultModel
	}
	return &ChatCompletionsProvider{
		vendor:   v.name,
		keyName:  keyName,
		apiKey:   resolveVendorKey(v, keyName),
		model:    model,
		endpoint: v.endpoint,
		client:   &http.Client{Timeout: v.timeout},
	}
}

func resolveVendorKey(v chatVendor, alias string) string {
	if alias != "" {
		if k := os.Getenv(v.keyEnvPrefix + sanitizeEnvToken(alias)); k != "" {
			return k
		}
	}
	return os.Getenv(v.defaultKey)
}

func (p *ChatCompletionsProvider) Generate(ctx context.Context, req GenerateRequest) (GenerateResponse, ProviderInfo, error) {
	info := p.Info()
	if p.apiKey == "" {
		return GenerateResponse{}, info, fmt.Errorf("%s alias %q: %w", p.vendor, p.keyName, ErrMissingKey)
	}
	text, err := chatCompletion(ctx, p.client, p.endpoint, p.apiKey, p.model, req.Prompt)
	if err != nil {
		return GenerateResponse{}, info, fmt.Errorf("%s generate: %w", p.vendor, err)
	}
	return GenerateResponse{Text: text}, info, nil
}

func (p *ChatCompletionsProvider) Info() ProviderInfo {
	return ProviderInfo{Name: p.vendor, Model: p.model, Key: p.keyName}
}

// chatCompletion performs one chat completion request and returns the first
// choice's content.
func chatCompletion(ctx context.Context, client *http.Client, url, apiKey, model, prompt string) (string, error) {
	payload, err := json.Marshal(map[string]any{
		"model": model,
		"messages": []map[string]string{
			{"role": "system", "content": systemPrompt},
			{"role": "user", "content": prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("encode chat request: %w", err)
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("build chat request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+apiKey)
	httpReq.Header.Set("Content-Type", "application/json")
	resp, err := client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("chat request failed: %w", err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if resp.StatusCode >= 400 {
		return "", fmt.Errorf("chat error %d: %s", resp.StatusCode, truncate(string(body), 512))
	}
	var parsed struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("decode chat response: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("empty choices: %w", ErrEmptyResponse)
	}
	return parsed.Choices[0].Message.Content, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
