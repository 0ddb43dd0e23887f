package providers

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiProvider calls Google's Gemini models through the genai SDK.
// A missing key is reported on the first Generate, not at construction.
type GeminiProvider struct {
	keyName string
	model   string
	client  *genai.Client
	gm      *genai.GenerativeModel
	initErr error
}

func NewGeminiProvider(ctx context.Context, keyName, model string) *GeminiProvider {
	if strings.TrimSpace(model) == "" {
		model = "gemini-1.5-flash"
	}
	p := &GeminiProvider{keyName: keyName, model: model}
	apiKey := resolveGeminiKey(keyName)
	if apiKey == "" {
		p.initErr = fmt.Errorf("gemini alias %q: %w", keyName, ErrMissingKey)
		return p
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		p.initErr = fmt.Errorf("create gemini client: %w", err)
		return p
	}
	p.client = client
	p.gm = client.GenerativeModel(model)
	return p
}

func (g *GeminiProvider) Generate(ctx context.Context, req GenerateRequest) (GenerateResponse, ProviderInfo, error) {
	info := g.Info()
	if g.initErr != nil {
		return GenerateResponse{}, info, g.initErr
	}
	resp, err := g.gm.GenerateContent(ctx, genai.Text(req.Prompt))
	if err != nil {
		return GenerateResponse{}, info, fmt.Errorf("gemini generate: %w", err)
	}
	if fb := resp.PromptFeedback; fb != nil && fb.BlockReason != genai.BlockReasonUnspecified {
		return GenerateResponse{}, info, fmt.Errorf("gemini prompt blocked: %s", fb.BlockReason)
	}
	text := candidateText(resp)
	if strings.TrimSpace(text) == "" {
		return GenerateResponse{}, info, fmt.Errorf("gemini: %w", ErrEmptyResponse)
	}
	return GenerateResponse{Text: text}, info, nil
}

func (g *GeminiProvider) Close() error {
	if g.client == nil {
		return nil
	}
	return g.client.Close()
}

func candidateText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}
	c := resp.Candidates[0]
	if c.Content == nil {
		return ""
	}
	var b strings.Builder
	for _, part := range c.Content.Parts {
		if t, ok := part.(genai.Text); ok {
			b.WriteString(string(t))
		}
	}
	return b.String()
}

func resolveGeminiKey(alias string) string {
	if alias != "" {
		if v := os.Getenv("LEGALCOPILOT_GEMINI_KEY_" + sanitizeEnvToken(alias)); v != "" {
			return v
		}
	}
	return os.Getenv("GOOGLE_API_KEY")
}

func (g *GeminiProvider) Info() ProviderInfo {
	return ProviderInfo{Name: "gemini", Model: g.model, Key: g.keyName}
}
