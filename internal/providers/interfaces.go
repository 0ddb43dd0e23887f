package providers

import "context"

const (
	OpSummary      = "summary"
	OpRiskAnalysis = "risk_analysis"
	OpLegalAspects = "legal_aspects"
	OpChat         = "chat"
	OpCheckTerms   = "check_terms"
)

type ProviderInfo struct {
	Name  string `json:"name"`
	Model string `json:"model"`
	Key   string `json:"key"`
}

type GenerateRequest struct {
	Operation string `json:"operation"`
	Prompt    string `json:"prompt"`
}

type GenerateResponse struct {
	Text string `json:"text"`
}

type LLMProvider interface {
	Generate(ctx context.Context, req GenerateRequest) (GenerateResponse, ProviderInfo, error)
}

// Describer is implemented by providers that can report their identity
// without making a call.
type Describer interface {
	Info() ProviderInfo
}

// systemPrompt is sent as the system turn by chat-completion style providers.
const systemPrompt = "You are an experienced legal advisor. Answer precisely, quote the document where relevant, and follow the requested output format exactly."
