package providers

import (
	"context"
	"strings"
)

// MockProvider returns deterministic, operation-aware output. The JSON
// operations answer in the fenced, slightly noisy shape real models produce.
type MockProvider struct{}

func NewMockProvider() *MockProvider {
	return &MockProvider{}
}

func (m *MockProvider) Generate(ctx context.Context, req GenerateRequest) (GenerateResponse, ProviderInfo, error) {
	if err := ctx.Err(); err != nil {
		return GenerateResponse{}, m.Info(), err
	}
	text := "Mock response."
	switch strings.ToLower(req.Operation) {
	case OpSummary:
		text = "# Summary\n**Parties:** Mock Landlord and Mock Tenant\n- Term: 12 months\n- Rent: **$1,000** per month"
	case OpRiskAnalysis:
		text = "```json\n" + mockRiskJSON + "\n```"
	case OpLegalAspects:
		text = "Here is the analysis:\n" + mockAspectsJSON
	case OpChat:
		text = "## Answer\nDeterministic mock answer.\n- Replace the mock provider for real analysis."
	case OpCheckTerms:
		text = "The document complies with the user's terms."
	}
	return GenerateResponse{Text: text}, m.Info(), nil
}

func (m *MockProvider) Info() ProviderInfo {
	return ProviderInfo{Name: "mock", Model: "mock-llm-v1", Key: "mock"}
}

const mockRiskJSON = `{
  "high": [
    {"text": "Tenant waives all claims", "explanation": "Blanket waiver of liability", "replacement": "Tenant waives claims arising from Tenant's own negligence"}
  ],
  "medium": [],
  "low": [
    {"text": "Notices by email", "explanation": "No delivery confirmation", "replacement": "N/A"}
  ]
}`

const mockAspectsJSON = `{
  "irac": "**Issue:** lease enforceability\n- Rule: contract law",
  "guidelines": "No specific guidelines are provided in the document.",
  "consideration": "Monthly rent in exchange for possession.",
  "parties": "Mock Landlord and Mock Tenant.",
  "indemnity": "No indemnity clause is included in the document.",
  "obligations": "- Tenant pays rent\n- Landlord maintains premises",
  "jurisdiction": "No jurisdiction is mentioned in the document."
}`
