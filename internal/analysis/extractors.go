package analysis

import (
	"context"
	"fmt"

	"legalcopilot/internal/llmjson"
	"legalcopilot/internal/markup"
	"legalcopilot/internal/providers"
)

const placeholderReplacement = "N/A"

// AnalyzeRisks asks the model for a three-bucket risk report. Model failures,
// unparseable output and panics all produce the empty report.
func (a *Analyzer) AnalyzeRisks(ctx context.Context, document string) (report RiskReport) {
	defer func() {
		if r := recover(); r != nil {
			a.log.Error("risk analysis panicked", "panic", fmt.Sprint(r))
			report = EmptyRiskReport()
		}
	}()

	raw, err := a.generate(ctx, providers.OpRiskAnalysis, BuildRiskPrompt(document))
	if err != nil {
		return EmptyRiskReport()
	}
	buckets, outcome, err := llmjson.Decode(raw, map[string][]RiskItem{})
	if err != nil {
		a.log.Warn("risk analysis output not parseable", "error", err)
		return EmptyRiskReport()
	}
	report = RiskReport{
		High:   keepActionable(buckets["high"]),
		Medium: keepActionable(buckets["medium"]),
		Low:    keepActionable(buckets["low"]),
	}
	a.log.Info("risk analysis completed", "decode", outcome.String(), "risks", report.Len())
	return report
}

// keepActionable drops items whose replacement is exactly "" or "N/A". Any
// other value, whitespace included, is kept.
func keepActionable(items []RiskItem) []RiskItem {
	out := make([]RiskItem, 0, len(items))
	for _, it := range items {
		if it.Replacement == "" || it.Replacement == placeholderReplacement {
			continue
		}
		out = append(out, it)
	}
	return out
}

// AnalyzeLegalAspects asks for the seven aspect fields and beautifies every
// string value, including strings one level inside an object value. Any
// failure yields an empty mapping.
func (a *Analyzer) AnalyzeLegalAspects(ctx context.Context, document string) (aspects LegalAspects) {
	defer func() {
		if r := recover(); r != nil {
			a.log.Error("legal aspects analysis panicked", "panic", fmt.Sprint(r))
			aspects = LegalAspects{}
		}
	}()

	raw, err := a.generate(ctx, providers.OpLegalAspects, BuildLegalAspectsPrompt(document))
	if err != nil {
		return LegalAspects{}
	}
	parsed, outcome, err := llmjson.Decode(raw, map[string]any{})
	if err != nil || parsed == nil {
		a.log.Warn("legal aspects output not parseable", "error", err)
		return LegalAspects{}
	}
	aspects = beautifyAspects(parsed)
	a.log.Info("legal aspects completed", "decode", outcome.String(), "fields", len(aspects))
	return aspects
}

func beautifyAspects(in map[string]any) LegalAspects {
	out := make(LegalAspects, len(in))
	for key, v := range in {
		switch val := v.(type) {
		case string:
			out[key] = markup.Beautify(val)
		case map[string]any:
			nested := make(map[string]any, len(val))
			for sub, sv := range val {
				if s, ok := sv.(string); ok {
					nested[sub] = markup.Beautify(s)
					continue
				}
				nested[sub] = sv
			}
			out[key] = nested
		default:
			out[key] = v
		}
	}
	return out
}

// Summarize returns the beautified document summary.
func (a *Analyzer) Summarize(ctx context.Context, document string) (string, error) {
	raw, err := a.generate(ctx, providers.OpSummary, BuildSummaryPrompt(document))
	if err != nil {
		return "", err
	}
	return markup.Beautify(raw), nil
}

// Answer returns the beautified answer to a question about the document.
func (a *Analyzer) Answer(ctx context.Context, document, question string) (string, error) {
	raw, err := a.generate(ctx, providers.OpChat, BuildChatPrompt(document, question))
	if err != nil {
		return "", err
	}
	return markup.Beautify(raw), nil
}

// CheckTerms returns the model's verdict on userTerms verbatim.
func (a *Analyzer) CheckTerms(ctx context.Context, document, userTerms string) (string, error) {
	return a.generate(ctx, providers.OpCheckTerms, BuildCheckTermsPrompt(document, userTerms))
}
