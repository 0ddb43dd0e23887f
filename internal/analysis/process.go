package analysis

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Process runs the summary, risk and legal aspects analyses concurrently and
// waits for all three. Model failures degrade each part to its empty value; an
// error is returned only when a worker panics.
func (a *Analyzer) Process(ctx context.Context, document string) (ProcessResult, error) {
	var (
		summary string
		risks   RiskReport
		aspects LegalAspects
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(guard("summary", func() error {
		s, err := a.Summarize(gctx, document)
		if err != nil {
			a.log.Warn("summary unavailable", "error", err)
			s = ""
		}
		summary = s
		return nil
	}))
	g.Go(guard("risk_analysis", func() error {
		risks = a.AnalyzeRisks(gctx, document)
		return nil
	}))
	g.Go(guard("legal_aspects", func() error {
		aspects = a.AnalyzeLegalAspects(gctx, document)
		return nil
	}))
	if err := g.Wait(); err != nil {
		return ProcessResult{}, err
	}

	a.log.Info("document processed",
		"document_chars", len(document),
		"summary_chars", len(summary),
		"risks", risks.Len(),
		"aspects", len(aspects),
	)
	return ProcessResult{Summary: summary, RiskAnalysis: risks, LegalAspects: aspects}, nil
}

// guard converts a panic in an errgroup worker into an error, since panics in
// goroutines escape the HTTP recovery middleware.
func guard(name string, fn func() error) func() error {
	return func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("%s worker panicked: %v", name, r)
			}
		}()
		return fn()
	}
}
