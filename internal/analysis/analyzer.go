// Package analysis turns document text into the summary, risk report, legal
// aspects, chat answers and term checks served by the API. Each operation is a
// single model call; the risk and aspects extractors never fail outward.
package analysis

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"legalcopilot/internal/logger"
	"legalcopilot/internal/observability"
	"legalcopilot/internal/providers"
	"legalcopilot/internal/storage"
)

// CallRecorder persists model-call audit records.
type CallRecorder interface {
	Insert(ctx context.Context, rec storage.ModelCallRecord) error
}

type Analyzer struct {
	provider     providers.LLMProvider
	providerName string
	log          *logger.Logger
	timeout      time.Duration
	recorder     CallRecorder
	tracer       trace.Tracer
}

type Option func(*Analyzer)

func WithLogger(l *logger.Logger) Option {
	return func(a *Analyzer) {
		if l != nil {
			a.log = l
		}
	}
}

// WithTimeout bounds each model call. Zero leaves calls bounded only by the
// request context.
func WithTimeout(d time.Duration) Option {
	return func(a *Analyzer) { a.timeout = d }
}

func WithRecorder(r CallRecorder) Option {
	return func(a *Analyzer) { a.recorder = r }
}

// WithProviderName labels audit records when the provider reports no name of
// its own, typically on failed calls.
func WithProviderName(name string) Option {
	return func(a *Analyzer) { a.providerName = name }
}

func New(p providers.LLMProvider, opts ...Option) *Analyzer {
	a := &Analyzer{
		provider: p,
		log:      logger.Nop(),
		tracer:   observability.Tracer(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// generate runs one bounded model call and records its span, log line and
// audit row. An empty reply is treated as a failure.
func (a *Analyzer) generate(ctx context.Context, op, prompt string) (string, error) {
	ctx, span := a.tracer.Start(ctx, "model."+op)
	defer span.End()

	callCtx := ctx
	if a.timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, a.timeout)
		defer cancel()
	}

	start := time.Now()
	resp, info, err := a.provider.Generate(callCtx, providers.GenerateRequest{Operation: op, Prompt: prompt})
	if err == nil && strings.TrimSpace(resp.Text) == "" {
		err = providers.ErrEmptyResponse
	}
	elapsed := time.Since(start)

	if info.Name == "" {
		info.Name = a.providerName
	}
	span.SetAttributes(
		attribute.String("llm.operation", op),
		attribute.String("llm.provider", info.Name),
		attribute.String("llm.model", info.Model),
		attribute.Int("llm.prompt_chars", len(prompt)),
	)

	rec := storage.ModelCallRecord{
		CallID:     uuid.NewString(),
		RequestID:  observability.RequestIDFrom(ctx),
		Operation:  op,
		Provider:   info.Name,
		Model:      info.Model,
		Status:     storage.CallStatusOK,
		DurationMS: elapsed.Milliseconds(),
	}
	if err != nil {
		errType := providers.ClassifyError(err)
		rec.Status = storage.CallStatusError
		rec.ErrorType = string(errType)
		span.RecordError(err)
		span.SetStatus(codes.Error, string(errType))
		a.log.Warn("model call failed",
			"operation", op,
			"provider", info.Name,
			"error_type", errType,
			"duration_ms", rec.DurationMS,
			"request_id", rec.RequestID,
			"error", err,
		)
	} else {
		a.log.Info("model call completed",
			"operation", op,
			"provider", info.Name,
			"model", info.Model,
			"duration_ms", rec.DurationMS,
			"request_id", rec.RequestID,
		)
		a.log.Debug("model output", "operation", op, "raw", resp.Text)
	}
	a.record(ctx, rec)

	if err != nil {
		return "", fmt.Errorf("%s via %s: %w", op, info.Name, err)
	}
	return resp.Text, nil
}

// record writes the audit row on a context detached from request cancellation.
func (a *Analyzer) record(ctx context.Context, rec storage.ModelCallRecord) {
	if a.recorder == nil {
		return
	}
	auditCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 3*time.Second)
	defer cancel()
	if err := a.recorder.Insert(auditCtx, rec); err != nil {
		a.log.Warn("model call audit insert failed", "call_id", rec.CallID, "error", err)
	}
}
