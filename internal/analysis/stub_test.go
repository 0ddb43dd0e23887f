package analysis

import (
	"context"
	"errors"
	"sync"
	"time"

	"legalcopilot/internal/providers"
	"legalcopilot/internal/storage"
)

// stubProvider answers per operation and can fail, stall or panic on demand.
type stubProvider struct {
	mu      sync.Mutex
	replies map[string]string
	errs    map[string]error
	panics  map[string]bool
	stall   time.Duration
	calls   []providers.GenerateRequest
}

func newStub() *stubProvider {
	return &stubProvider{replies: map[string]string{}, errs: map[string]error{}, panics: map[string]bool{}}
}

func (s *stubProvider) Generate(ctx context.Context, req providers.GenerateRequest) (providers.GenerateResponse, providers.ProviderInfo, error) {
	s.mu.Lock()
	s.calls = append(s.calls, req)
	reply, err, panics, stall := s.replies[req.Operation], s.errs[req.Operation], s.panics[req.Operation], s.stall
	s.mu.Unlock()

	info := providers.ProviderInfo{Name: "stub", Model: "stub-1"}
	if panics {
		panic("stub panic for " + req.Operation)
	}
	if stall > 0 {
		select {
		case <-time.After(stall):
		case <-ctx.Done():
			return providers.GenerateResponse{}, info, ctx.Err()
		}
	}
	if err != nil {
		return providers.GenerateResponse{}, info, err
	}
	return providers.GenerateResponse{Text: reply}, info, nil
}

func (s *stubProvider) ops() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, 0, len(s.calls))
	for _, c := range s.calls {
		out = append(out, c.Operation)
	}
	return out
}

var errUpstream = errors.New("503 service unavailable")

type memRecorder struct {
	mu   sync.Mutex
	recs []storage.ModelCallRecord
	err  error
}

func (m *memRecorder) Insert(_ context.Context, rec storage.ModelCallRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.recs = append(m.recs, rec)
	return m.err
}
