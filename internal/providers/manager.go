package providers

import (
	"context"
	"fmt"
	"io"
	"strings"

	"legalcopilot/internal/config"
)

type NamedLLMProvider struct {
	Ref      ProviderRef
	Provider LLMProvider
}

// Manager owns the providers configured at start-up. Only the first entry
// serves requests; later entries are built so a misconfigured list fails fast.
// It is immutable after NewManager and safe for concurrent use.
type Manager struct {
	llmProviders []NamedLLMProvider
}

func NewManager(ctx context.Context, cfg config.Config) (*Manager, error) {
	m := &Manager{}
	for _, ref := range ParseProviderList(cfg.LLMProviders) {
		p, err := buildProvider(ctx, ref, cfg)
		if err != nil {
			_ = m.Close()
			return nil, err
		}
		m.llmProviders = append(m.llmProviders, NamedLLMProvider{Ref: ref, Provider: p})
	}
	return m, nil
}

// NewStaticManager wraps an already built provider.
func NewStaticManager(name string, p LLMProvider) *Manager {
	return &Manager{llmProviders: []NamedLLMProvider{{Ref: ProviderRef{Raw: name, Name: name}, Provider: p}}}
}

func (m *Manager) Active() LLMProvider {
	if len(m.llmProviders) == 0 {
		return NewMockProvider()
	}
	return m.llmProviders[0].Provider
}

func (m *Manager) ActiveRef() ProviderRef {
	if len(m.llmProviders) == 0 {
		return ProviderRef{Raw: "mock", Name: "mock"}
	}
	return m.llmProviders[0].Ref
}

// ActiveInfo reports the active provider's name and model.
func (m *Manager) ActiveInfo() ProviderInfo {
	ref := m.ActiveRef()
	if d, ok := m.Active().(Describer); ok {
		info := d.Info()
		if info.Name == "" {
			info.Name = ref.Name
		}
		return info
	}
	return ProviderInfo{Name: ref.Name, Key: ref.KeyAlias}
}

func (m *Manager) LLMCount() int {
	return len(m.llmProviders)
}

func (m *Manager) Close() error {
	var first error
	for _, p := range m.llmProviders {
		if c, ok := p.Provider.(io.Closer); ok {
			if err := c.Close(); err != nil && first == nil {
				first = err
			}
		}
	}
	return first
}

func buildProvider(ctx context.Context, ref ProviderRef, cfg config.Config) (LLMProvider, error) {
	switch strings.ToLower(ref.Name) {
	case "mock":
		return NewMockProvider(), nil
	case "gemini":
		return NewGeminiProvider(ctx, ref.KeyAlias, cfg.GeminiModel), nil
	case "openai":
		return NewOpenAIProvider(ref.KeyAlias), nil
	case "groq":
		return NewGroqProvider(ref.KeyAlias), nil
	case "ollama":
		return NewOllamaProvider(ref.KeyAlias), nil
	default:
		return nil, fmt.Errorf("unsupported provider: %s", ref.Name)
	}
}
