package providers

import (
	"context"
	"testing"

	"legalcopilot/internal/config"

	"github.com/stretchr/testify/require"
)

func TestNewManagerFirstEntryIsActive(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")
	m, err := NewManager(context.Background(), config.Config{LLMProviders: "mock|openai:key1"})
	require.NoError(t, err)
	defer m.Close()

	require.Equal(t, 2, m.LLMCount())
	require.Equal(t, "mock", m.ActiveRef().Name)
	require.IsType(t, &MockProvider{}, m.Active())

	second := m.llmProviders[1]
	require.Equal(t, "key1", second.Ref.KeyAlias)
	require.IsType(t, &ChatCompletionsProvider{}, second.Provider)
	require.Equal(t, "openai", second.Provider.(Describer).Info().Name)
}

func TestNewManagerRejectsUnknownProvider(t *testing.T) {
	_, err := NewManager(context.Background(), config.Config{LLMProviders: "mock|bard"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "unsupported provider")
}

func TestNewManagerGeminiWithoutKey(t *testing.T) {
	t.Setenv("GOOGLE_API_KEY", "")
	m, err := NewManager(context.Background(), config.Config{LLMProviders: "gemini", GeminiModel: "gemini-pro"})
	require.NoError(t, err)
	require.Equal(t, "gemini", m.ActiveRef().Name)
	require.NoError(t, m.Close())
}

func TestStaticManager(t *testing.T) {
	m := NewStaticManager("stub", NewMockProvider())
	require.Equal(t, "stub", m.ActiveRef().Name)
	require.Equal(t, 1, m.LLMCount())
}

func TestActiveInfoReportsModel(t *testing.T) {
	t.Setenv("GOOGLE_API_KEY", "")
	m, err := NewManager(context.Background(), config.Config{LLMProviders: "gemini", GeminiModel: "gemini-1.5-flash"})
	require.NoError(t, err)
	defer m.Close()

	info := m.ActiveInfo()
	require.Equal(t, "gemini", info.Name)
	require.Equal(t, "gemini-1.5-flash", info.Model)

	empty := &Manager{}
	require.Equal(t, "mock", empty.ActiveInfo().Name)
}
