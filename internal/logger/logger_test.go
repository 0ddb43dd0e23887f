package logger

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestSanitizeRedactsCredentialKeys(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	log := NewWithCore(core)
	log.Info("provider ready", "provider", "gemini", "api_key", "sk-123", "Authorization", "Bearer x")

	entries := logs.All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	require.Equal(t, "gemini", fields["provider"])
	require.Equal(t, "[REDACTED]", fields["api_key"])
	require.Equal(t, "[REDACTED]", fields["Authorization"])
}

func TestSanitizeKeepsDanglingKey(t *testing.T) {
	out := sanitizeKVs([]interface{}{"a", 1, "dangling"})
	require.Equal(t, []interface{}{"a", 1, "dangling"}, out)
}
