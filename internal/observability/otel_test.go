package observability

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOtelSampleRatioBounds(t *testing.T) {
	t.Setenv("OTEL_SAMPLER_RATIO", "")
	assert.Equal(t, 1.0, otelSampleRatio())
	t.Setenv("OTEL_SAMPLER_RATIO", "0.25")
	assert.Equal(t, 0.25, otelSampleRatio())
	t.Setenv("OTEL_SAMPLER_RATIO", "7")
	assert.Equal(t, 1.0, otelSampleRatio())
	t.Setenv("OTEL_SAMPLER_RATIO", "-1")
	assert.Equal(t, 0.0, otelSampleRatio())
	t.Setenv("OTEL_SAMPLER_RATIO", "abc")
	assert.Equal(t, 1.0, otelSampleRatio())
}

func TestOtelEnabledFlag(t *testing.T) {
	t.Setenv("OTEL_ENABLED", "")
	assert.False(t, otelEnabled())
	t.Setenv("OTEL_ENABLED", "TRUE")
	assert.True(t, otelEnabled())
	t.Setenv("OTEL_ENABLED", "0")
	assert.False(t, otelEnabled())
}

func TestInitOTelDisabledReturnsNoopShutdown(t *testing.T) {
	t.Setenv("OTEL_ENABLED", "false")
	shutdown := InitOTel(context.Background(), nil, OtelConfig{ServiceName: "test"})
	require.NotNil(t, shutdown)
	require.NoError(t, shutdown(context.Background()))
	require.NotNil(t, Tracer())
}

func TestRequestIDRoundTrip(t *testing.T) {
	ctx := WithRequestID(context.Background(), "req-1")
	assert.Equal(t, "req-1", RequestIDFrom(ctx))
	assert.Equal(t, "", RequestIDFrom(context.Background()))
	assert.Equal(t, "", RequestIDFrom(WithRequestID(context.Background(), "")))
}
