package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeRecordDefaults(t *testing.T) {
	rec := normalizeRecord(ModelCallRecord{Operation: " chat ", DurationMS: -5})
	assert.Equal(t, "chat", rec.Operation)
	assert.Equal(t, "unknown", rec.Provider)
	assert.Equal(t, "unknown", rec.Model)
	assert.Equal(t, CallStatusOK, rec.Status)
	assert.Zero(t, rec.DurationMS)
}

func TestNormalizeRecordErrorStatus(t *testing.T) {
	rec := normalizeRecord(ModelCallRecord{Provider: "gemini", Model: "m", ErrorType: "rate"})
	assert.Equal(t, CallStatusError, rec.Status)
	assert.Equal(t, "gemini", rec.Provider)
}
