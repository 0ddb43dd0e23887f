package providers

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func TestClassifyError(t *testing.T) {
	cases := map[string]ErrorType{
		"insufficient_quota":         ErrorQuota,
		"429 rate":                   ErrorRate,
		"API key not valid":          ErrorAuth,
		"response blocked: SAFETY":   ErrorBlocked,
		"context too long":           ErrorContext,
		"timeout":                    ErrorTransient,
		"bad request":                ErrorPermanent,
		"googleapi: Error 503: busy": ErrorTransient,
	}
	for msg, want := range cases {
		if got := ClassifyError(errors.New(msg)); got != want {
			t.Fatalf("classify %q: got %s want %s", msg, got, want)
		}
	}
}

func TestClassifyWrappedSentinels(t *testing.T) {
	if got := ClassifyError(fmt.Errorf("gemini: %w", ErrMissingKey)); got != ErrorAuth {
		t.Fatalf("missing key: got %s", got)
	}
	if got := ClassifyError(fmt.Errorf("call: %w", context.DeadlineExceeded)); got != ErrorTransient {
		t.Fatalf("deadline: got %s", got)
	}
	if got := ClassifyError(nil); got != "" {
		t.Fatalf("nil: got %s", got)
	}
}
