package providers

import (
	"context"
	"errors"
	"strings"
)

type ErrorType string

const (
	ErrorQuota     ErrorType = "quota"
	ErrorRate      ErrorType = "rate"
	ErrorAuth      ErrorType = "auth"
	ErrorTransient ErrorType = "transient"
	ErrorPermanent ErrorType = "permanent"
	ErrorContext   ErrorType = "context"
	ErrorBlocked   ErrorType = "blocked"
)

var (
	ErrMissingKey    = errors.New("provider api key missing")
	ErrEmptyResponse = errors.New("provider returned no text")
)

func ClassifyError(err error) ErrorType {
	if err == nil {
		return ""
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return ErrorTransient
	}
	if errors.Is(err, ErrMissingKey) {
		return ErrorAuth
	}
	e := strings.ToLower(err.Error())
	switch {
	case strings.Contains(e, "quota"), strings.Contains(e, "credit"), strings.Contains(e, "insufficient_quota"), strings.Contains(e, "resource_exhausted"):
		return ErrorQuota
	case strings.Contains(e, "rate"), strings.Contains(e, "429"):
		return ErrorRate
	case strings.Contains(e, "api key"), strings.Contains(e, "api_key"), strings.Contains(e, "401"), strings.Contains(e, "403"), strings.Contains(e, "permission"):
		return ErrorAuth
	case strings.Contains(e, "blocked"), strings.Contains(e, "safety"):
		return ErrorBlocked
	case strings.Contains(e, "context"), strings.Contains(e, "too long"), strings.Contains(e, "token limit"):
		return ErrorContext
	case strings.Contains(e, "timeout"), strings.Contains(e, "temporarily"), strings.Contains(e, "unavailable"), strings.Contains(e, "503"):
		return ErrorTransient
	default:
		return ErrorPermanent
	}
}
