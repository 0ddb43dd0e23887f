// Package llmjson recovers structured values from model output that is meant
// to be JSON but often arrives wrapped in code fences or commentary.
package llmjson

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var ErrNoJSON = errors.New("no parseable json in model output")

// Outcome reports which attempt in the chain produced the value.
type Outcome int

const (
	OutcomeFallback Outcome = iota
	OutcomeStrict
	OutcomeExtracted
)

func (o Outcome) String() string {
	switch o {
	case OutcomeStrict:
		return "strict"
	case OutcomeExtracted:
		return "extracted"
	default:
		return "fallback"
	}
}

// Decode parses raw into a T. It tries the fence-stripped text first, then the
// widest {...} span of the raw text. When both fail it returns fallback,
// OutcomeFallback and an error wrapping ErrNoJSON.
func Decode[T any](raw string, fallback T) (T, Outcome, error) {
	var strict T
	strictErr := json.Unmarshal([]byte(Clean(raw)), &strict)
	if strictErr == nil {
		return strict, OutcomeStrict, nil
	}

	span, ok := ObjectSpan(raw)
	if !ok {
		return fallback, OutcomeFallback, fmt.Errorf("%w: %v", ErrNoJSON, strictErr)
	}
	var extracted T
	if err := json.Unmarshal([]byte(span), &extracted); err != nil {
		return fallback, OutcomeFallback, fmt.Errorf("%w: %v", ErrNoJSON, err)
	}
	return extracted, OutcomeExtracted, nil
}

// Clean strips one layer of surrounding backticks and a leading "json"
// language tag.
func Clean(raw string) string {
	s := strings.TrimSpace(raw)
	s = strings.Trim(s, "`")
	s = strings.TrimSpace(s)
	if len(s) >= 4 && strings.EqualFold(s[:4], "json") {
		s = strings.TrimSpace(s[4:])
	}
	return s
}

// ObjectSpan returns the text from the first '{' to the last '}'.
func ObjectSpan(raw string) (string, bool) {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start < 0 || end <= start {
		return "", false
	}
	return raw[start : end+1], true
}
