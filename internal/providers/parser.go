package providers

import "strings"

// ProviderRef is one entry of LEGALCOPILOT_LLM_PROVIDERS. KeyAlias selects an
// API key for hosted providers and a model for ollama.
type ProviderRef struct {
	Raw      string
	Name     string
	KeyAlias string
}

// ParseProviderList reads entries such as "gemini|openai:key1|mock". Commas are
// accepted as separators too. Names are lower-cased and repeated entries are
// kept once, in first-seen order. An empty list means the mock provider.
func ParseProviderList(raw string) []ProviderRef {
	fields := strings.FieldsFunc(raw, func(r rune) bool { return r == '|' || r == ',' })
	out := make([]ProviderRef, 0, len(fields))
	seen := make(map[string]bool, len(fields))
	for _, f := range fields {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		name, alias, _ := strings.Cut(f, ":")
		ref := ProviderRef{
			Raw:      f,
			Name:     strings.ToLower(strings.TrimSpace(name)),
			KeyAlias: strings.TrimSpace(alias),
		}
		if ref.Name == "" {
			continue
		}
		id := ref.Name + ":" + ref.KeyAlias
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, ref)
	}
	if len(out) == 0 {
		out = append(out, ProviderRef{Raw: "mock", Name: "mock"})
	}
	return out
}
