package providers

import "testing"

func TestParseProviderList(t *testing.T) {
	refs := ParseProviderList("gemini|openai:key1| ollama:llama3.1 ")
	if len(refs) != 3 {
		t.Fatalf("expected 3 providers got %d", len(refs))
	}
	if refs[1].Name != "openai" || refs[1].KeyAlias != "key1" {
		t.Fatalf("unexpected parse result: %+v", refs[1])
	}
	if refs[2].Name != "ollama" || refs[2].KeyAlias != "llama3.1" {
		t.Fatalf("unexpected parse result: %+v", refs[2])
	}
}

func TestParseProviderListEmptyDefaultsToMock(t *testing.T) {
	refs := ParseProviderList(" | ")
	if len(refs) != 1 || refs[0].Name != "mock" {
		t.Fatalf("expected mock default, got %+v", refs)
	}
}

func TestParseProviderListNormalizesAndDedupes(t *testing.T) {
	refs := ParseProviderList("Gemini, gemini |groq:team|groq:team|:orphan")
	if len(refs) != 2 {
		t.Fatalf("expected 2 providers got %+v", refs)
	}
	if refs[0].Name != "gemini" || refs[0].Raw != "Gemini" {
		t.Fatalf("unexpected first ref: %+v", refs[0])
	}
	if refs[1].Name != "groq" || refs[1].KeyAlias != "team" {
		t.Fatalf("unexpected second ref: %+v", refs[1])
	}
}
