package idgen

import (
	"regexp"
	"testing"
)

func TestGenerate(t *testing.T) {
	id, err := Generate()
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	if want := len(DefaultPrefix) + Length; len(id) != want {
		t.Errorf("Generate() length = %d, want %d (id=%q)", len(id), want, id)
	}
	pattern := regexp.MustCompile(`^` + regexp.QuoteMeta(DefaultPrefix) + `[a-zA-Z0-9]+$`)
	if !pattern.MatchString(id) {
		t.Errorf("Generate() = %q, does not match charset pattern", id)
	}
}

func TestGenerateWithPrefix(t *testing.T) {
	id, err := GenerateWithPrefix("req-")
	if err != nil {
		t.Fatalf("GenerateWithPrefix() error: %v", err)
	}
	if id[:4] != "req-" {
		t.Errorf("GenerateWithPrefix(\"req-\") = %q, want req- prefix", id)
	}
}

func TestGenerate_Uniqueness(t *testing.T) {
	const count = 10_000
	seen := make(map[string]struct{}, count)
	for i := 0; i < count; i++ {
		id, err := Generate()
		if err != nil {
			t.Fatalf("Generate() error on iteration %d: %v", i, err)
		}
		if _, dup := seen[id]; dup {
			t.Fatalf("duplicate ID after %d generations: %q", i, id)
		}
		seen[id] = struct{}{}
	}
}
