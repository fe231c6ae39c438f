package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCheckData_Shipped(t *testing.T) {
	r := checkData(filepath.Join("..", "..", "data"))
	if len(r.Errors) > 0 {
		t.Fatalf("shipped data has errors: %v", r.Errors)
	}
	if r.Words != 37 {
		t.Errorf("Words = %d, want 37", r.Words)
	}
}

func TestCheckData_Problems(t *testing.T) {
	dir := t.TempDir()
	write := func(name, content string) {
		t.Helper()
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}
	write("field.yaml", "field:\n  smoothing: 2\n")
	write("words.yaml", "languages: [fr, en]\nwords:\n  - kind: hard\n    text: {fr: Go}\n")
	write("strings/strings_fr.txt", "[TITLE]\nTitre\n")

	r := checkData(dir)
	joined := strings.Join(r.Errors, "\n")
	for _, want := range []string{"field.yaml", "missing [BIO]", "en:"} {
		if !strings.Contains(joined, want) {
			t.Errorf("errors %q do not mention %q", joined, want)
		}
	}
	if len(r.Warnings) != 1 {
		t.Errorf("Warnings = %v, want one fallback warning for en", r.Warnings)
	}
}
