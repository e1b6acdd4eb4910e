package prompts

import (
	"os"
	"path/filepath"
	"testing"
)

func writePromptFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "prompts.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write prompt file: %v", err)
	}
	return path
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	got, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(got) != 5 {
		t.Fatalf("Expected 5 default prompts, got %d", len(got))
	}
	if got[0] != "How might you use a brick and a blanket?" {
		t.Errorf("Unexpected first prompt: %q", got[0])
	}

	// The returned slice must not alias the package default.
	got[0] = "tampered"
	if Default[0] != "How might you use a brick and a blanket?" {
		t.Error("Mutating the returned slice changed Default")
	}
}

func TestLoadFromFile(t *testing.T) {
	path := writePromptFile(t, "prompts:\n  - \"First question?\"\n  - \"Second question?\"\n")

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("Expected 2 prompts, got %d", len(got))
	}
	if got[0] != "First question?" || got[1] != "Second question?" {
		t.Errorf("Prompt order not preserved: %v", got)
	}
}

func TestLoadRejectsEmptyList(t *testing.T) {
	path := writePromptFile(t, "prompts: []\n")

	if _, err := Load(path); err == nil {
		t.Error("Expected error for empty prompt list")
	}
}

func TestLoadRejectsBlankPrompt(t *testing.T) {
	path := writePromptFile(t, "prompts:\n  - \"Fine question?\"\n  - \"   \"\n")

	if _, err := Load(path); err == nil {
		t.Error("Expected error for blank prompt entry")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestLoadMalformedYAML(t *testing.T) {
	path := writePromptFile(t, "prompts: [unclosed\n")

	if _, err := Load(path); err == nil {
		t.Error("Expected error for malformed YAML")
	}
}
