// Package export assembles finished per-prompt histories into the final
// result document. Pure and deterministic: same records in, same bytes out.
package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"creativity-bench/internal/session"
)

// PromptResult is one prompt with its full, ordered answer history.
type PromptResult struct {
	Prompt  string           `json:"prompt"`
	Answers []session.Answer `json:"answers"`
}

// Result has one entry per prompt, in prompt order.
type Result []PromptResult

// Build maps records to the export shape. No filtering, no aggregation, no
// timestamp regeneration.
func Build(records []session.Record) Result {
	out := make(Result, len(records))
	for i, r := range records {
		answers := make([]session.Answer, len(r.Answers))
		copy(answers, r.Answers)
		out[i] = PromptResult{Prompt: r.Prompt, Answers: answers}
	}
	return out
}

// Bytes renders the result as indented JSON.
func Bytes(r Result) ([]byte, error) {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}
	return data, nil
}

// Write stores the result at path, creating parent directories as needed.
func Write(path string, r Result) error {
	data, err := Bytes(r)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create results dir: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write results: %w", err)
	}
	return nil
}

// Load reads a previously written result document.
func Load(path string) (Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read results: %w", err)
	}
	var r Result
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("failed to parse results: %w", err)
	}
	return r, nil
}
