package export

import (
	"bytes"
	"path/filepath"
	"testing"
	"time"

	"creativity-bench/internal/session"
)

func sampleRecords() []session.Record {
	at := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	return []session.Record{
		{
			Prompt: "q1",
			Answers: []session.Answer{
				{Text: "first", Coherence: 80, Novelty: 1.0, SubmittedAt: at},
				{Text: "second", Coherence: 75, Novelty: 0.1, SubmittedAt: at.Add(time.Minute)},
			},
		},
		{Prompt: "q2"},
	}
}

func TestBuildPreservesOrderAndCounts(t *testing.T) {
	res := Build(sampleRecords())

	if len(res) != 2 {
		t.Fatalf("Expected 2 prompt results, got %d", len(res))
	}
	if res[0].Prompt != "q1" || res[1].Prompt != "q2" {
		t.Errorf("Prompt order not preserved: %q, %q", res[0].Prompt, res[1].Prompt)
	}
	if len(res[0].Answers) != 2 {
		t.Fatalf("Expected 2 answers for q1, got %d", len(res[0].Answers))
	}
	if res[0].Answers[0].Text != "first" || res[0].Answers[1].Text != "second" {
		t.Error("Answer order not preserved")
	}
}

func TestBuildDoesNotAliasRecords(t *testing.T) {
	records := sampleRecords()
	res := Build(records)

	res[0].Answers[0].Text = "tampered"
	if records[0].Answers[0].Text != "first" {
		t.Error("Mutating the result leaked into the source records")
	}
}

func TestBytesIsDeterministic(t *testing.T) {
	res := Build(sampleRecords())

	first, err := Bytes(res)
	if err != nil {
		t.Fatalf("Bytes failed: %v", err)
	}
	second, err := Bytes(res)
	if err != nil {
		t.Fatalf("Bytes failed: %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Error("Expected identical bytes for identical input")
	}
}

func TestEmptyHistoryRendersAsEmptyArray(t *testing.T) {
	data, err := Bytes(Build([]session.Record{{Prompt: "skipped"}}))
	if err != nil {
		t.Fatalf("Bytes failed: %v", err)
	}
	if !bytes.Contains(data, []byte(`"answers": []`)) {
		t.Errorf("Expected empty answers array, got:\n%s", data)
	}
	if bytes.Contains(data, []byte("null")) {
		t.Errorf("Expected no nulls in output, got:\n%s", data)
	}
}

func TestWriteThenLoadRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results", "results.json")
	res := Build(sampleRecords())

	if err := Write(path, res); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(loaded) != len(res) {
		t.Fatalf("Expected %d prompt results, got %d", len(res), len(loaded))
	}
	if loaded[0].Answers[1].Coherence != 75 {
		t.Errorf("Expected coherence 75, got %d", loaded[0].Answers[1].Coherence)
	}
	if loaded[0].Answers[1].Novelty != 0.1 {
		t.Errorf("Expected novelty 0.1, got %v", loaded[0].Answers[1].Novelty)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Error("Expected error for missing file")
	}
}
