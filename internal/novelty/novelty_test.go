package novelty

import (
	"context"
	"errors"
	"math"
	"sync"
	"testing"

	"creativity-bench/internal/scoring"
)

type fakeEmbedder struct {
	mu      sync.Mutex
	vectors map[string][]float64
	err     error
	calls   int
}

func (f *fakeEmbedder) Embed(ctx context.Context, text string) ([]float64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	vec, ok := f.vectors[text]
	if !ok {
		return nil, errors.New("unexpected text")
	}
	return vec, nil
}

func (f *fakeEmbedder) Validate(ctx context.Context) error { return f.err }

func (f *fakeEmbedder) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestFirstAnswerScoresOneWithoutEmbedding(t *testing.T) {
	embedder := &fakeEmbedder{}
	s := New(embedder)

	nov, err := s.Score(context.Background(), "anything at all", nil)
	if err != nil {
		t.Fatalf("Score failed: %v", err)
	}
	if nov != 1.0 {
		t.Errorf("Expected novelty 1.0 for first answer, got %v", nov)
	}
	if embedder.callCount() != 0 {
		t.Errorf("Expected no embedding calls, got %d", embedder.callCount())
	}
}

func TestSingleHistoryIsOneMinusSimilarity(t *testing.T) {
	embedder := &fakeEmbedder{vectors: map[string][]float64{
		"new": {1, 0},
		"old": {0.6, 0.8},
	}}
	s := New(embedder)

	nov, err := s.Score(context.Background(), "new", []string{"old"})
	if err != nil {
		t.Fatalf("Score failed: %v", err)
	}
	if !almostEqual(nov, 0.4) {
		t.Errorf("Expected novelty 0.4, got %v", nov)
	}
	if embedder.callCount() != 2 {
		t.Errorf("Expected 2 embedding calls, got %d", embedder.callCount())
	}
}

func TestNoveltyUsesMaxSimilarityNotMean(t *testing.T) {
	embedder := &fakeEmbedder{vectors: map[string][]float64{
		"new":     {1, 0},
		"close":   {0.9, math.Sqrt(1 - 0.81)},
		"distant": {0.1, math.Sqrt(1 - 0.01)},
	}}
	s := New(embedder)

	nov, err := s.Score(context.Background(), "new", []string{"distant", "close"})
	if err != nil {
		t.Fatalf("Score failed: %v", err)
	}
	// 1 - max(0.1, 0.9), not 1 - mean(0.1, 0.9).
	if !almostEqual(nov, 0.1) {
		t.Errorf("Expected novelty 0.1 from max similarity, got %v", nov)
	}
}

func TestIdenticalAnswerScoresZero(t *testing.T) {
	embedder := &fakeEmbedder{vectors: map[string][]float64{
		"same": {0.3, 0.4, 0.5},
	}}
	s := New(embedder)

	nov, err := s.Score(context.Background(), "same", []string{"same"})
	if err != nil {
		t.Fatalf("Score failed: %v", err)
	}
	if !almostEqual(nov, 0) {
		t.Errorf("Expected novelty 0 for identical answers, got %v", nov)
	}
}

func TestOppositeVectorsScoreTwo(t *testing.T) {
	embedder := &fakeEmbedder{vectors: map[string][]float64{
		"new": {1, 0},
		"old": {-1, 0},
	}}
	s := New(embedder)

	nov, err := s.Score(context.Background(), "new", []string{"old"})
	if err != nil {
		t.Fatalf("Score failed: %v", err)
	}
	// Similarity clamps at -1, so novelty tops out at exactly 2.
	if !almostEqual(nov, 2) {
		t.Errorf("Expected novelty 2 for opposite vectors, got %v", nov)
	}
}

func TestZeroNormVectorTreatedAsDissimilar(t *testing.T) {
	embedder := &fakeEmbedder{vectors: map[string][]float64{
		"new":        {1, 0},
		"degenerate": {0, 0},
	}}
	s := New(embedder)

	nov, err := s.Score(context.Background(), "new", []string{"degenerate"})
	if err != nil {
		t.Fatalf("Score failed: %v", err)
	}
	if !almostEqual(nov, 1) {
		t.Errorf("Expected novelty 1 against zero-norm vector, got %v", nov)
	}
}

func TestDimensionMismatchIsFatal(t *testing.T) {
	embedder := &fakeEmbedder{vectors: map[string][]float64{
		"new": {1, 0},
		"old": {1, 0, 0},
	}}
	s := New(embedder)

	_, err := s.Score(context.Background(), "new", []string{"old"})
	var scoringErr *scoring.ScoringError
	if !errors.As(err, &scoringErr) {
		t.Fatalf("Expected ScoringError for dimension mismatch, got %v", err)
	}
}

func TestEmbeddingFailurePropagates(t *testing.T) {
	provErr := &scoring.ProviderError{Provider: "embedding provider", Err: errors.New("rate limited")}
	embedder := &fakeEmbedder{err: provErr}
	s := New(embedder)

	_, err := s.Score(context.Background(), "new", []string{"old"})
	var got *scoring.ProviderError
	if !errors.As(err, &got) {
		t.Fatalf("Expected ProviderError, got %v", err)
	}
}
