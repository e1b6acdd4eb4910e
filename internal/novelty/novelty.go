// Package novelty measures how dissimilar a new answer is from the
// respondent's prior answers to the same prompt, in embedding space.
package novelty

import (
	"context"
	"fmt"
	"math"
	"sync"

	"creativity-bench/internal/scoring"
)

type Scorer struct {
	embedder scoring.Embedder
}

func New(embedder scoring.Embedder) *Scorer {
	return &Scorer{embedder: embedder}
}

// Score returns 1 - max(cosine similarity) of the answer against every prior
// answer. The first answer to a prompt scores exactly 1.0 and costs no
// provider call. Similarities are clamped to [-1, 1] before the subtraction,
// so float drift past 1 cannot push novelty negative. The maximum (not the
// mean) is deliberate: novelty is judged against the single most similar past
// answer.
func (s *Scorer) Score(ctx context.Context, answer string, prior []string) (float64, error) {
	if len(prior) == 0 {
		return 1.0, nil
	}

	vectors, err := s.embedAll(ctx, append([]string{answer}, prior...))
	if err != nil {
		return 0, err
	}

	answerVec := vectors[0]
	maxSim := -1.0
	for _, prev := range vectors[1:] {
		sim, err := cosine(answerVec, prev)
		if err != nil {
			return 0, err
		}
		if sim > maxSim {
			maxSim = sim
		}
	}
	return 1 - maxSim, nil
}

type embedResult struct {
	index int
	vec   []float64
	err   error
}

// embedAll fans out one embedding call per text. Order of completion is
// irrelevant; results are reassembled by index.
func (s *Scorer) embedAll(ctx context.Context, texts []string) ([][]float64, error) {
	results := make(chan embedResult, len(texts))
	var wg sync.WaitGroup

	for i, text := range texts {
		wg.Add(1)
		go func(index int, text string) {
			defer wg.Done()
			vec, err := s.embedder.Embed(ctx, text)
			results <- embedResult{index: index, vec: vec, err: err}
		}(i, text)
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	vectors := make([][]float64, len(texts))
	var firstErr error
	for r := range results {
		if r.err != nil {
			if firstErr == nil {
				firstErr = r.err
			}
			continue
		}
		vectors[r.index] = r.vec
	}
	if firstErr != nil {
		return nil, fmt.Errorf("embedding failed: %w", firstErr)
	}
	return vectors, nil
}

// cosine is dot(a,b) / (|a||b|), clamped to [-1, 1]. A zero-norm vector is
// treated as maximally dissimilar (similarity 0) rather than dividing by
// zero; that policy keeps degenerate embeddings from producing NaN.
func cosine(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, &scoring.ScoringError{
			Reason: fmt.Sprintf("embedding dimension mismatch: %d vs %d", len(a), len(b)),
		}
	}
	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0, nil
	}
	sim := dot / (math.Sqrt(normA) * math.Sqrt(normB))
	return math.Max(-1, math.Min(1, sim)), nil
}
