// Package report re-analyzes an exported result document under adjustable
// thresholds, without touching any provider: for each prompt it counts the
// answers accepted before the first threshold failure and reports whether the
// prompt actually terminated (its last answer failed a threshold).
package report

import (
	"creativity-bench/internal/export"
	"creativity-bench/internal/session"
)

type Thresholds struct {
	Coherence int
	Novelty   float64
}

func DefaultThresholds() Thresholds {
	return Thresholds{
		Coherence: session.DefaultCoherenceThreshold,
		Novelty:   session.DefaultNoveltyThreshold,
	}
}

type PromptSummary struct {
	Prompt   string
	Attempts int
	Accepted int  // leading answers that passed both thresholds
	Complete bool // the prompt ended on a threshold failure
}

type Summary struct {
	Prompts       []PromptSummary
	TotalAttempts int
	TotalAccepted int
	Completed     int
}

// Analyze recounts every prompt under th. An answer fails when coherence <=
// th.Coherence or novelty <= th.Novelty, matching the engine's OR semantics;
// counting stops at the first failure.
func Analyze(res export.Result, th Thresholds) Summary {
	s := Summary{Prompts: make([]PromptSummary, 0, len(res))}
	for _, pr := range res {
		ps := PromptSummary{Prompt: pr.Prompt, Attempts: len(pr.Answers)}
		for _, a := range pr.Answers {
			if fails(a, th) {
				ps.Complete = true
				break
			}
			ps.Accepted++
		}
		s.Prompts = append(s.Prompts, ps)
		s.TotalAttempts += ps.Attempts
		s.TotalAccepted += ps.Accepted
		if ps.Complete {
			s.Completed++
		}
	}
	return s
}

func fails(a session.Answer, th Thresholds) bool {
	return a.Coherence <= th.Coherence || a.Novelty <= th.Novelty
}
