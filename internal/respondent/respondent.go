// Package respondent plays the benchmark automatically: an LLM produces the
// answers instead of a human, so models can be compared on how long they keep
// generating coherent, mutually dissimilar responses.
package respondent

import (
	"context"
	"fmt"
	"strings"

	"creativity-bench/internal/scoring"
)

const answerMarker = "Answer:"

type Respondent struct {
	chat           scoring.ChatClient
	chainOfThought bool
}

func New(chat scoring.ChatClient, chainOfThought bool) *Respondent {
	return &Respondent{chat: chat, chainOfThought: chainOfThought}
}

// Answer produces the next answer to prompt, given everything the model has
// already answered for it. The model is told its prior answers so it can
// diverge from them; whether it actually did is the novelty scorer's call.
func (r *Respondent) Answer(ctx context.Context, prompt string, prior []string) (string, error) {
	resp, err := r.chat.Complete(ctx, r.buildRequest(prompt, prior))
	if err != nil {
		return "", fmt.Errorf("respondent generation failed: %w", err)
	}
	answer := strings.TrimSpace(resp)
	if r.chainOfThought {
		answer = extractFinalAnswer(answer)
	}
	if answer == "" {
		return "", &scoring.ProviderError{Provider: "respondent", Err: fmt.Errorf("empty answer")}
	}
	return answer, nil
}

func (r *Respondent) buildRequest(prompt string, prior []string) string {
	var b strings.Builder
	b.WriteString("You are taking a creativity benchmark. Answer the following open-ended question in a few sentences.\n\n")
	b.WriteString(fmt.Sprintf("Question: %s\n", prompt))
	if len(prior) > 0 {
		b.WriteString("\nYou have already given the following answers. Your new answer must be substantially different from all of them:\n")
		for i, p := range prior {
			b.WriteString(fmt.Sprintf("%d. %s\n", i+1, p))
		}
	}
	if r.chainOfThought {
		b.WriteString("\nThink step by step about how to approach the question differently, then give only your final answer on the last line, prefixed with \"Answer:\".")
	} else {
		b.WriteString("\nRespond with the answer only, no preamble.")
	}
	return b.String()
}

// extractFinalAnswer takes the text after the last answer marker. Without the
// marker the whole response is the answer; some models skip the scaffold.
func extractFinalAnswer(resp string) string {
	idx := strings.LastIndex(resp, answerMarker)
	if idx == -1 {
		return strings.TrimSpace(resp)
	}
	return strings.TrimSpace(resp[idx+len(answerMarker):])
}
