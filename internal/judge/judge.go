// Package judge scores a (prompt, answer) pair for coherence on a 0-100
// rubric via a chat provider. The rubric bands and the score marker are part
// of the benchmark contract: changing either changes what the numbers mean.
package judge

import (
	"context"
	"fmt"
	"regexp"
	"strconv"

	"creativity-bench/internal/scoring"
)

const rubricTemplate = `Your task is to evaluate the coherence and plausibility of an answer to a given question.

Question: <question>%s</question>
Answer: <answer>%s</answer>

Based on the following criteria, provide a Coherence and Plausibility Score on a scale of 0 - 100:

0-20: INCOHERENT/NONSENSICAL
- Answer is completely unrelated to the question
- Contains logical impossibilities or contradictions
- Makes claims that defy basic reality
- Shows no understanding of the question's context

21-40: SEVERELY FLAWED
- Major logical gaps or inconsistencies
- Significant misunderstanding of core concepts
- Contains partially relevant information but mostly incorrect
- May include some true statements but fails to form a coherent response

41-60: PARTIALLY COHERENT
- Shows basic understanding of the question
- Contains some valid points mixed with errors
- Logic is followable but may have weak connections
- Answer is relevant but may miss key aspects

61-80: MOSTLY COHERENT
- Demonstrates clear understanding of the question
- Logic is sound with minor gaps or inconsistencies
- Most claims are plausible and well-supported
- Forms a generally complete and relevant response

81-100: HIGHLY COHERENT
- Perfectly addresses the question
- Demonstrates complete logical consistency
- All claims are plausible and well-grounded
- Forms a comprehensive and precise response

IMPORTANT: Provide your final Coherence and Plausibility Score as a single integer between 0 and 100, enclosed in <coherence_score></coherence_score> XML tags.

Do not include any additional text in your response.`

var scoreRe = regexp.MustCompile(`<coherence_score>(\d+)</coherence_score>`)

type Judge struct {
	chat scoring.ChatClient
}

func New(chat scoring.ChatClient) *Judge {
	return &Judge{chat: chat}
}

// Score judges one answer. The provider response must contain the score
// marker exactly once with an integer in [0,100]; anything else is a
// MalformedScoreError. No heuristic salvage of near-miss responses.
func (j *Judge) Score(ctx context.Context, prompt, answer string) (int, error) {
	resp, err := j.chat.Complete(ctx, BuildRequest(prompt, answer))
	if err != nil {
		return 0, fmt.Errorf("coherence judgment failed: %w", err)
	}
	return parseScore(resp)
}

// BuildRequest renders the rubric request for a (prompt, answer) pair.
func BuildRequest(prompt, answer string) string {
	return fmt.Sprintf(rubricTemplate, prompt, answer)
}

func parseScore(resp string) (int, error) {
	matches := scoreRe.FindAllStringSubmatch(resp, -1)
	if len(matches) == 0 {
		return 0, &scoring.MalformedScoreError{Reason: "score marker missing", Response: resp}
	}
	if len(matches) > 1 {
		return 0, &scoring.MalformedScoreError{Reason: "score marker appears more than once", Response: resp}
	}
	score, err := strconv.Atoi(matches[0][1])
	if err != nil {
		return 0, &scoring.MalformedScoreError{Reason: "score is not an integer", Response: resp}
	}
	if score < 0 || score > 100 {
		return 0, &scoring.MalformedScoreError{Reason: fmt.Sprintf("score %d outside [0,100]", score), Response: resp}
	}
	return score, nil
}
