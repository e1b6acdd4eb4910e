package scoring

import "fmt"

// AuthError means a provider rejected the supplied credential. Recoverable by
// re-entering credentials; never retried automatically.
type AuthError struct {
	Provider string
	Err      error
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("%s: credential rejected: %v", e.Provider, e.Err)
}

func (e *AuthError) Unwrap() error { return e.Err }

// ProviderError is a transient transport or service failure. The respondent
// may re-submit the same answer.
type ProviderError struct {
	Provider string
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s: provider call failed: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error { return e.Err }

// MalformedScoreError means the provider answered but violated the score
// format contract. Not retryable for that call; the respondent may submit a
// fresh answer.
type MalformedScoreError struct {
	Reason   string
	Response string
}

func (e *MalformedScoreError) Error() string {
	return fmt.Sprintf("malformed score response: %s", e.Reason)
}

// ScoringError is an internal invariant violation, e.g. comparing embeddings
// of different dimensionality. Fatal; never coerced.
type ScoringError struct {
	Reason string
}

func (e *ScoringError) Error() string {
	return fmt.Sprintf("scoring invariant violated: %s", e.Reason)
}
