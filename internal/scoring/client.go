package scoring

import "context"

// ChatClient is the contract over a text-completion provider. Calls are
// idempotent from the caller's perspective and carry no retry policy.
type ChatClient interface {
	Complete(ctx context.Context, prompt string) (string, error)
	// Validate performs one cheap call to confirm the credential works.
	Validate(ctx context.Context) error
}

// Embedder is the contract over an embedding provider. Vectors returned within
// one session must all have the same dimensionality; callers treat a length
// mismatch between compared vectors as fatal.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float64, error)
	Validate(ctx context.Context) error
}
