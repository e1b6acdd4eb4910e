package scoring

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/sashabaranov/go-openai"
)

// OpenAIClient talks to the OpenAI API or any OpenAI-compatible endpoint
// (OpenRouter via BaseURL). It serves both the chat and embedding contracts.
type OpenAIClient struct {
	client      *openai.Client
	model       string
	embedModel  string
	temperature float32
	maxTokens   int
}

type headerTransport struct {
	rt      http.RoundTripper
	headers http.Header
}

func (t headerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// Clone request to avoid mutating the original
	cl := req.Clone(req.Context())
	for k, vs := range t.headers {
		for _, v := range vs {
			cl.Header.Add(k, v)
		}
	}
	return t.rt.RoundTrip(cl)
}

type OpenAIOption func(*OpenAIClient)

// WithTemperature sets the sampling temperature for chat completions. The
// judge runs at 0; automated respondents may run hotter.
func WithTemperature(t float32) OpenAIOption {
	return func(c *OpenAIClient) { c.temperature = t }
}

// WithEmbeddingModel overrides the embedding model used by Embed.
func WithEmbeddingModel(model string) OpenAIOption {
	return func(c *OpenAIClient) { c.embedModel = model }
}

func NewOpenAI(apiKey, baseURL, model, referrer, title string, opts ...OpenAIOption) *OpenAIClient {
	config := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = baseURL
	}
	// Inject optional headers (useful for OpenRouter)
	if referrer != "" || title != "" {
		h := http.Header{}
		if referrer != "" {
			h.Set("HTTP-Referer", referrer)
		}
		if title != "" {
			h.Set("X-Title", title)
		}
		base := http.DefaultTransport
		config.HTTPClient = &http.Client{Transport: headerTransport{rt: base, headers: h}}
	}
	c := &OpenAIClient{
		client:     openai.NewClientWithConfig(config),
		model:      model,
		embedModel: string(openai.LargeEmbedding3),
		maxTokens:  4000,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *OpenAIClient) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: c.temperature,
		MaxTokens:   c.maxTokens,
	})
	if err != nil {
		return "", classify("chat provider", err)
	}
	if len(resp.Choices) == 0 {
		return "", &ProviderError{Provider: "chat provider", Err: fmt.Errorf("no choices in response")}
	}
	return resp.Choices[0].Message.Content, nil
}

func (c *OpenAIClient) Embed(ctx context.Context, text string) ([]float64, error) {
	resp, err := c.client.CreateEmbeddings(ctx, openai.EmbeddingRequest{
		Input: []string{text},
		Model: openai.EmbeddingModel(c.embedModel),
	})
	if err != nil {
		return nil, classify("embedding provider", err)
	}
	if len(resp.Data) == 0 {
		return nil, &ProviderError{Provider: "embedding provider", Err: fmt.Errorf("no embeddings in response")}
	}
	vec := make([]float64, len(resp.Data[0].Embedding))
	for i, v := range resp.Data[0].Embedding {
		vec[i] = float64(v)
	}
	return vec, nil
}

func (c *OpenAIClient) Validate(ctx context.Context) error {
	if c.model != "" {
		_, err := c.Complete(ctx, "Test prompt")
		return err
	}
	_, err := c.Embed(ctx, "test")
	return err
}

// classify maps transport errors onto the taxonomy: 401/403 is a rejected
// credential, everything else is a provider failure.
func classify(provider string, err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		if apiErr.HTTPStatusCode == http.StatusUnauthorized || apiErr.HTTPStatusCode == http.StatusForbidden {
			return &AuthError{Provider: provider, Err: err}
		}
	}
	return &ProviderError{Provider: provider, Err: err}
}
