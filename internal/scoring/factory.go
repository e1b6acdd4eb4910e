package scoring

import (
	"fmt"
	"strings"
)

const (
	ProviderOpenAI = "openai"
	ProviderYandex = "yandex"
)

// Factory creates scoring clients with consistent logic. Credentials are
// bound at construction and never logged or mutated afterwards.
type Factory struct {
	JudgeAPIKey        string
	JudgeBaseURL       string
	JudgeModel         string
	OpenRouterReferrer string
	OpenRouterTitle    string
	YandexOAuthToken   string
	YandexFolderID     string
	EmbedAPIKey        string
	EmbedBaseURL       string
	EmbedModel         string
}

// JudgeClient returns the chat client used for coherence judging. The judge
// always samples at temperature 0 to keep the rubric distribution stable.
func (f *Factory) JudgeClient(provider string) (ChatClient, error) {
	switch strings.ToLower(provider) {
	case ProviderOpenAI:
		return NewOpenAI(f.JudgeAPIKey, f.JudgeBaseURL, f.JudgeModel,
			f.OpenRouterReferrer, f.OpenRouterTitle, WithTemperature(0)), nil
	case ProviderYandex:
		return NewYandex(f.YandexOAuthToken, f.YandexFolderID)
	default:
		return nil, fmt.Errorf("unknown judge provider: %s", provider)
	}
}

// RespondentClient returns a chat client for the automated respondent mode.
// Only OpenAI-compatible endpoints serve respondents.
func (f *Factory) RespondentClient(model string, temperature float32) ChatClient {
	return NewOpenAI(f.JudgeAPIKey, f.JudgeBaseURL, model,
		f.OpenRouterReferrer, f.OpenRouterTitle, WithTemperature(temperature))
}

// EmbedClient returns the embedding client used for novelty scoring.
func (f *Factory) EmbedClient() Embedder {
	opts := []OpenAIOption{}
	if f.EmbedModel != "" {
		opts = append(opts, WithEmbeddingModel(f.EmbedModel))
	}
	return NewOpenAI(f.EmbedAPIKey, f.EmbedBaseURL, "", "", "", opts...)
}
