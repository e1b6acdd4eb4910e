package scoring

import (
	"context"
	"fmt"

	"github.com/Morwran/yagpt"
)

// YandexClient is an alternative judge-side chat provider. YandexGPT exposes
// no embedding surface here, so it never serves the Embedder contract.
type YandexClient struct {
	ya       yagpt.YaGPTFace
	iamToken string
}

func NewYandex(oauthToken, folderID string) (*YandexClient, error) {
	// Create IAM token from OAuth token
	iam, err := yagpt.NewYaIam(oauthToken)
	if err != nil {
		return nil, fmt.Errorf("failed to init yandex iam: %w", err)
	}
	resp, err := iam.Create()
	if err != nil {
		return nil, &AuthError{Provider: "yandex", Err: err}
	}

	ya, err := yagpt.NewYagpt(folderID)
	if err != nil {
		return nil, fmt.Errorf("failed to init yagpt: %w", err)
	}

	return &YandexClient{
		ya:       ya,
		iamToken: resp.IamToken,
	}, nil
}

func (c *YandexClient) Complete(ctx context.Context, prompt string) (string, error) {
	messages := []yagpt.Message{{Role: "user", Content: prompt}}

	resp, err := c.ya.CompletionWithCtx(ctx, c.iamToken, messages)
	if err != nil {
		return "", &ProviderError{Provider: "yandex", Err: err}
	}
	if resp == nil || len(resp.Alternatives) == 0 {
		return "", &ProviderError{Provider: "yandex", Err: fmt.Errorf("empty response")}
	}
	return resp.Alternatives[0].Message.Content, nil
}

func (c *YandexClient) Validate(ctx context.Context) error {
	_, err := c.Complete(ctx, "Test prompt")
	return err
}
