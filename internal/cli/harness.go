package cli

import (
	"context"
	"fmt"

	"creativity-bench/internal/config"
	"creativity-bench/internal/judge"
	"creativity-bench/internal/novelty"
	"creativity-bench/internal/prompts"
	"creativity-bench/internal/scoring"
	"creativity-bench/internal/session"
)

// harness bundles a configured engine with the provider clients behind it, so
// commands can validate credentials before marking the session ready.
type harness struct {
	cfg      *config.Config
	factory  *scoring.Factory
	judge    scoring.ChatClient
	embedder scoring.Embedder
	engine   *session.Engine
}

// buildHarness wires config → providers → engine. promptLimit > 0 truncates
// the prompt list (used by auto mode to benchmark a subset).
func buildHarness(promptLimit int) (*harness, error) {
	cfg := config.New()

	promptList, err := prompts.Load(cfg.PromptsFilePath)
	if err != nil {
		return nil, err
	}
	if promptLimit > 0 && promptLimit < len(promptList) {
		promptList = promptList[:promptLimit]
	}

	factory := &scoring.Factory{
		JudgeAPIKey:        cfg.JudgeAPIKey,
		JudgeBaseURL:       cfg.JudgeBaseURL,
		JudgeModel:         cfg.JudgeModel,
		OpenRouterReferrer: cfg.OpenRouterReferrer,
		OpenRouterTitle:    cfg.OpenRouterTitle,
		YandexOAuthToken:   cfg.YandexOAuthToken,
		YandexFolderID:     cfg.YandexFolderID,
		EmbedAPIKey:        cfg.EmbedAPIKey,
		EmbedBaseURL:       cfg.EmbedBaseURL,
		EmbedModel:         cfg.EmbedModel,
	}

	judgeClient, err := factory.JudgeClient(cfg.JudgeProvider)
	if err != nil {
		return nil, err
	}
	embedder := factory.EmbedClient()

	engine, err := session.NewEngine(promptList,
		judge.New(judgeClient),
		novelty.New(embedder),
		session.Config{
			CoherenceThreshold: cfg.CoherenceThreshold,
			NoveltyThreshold:   cfg.NoveltyThreshold,
			TimeLimit:          cfg.ResponseTimeLimit,
		})
	if err != nil {
		return nil, err
	}

	return &harness{
		cfg:      cfg,
		factory:  factory,
		judge:    judgeClient,
		embedder: embedder,
		engine:   engine,
	}, nil
}

// validateProviders makes one cheap call per provider so a bad credential
// fails before the session starts, not on the first real answer.
func (h *harness) validateProviders(ctx context.Context) error {
	if err := h.embedder.Validate(ctx); err != nil {
		return fmt.Errorf("embedding credential check failed: %w", err)
	}
	if err := h.judge.Validate(ctx); err != nil {
		return fmt.Errorf("judge credential check failed: %w", err)
	}
	return nil
}
