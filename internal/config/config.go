package config

import (
	"log"

	"github.com/caarlos0/env/v6"
)

type Config struct {
	// Judge (coherence) provider
	JudgeProvider string `env:"JUDGE_PROVIDER" envDefault:"openai"`
	JudgeAPIKey   string `env:"JUDGE_API_KEY"`
	JudgeBaseURL  string `env:"JUDGE_BASE_URL" envDefault:"https://openrouter.ai/api/v1"`
	JudgeModel    string `env:"JUDGE_MODEL" envDefault:"o1-mini"`

	// OpenRouter (optional)
	OpenRouterReferrer string `env:"OPENROUTER_REFERRER"`
	OpenRouterTitle    string `env:"OPENROUTER_TITLE"`

	// Yandex judge (optional)
	YandexOAuthToken string `env:"YANDEX_OAUTH_TOKEN"`
	YandexFolderID   string `env:"YANDEX_FOLDER_ID"`

	// Embedding (novelty) provider
	EmbedAPIKey  string `env:"EMBED_API_KEY"`
	EmbedBaseURL string `env:"EMBED_BASE_URL"`
	EmbedModel   string `env:"EMBED_MODEL" envDefault:"text-embedding-3-large"`

	// Session rules
	CoherenceThreshold int     `env:"COHERENCE_THRESHOLD" envDefault:"15"`
	NoveltyThreshold   float64 `env:"NOVELTY_THRESHOLD" envDefault:"0.15"`
	ResponseTimeLimit  int     `env:"RESPONSE_TIME_LIMIT" envDefault:"180"`

	// Prompts
	PromptsFilePath string `env:"PROMPTS_FILE_PATH"`

	// Storage
	ResultsFilePath string `env:"RESULTS_FILE_PATH" envDefault:"results/results.json"`

	// Collaborator surfaces
	HTTPListenAddr   string `env:"HTTP_LISTEN_ADDR" envDefault:":8080"`
	TelegramBotToken string `env:"TELEGRAM_BOT_TOKEN"`
}

func New() *Config {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	return cfg
}
