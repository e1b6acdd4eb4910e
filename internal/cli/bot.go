// bot.go runs the Telegram collaborator.
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"creativity-bench/internal/telegram"
)

var botCmd = &cobra.Command{
	Use:   "bot",
	Short: "Run the session over Telegram",
	Long: `Bot runs one session through a Telegram chat. /start shows the
rules, /go begins, and every plain message is submitted as an answer to the
current question.`,
	RunE: runBot,
}

func runBot(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	h, err := buildHarness(0)
	if err != nil {
		return err
	}
	if h.cfg.TelegramBotToken == "" {
		return fmt.Errorf("TELEGRAM_BOT_TOKEN is not set")
	}
	if err := h.validateProviders(ctx); err != nil {
		return err
	}

	b, err := telegram.New(h.cfg.TelegramBotToken, h.engine, h.cfg.ResultsFilePath)
	if err != nil {
		return err
	}
	b.Run(ctx)
	return nil
}
