// Package telegram runs a session over a Telegram chat: the bot sends the
// current prompt, every plain message is a submission, and per-second ticks
// keep the countdown honest. One respondent per bot by design.
package telegram

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"creativity-bench/internal/export"
	"creativity-bench/internal/session"
	"creativity-bench/internal/ticker"
)

const (
	startCmd = "start"
	beginCmd = "go"
)

type Bot struct {
	api         *tgbotapi.BotAPI
	engine      *session.Engine
	resultsPath string

	mu     sync.Mutex
	chatID int64
	ticker *ticker.Ticker
}

func New(botToken string, engine *session.Engine, resultsPath string) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(botToken)
	if err != nil {
		return nil, fmt.Errorf("failed to init telegram api: %w", err)
	}
	return &Bot{
		api:         api,
		engine:      engine,
		resultsPath: resultsPath,
	}, nil
}

func (b *Bot) Run(ctx context.Context) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)

	log.Printf("🤖 Telegram runner started as @%s", b.api.Self.UserName)

	for {
		select {
		case <-ctx.Done():
			b.stopTicker()
			return
		case update, ok := <-updates:
			if !ok {
				b.stopTicker()
				return
			}
			if update.Message != nil {
				b.handleMessage(ctx, update.Message)
			}
		}
	}
}

func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	switch msg.Command() {
	case startCmd:
		b.engine.MarkReady()
		b.sendMessage(msg.Chat.ID,
			"Answer each open-ended question with a unique response. Every answer must stay coherent and differ from your previous answers to the same question. You have 3 minutes per response. Send /go to begin.")
	case beginCmd:
		b.begin(ctx, msg.Chat.ID)
	default:
		b.submit(ctx, msg.Chat.ID, msg.Text)
	}
}

func (b *Bot) begin(ctx context.Context, chatID int64) {
	if err := b.engine.Start(); err != nil {
		b.sendMessage(chatID, fmt.Sprintf("Cannot start: %v", err))
		return
	}

	b.mu.Lock()
	b.chatID = chatID
	b.mu.Unlock()

	snap := b.engine.Snapshot()
	b.sendMessage(chatID, fmt.Sprintf("Question %d/%d:\n%s", snap.PromptIndex+1, snap.PromptCount, snap.Prompt))

	// Telegram messages are atomic submissions, so ticks carry no draft:
	// time-up on an idle prompt advances without recording an answer.
	t := ticker.New(func() {
		out, err := b.engine.Tick(ctx, "")
		if err != nil {
			log.Printf("❌ Tick failed: %v", err)
			return
		}
		if out.Advanced {
			b.announceAdvance(out, "⏰ Time is up!")
		}
	})
	if err := t.Start(); err != nil {
		log.Printf("❌ Failed to start ticker: %v", err)
		return
	}

	b.mu.Lock()
	b.ticker = t
	b.mu.Unlock()
}

func (b *Bot) submit(ctx context.Context, chatID int64, text string) {
	out, err := b.engine.Submit(ctx, text)
	if err != nil {
		if errors.Is(err, session.ErrNotAwaiting) || errors.Is(err, session.ErrEmptyAnswer) {
			b.sendMessage(chatID, "Send /start for the rules or /go to begin.")
			return
		}
		// Scoring failure: nothing recorded, same answer can be re-sent.
		b.sendMessage(chatID, fmt.Sprintf("Error evaluating response, please try again: %v", err))
		return
	}

	if out.Recorded {
		b.sendMessage(chatID, fmt.Sprintf("Coherence: %d  Novelty: %.1f%%",
			out.Answer.Coherence, out.Answer.Novelty*100))
	}
	if out.Advanced {
		b.announceAdvance(out, "Threshold reached!")
	}
}

func (b *Bot) announceAdvance(out session.Outcome, reason string) {
	b.mu.Lock()
	chatID := b.chatID
	b.mu.Unlock()

	if out.Completed {
		// Stopped from a goroutine: cron's Stop waits for running jobs, and
		// announceAdvance can be called from inside a tick job.
		go b.stopTicker()
		if err := export.Write(b.resultsPath, export.Build(b.engine.Records())); err != nil {
			log.Printf("❌ Failed to write results: %v", err)
			b.sendMessage(chatID, "Session completed, but saving results failed.")
			return
		}
		b.sendMessage(chatID, fmt.Sprintf("%s Session completed. Results saved to %s.", reason, b.resultsPath))
		return
	}

	snap := b.engine.Snapshot()
	b.sendMessage(chatID, fmt.Sprintf("%s Moving on.\n\nQuestion %d/%d:\n%s",
		reason, snap.PromptIndex+1, snap.PromptCount, snap.Prompt))
}

func (b *Bot) stopTicker() {
	b.mu.Lock()
	t := b.ticker
	b.ticker = nil
	b.mu.Unlock()
	if t != nil {
		t.Stop()
	}
}

func (b *Bot) sendMessage(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := b.api.Send(msg); err != nil {
		log.Printf("❌ Failed to send message: %v", err)
	}
}
