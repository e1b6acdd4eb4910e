// play.go implements the interactive console session: one line per answer.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"creativity-bench/internal/export"
	"creativity-bench/internal/session"
	"creativity-bench/internal/ticker"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Run an interactive session on the console",
	Long: `Play starts a session on the console. Each line you enter is
submitted as an answer to the current question; scoring feedback follows each
submission. The countdown runs while you type, and an idle timeout moves you
to the next question.`,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	h, err := buildHarness(0)
	if err != nil {
		return err
	}

	fmt.Println("Validating provider credentials...")
	if err := h.validateProviders(ctx); err != nil {
		return err
	}
	h.engine.MarkReady()
	if err := h.engine.Start(); err != nil {
		return err
	}

	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(os.Stdin)
		scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
	}()

	// Console input is line-buffered, so there is never an inspectable draft:
	// ticks carry an empty one and an idle time-up advances without an answer.
	timeUps := make(chan session.Outcome, 4)
	t := ticker.New(func() {
		out, err := h.engine.Tick(ctx, "")
		if err != nil {
			log.Printf("❌ Tick failed: %v", err)
			return
		}
		if out.Advanced {
			timeUps <- out
			return
		}
		if remaining := h.engine.Snapshot().TimeRemaining; remaining == 60 || remaining == 30 || remaining == 10 {
			fmt.Printf("⏱  %d seconds remaining\n", remaining)
		}
	})
	if err := t.Start(); err != nil {
		return err
	}
	defer t.Stop()

	printPrompt(h.engine.Snapshot())

	for {
		select {
		case <-ctx.Done():
			fmt.Println("\nSession abandoned.")
			return nil
		case out := <-timeUps:
			fmt.Println("⏰ Time is up!")
			if done, err := afterAdvance(h, out); done || err != nil {
				return err
			}
		case line, ok := <-lines:
			if !ok {
				fmt.Println("Session abandoned.")
				return nil
			}
			out, err := h.engine.Submit(ctx, line)
			if err != nil {
				switch {
				case errors.Is(err, session.ErrEmptyAnswer):
					continue
				case errors.Is(err, session.ErrNotAwaiting):
					continue
				default:
					// Nothing was recorded; the same answer can be re-sent.
					fmt.Printf("Error evaluating response, please try again: %v\n", err)
					continue
				}
			}
			fmt.Printf("Coherence: %d  Novelty: %.1f%%\n", out.Answer.Coherence, out.Answer.Novelty*100)
			if out.Advanced {
				fmt.Println("Threshold reached!")
				if done, err := afterAdvance(h, out); done || err != nil {
					return err
				}
			} else {
				fmt.Println("Keep going! Answer the same question differently. Timer reset.")
			}
		}
	}
}

// afterAdvance prints the next prompt, or writes results when the session is
// complete. Returns true when the session ended.
func afterAdvance(h *harness, out session.Outcome) (bool, error) {
	if out.Completed {
		if err := export.Write(h.cfg.ResultsFilePath, export.Build(h.engine.Records())); err != nil {
			return true, err
		}
		fmt.Printf("🎉 Session completed! Results saved to %s\n", h.cfg.ResultsFilePath)
		return true, nil
	}
	printPrompt(h.engine.Snapshot())
	return false, nil
}

func printPrompt(snap session.Snapshot) {
	fmt.Printf("\nQuestion %d/%d (%d seconds):\n%s\n> ",
		snap.PromptIndex+1, snap.PromptCount, snap.TimeRemaining, snap.Prompt)
}
