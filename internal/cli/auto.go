// auto.go implements the automated respondent mode: an LLM answers the
// prompts and the harness measures how long it stays coherent and novel.
package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"creativity-bench/internal/export"
	"creativity-bench/internal/respondent"
	"creativity-bench/internal/session"
)

var (
	autoModel          string
	autoTemperature    float32
	autoChainOfThought bool
	autoNumPrompts     int
	autoOutput         string
)

var autoCmd = &cobra.Command{
	Use:   "auto",
	Short: "Benchmark an LLM as the respondent",
	Long: `Auto runs the benchmark with a language model in the respondent
seat. The model sees each question together with its own previous answers and
must keep producing different ones; the session ends each prompt the same way
an interactive session would. No countdown applies: the model is measured on
divergence, not typing speed.`,
	RunE: runAuto,
}

func init() {
	autoCmd.Flags().StringVar(&autoModel, "model", "", "model to benchmark (required)")
	autoCmd.Flags().Float32Var(&autoTemperature, "temperature", 0.7, "sampling temperature for the respondent")
	autoCmd.Flags().BoolVar(&autoChainOfThought, "chain-of-thought", false, "let the respondent reason before answering")
	autoCmd.Flags().IntVar(&autoNumPrompts, "num-prompts", 0, "limit the number of prompts (0 = all)")
	autoCmd.Flags().StringVar(&autoOutput, "output", "", "results file path (default from config)")
	_ = autoCmd.MarkFlagRequired("model")
}

func runAuto(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	h, err := buildHarness(autoNumPrompts)
	if err != nil {
		return err
	}
	output := autoOutput
	if output == "" {
		output = h.cfg.ResultsFilePath
	}

	if err := h.validateProviders(ctx); err != nil {
		return err
	}

	r := respondent.New(h.factory.RespondentClient(autoModel, autoTemperature), autoChainOfThought)

	h.engine.MarkReady()
	if err := h.engine.Start(); err != nil {
		return err
	}

	log.Printf("🚀 Benchmarking %s (temperature %.1f)", autoModel, autoTemperature)

	for {
		snap := h.engine.Snapshot()
		if snap.Phase == session.PhaseCompleted {
			break
		}

		prior := h.engine.CurrentAnswers()
		answer, err := r.Answer(ctx, snap.Prompt, prior)
		if err != nil {
			return fmt.Errorf("prompt %d attempt %d: %w", snap.PromptIndex+1, len(prior)+1, err)
		}

		out, err := h.engine.Submit(ctx, answer)
		if err != nil {
			return fmt.Errorf("prompt %d attempt %d: %w", snap.PromptIndex+1, len(prior)+1, err)
		}
		log.Printf("  Prompt %d attempt %d: coherence=%d novelty=%.3f",
			snap.PromptIndex+1, len(prior)+1, out.Answer.Coherence, out.Answer.Novelty)
		if out.Advanced && !out.Completed {
			log.Printf("➡️ Prompt %d finished, moving on", snap.PromptIndex+1)
		}
	}

	if err := export.Write(output, export.Build(h.engine.Records())); err != nil {
		return err
	}
	log.Printf("🎉 Benchmark completed, results saved to %s", output)
	return nil
}
