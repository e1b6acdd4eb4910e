// Package cli defines the Cobra commands for the bench binary.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "bench",
	Short: "Creativity benchmark harness",
	Long: `Bench runs the creativity benchmark: answer a fixed sequence of
open-ended questions with responses that stay coherent while diverging from
your own previous answers. Each answer is judged for coherence by an LLM and
for novelty against your prior answers via embeddings; a prompt ends when
either score falls to its threshold.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the root command. Called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(autoCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(botCmd)
	rootCmd.AddCommand(reportCmd)
}
