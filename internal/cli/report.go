// report.go re-analyzes an exported results file under adjustable thresholds.
package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"creativity-bench/internal/config"
	"creativity-bench/internal/export"
	"creativity-bench/internal/report"
)

var (
	reportFile      string
	reportCoherence int
	reportNovelty   float64
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Re-analyze an exported results file",
	Long: `Report recounts a finished session's answers under thresholds of
your choosing: for each prompt it counts the answers accepted before the
first threshold failure, without calling any provider. Raising the thresholds
shows how far each answer streak would have survived a stricter benchmark.`,
	RunE: runReport,
}

func init() {
	reportCmd.Flags().StringVar(&reportFile, "file", "", "results file (default from config)")
	reportCmd.Flags().IntVar(&reportCoherence, "coherence", report.DefaultThresholds().Coherence, "coherence threshold")
	reportCmd.Flags().Float64Var(&reportNovelty, "novelty", report.DefaultThresholds().Novelty, "novelty threshold")
}

func runReport(cmd *cobra.Command, args []string) error {
	file := reportFile
	if file == "" {
		file = config.New().ResultsFilePath
	}

	res, err := export.Load(file)
	if err != nil {
		return err
	}

	summary := report.Analyze(res, report.Thresholds{
		Coherence: reportCoherence,
		Novelty:   reportNovelty,
	})

	fmt.Printf("Threshold re-analysis of %s [coherence <= %d, novelty <= %.2f]\n",
		file, reportCoherence, reportNovelty)
	fmt.Println(strings.Repeat("=", 50))

	for i, ps := range summary.Prompts {
		status := "incomplete"
		if ps.Complete {
			status = "complete"
		}
		fmt.Printf("Prompt %d: %s\n", i+1, ps.Prompt)
		fmt.Printf("  %s | attempts: %d | accepted: %d %s\n",
			status, ps.Attempts, ps.Accepted, bar(ps.Accepted, ps.Attempts))
	}

	fmt.Println(strings.Repeat("-", 50))
	fmt.Printf("Totals: %d prompts, %d/%d prompts complete, %d accepted of %d attempts\n",
		len(summary.Prompts), summary.Completed, len(summary.Prompts),
		summary.TotalAccepted, summary.TotalAttempts)
	return nil
}

func bar(accepted, attempts int) string {
	if attempts == 0 {
		return ""
	}
	width := 20
	filled := accepted * width / attempts
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
}
