// serve.go runs the HTTP collaborator surface for an external UI.
package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"creativity-bench/internal/httpapi"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the session over an HTTP JSON API",
	Long: `Serve exposes one session to an external UI: POST
/v1/session/start, /v1/session/answer and /v1/session/tick drive the state
machine, GET /v1/session/state and /v1/session/result read it. The UI owns
tick generation (one per second) and all rendering.`,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	h, err := buildHarness(0)
	if err != nil {
		return err
	}
	if err := h.validateProviders(ctx); err != nil {
		return err
	}
	h.engine.MarkReady()

	router := httpapi.NewRouter(httpapi.NewHandler(h.engine))
	return httpapi.Serve(ctx, h.cfg.HTTPListenAddr, router)
}
