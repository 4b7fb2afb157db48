package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"cotizador/internal/adapter/http/routes"

	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	Long: `Start the HTTP API together with the background sync loop, which
pushes pending changes when the network comes back and on a fixed interval.
On shutdown one last sync is attempted for anything still queued.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := loadApp(ctx)
	if err != nil {
		return err
	}
	app.Start(ctx)

	serveErr := routes.Run(ctx, app.Config.Server.Addr, app.Handlers())
	stop()
	if err := app.Shutdown(); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return serveErr
}
