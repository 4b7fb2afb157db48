package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"cotizador/internal/bootstrap"
	"cotizador/internal/config"

	"github.com/spf13/cobra"
)

var configDir string

var rootCmd = &cobra.Command{
	Use:   "cotizador",
	Short: "Cotizador - quoting for metal-works shops",
	Long: `Cotizador keeps a catalog of clients, materials, labor and products,
prices quotes from it and keeps everything in sync with a Google spreadsheet.

Every change is stored locally first, so the tool keeps working offline and
replays the pending changes once the spreadsheet is reachable again.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configDir, "config", "", "directory holding config.yaml")
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func loadApp(ctx context.Context) (*bootstrap.App, error) {
	var paths []string
	if configDir != "" {
		paths = append(paths, configDir)
	}
	cfg, err := config.LoadConfig(paths...)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app, err := bootstrap.New(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialise: %w", err)
	}
	return app, nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
