package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var (
	exportOut string
	resetSeed bool
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show dashboard figures for the current month",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		app, err := loadApp(ctx)
		if err != nil {
			return err
		}
		defer app.Close()
		stats, err := app.Catalog.Dashboard(ctx)
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), stats)
	},
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write a JSON backup of the local state",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		app, err := loadApp(ctx)
		if err != nil {
			return err
		}
		defer app.Close()

		raw, err := app.Catalog.Export(ctx)
		if err != nil {
			return err
		}
		out := exportOut
		if out == "" {
			out = fmt.Sprintf("cotizador-backup-%s.json", time.Now().Format("2006-01-02"))
		}
		if out == "-" {
			_, err = cmd.OutOrStdout().Write(raw)
			return err
		}
		if err := os.WriteFile(out, raw, 0o600); err != nil {
			return fmt.Errorf("write backup: %w", err)
		}
		cmd.Printf("backup written to %s\n", out)
		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Replace the local state with a JSON backup",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read backup: %w", err)
		}
		ctx := cmd.Context()
		app, err := loadApp(ctx)
		if err != nil {
			return err
		}
		defer app.Close()

		data, err := app.Catalog.Import(ctx, raw)
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), data.Snapshot().Count())
	},
}

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Wipe the local state back to defaults",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		app, err := loadApp(ctx)
		if err != nil {
			return err
		}
		defer app.Close()

		data, err := app.Catalog.Reset(ctx, resetSeed)
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), data.Snapshot().Count())
	},
}

func init() {
	rootCmd.AddCommand(statsCmd, exportCmd, importCmd, resetCmd)

	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "output file, - for stdout")
	resetCmd.Flags().BoolVar(&resetSeed, "seed", false, "load the sample catalog after the reset")
}
