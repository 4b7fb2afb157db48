package cmd

import (
	"context"
	"errors"

	"cotizador/internal/usecase"

	"github.com/spf13/cobra"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Pull, merge and push against the spreadsheet once",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSyncOp(cmd, func(ctx context.Context, s usecase.ISyncUseCase) (usecase.SyncResult, error) {
			return s.Sync(ctx)
		})
	},
}

var pullCmd = &cobra.Command{
	Use:   "pull",
	Short: "Replace the local catalog with the spreadsheet contents",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSyncOp(cmd, func(ctx context.Context, s usecase.ISyncUseCase) (usecase.SyncResult, error) {
			return s.InitialPull(ctx)
		})
	},
}

var pushCmd = &cobra.Command{
	Use:   "push",
	Short: "Overwrite the spreadsheet with the local catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSyncOp(cmd, func(ctx context.Context, s usecase.ISyncUseCase) (usecase.SyncResult, error) {
			return s.InitialPush(ctx)
		})
	},
}

var initSheetsCmd = &cobra.Command{
	Use:   "init-sheets",
	Short: "Write the header row of every sheet",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		app, err := loadApp(ctx)
		if err != nil {
			return err
		}
		defer app.Close()
		if err := app.Sync.InitializeRemote(ctx); err != nil {
			return err
		}
		cmd.Println("sheets initialised")
		return nil
	},
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show pending operations and the last sync time",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		app, err := loadApp(ctx)
		if err != nil {
			return err
		}
		defer app.Close()
		st, err := app.Sync.Status(ctx)
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), st)
	},
}

func init() {
	rootCmd.AddCommand(syncCmd, pullCmd, pushCmd, initSheetsCmd, statusCmd)
}

// runSyncOp prints the result even when the run was skipped; only real
// failures make the command exit non-zero.
func runSyncOp(cmd *cobra.Command, op func(ctx context.Context, s usecase.ISyncUseCase) (usecase.SyncResult, error)) error {
	ctx := cmd.Context()
	app, err := loadApp(ctx)
	if err != nil {
		return err
	}
	defer app.Close()

	res, err := op(ctx, app.Sync)
	if err != nil && !errors.Is(err, usecase.ErrOffline) && !errors.Is(err, usecase.ErrSyncInProgress) {
		return err
	}
	return printJSON(cmd.OutOrStdout(), res)
}
