package bootstrap

import (
	"context"
	"testing"
	"time"

	"cotizador/internal/config"
	"cotizador/internal/domain/entities"
	"cotizador/internal/usecase"

	"github.com/stretchr/testify/require"
)

func memoryConfig() *config.Config {
	return &config.Config{
		Node: 1,
		Storage: config.StorageConfig{
			Driver:      config.DriverMemory,
			DataKey:     "wmc_data",
			QueueKey:    "wmc-sync-queue",
			LastSyncKey: "wmc-last-sync-time",
			QuotaBytes:  1 << 20,
		},
		Sync: config.SyncConfig{TeardownTimeout: time.Second},
	}
}

func TestNew_MemoryWithoutSheets(t *testing.T) {
	ctx := context.Background()
	app, err := New(ctx, memoryConfig())
	require.NoError(t, err)

	client, err := app.Catalog.SaveClient(ctx, entities.Client{Name: "Acme", TaxID: "900-1"})
	require.NoError(t, err)
	require.NotZero(t, client.ID)

	st, err := app.Sync.Status(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, st.PendingOperations)
	require.False(t, st.RemoteConfigured)

	_, err = app.Sync.Sync(ctx)
	require.ErrorIs(t, err, usecase.ErrRemoteNotConfigured)

	h := app.Handlers()
	require.NotNil(t, h.Catalog)
	require.NotNil(t, h.Sync)
}

func TestApp_StartAndShutdown(t *testing.T) {
	app, err := New(context.Background(), memoryConfig())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	app.Start(ctx)
	cancel()

	require.NoError(t, app.Shutdown())
}

func TestNew_UnknownDriver(t *testing.T) {
	cfg := memoryConfig()
	cfg.Storage.Driver = "redis"
	_, err := New(context.Background(), cfg)
	require.Error(t, err)
}
