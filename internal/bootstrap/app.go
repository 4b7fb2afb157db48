// Package bootstrap wires configuration, storage, the remote sheet store and
// the use cases into a runnable application.
package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"cotizador/internal/adapter/http/handlers"
	"cotizador/internal/adapter/http/routes"
	"cotizador/internal/adapter/persistence/repository"
	"cotizador/internal/adapter/persistence/sheets"
	"cotizador/internal/config"
	"cotizador/internal/infrastructure/database"
	"cotizador/internal/infrastructure/googlesheets"
	"cotizador/internal/infrastructure/network"
	"cotizador/internal/infrastructure/system"
	"cotizador/internal/usecase"
	"cotizador/internal/usecase/interfaces"
)

// App holds the wired use cases for one process.
type App struct {
	Config   *config.Config
	Catalog  *usecase.CatalogUseCase
	Sync     *usecase.SyncUseCase
	Pricing  *usecase.PricingUseCase
	AutoSync *usecase.AutoSync

	probe   *network.Probe
	closers []func() error
	wg      sync.WaitGroup
}

// New builds the application from cfg. Nothing runs in the background until
// Start is called.
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	app := &App{Config: cfg}

	kv, err := app.openStore(ctx)
	if err != nil {
		return nil, err
	}

	clock := system.Clock{}
	ids, err := system.NewSnowflakeIDs(cfg.Node)
	if err != nil {
		_ = app.Close()
		return nil, err
	}

	remote, err := newRemote(ctx, cfg, clock)
	if err != nil {
		_ = app.Close()
		return nil, err
	}

	var conn interfaces.IConnectivity = network.NewStatic(true)
	if remote != nil && cfg.Sync.ProbeURL != "" {
		app.probe = network.NewProbe(cfg.Sync.ProbeURL, cfg.Sync.ProbeInterval)
		conn = app.probe
	}

	state := repository.NewAppStateRepository(kv, cfg.Storage.DataKey, clock)
	queue := repository.NewSyncQueueRepository(kv, cfg.Storage.QueueKey, cfg.Storage.LastSyncKey)

	app.Sync = usecase.NewSyncUseCase(state, queue, remote, conn, clock, system.UUIDOpIDs{})
	app.Sync.SetListener(logListener())
	app.Catalog = usecase.NewCatalogUseCase(state, app.Sync, ids, clock)
	app.Pricing = usecase.NewPricingUseCase(state)
	app.AutoSync = usecase.NewAutoSync(app.Sync, conn, cfg.Sync.Interval, cfg.Sync.TeardownTimeout)
	return app, nil
}

func (a *App) openStore(ctx context.Context) (interfaces.IKeyValueStore, error) {
	cfg := a.Config
	switch cfg.Storage.Driver {
	case config.DriverMemory:
		return repository.NewStateMemoryStore(cfg.Storage.QuotaBytes), nil
	case config.DriverSQLite, config.DriverPostgres:
		db, err := database.ConnectGorm(cfg.Storage)
		if err != nil {
			return nil, err
		}
		if sqlDB, err := db.DB(); err == nil {
			a.closers = append(a.closers, sqlDB.Close)
		}
		return repository.NewStateGormStore(db)
	case config.DriverDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx, cfg.DynamoDB)
		if err != nil {
			return nil, err
		}
		return repository.NewStateDynamoStore(ddb, cfg.Storage.Table), nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}

// newRemote returns a nil interface when sheets are disabled so the sync use
// case can tell an unconfigured remote apart from a failing one.
func newRemote(ctx context.Context, cfg *config.Config, clock interfaces.IClock) (interfaces.IRemoteSheetStore, error) {
	if !cfg.Sheets.Enabled {
		log.Printf("[sync][bootstrap] sheets disabled, changes stay local")
		return nil, nil
	}
	client, err := googlesheets.NewValuesClient(ctx, cfg.Sheets.SpreadsheetID, cfg.Sheets.CredentialsFile)
	if err != nil {
		return nil, err
	}
	names := sheets.SheetNames{
		Clients:   cfg.Sheets.Names.Clients,
		Materials: cfg.Sheets.Names.Materials,
		Labor:     cfg.Sheets.Names.Labor,
		Products:  cfg.Sheets.Names.Products,
		Quotes:    cfg.Sheets.Names.Quotes,
	}
	backoff := sheets.NewBackoff(cfg.Sync.MaxRetries, cfg.Sync.BaseDelay, cfg.Sync.MaxDelay)
	return sheets.NewSheetStore(client, names, backoff, clock), nil
}

func logListener() usecase.SyncListener {
	return usecase.SyncListener{
		OnStart:    func() { log.Printf("[sync][bootstrap] sync started") },
		OnProgress: func(stage string) { log.Printf("[sync][bootstrap] stage=%s", stage) },
		OnSuccess: func(res usecase.SyncResult) {
			log.Printf("[sync][bootstrap] sync finished replayed=%d", res.Replayed)
		},
		OnError: func(err error) { log.Printf("[sync][bootstrap] sync failed err=%v", err) },
	}
}

// Start launches the connectivity probe and the automatic sync loop. Both
// stop when ctx is done.
func (a *App) Start(ctx context.Context) {
	if a.probe != nil {
		a.wg.Add(1)
		go func() {
			defer a.wg.Done()
			a.probe.Run(ctx)
		}()
	}
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		a.AutoSync.Run(ctx)
	}()
}

// Handlers builds the HTTP handlers over the wired use cases.
func (a *App) Handlers() routes.Handlers {
	return routes.Handlers{
		Catalog:  handlers.NewCatalogHandler(a.Catalog),
		Products: handlers.NewProductHandler(a.Catalog),
		Quotes:   handlers.NewQuoteHandler(a.Catalog),
		Settings: handlers.NewSettingsHandler(a.Catalog),
		Pricing:  handlers.NewPricingHandler(a.Pricing),
		Sync:     handlers.NewSyncHandler(a.Sync),
	}
}

// Shutdown waits for the background loops (ctx passed to Start must already
// be cancelled), pushes pending changes one last time and closes storage.
func (a *App) Shutdown() error {
	a.wg.Wait()
	a.AutoSync.Teardown()
	if !a.AutoSync.Wait(a.Config.Sync.TeardownTimeout) {
		log.Printf("[sync][bootstrap] final sync did not finish in %s", a.Config.Sync.TeardownTimeout)
	}
	if !waitTimeout(a.Sync.Wait, a.Config.Sync.TeardownTimeout) {
		log.Printf("[sync][bootstrap] background sync still running, closing storage")
	}
	return a.Close()
}

func waitTimeout(wait func(), timeout time.Duration) bool {
	done := make(chan struct{})
	go func() {
		wait()
		close(done)
	}()
	select {
	case <-done:
		return true
	case <-time.After(timeout):
		return false
	}
}

func (a *App) Close() error {
	var errs []error
	for _, c := range a.closers {
		errs = append(errs, c())
	}
	a.closers = nil
	return errors.Join(errs...)
}
