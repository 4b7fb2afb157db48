package usecase

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"cotizador/internal/usecase/interfaces"
)

// AutoSync triggers a sync when the network comes back and on a fixed
// interval while online.
type AutoSync struct {
	sync            ISyncUseCase
	network         interfaces.IConnectivity
	interval        time.Duration
	teardownTimeout time.Duration
	wg              sync.WaitGroup
}

func NewAutoSync(s ISyncUseCase, network interfaces.IConnectivity, interval, teardownTimeout time.Duration) *AutoSync {
	return &AutoSync{sync: s, network: network, interval: interval, teardownTimeout: teardownTimeout}
}

// Run blocks until ctx is done. A zero interval disables the timer.
func (a *AutoSync) Run(ctx context.Context) {
	var tick <-chan time.Time
	if a.interval > 0 {
		t := time.NewTicker(a.interval)
		defer t.Stop()
		tick = t.C
	}
	changes := a.network.Changes()
	log.Printf("[sync][auto] started interval=%s", a.interval)
	for {
		select {
		case <-ctx.Done():
			log.Printf("[sync][auto] stopped")
			return
		case online, ok := <-changes:
			if !ok {
				changes = nil
				continue
			}
			if online {
				a.attempt(ctx, "online")
			}
		case <-tick:
			if a.network.Online() {
				a.attempt(ctx, "interval")
			}
		}
	}
}

func (a *AutoSync) attempt(ctx context.Context, reason string) {
	res, err := a.sync.Sync(ctx)
	switch {
	case err == nil:
		log.Printf("[sync][auto] sync ok reason=%s replayed=%d", reason, res.Replayed)
	case errors.Is(err, ErrSyncInProgress), errors.Is(err, ErrOffline):
		log.Printf("[sync][auto] sync skipped reason=%s outcome=%s", reason, res.Outcome)
	default:
		log.Printf("[sync][auto] sync failed reason=%s err=%v", reason, err)
	}
}

// Teardown starts a last sync when operations are still queued and returns
// without waiting for it. Use Wait to give it a chance to finish.
func (a *AutoSync) Teardown() {
	st, err := a.sync.Status(context.Background())
	if err != nil || st.PendingOperations == 0 || !st.IsOnline || !st.RemoteConfigured {
		return
	}
	log.Printf("[sync][auto] teardown sync pending_ops=%d", st.PendingOperations)
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), a.teardownTimeout)
		defer cancel()
		a.attempt(ctx, "teardown")
	}()
}

// Wait returns once the teardown sync is done or timeout elapses.
func (a *AutoSync) Wait(timeout time.Duration) bool {
	done := make(chan struct{})
	go func() {
		a.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return true
	case <-time.After(timeout):
		return false
	}
}
