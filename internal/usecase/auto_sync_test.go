package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"cotizador/internal/domain/entities"
)

type fakeSyncer struct {
	ISyncUseCase
	mu     sync.Mutex
	calls  int
	status entities.SyncStatus
	called chan struct{}
}

func newFakeSyncer(status entities.SyncStatus) *fakeSyncer {
	return &fakeSyncer{status: status, called: make(chan struct{}, 10)}
}

func (f *fakeSyncer) Sync(context.Context) (SyncResult, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
	select {
	case f.called <- struct{}{}:
	default:
	}
	return SyncResult{Outcome: SyncSucceeded}, nil
}

func (f *fakeSyncer) Status(context.Context) (entities.SyncStatus, error) {
	return f.status, nil
}

func (f *fakeSyncer) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

type fakeNetwork struct {
	online  bool
	changes chan bool
}

func (n *fakeNetwork) Online() bool         { return n.online }
func (n *fakeNetwork) Changes() <-chan bool { return n.changes }

func waitCall(t *testing.T, f *fakeSyncer) {
	t.Helper()
	select {
	case <-f.called:
	case <-time.After(2 * time.Second):
		t.Fatalf("expected a sync attempt")
	}
}

func TestAutoSync_Run(t *testing.T) {
	t.Run("syncs when the network comes back", func(t *testing.T) {
		f := newFakeSyncer(entities.SyncStatus{})
		n := &fakeNetwork{changes: make(chan bool, 2)}
		a := NewAutoSync(f, n, 0, time.Second)

		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan struct{})
		go func() {
			a.Run(ctx)
			close(done)
		}()

		n.changes <- false
		n.changes <- true
		waitCall(t, f)
		cancel()
		<-done
		if f.count() != 1 {
			t.Fatalf("expected exactly one sync, got %d", f.count())
		}
	})

	t.Run("syncs on the timer only while online", func(t *testing.T) {
		f := newFakeSyncer(entities.SyncStatus{})
		n := &fakeNetwork{online: true}
		a := NewAutoSync(f, n, 10*time.Millisecond, time.Second)

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		go a.Run(ctx)
		waitCall(t, f)
	})
}

func TestAutoSync_Teardown(t *testing.T) {
	t.Run("nothing pending", func(t *testing.T) {
		f := newFakeSyncer(entities.SyncStatus{IsOnline: true, RemoteConfigured: true})
		a := NewAutoSync(f, &fakeNetwork{online: true}, 0, time.Second)
		a.Teardown()
		if !a.Wait(time.Second) || f.count() != 0 {
			t.Fatalf("expected no sync, got %d", f.count())
		}
	})

	t.Run("pending operations trigger a last sync", func(t *testing.T) {
		f := newFakeSyncer(entities.SyncStatus{IsOnline: true, RemoteConfigured: true, PendingOperations: 2})
		a := NewAutoSync(f, &fakeNetwork{online: true}, 0, time.Second)
		a.Teardown()
		if !a.Wait(time.Second) || f.count() != 1 {
			t.Fatalf("expected one sync, got %d", f.count())
		}
	})
}
