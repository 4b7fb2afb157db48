package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"cotizador/internal/domain/entities"
	"cotizador/internal/usecase/interfaces"
)

var (
	ErrSyncInProgress      = errors.New("sync already in progress")
	ErrOffline             = errors.New("offline, changes will sync later")
	ErrRemoteNotConfigured = errors.New("remote sheet store is not configured")
	ErrRecordNotFound      = errors.New("record not found")
)

type SyncOutcome string

const (
	SyncSucceeded       SyncOutcome = "success"
	SyncSkippedBusy     SyncOutcome = "in_progress"
	SyncSkippedOffline  SyncOutcome = "offline"
	SyncFailed          SyncOutcome = "failed"
	// SyncQueueNotCleared means remote and local state were both written but
	// the replayed operations are still queued. They are replayed again on
	// the next run.
	SyncQueueNotCleared SyncOutcome = "queue_not_cleared"
)

// SyncResult describes a single sync, pull or push run.
type SyncResult struct {
	Outcome  SyncOutcome                 `json:"outcome"`
	Message  string                      `json:"message"`
	Counts   map[entities.EntityKind]int `json:"counts,omitempty"`
	Replayed int                         `json:"replayed"`
	At       *time.Time                  `json:"at,omitempty"`
}

// SyncListener receives progress callbacks. Every field is optional.
type SyncListener struct {
	OnStart    func()
	OnProgress func(stage string)
	OnSuccess  func(SyncResult)
	OnError    func(error)
}

type ISyncUseCase interface {
	interfaces.IChangeRecorder
	SaveItem(ctx context.Context, record entities.Record) (entities.Record, error)
	DeleteItem(ctx context.Context, kind entities.EntityKind, id int64) error
	Sync(ctx context.Context) (SyncResult, error)
	InitialPull(ctx context.Context) (SyncResult, error)
	InitialPush(ctx context.Context) (SyncResult, error)
	InitializeRemote(ctx context.Context) error
	Status(ctx context.Context) (entities.SyncStatus, error)
	Wait()
}

// SyncUseCase keeps the local state and the remote sheet store eventually
// consistent. Local writes commit immediately and are queued; a sync pulls
// the remote snapshot, merges it, replays the queue on top and pushes the
// result back.
type SyncUseCase struct {
	state    interfaces.IAppStateRepository
	queue    interfaces.ISyncQueueRepository
	remote   interfaces.IRemoteSheetStore
	network  interfaces.IConnectivity
	clock    interfaces.IClock
	opIDs    interfaces.IOpIDGenerator
	listener SyncListener

	syncing atomic.Bool
	wg      sync.WaitGroup
}

var _ ISyncUseCase = (*SyncUseCase)(nil)

// NewSyncUseCase builds the sync manager. remote may be nil when no sheet is
// configured; changes are still queued and Sync reports ErrRemoteNotConfigured.
func NewSyncUseCase(
	state interfaces.IAppStateRepository,
	queue interfaces.ISyncQueueRepository,
	remote interfaces.IRemoteSheetStore,
	network interfaces.IConnectivity,
	clock interfaces.IClock,
	opIDs interfaces.IOpIDGenerator,
) *SyncUseCase {
	return &SyncUseCase{
		state:   state,
		queue:   queue,
		remote:  remote,
		network: network,
		clock:   clock,
		opIDs:   opIDs,
	}
}

// SetListener installs progress callbacks. Call it before any sync starts.
func (u *SyncUseCase) SetListener(l SyncListener) {
	u.listener = l
}

// SaveItem stamps record, commits it locally and queues it. It serves
// callers that write a bare record without going through CatalogUseCase;
// the catalog commits its own changes and reports them through
// RecordUpsert and RecordDelete instead.
func (u *SyncUseCase) SaveItem(ctx context.Context, record entities.Record) (entities.Record, error) {
	kind, err := entities.KindOf(record)
	if err != nil {
		return nil, err
	}
	stamped, err := entities.Touch(record, u.clock.Now())
	if err != nil {
		return nil, err
	}
	if _, err := u.state.Update(ctx, func(d *entities.AppData) error {
		return d.Upsert(stamped)
	}); err != nil {
		return nil, err
	}
	if err := u.RecordUpsert(ctx, kind, stamped); err != nil {
		return nil, err
	}
	return stamped, nil
}

// DeleteItem removes a record locally and queues the delete. Like SaveItem
// it is not used by the catalog.
func (u *SyncUseCase) DeleteItem(ctx context.Context, kind entities.EntityKind, id int64) error {
	if _, err := u.state.Update(ctx, func(d *entities.AppData) error {
		found, err := d.Delete(kind, id)
		if err != nil {
			return err
		}
		if !found {
			return fmt.Errorf("%s %d: %w", kind, id, ErrRecordNotFound)
		}
		return nil
	}); err != nil {
		return err
	}
	return u.RecordDelete(ctx, kind, id)
}

// RecordUpsert queues an already committed upsert.
func (u *SyncUseCase) RecordUpsert(ctx context.Context, kind entities.EntityKind, record entities.Record) error {
	payload, err := json.Marshal(record)
	if err != nil {
		return err
	}
	return u.enqueue(ctx, entities.SyncOperation{
		Type:       entities.OperationUpsert,
		EntityKind: kind,
		ItemID:     record.GetID(),
		Payload:    payload,
	})
}

// RecordDelete queues an already committed delete.
func (u *SyncUseCase) RecordDelete(ctx context.Context, kind entities.EntityKind, id int64) error {
	return u.enqueue(ctx, entities.SyncOperation{
		Type:       entities.OperationDelete,
		EntityKind: kind,
		ItemID:     id,
	})
}

func (u *SyncUseCase) enqueue(ctx context.Context, op entities.SyncOperation) error {
	if !op.EntityKind.Valid() {
		return fmt.Errorf("unknown entity kind %q", op.EntityKind)
	}
	op.OpID = u.opIDs.NewOpID()
	op.Timestamp = u.clock.Now()
	if err := u.queue.Append(ctx, op); err != nil {
		log.Printf("[sync][usecase] failed to queue operation op_id=%s kind=%s type=%s err=%v", op.OpID, op.EntityKind, op.Type, err)
		return err
	}
	log.Printf("[sync][usecase] operation queued op_id=%s kind=%s type=%s item_id=%d", op.OpID, op.EntityKind, op.Type, op.ItemID)
	u.triggerAsync()
	return nil
}

// triggerAsync starts a background sync when a remote is configured and the
// network is up. The caller never waits for it.
func (u *SyncUseCase) triggerAsync() {
	if u.remote == nil || !u.network.Online() {
		return
	}
	u.wg.Add(1)
	go func() {
		defer u.wg.Done()
		if _, err := u.Sync(context.Background()); err != nil && !errors.Is(err, ErrSyncInProgress) {
			log.Printf("[sync][usecase] background sync failed err=%v", err)
		}
	}()
}

// Wait blocks until every background sync started so far has finished.
func (u *SyncUseCase) Wait() {
	u.wg.Wait()
}

// Sync runs the full protocol once. A call made while another sync is in
// flight returns ErrSyncInProgress without touching the remote store; an
// offline call returns ErrOffline. On any failure the queue and the local
// state are left exactly as they were, except when only clearing the queue
// fails: that run reports SyncQueueNotCleared.
func (u *SyncUseCase) Sync(ctx context.Context) (SyncResult, error) {
	if u.remote == nil {
		return SyncResult{Outcome: SyncFailed, Message: ErrRemoteNotConfigured.Error()}, ErrRemoteNotConfigured
	}
	if !u.syncing.CompareAndSwap(false, true) {
		log.Printf("[sync][usecase] sync skipped, already running")
		return SyncResult{Outcome: SyncSkippedBusy, Message: ErrSyncInProgress.Error()}, ErrSyncInProgress
	}
	defer u.syncing.Store(false)

	if !u.network.Online() {
		log.Printf("[sync][usecase] sync deferred, offline")
		return SyncResult{Outcome: SyncSkippedOffline, Message: ErrOffline.Error()}, ErrOffline
	}

	u.notifyStart()
	res, err := u.runSync(ctx)
	if err != nil {
		log.Printf("[sync][usecase] sync failed err=%v", err)
		u.notifyError(err)
		return SyncResult{Outcome: SyncFailed, Message: err.Error()}, err
	}
	log.Printf("[sync][usecase] sync finished replayed=%d counts=%v", res.Replayed, res.Counts)
	u.notifySuccess(res)
	return res, nil
}

func (u *SyncUseCase) runSync(ctx context.Context) (SyncResult, error) {
	u.notifyProgress("pull")
	remote, err := u.remote.ReadAll(ctx)
	if err != nil {
		return SyncResult{}, fmt.Errorf("pull remote: %w", err)
	}
	local, err := u.state.Load(ctx)
	if err != nil {
		return SyncResult{}, fmt.Errorf("load local: %w", err)
	}

	u.notifyProgress("merge")
	merged := MergeSnapshots(local.Snapshot(), remote)

	ops, err := u.queue.List(ctx)
	if err != nil {
		return SyncResult{}, fmt.Errorf("list queue: %w", err)
	}
	log.Printf("[sync][usecase] sync start pending_ops=%d", len(ops))
	u.notifyProgress("apply")
	result := ApplyOperations(merged, ops)

	u.notifyProgress("push")
	if err := u.remote.WriteAll(ctx, result); err != nil {
		return SyncResult{}, fmt.Errorf("push remote: %w", err)
	}

	u.notifyProgress("persist")
	replayed := make([]string, 0, len(ops))
	seen := make(map[string]struct{}, len(ops))
	for _, op := range ops {
		replayed = append(replayed, op.OpID)
		seen[op.OpID] = struct{}{}
	}
	// Operations queued while the remote calls were in flight stay queued for
	// the next run and are re-applied so their local commit is not lost.
	latest, err := u.queue.List(ctx)
	if err != nil {
		return SyncResult{}, fmt.Errorf("list queue: %w", err)
	}
	var late []entities.SyncOperation
	for _, op := range latest {
		if _, ok := seen[op.OpID]; !ok {
			late = append(late, op)
		}
	}
	final := ApplyOperations(result, late)
	if _, err := u.state.Update(ctx, func(d *entities.AppData) error {
		d.ReplaceEntities(final)
		return nil
	}); err != nil {
		return SyncResult{}, fmt.Errorf("persist local: %w", err)
	}
	// The queue lives under its own key, so from here on local state is
	// already replaced and a failure is reported without rolling it back.
	if err := u.queue.Remove(ctx, replayed); err != nil {
		log.Printf("[sync][usecase] pushed but queue not cleared err=%v", err)
		return SyncResult{
			Outcome:  SyncQueueNotCleared,
			Message:  fmt.Sprintf("sync pushed, queue not cleared: %v", err),
			Counts:   result.Count(),
			Replayed: len(ops),
		}, nil
	}
	now := u.clock.Now()
	if err := u.queue.SetLastSync(ctx, now); err != nil {
		return SyncResult{}, fmt.Errorf("stamp last sync: %w", err)
	}
	return SyncResult{
		Outcome:  SyncSucceeded,
		Message:  "sync completed",
		Counts:   result.Count(),
		Replayed: len(ops),
		At:       &now,
	}, nil
}

// InitialPull overwrites the local collections with the remote ones. The
// queue is left untouched.
func (u *SyncUseCase) InitialPull(ctx context.Context) (SyncResult, error) {
	if u.remote == nil {
		return SyncResult{Outcome: SyncFailed, Message: ErrRemoteNotConfigured.Error()}, ErrRemoteNotConfigured
	}
	if !u.syncing.CompareAndSwap(false, true) {
		return SyncResult{Outcome: SyncSkippedBusy, Message: ErrSyncInProgress.Error()}, ErrSyncInProgress
	}
	defer u.syncing.Store(false)

	u.notifyStart()
	remote, err := u.remote.ReadAll(ctx)
	if err != nil {
		u.notifyError(err)
		return SyncResult{Outcome: SyncFailed, Message: err.Error()}, fmt.Errorf("pull remote: %w", err)
	}
	if _, err := u.state.Update(ctx, func(d *entities.AppData) error {
		d.ReplaceEntities(remote)
		return nil
	}); err != nil {
		u.notifyError(err)
		return SyncResult{Outcome: SyncFailed, Message: err.Error()}, fmt.Errorf("persist local: %w", err)
	}
	now := u.clock.Now()
	if err := u.queue.SetLastSync(ctx, now); err != nil {
		return SyncResult{Outcome: SyncFailed, Message: err.Error()}, err
	}
	res := SyncResult{Outcome: SyncSucceeded, Message: "initial pull completed", Counts: remote.Count(), At: &now}
	log.Printf("[sync][usecase] initial pull finished counts=%v", res.Counts)
	u.notifySuccess(res)
	return res, nil
}

// InitialPush overwrites the remote sheets with the local collections,
// stamping records that never had a modification time.
func (u *SyncUseCase) InitialPush(ctx context.Context) (SyncResult, error) {
	if u.remote == nil {
		return SyncResult{Outcome: SyncFailed, Message: ErrRemoteNotConfigured.Error()}, ErrRemoteNotConfigured
	}
	if !u.syncing.CompareAndSwap(false, true) {
		return SyncResult{Outcome: SyncSkippedBusy, Message: ErrSyncInProgress.Error()}, ErrSyncInProgress
	}
	defer u.syncing.Store(false)

	u.notifyStart()
	local, err := u.state.Load(ctx)
	if err != nil {
		u.notifyError(err)
		return SyncResult{Outcome: SyncFailed, Message: err.Error()}, err
	}
	now := u.clock.Now()
	snap := stampMissing(local.Snapshot(), now)
	if err := u.remote.WriteAll(ctx, snap); err != nil {
		u.notifyError(err)
		return SyncResult{Outcome: SyncFailed, Message: err.Error()}, fmt.Errorf("push remote: %w", err)
	}
	if err := u.queue.SetLastSync(ctx, now); err != nil {
		return SyncResult{Outcome: SyncFailed, Message: err.Error()}, err
	}
	res := SyncResult{Outcome: SyncSucceeded, Message: "initial push completed", Counts: snap.Count(), At: &now}
	log.Printf("[sync][usecase] initial push finished counts=%v", res.Counts)
	u.notifySuccess(res)
	return res, nil
}

// InitializeRemote writes the header row of every sheet.
func (u *SyncUseCase) InitializeRemote(ctx context.Context) error {
	if u.remote == nil {
		return ErrRemoteNotConfigured
	}
	if err := u.remote.InitializeSheets(ctx); err != nil {
		return err
	}
	log.Printf("[sync][usecase] remote sheets initialized")
	return nil
}

func (u *SyncUseCase) Status(ctx context.Context) (entities.SyncStatus, error) {
	ops, err := u.queue.List(ctx)
	if err != nil {
		return entities.SyncStatus{}, err
	}
	last, err := u.queue.LastSync(ctx)
	if err != nil {
		return entities.SyncStatus{}, err
	}
	return entities.SyncStatus{
		IsSyncing:         u.syncing.Load(),
		IsOnline:          u.network.Online(),
		RemoteConfigured:  u.remote != nil,
		PendingOperations: len(ops),
		LastSyncTime:      last,
	}, nil
}

func stampMissing(s entities.Snapshot, now time.Time) entities.Snapshot {
	return entities.Snapshot{
		Clients:   stampRecords(s.Clients, now),
		Materials: stampRecords(s.Materials, now),
		Labor:     stampRecords(s.Labor, now),
		Products:  stampRecords(s.Products, now),
		Quotes:    stampRecords(s.Quotes, now),
	}
}

func stampRecords[T entities.Record](items []T, now time.Time) []T {
	out := make([]T, len(items))
	for i, r := range items {
		out[i] = r
		if !r.GetLastModified().IsZero() {
			continue
		}
		if touched, err := entities.Touch(r, now); err == nil {
			out[i] = touched.(T)
		}
	}
	return out
}

func (u *SyncUseCase) notifyStart() {
	if u.listener.OnStart != nil {
		u.listener.OnStart()
	}
}

func (u *SyncUseCase) notifyProgress(stage string) {
	log.Printf("[sync][usecase] stage=%s", stage)
	if u.listener.OnProgress != nil {
		u.listener.OnProgress(stage)
	}
}

func (u *SyncUseCase) notifySuccess(res SyncResult) {
	if u.listener.OnSuccess != nil {
		u.listener.OnSuccess(res)
	}
}

func (u *SyncUseCase) notifyError(err error) {
	if u.listener.OnError != nil {
		u.listener.OnError(err)
	}
}
