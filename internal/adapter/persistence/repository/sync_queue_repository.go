package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"cotizador/internal/domain/entities"
	"cotizador/internal/usecase/interfaces"
)

// SyncQueueRepository stores the pending operation queue as a JSON list under
// its own key, separate from the state blob, plus the last sync time.
type SyncQueueRepository struct {
	kv          interfaces.IKeyValueStore
	queueKey    string
	lastSyncKey string

	mu sync.Mutex
}

var _ interfaces.ISyncQueueRepository = (*SyncQueueRepository)(nil)

func NewSyncQueueRepository(kv interfaces.IKeyValueStore, queueKey, lastSyncKey string) *SyncQueueRepository {
	return &SyncQueueRepository{kv: kv, queueKey: queueKey, lastSyncKey: lastSyncKey}
}

func (r *SyncQueueRepository) List(ctx context.Context) ([]entities.SyncOperation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.read(ctx)
}

func (r *SyncQueueRepository) Append(ctx context.Context, op entities.SyncOperation) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	ops, err := r.read(ctx)
	if err != nil {
		return err
	}
	return r.write(ctx, append(ops, op))
}

// Remove drops the operations with the given ids and keeps the rest in order.
func (r *SyncQueueRepository) Remove(ctx context.Context, opIDs []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	ops, err := r.read(ctx)
	if err != nil {
		return err
	}
	drop := make(map[string]struct{}, len(opIDs))
	for _, id := range opIDs {
		drop[id] = struct{}{}
	}
	kept := ops[:0]
	for _, op := range ops {
		if _, ok := drop[op.OpID]; !ok {
			kept = append(kept, op)
		}
	}
	if len(kept) == 0 {
		return r.kv.Remove(ctx, r.queueKey)
	}
	return r.write(ctx, kept)
}

func (r *SyncQueueRepository) LastSync(ctx context.Context) (*time.Time, error) {
	raw, found, err := r.kv.Get(ctx, r.lastSyncKey)
	if err != nil || !found {
		return nil, err
	}
	t, err := time.Parse(time.RFC3339Nano, string(raw))
	if err != nil {
		log.Printf("[sync][repository] ignoring unreadable last sync time value=%q", string(raw))
		return nil, nil
	}
	return &t, nil
}

func (r *SyncQueueRepository) SetLastSync(ctx context.Context, t time.Time) error {
	return r.kv.Set(ctx, r.lastSyncKey, []byte(formatTime(t)))
}

func (r *SyncQueueRepository) read(ctx context.Context) ([]entities.SyncOperation, error) {
	raw, found, err := r.kv.Get(ctx, r.queueKey)
	if err != nil {
		return nil, err
	}
	if !found || len(raw) == 0 {
		return []entities.SyncOperation{}, nil
	}
	var ops []entities.SyncOperation
	if err := json.Unmarshal(raw, &ops); err != nil {
		return nil, fmt.Errorf("decode sync queue: %w", err)
	}
	return ops, nil
}

func (r *SyncQueueRepository) write(ctx context.Context, ops []entities.SyncOperation) error {
	raw, err := json.Marshal(ops)
	if err != nil {
		return err
	}
	return r.kv.Set(ctx, r.queueKey, raw)
}
