package repository

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"sync"

	"cotizador/internal/domain/entities"
	"cotizador/internal/usecase/interfaces"
)

// AppStateRepository persists the whole AppData as one versioned blob under a
// single key. The decoded state is cached; every committed change is written
// through before the cache is swapped.
type AppStateRepository struct {
	kv    interfaces.IKeyValueStore
	key   string
	clock interfaces.IClock

	mu    sync.Mutex
	state *entities.AppData
}

var _ interfaces.IAppStateRepository = (*AppStateRepository)(nil)

func NewAppStateRepository(kv interfaces.IKeyValueStore, key string, clock interfaces.IClock) *AppStateRepository {
	return &AppStateRepository{kv: kv, key: key, clock: clock}
}

func (r *AppStateRepository) Load(ctx context.Context) (entities.AppData, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	cur, err := r.current(ctx)
	if err != nil {
		return entities.AppData{}, err
	}
	return cur.Clone()
}

func (r *AppStateRepository) Update(ctx context.Context, fn func(d *entities.AppData) error) (entities.AppData, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	cur, err := r.current(ctx)
	if err != nil {
		return entities.AppData{}, err
	}
	draft, err := cur.Clone()
	if err != nil {
		return entities.AppData{}, err
	}
	if err := fn(&draft); err != nil {
		return entities.AppData{}, err
	}
	if err := r.persist(ctx, &draft); err != nil {
		return entities.AppData{}, err
	}
	r.state = &draft
	return draft.Clone()
}

func (r *AppStateRepository) Replace(ctx context.Context, d entities.AppData) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	d, err := d.Clone()
	if err != nil {
		return err
	}
	if d.Version == "" {
		d.Version = entities.SchemaVersion
	}
	if err := r.persist(ctx, &d); err != nil {
		return err
	}
	r.state = &d
	return nil
}

func (r *AppStateRepository) Reset(ctx context.Context) (entities.AppData, error) {
	d := entities.NewAppData()
	if err := r.Replace(ctx, d); err != nil {
		return entities.AppData{}, err
	}
	return r.Load(ctx)
}

// current returns the cached state, loading it on first use. Caller holds mu.
func (r *AppStateRepository) current(ctx context.Context) (*entities.AppData, error) {
	if r.state != nil {
		return r.state, nil
	}

	raw, found, err := r.kv.Get(ctx, r.key)
	if err != nil {
		log.Printf("[storage][repository] load failed key=%s err=%v", r.key, err)
		return nil, err
	}

	var d entities.AppData
	switch {
	case !found:
		log.Printf("[storage][repository] no stored state, initializing defaults key=%s", r.key)
		d = entities.NewAppData()
	case json.Unmarshal(raw, &d) != nil:
		log.Printf("[storage][repository] stored state unreadable, reinitializing key=%s", r.key)
		d = entities.NewAppData()
	case d.Version != entities.SchemaVersion:
		log.Printf("[storage][repository] schema version mismatch, reinitializing stored=%q expected=%q", d.Version, entities.SchemaVersion)
		d = entities.NewAppData()
	default:
		d.EnsureMaps()
		r.state = &d
		return r.state, nil
	}

	if err := r.persist(ctx, &d); err != nil {
		return nil, err
	}
	r.state = &d
	return r.state, nil
}

func (r *AppStateRepository) persist(ctx context.Context, d *entities.AppData) error {
	now := r.clock.Now()
	d.Metadata.LastSync = &now

	raw, err := json.Marshal(d)
	if err != nil {
		return err
	}
	if err := r.kv.Set(ctx, r.key, raw); err != nil {
		if errors.Is(err, interfaces.ErrStorageFull) {
			log.Printf("[storage][repository] storage full key=%s bytes=%d", r.key, len(raw))
		} else {
			log.Printf("[storage][repository] save failed key=%s err=%v", r.key, err)
		}
		return err
	}
	return nil
}
