package interfaces

import (
	"context"

	"cotizador/internal/domain/entities"
)

// IAppStateRepository owns the persisted AppData blob.
//
// Update runs fn against a private copy of the current state and commits it
// only when fn and the write both succeed; on failure the previous state stays
// in place both in memory and in storage.
type IAppStateRepository interface {
	Load(ctx context.Context) (entities.AppData, error)
	Update(ctx context.Context, fn func(d *entities.AppData) error) (entities.AppData, error)
	Replace(ctx context.Context, d entities.AppData) error
	Reset(ctx context.Context) (entities.AppData, error)
}
