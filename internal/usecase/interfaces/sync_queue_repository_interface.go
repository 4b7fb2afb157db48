package interfaces

import (
	"context"
	"time"

	"cotizador/internal/domain/entities"
)

// ISyncQueueRepository persists the ordered list of pending sync operations
// and the time of the last successful sync.
type ISyncQueueRepository interface {
	List(ctx context.Context) ([]entities.SyncOperation, error)
	Append(ctx context.Context, op entities.SyncOperation) error
	Remove(ctx context.Context, opIDs []string) error
	LastSync(ctx context.Context) (*time.Time, error)
	SetLastSync(ctx context.Context, t time.Time) error
}
