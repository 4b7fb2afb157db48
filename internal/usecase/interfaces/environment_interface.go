package interfaces

import (
	"context"
	"time"

	"cotizador/internal/domain/entities"
)

type IClock interface {
	Now() time.Time
}

// IIDGenerator hands out unique entity identifiers.
type IIDGenerator interface {
	NextID() int64
}

// IOpIDGenerator hands out unique sync operation identifiers.
type IOpIDGenerator interface {
	NewOpID() string
}

// IConnectivity reports the network state. Changes emits the new state on
// every transition.
type IConnectivity interface {
	Online() bool
	Changes() <-chan bool
}

// IChangeRecorder is told about every committed local change so it can be
// queued for the remote store.
type IChangeRecorder interface {
	RecordUpsert(ctx context.Context, kind entities.EntityKind, record entities.Record) error
	RecordDelete(ctx context.Context, kind entities.EntityKind, id int64) error
}
