package entities

import (
	"encoding/json"
	"time"
)

type OperationType string

const (
	OperationUpsert OperationType = "upsert"
	OperationDelete OperationType = "delete"
)

// SyncOperation is a pending local change waiting to be replayed on the
// remote store. Upserts carry the full record as Payload; deletes carry ItemID.
type SyncOperation struct {
	OpID       string          `json:"opId"`
	Timestamp  time.Time       `json:"timestamp"`
	Type       OperationType   `json:"type"`
	EntityKind EntityKind      `json:"entityKind"`
	ItemID     int64           `json:"itemId"`
	Payload    json.RawMessage `json:"payload,omitempty"`
}

// SyncStatus is a point-in-time view of the sync manager.
type SyncStatus struct {
	IsSyncing         bool       `json:"isSyncing"`
	IsOnline          bool       `json:"isOnline"`
	RemoteConfigured  bool       `json:"remoteConfigured"`
	PendingOperations int        `json:"pendingOperations"`
	LastSyncTime      *time.Time `json:"lastSyncTime,omitempty"`
}
