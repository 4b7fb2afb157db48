package usecase

import (
	"encoding/json"
	"fmt"
	"log"
	"slices"

	"cotizador/internal/domain/entities"
)

// MergeSnapshots merges remote into local per entity kind with last write
// wins. A remote record replaces its local counterpart only when it is
// strictly newer, so ties keep the local version. Remote order is kept and
// local-only records are appended after it.
func MergeSnapshots(local, remote entities.Snapshot) entities.Snapshot {
	return entities.Snapshot{
		Clients:   mergeRecords(local.Clients, remote.Clients),
		Materials: mergeRecords(local.Materials, remote.Materials),
		Labor:     mergeRecords(local.Labor, remote.Labor),
		Products:  mergeRecords(local.Products, remote.Products),
		Quotes:    mergeRecords(local.Quotes, remote.Quotes),
	}
}

func mergeRecords[T entities.Record](local, remote []T) []T {
	pending := make(map[int64]T, len(local))
	for _, r := range local {
		pending[r.GetID()] = r
	}
	out := make([]T, 0, len(local)+len(remote))
	for _, r := range remote {
		l, ok := pending[r.GetID()]
		if !ok {
			out = append(out, r)
			continue
		}
		if r.GetLastModified().After(l.GetLastModified()) {
			out = append(out, r)
		} else {
			out = append(out, l)
		}
		delete(pending, r.GetID())
	}
	for _, r := range local {
		if _, ok := pending[r.GetID()]; ok {
			out = append(out, r)
		}
	}
	return out
}

// ApplyOperations replays ops in order on a copy of s. Operations that
// cannot be decoded are logged and skipped so one bad entry cannot wedge the
// queue.
func ApplyOperations(s entities.Snapshot, ops []entities.SyncOperation) entities.Snapshot {
	out := entities.Snapshot{
		Clients:   slices.Clone(s.Clients),
		Materials: slices.Clone(s.Materials),
		Labor:     slices.Clone(s.Labor),
		Products:  slices.Clone(s.Products),
		Quotes:    slices.Clone(s.Quotes),
	}
	for _, op := range ops {
		if err := applyOperation(&out, op); err != nil {
			log.Printf("[sync][usecase] skipping queued operation op_id=%s kind=%s err=%v", op.OpID, op.EntityKind, err)
		}
	}
	return out
}

func applyOperation(s *entities.Snapshot, op entities.SyncOperation) error {
	switch op.EntityKind {
	case entities.KindClients:
		return applyTo(&s.Clients, op)
	case entities.KindMaterials:
		return applyTo(&s.Materials, op)
	case entities.KindLabor:
		return applyTo(&s.Labor, op)
	case entities.KindProducts:
		return applyTo(&s.Products, op)
	case entities.KindQuotes:
		return applyTo(&s.Quotes, op)
	}
	return fmt.Errorf("unknown entity kind %q", op.EntityKind)
}

func applyTo[T entities.Record](items *[]T, op entities.SyncOperation) error {
	switch op.Type {
	case entities.OperationUpsert:
		var rec T
		if err := json.Unmarshal(op.Payload, &rec); err != nil {
			return err
		}
		if rec.GetID() == 0 {
			return fmt.Errorf("upsert payload has no id")
		}
		for i := range *items {
			if (*items)[i].GetID() == rec.GetID() {
				(*items)[i] = rec
				return nil
			}
		}
		*items = append(*items, rec)
		return nil
	case entities.OperationDelete:
		*items = slices.DeleteFunc(*items, func(r T) bool { return r.GetID() == op.ItemID })
		return nil
	}
	return fmt.Errorf("unknown operation type %q", op.Type)
}
