package interfaces

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"cotizador/internal/domain/entities"
)

// IRemoteSheetStore is the remote source of truth: one sheet per collection.
//
// WriteAll replaces every sheet with the snapshot contents. It is not atomic
// across sheets; a failure part way leaves earlier sheets rewritten.
type IRemoteSheetStore interface {
	ReadAll(ctx context.Context) (entities.Snapshot, error)
	WriteAll(ctx context.Context, s entities.Snapshot) error
	InitializeSheets(ctx context.Context) error
}

// ValueRange is a block of cells addressed in A1 notation.
type ValueRange struct {
	Range  string
	Values [][]interface{}
}

// IValuesClient is the subset of the spreadsheet values API the sheet store uses.
type IValuesClient interface {
	BatchGet(ctx context.Context, ranges []string) ([]ValueRange, error)
	BatchUpdate(ctx context.Context, data []ValueRange) error
	BatchClear(ctx context.Context, ranges []string) error
	Update(ctx context.Context, data ValueRange) error
}

// RemoteStatusError carries the HTTP status of a failed remote call.
type RemoteStatusError struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *RemoteStatusError) Error() string {
	return fmt.Sprintf("remote status %d: %s", e.StatusCode, e.Message)
}

func (e *RemoteStatusError) Unwrap() error { return e.Err }

// RateLimited reports whether the status asks the caller to back off.
func (e *RemoteStatusError) RateLimited() bool {
	return e.StatusCode == http.StatusTooManyRequests || e.StatusCode == http.StatusServiceUnavailable
}

// IsRateLimited reports whether err carries a 429 or 503 remote status.
func IsRateLimited(err error) bool {
	var rse *RemoteStatusError
	return errors.As(err, &rse) && rse.RateLimited()
}
