package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"cotizador/internal/domain/pricing"
	"cotizador/internal/usecase"
	"cotizador/internal/usecase/interfaces"
)

func TestMapError(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"validation", &usecase.ValidationError{Messages: []string{"name is required"}}, http.StatusBadRequest},
		{"wrapped not found", fmt.Errorf("load: %w", usecase.ErrMaterialNotFound), http.StatusNotFound},
		{"quote not found", usecase.ErrQuoteNotFound, http.StatusNotFound},
		{"client in use", usecase.ErrClientHasQuotes, http.StatusConflict},
		{"duplicate code", usecase.ErrDuplicateCode, http.StatusConflict},
		{"bad status", usecase.ErrInvalidStatus, http.StatusBadRequest},
		{"bad import", usecase.ErrInvalidImport, http.StatusBadRequest},
		{"margin", pricing.ErrInvalidMargin, http.StatusUnprocessableEntity},
		{"storage full", interfaces.ErrStorageFull, http.StatusInsufficientStorage},
		{"busy", usecase.ErrSyncInProgress, http.StatusConflict},
		{"offline", usecase.ErrOffline, http.StatusServiceUnavailable},
		{"no remote", usecase.ErrRemoteNotConfigured, http.StatusServiceUnavailable},
		{"rate limited", &interfaces.RemoteStatusError{StatusCode: http.StatusTooManyRequests, Err: errors.New("quota")}, http.StatusTooManyRequests},
		{"remote failure", &interfaces.RemoteStatusError{StatusCode: http.StatusForbidden, Err: errors.New("denied")}, http.StatusBadGateway},
		{"unknown", errors.New("x"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := mapError(tc.err); got.HTTPStatus != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, got.HTTPStatus)
			}
		})
	}
}

func TestMapError_ValidationMessage(t *testing.T) {
	got := mapError(&usecase.ValidationError{Messages: []string{"name is required", "taxId is required"}})
	if got.Message != "name is required; taxId is required" {
		t.Fatalf("unexpected message %q", got.Message)
	}
}
