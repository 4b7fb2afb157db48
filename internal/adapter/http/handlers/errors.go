package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"cotizador/internal/domain/pricing"
	"cotizador/internal/usecase"
	"cotizador/internal/usecase/interfaces"
	"cotizador/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_PAYLOAD", "Invalid request payload", http.StatusBadRequest)
	errInvalidID      = pkg.NewDomainErrorSimple("INVALID_ID", "Invalid id", http.StatusBadRequest)
)

func respondError(c *gin.Context, err error) {
	appErr := mapError(err)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func mapError(err error) *pkg.AppError {
	var verr *usecase.ValidationError
	var remoteErr *interfaces.RemoteStatusError
	switch {
	case errors.As(err, &verr):
		return pkg.NewDomainError("VALIDATION_ERROR", strings.Join(verr.Messages, "; "), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrClientNotFound):
		return pkg.NewDomainErrorSimple("CLIENT_NOT_FOUND", "Client not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrMaterialNotFound):
		return pkg.NewDomainErrorSimple("MATERIAL_NOT_FOUND", "Material not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrLaborNotFound):
		return pkg.NewDomainErrorSimple("LABOR_NOT_FOUND", "Labor not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrProductNotFound):
		return pkg.NewDomainErrorSimple("PRODUCT_NOT_FOUND", "Product not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrRecordNotFound):
		return pkg.NewDomainErrorSimple("RECORD_NOT_FOUND", "Record not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrClientHasQuotes):
		return pkg.NewDomainErrorSimple("CLIENT_HAS_QUOTES", "Client has dependent quotes", http.StatusConflict)
	case errors.Is(err, usecase.ErrDuplicateCode):
		return pkg.NewDomainErrorSimple("DUPLICATE_CODE", "Code already in use", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidStatus):
		return pkg.NewDomainErrorSimple("INVALID_STATUS", "Invalid quote status", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidImport):
		return pkg.NewDomainError("INVALID_IMPORT", "Invalid import data", err, http.StatusBadRequest)
	case errors.Is(err, pricing.ErrInvalidMargin):
		return pkg.NewDomainErrorSimple("INVALID_MARGIN", "Margin must be lower than 100%", http.StatusUnprocessableEntity)
	case errors.Is(err, interfaces.ErrStorageFull):
		return pkg.NewDomainErrorSimple("STORAGE_FULL", "Local storage is full, export and clean up old data", http.StatusInsufficientStorage)
	case errors.Is(err, usecase.ErrSyncInProgress):
		return pkg.NewDomainErrorSimple("SYNC_IN_PROGRESS", "A sync is already running", http.StatusConflict)
	case errors.Is(err, usecase.ErrOffline):
		return pkg.NewDomainErrorSimple("OFFLINE", "Offline, changes will sync later", http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrRemoteNotConfigured):
		return pkg.NewDomainErrorSimple("REMOTE_NOT_CONFIGURED", "Remote sheet store is not configured", http.StatusServiceUnavailable)
	case errors.As(err, &remoteErr) && remoteErr.RateLimited():
		return pkg.NewDomainError("REMOTE_RATE_LIMITED", "Remote store rate limit reached, retry later", err, http.StatusTooManyRequests)
	case errors.As(err, &remoteErr):
		return pkg.NewDomainError("REMOTE_ERROR", "Remote store request failed", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

// pathID reads the :id parameter. It answers 400 and returns false when the
// value is not a positive integer.
func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(errInvalidID.HTTPStatus, errInvalidID.ToHTTPError())
		return 0, false
	}
	return id, true
}

func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		appErr := errInvalidPayload.WithMessage("Invalid request payload: " + err.Error())
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return false
	}
	return true
}
