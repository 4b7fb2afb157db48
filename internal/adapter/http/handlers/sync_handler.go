package handlers

import (
	"context"
	"errors"
	"net/http"

	response "cotizador/internal/adapter/http/dto/response"
	"cotizador/internal/usecase"

	"github.com/gin-gonic/gin"
)

// SyncHandler triggers synchronization runs against the remote sheet store.
type SyncHandler struct {
	usecase usecase.ISyncUseCase
}

func NewSyncHandler(uc usecase.ISyncUseCase) *SyncHandler {
	return &SyncHandler{usecase: uc}
}

func (h *SyncHandler) Status(c *gin.Context) {
	st, err := h.usecase.Status(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, st)
}

// Sync runs a full pull/merge/push. A skipped run (busy or offline) is not an
// error for the caller: the queue stays intact and the outcome says why.
func (h *SyncHandler) Sync(c *gin.Context) {
	h.run(c, h.usecase.Sync)
}

func (h *SyncHandler) Pull(c *gin.Context) {
	h.run(c, h.usecase.InitialPull)
}

func (h *SyncHandler) Push(c *gin.Context) {
	h.run(c, h.usecase.InitialPush)
}

func (h *SyncHandler) InitSheets(c *gin.Context) {
	if err := h.usecase.InitializeRemote(c.Request.Context()); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *SyncHandler) run(c *gin.Context, op func(ctx context.Context) (usecase.SyncResult, error)) {
	ctx := c.Request.Context()
	res, err := op(ctx)
	if err != nil && !errors.Is(err, usecase.ErrSyncInProgress) && !errors.Is(err, usecase.ErrOffline) {
		respondError(c, err)
		return
	}

	status := http.StatusOK
	if err != nil {
		status = http.StatusAccepted
	}
	st, stErr := h.usecase.Status(ctx)
	if stErr != nil {
		c.JSON(status, response.FromSyncResult(res, nil))
		return
	}
	c.JSON(status, response.FromSyncResult(res, &st))
}
