package handlers

import (
	"fmt"
	"net/http"
	"time"

	request "cotizador/internal/adapter/http/dto/request"
	response "cotizador/internal/adapter/http/dto/response"
	"cotizador/internal/usecase"

	"github.com/gin-gonic/gin"
)

var errEmptyImport = fmt.Errorf("%w: empty body", usecase.ErrInvalidImport)

// SettingsHandler serves the pricing defaults, the dashboard and the
// backup endpoints.
type SettingsHandler struct {
	usecase usecase.ICatalogUseCase
}

func NewSettingsHandler(uc usecase.ICatalogUseCase) *SettingsHandler {
	return &SettingsHandler{usecase: uc}
}

func (h *SettingsHandler) GetSettings(c *gin.Context) {
	s, err := h.usecase.GetSettings(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, s)
}

func (h *SettingsHandler) UpdateSettings(c *gin.Context) {
	var payload request.SettingsRequest
	if !bindJSON(c, &payload) {
		return
	}
	s, err := h.usecase.UpdateSettings(c.Request.Context(), payload.ToPatch())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, s)
}

func (h *SettingsHandler) Dashboard(c *gin.Context) {
	stats, err := h.usecase.Dashboard(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *SettingsHandler) Export(c *gin.Context) {
	raw, err := h.usecase.Export(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	name := fmt.Sprintf("cotizador-backup-%s.json", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	c.Data(http.StatusOK, "application/json", raw)
}

func (h *SettingsHandler) Import(c *gin.Context) {
	raw, err := c.GetRawData()
	if err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}
	if len(raw) == 0 {
		respondError(c, errEmptyImport)
		return
	}
	data, err := h.usecase.Import(c.Request.Context(), raw)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromAppData(data))
}

// Reset wipes the local state. ?seed=true loads the sample catalog afterwards.
func (h *SettingsHandler) Reset(c *gin.Context) {
	seed := c.Query("seed") == "true"
	data, err := h.usecase.Reset(c.Request.Context(), seed)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromAppData(data))
}
