package handlers

import (
	"net/http"

	request "cotizador/internal/adapter/http/dto/request"
	response "cotizador/internal/adapter/http/dto/response"
	"cotizador/internal/usecase"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the client, material and labor directories.
type CatalogHandler struct {
	usecase usecase.ICatalogUseCase
}

func NewCatalogHandler(uc usecase.ICatalogUseCase) *CatalogHandler {
	return &CatalogHandler{usecase: uc}
}

func (h *CatalogHandler) ListClients(c *gin.Context) {
	items, err := h.usecase.ListClients(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.NewList(items))
}

func (h *CatalogHandler) GetClient(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	client, err := h.usecase.GetClient(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, client)
}

func (h *CatalogHandler) CreateClient(c *gin.Context) {
	h.saveClient(c, 0, http.StatusCreated)
}

func (h *CatalogHandler) UpdateClient(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	h.saveClient(c, id, http.StatusOK)
}

func (h *CatalogHandler) saveClient(c *gin.Context, id int64, status int) {
	var payload request.ClientRequest
	if !bindJSON(c, &payload) {
		return
	}
	client, err := h.usecase.SaveClient(c.Request.Context(), payload.ToEntity(id))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(status, client)
}

func (h *CatalogHandler) DeleteClient(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.usecase.DeleteClient(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CatalogHandler) ListMaterials(c *gin.Context) {
	items, err := h.usecase.ListMaterials(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.NewList(items))
}

func (h *CatalogHandler) GetMaterial(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	m, err := h.usecase.GetMaterial(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, m)
}

func (h *CatalogHandler) CreateMaterial(c *gin.Context) {
	h.saveMaterial(c, 0, http.StatusCreated)
}

func (h *CatalogHandler) UpdateMaterial(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	h.saveMaterial(c, id, http.StatusOK)
}

func (h *CatalogHandler) saveMaterial(c *gin.Context, id int64, status int) {
	var payload request.MaterialRequest
	if !bindJSON(c, &payload) {
		return
	}
	m, err := h.usecase.SaveMaterial(c.Request.Context(), payload.ToEntity(id))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(status, m)
}

func (h *CatalogHandler) DeleteMaterial(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.usecase.DeleteMaterial(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CatalogHandler) ListLabor(c *gin.Context) {
	items, err := h.usecase.ListLabor(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.NewList(items))
}

func (h *CatalogHandler) GetLabor(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	l, err := h.usecase.GetLabor(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, l)
}

func (h *CatalogHandler) CreateLabor(c *gin.Context) {
	h.saveLabor(c, 0, http.StatusCreated)
}

func (h *CatalogHandler) UpdateLabor(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	h.saveLabor(c, id, http.StatusOK)
}

func (h *CatalogHandler) saveLabor(c *gin.Context, id int64, status int) {
	var payload request.LaborRequest
	if !bindJSON(c, &payload) {
		return
	}
	l, err := h.usecase.SaveLabor(c.Request.Context(), payload.ToEntity(id))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(status, l)
}

func (h *CatalogHandler) DeleteLabor(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.usecase.DeleteLabor(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
