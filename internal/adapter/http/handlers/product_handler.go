package handlers

import (
	"net/http"

	request "cotizador/internal/adapter/http/dto/request"
	response "cotizador/internal/adapter/http/dto/response"
	"cotizador/internal/usecase"

	"github.com/gin-gonic/gin"
)

// ProductHandler handles HTTP requests for products and services.
type ProductHandler struct {
	usecase usecase.ICatalogUseCase
}

func NewProductHandler(uc usecase.ICatalogUseCase) *ProductHandler {
	return &ProductHandler{usecase: uc}
}

func (h *ProductHandler) ListProducts(c *gin.Context) {
	items, err := h.usecase.ListProducts(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.NewList(items))
}

func (h *ProductHandler) GetProduct(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	p, err := h.usecase.GetProduct(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *ProductHandler) CreateProduct(c *gin.Context) {
	h.save(c, 0, http.StatusCreated)
}

func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	h.save(c, id, http.StatusOK)
}

// save stores the product after recomputing its cost and unit price from the
// current material and labor rates.
func (h *ProductHandler) save(c *gin.Context, id int64, status int) {
	var payload request.ProductRequest
	if !bindJSON(c, &payload) {
		return
	}
	p, err := h.usecase.SaveProduct(c.Request.Context(), payload.ToEntity(id))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(status, p)
}

func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.usecase.DeleteProduct(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ProductHandler) DuplicateProduct(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	p, err := h.usecase.DuplicateProduct(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

// Margins reports each product margin, lowest first, with average, min and max.
func (h *ProductHandler) Margins(c *gin.Context) {
	summary, err := h.usecase.ProductMargins(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}
