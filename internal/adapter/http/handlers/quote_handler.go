package handlers

import (
	"net/http"
	"strings"

	request "cotizador/internal/adapter/http/dto/request"
	response "cotizador/internal/adapter/http/dto/response"
	"cotizador/internal/domain/entities"
	"cotizador/internal/usecase"

	"github.com/gin-gonic/gin"
)

// QuoteHandler handles HTTP requests for quotes.
//
// Totals are never taken from the payload: the catalog prices every quote
// with the strategy named by its pricing mode.
type QuoteHandler struct {
	usecase usecase.ICatalogUseCase
}

func NewQuoteHandler(uc usecase.ICatalogUseCase) *QuoteHandler {
	return &QuoteHandler{usecase: uc}
}

// ListQuotes returns every quote, newest first.
func (h *QuoteHandler) ListQuotes(c *gin.Context) {
	quotes, err := h.usecase.ListQuotes(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromQuotes(quotes))
}

func (h *QuoteHandler) GetQuote(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	q, err := h.usecase.GetQuote(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(q))
}

// CreateQuote assigns the next COT-{year}-{seq} number and stores the quote
// with its computed totals.
func (h *QuoteHandler) CreateQuote(c *gin.Context) {
	h.save(c, 0, http.StatusCreated)
}

func (h *QuoteHandler) UpdateQuote(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	h.save(c, id, http.StatusOK)
}

func (h *QuoteHandler) save(c *gin.Context, id int64, status int) {
	var payload request.QuoteRequest
	if !bindJSON(c, &payload) {
		return
	}
	ctx := c.Request.Context()

	// omitted supply/install rates default to the stored settings
	var settings entities.Settings
	if payload.SupplyInstall != nil {
		s, err := h.usecase.GetSettings(ctx)
		if err != nil {
			respondError(c, err)
			return
		}
		settings = s
	}

	q, err := h.usecase.SaveQuote(ctx, payload.ToEntity(id, settings))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(status, response.FromQuote(q))
}

func (h *QuoteHandler) DeleteQuote(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.usecase.DeleteQuote(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// DuplicateQuote copies a quote under a new number with status pending.
func (h *QuoteHandler) DuplicateQuote(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	q, err := h.usecase.DuplicateQuote(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromQuote(q))
}

// UpdateStatus moves a quote to pending, approved or rejected.
func (h *QuoteHandler) UpdateStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var payload request.QuoteStatusRequest
	if !bindJSON(c, &payload) {
		return
	}
	status := entities.QuoteStatus(strings.ToLower(strings.TrimSpace(payload.Status)))
	q, err := h.usecase.UpdateQuoteStatus(c.Request.Context(), id, status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(q))
}
