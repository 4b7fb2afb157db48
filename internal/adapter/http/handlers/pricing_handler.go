package handlers

import (
	"net/http"
	"strings"

	request "cotizador/internal/adapter/http/dto/request"
	"cotizador/internal/domain/entities"
	"cotizador/internal/usecase"

	"github.com/gin-gonic/gin"
)

// PricingHandler exposes the calculators without storing anything.
type PricingHandler struct {
	usecase usecase.IPricingUseCase
}

func NewPricingHandler(uc usecase.IPricingUseCase) *PricingHandler {
	return &PricingHandler{usecase: uc}
}

func (h *PricingHandler) QuoteTotals(c *gin.Context) {
	var payload request.QuoteTotalsRequest
	if !bindJSON(c, &payload) {
		return
	}
	totals, err := h.usecase.QuoteTotals(c.Request.Context(), payload.ToItems(), payload.GeneralDiscount)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, totals)
}

func (h *PricingHandler) ProductPrice(c *gin.Context) {
	var payload request.ProductPriceRequest
	if !bindJSON(c, &payload) {
		return
	}
	t := entities.ProductType(strings.ToLower(strings.TrimSpace(payload.Type)))
	res, err := h.usecase.ProductPrice(c.Request.Context(), t, payload.MaterialsCost, payload.LaborCost)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *PricingHandler) SupplyInstall(c *gin.Context) {
	var payload request.SupplyInstallRequest
	if !bindJSON(c, &payload) {
		return
	}
	report, err := h.usecase.SupplyInstall(c.Request.Context(), payload.ToParams())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

func (h *PricingHandler) Compare(c *gin.Context) {
	var payload request.CompareRequest
	if !bindJSON(c, &payload) {
		return
	}
	cmp, err := h.usecase.Compare(c.Request.Context(), payload.First.ToParams(), payload.Second.ToParams())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cmp)
}
