package routes

import (
	"cotizador/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathSettings  = "/settings"
	PathDashboard = "/dashboard"
	PathExport    = "/export"
	PathImport    = "/import"
	PathReset     = "/reset"
	PathPricing   = "/pricing"
	PathSync      = "/sync"
)

func addSettingsRoutes(rg *gin.RouterGroup, h *handlers.SettingsHandler) {
	rg.GET(PathSettings, h.GetSettings)
	rg.PUT(PathSettings, h.UpdateSettings)
	rg.GET(PathDashboard, h.Dashboard)
	rg.GET(PathExport, h.Export)
	rg.POST(PathImport, h.Import)
	rg.POST(PathReset, h.Reset)
}

func addPricingRoutes(rg *gin.RouterGroup, h *handlers.PricingHandler) {
	pricing := rg.Group(PathPricing)
	{
		pricing.POST("/quote-totals", h.QuoteTotals)
		pricing.POST("/product-price", h.ProductPrice)
		pricing.POST("/supply-install", h.SupplyInstall)
		pricing.POST("/compare", h.Compare)
	}
}

func addSyncRoutes(rg *gin.RouterGroup, h *handlers.SyncHandler) {
	sync := rg.Group(PathSync)
	{
		sync.POST("", h.Sync)
		sync.GET("/status", h.Status)
		sync.POST("/pull", h.Pull)
		sync.POST("/push", h.Push)
		sync.POST("/init-sheets", h.InitSheets)
	}
}
