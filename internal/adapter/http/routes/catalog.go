package routes

import (
	"cotizador/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathClients   = "/clients"
	PathMaterials = "/materials"
	PathLabor     = "/labor"
	PathProducts  = "/products"
	PathQuotes    = "/quotes"
)

func addCatalogRoutes(rg *gin.RouterGroup, h *handlers.CatalogHandler) {
	clients := rg.Group(PathClients)
	{
		clients.GET("", h.ListClients)
		clients.POST("", h.CreateClient)
		clients.GET("/:id", h.GetClient)
		clients.PUT("/:id", h.UpdateClient)
		clients.DELETE("/:id", h.DeleteClient)
	}

	materials := rg.Group(PathMaterials)
	{
		materials.GET("", h.ListMaterials)
		materials.POST("", h.CreateMaterial)
		materials.GET("/:id", h.GetMaterial)
		materials.PUT("/:id", h.UpdateMaterial)
		materials.DELETE("/:id", h.DeleteMaterial)
	}

	labor := rg.Group(PathLabor)
	{
		labor.GET("", h.ListLabor)
		labor.POST("", h.CreateLabor)
		labor.GET("/:id", h.GetLabor)
		labor.PUT("/:id", h.UpdateLabor)
		labor.DELETE("/:id", h.DeleteLabor)
	}
}

func addProductRoutes(rg *gin.RouterGroup, h *handlers.ProductHandler) {
	products := rg.Group(PathProducts)
	{
		products.GET("", h.ListProducts)
		products.POST("", h.CreateProduct)
		products.GET("/margins", h.Margins)
		products.GET("/:id", h.GetProduct)
		products.PUT("/:id", h.UpdateProduct)
		products.DELETE("/:id", h.DeleteProduct)
		products.POST("/:id/duplicate", h.DuplicateProduct)
	}
}

func addQuoteRoutes(rg *gin.RouterGroup, h *handlers.QuoteHandler) {
	quotes := rg.Group(PathQuotes)
	{
		quotes.GET("", h.ListQuotes)
		quotes.POST("", h.CreateQuote)
		quotes.GET("/:id", h.GetQuote)
		quotes.PUT("/:id", h.UpdateQuote)
		quotes.DELETE("/:id", h.DeleteQuote)
		quotes.POST("/:id/duplicate", h.DuplicateQuote)
		quotes.PATCH("/:id/status", h.UpdateStatus)
	}
}
