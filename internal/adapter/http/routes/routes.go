package routes

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	_ "cotizador/docs" // swagger spec registration
	"cotizador/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const shutdownTimeout = 10 * time.Second

// Handlers bundles every HTTP handler the router mounts.
type Handlers struct {
	Catalog  *handlers.CatalogHandler
	Products *handlers.ProductHandler
	Quotes   *handlers.QuoteHandler
	Settings *handlers.SettingsHandler
	Pricing  *handlers.PricingHandler
	Sync     *handlers.SyncHandler
}

// NewRouter builds the gin engine with middlewares, swagger and the /v1 API.
func NewRouter(h Handlers) *gin.Engine {
	router := gin.New()
	setMiddlewares(router)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addCatalogRoutes(v1, h.Catalog)
	addProductRoutes(v1, h.Products)
	addQuoteRoutes(v1, h.Quotes)
	addSettingsRoutes(v1, h.Settings)
	addPricingRoutes(v1, h.Pricing)
	addSyncRoutes(v1, h.Sync)
	return router
}

// Run serves the API on addr until ctx is done, then shuts down gracefully.
func Run(ctx context.Context, addr string, h Handlers) error {
	srv := &http.Server{Addr: addr, Handler: NewRouter(h)}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("[http][server] listening addr=%s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			log.Printf("[http][server] failed to start err=%v", err)
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	log.Printf("[http][server] shutting down")
	return srv.Shutdown(shutdownCtx)
}

func setMiddlewares(router *gin.Engine) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
}
