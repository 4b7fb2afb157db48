package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"cotizador/internal/adapter/http/handlers"
	"cotizador/internal/adapter/http/handlers/mocks"
	"cotizador/internal/domain/pricing"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newTestHandlers(ctrl *gomock.Controller) (Handlers, *mocks.MockICatalogUseCase) {
	catalog := mocks.NewMockICatalogUseCase(ctrl)
	return Handlers{
		Catalog:  handlers.NewCatalogHandler(catalog),
		Products: handlers.NewProductHandler(catalog),
		Quotes:   handlers.NewQuoteHandler(catalog),
		Settings: handlers.NewSettingsHandler(catalog),
		Pricing:  handlers.NewPricingHandler(mocks.NewMockIPricingUseCase(ctrl)),
		Sync:     handlers.NewSyncHandler(mocks.NewMockISyncUseCase(ctrl)),
	}, catalog
}

func TestNewRouter(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("ping", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h, _ := newTestHandlers(ctrl)
		r := NewRouter(h)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/ping", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("static product route wins over id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h, catalog := newTestHandlers(ctrl)
		r := NewRouter(h)

		catalog.EXPECT().ProductMargins(gomock.Any()).Return(pricing.ProductMarginSummary{}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/products/margins", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("unknown route", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h, _ := newTestHandlers(ctrl)
		r := NewRouter(h)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/invoices", nil))
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}
