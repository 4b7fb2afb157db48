package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"cotizador/internal/adapter/http/handlers/mocks"
	"cotizador/internal/domain/entities"
	"cotizador/internal/domain/pricing"
	"cotizador/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSettingsHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("partial update", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		h := NewSettingsHandler(uc)

		r := gin.New()
		r.PUT("/v1/settings", h.UpdateSettings)

		uc.EXPECT().UpdateSettings(gomock.Any(), gomock.Any()).DoAndReturn(func(_ any, p usecase.SettingsPatch) (entities.Settings, error) {
			if p.Tax == nil || *p.Tax != 16 || p.Admin != nil {
				t.Errorf("unexpected patch %+v", p)
			}
			s := entities.DefaultSettings()
			s.Tax = *p.Tax
			return s, nil
		})

		req := httptest.NewRequest(http.MethodPut, "/v1/settings", bytes.NewBufferString(`{"tax":16}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("validation failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		h := NewSettingsHandler(uc)

		r := gin.New()
		r.PUT("/v1/settings", h.UpdateSettings)

		uc.EXPECT().UpdateSettings(gomock.Any(), gomock.Any()).
			Return(entities.Settings{}, &usecase.ValidationError{Messages: []string{"supplyMargin must be lower than 100"}})

		req := httptest.NewRequest(http.MethodPut, "/v1/settings", bytes.NewBufferString(`{"supplyMargin":100}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		require.Contains(t, w.Body.String(), "VALIDATION_ERROR")
	})

	t.Run("export is an attachment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		h := NewSettingsHandler(uc)

		r := gin.New()
		r.GET("/v1/export", h.Export)

		uc.EXPECT().Export(gomock.Any()).Return([]byte(`{"version":"2.0"}`), nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/export", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		require.Contains(t, w.Header().Get("Content-Disposition"), "attachment")
		require.JSONEq(t, `{"version":"2.0"}`, w.Body.String())
	})

	t.Run("import empty body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		h := NewSettingsHandler(uc)

		r := gin.New()
		r.POST("/v1/import", h.Import)

		req := httptest.NewRequest(http.MethodPost, "/v1/import", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("import success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		h := NewSettingsHandler(uc)

		r := gin.New()
		r.POST("/v1/import", h.Import)

		data := entities.AppData{Version: "2.0", Clients: map[int64]entities.Client{1: {ID: 1}}}
		uc.EXPECT().Import(gomock.Any(), []byte(`{"version":"2.0"}`)).Return(data, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/import", bytes.NewBufferString(`{"version":"2.0"}`))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			Version string         `json:"version"`
			Counts  map[string]int `json:"counts"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		require.Equal(t, 1, body.Counts["clients"])
	})

	t.Run("reset with seed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		h := NewSettingsHandler(uc)

		r := gin.New()
		r.POST("/v1/reset", h.Reset)

		uc.EXPECT().Reset(gomock.Any(), true).Return(entities.AppData{Version: "2.0"}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/reset?seed=true", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestPricingHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("quote totals", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPricingUseCase(ctrl)
		h := NewPricingHandler(uc)

		r := gin.New()
		r.POST("/v1/pricing/quote-totals", h.QuoteTotals)

		uc.EXPECT().QuoteTotals(gomock.Any(), gomock.Len(1), 10.0).
			Return(entities.QuoteTotals{ItemsSubtotal: 100, GeneralDiscountAmount: 10, AfterDiscount: 90, Tax: 17.1, GrandTotal: 107.1}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/pricing/quote-totals", bytes.NewBufferString(`{"items":[{"productId":1,"qty":1,"unitPrice":100}],"generalDiscount":10}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("product price with invalid type", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPricingUseCase(ctrl)
		h := NewPricingHandler(uc)

		r := gin.New()
		r.POST("/v1/pricing/product-price", h.ProductPrice)

		uc.EXPECT().ProductPrice(gomock.Any(), entities.ProductType("kit"), 10.0, 5.0).
			Return(usecase.ProductPriceResult{}, &usecase.ValidationError{Messages: []string{"type must be one of producto servicio"}})

		req := httptest.NewRequest(http.MethodPost, "/v1/pricing/product-price", bytes.NewBufferString(`{"type":"Kit","materialsCost":10,"laborCost":5}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("compare", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPricingUseCase(ctrl)
		h := NewPricingHandler(uc)

		r := gin.New()
		r.POST("/v1/pricing/compare", h.Compare)

		uc.EXPECT().Compare(gomock.Any(), gomock.Any(), gomock.Any()).Return(pricing.Comparison{Difference: 50, Cheaper: "first"}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/pricing/compare", bytes.NewBufferString(`{"first":{"materials":[{"qty":1,"price":100}]},"second":{"materials":[{"qty":1,"price":150}]}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestSyncHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success includes status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISyncUseCase(ctrl)
		h := NewSyncHandler(uc)

		r := gin.New()
		r.POST("/v1/sync", h.Sync)

		at := time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC)
		uc.EXPECT().Sync(gomock.Any()).Return(usecase.SyncResult{Outcome: usecase.SyncSucceeded, Replayed: 2, At: &at}, nil)
		uc.EXPECT().Status(gomock.Any()).Return(entities.SyncStatus{IsOnline: true, RemoteConfigured: true, LastSyncTime: &at}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/sync", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		require.Equal(t, "success", body["outcome"])
		require.Contains(t, body, "status")
	})

	t.Run("offline is accepted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISyncUseCase(ctrl)
		h := NewSyncHandler(uc)

		r := gin.New()
		r.POST("/v1/sync", h.Sync)

		uc.EXPECT().Sync(gomock.Any()).Return(usecase.SyncResult{Outcome: usecase.SyncSkippedOffline}, usecase.ErrOffline)
		uc.EXPECT().Status(gomock.Any()).Return(entities.SyncStatus{PendingOperations: 3}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/sync", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusAccepted {
			t.Fatalf("expected 202, got %d", w.Code)
		}
	})

	t.Run("remote failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISyncUseCase(ctrl)
		h := NewSyncHandler(uc)

		r := gin.New()
		r.POST("/v1/sync/pull", h.Pull)

		uc.EXPECT().InitialPull(gomock.Any()).Return(usecase.SyncResult{Outcome: usecase.SyncFailed}, errors.New("boom"))

		req := httptest.NewRequest(http.MethodPost, "/v1/sync/pull", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})

	t.Run("init sheets without remote", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISyncUseCase(ctrl)
		h := NewSyncHandler(uc)

		r := gin.New()
		r.POST("/v1/sync/init-sheets", h.InitSheets)

		uc.EXPECT().InitializeRemote(gomock.Any()).Return(usecase.ErrRemoteNotConfigured)

		req := httptest.NewRequest(http.MethodPost, "/v1/sync/init-sheets", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
	})
}
