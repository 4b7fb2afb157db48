package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"cotizador/internal/adapter/persistence/repository"
	"cotizador/internal/domain/entities"
	"cotizador/internal/domain/pricing"
	"cotizador/internal/usecase/interfaces"
	mock_interfaces "cotizador/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

type seqIDs struct{ n int64 }

func (s *seqIDs) NextID() int64 {
	s.n++
	return s.n
}

var testNow = time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC)

func newTestState() *repository.AppStateRepository {
	return repository.NewAppStateRepository(repository.NewStateMemoryStore(0), "wmc_data", fixedClock{testNow})
}

func newTestCatalog(recorder interfaces.IChangeRecorder) (*CatalogUseCase, *repository.AppStateRepository) {
	state := newTestState()
	return NewCatalogUseCase(state, recorder, &seqIDs{n: 100}, fixedClock{testNow}), state
}

func mustClient(t *testing.T, uc *CatalogUseCase) entities.Client {
	t.Helper()
	c, err := uc.SaveClient(context.Background(), entities.Client{Name: "Prodesa", TaxID: "800.200.598-2"})
	if err != nil {
		t.Fatalf("save client: %v", err)
	}
	return c
}

func TestCatalogUseCase_Clients(t *testing.T) {
	ctx := context.Background()

	t.Run("validation error", func(t *testing.T) {
		uc, _ := newTestCatalog(nil)
		_, err := uc.SaveClient(ctx, entities.Client{Name: "  ", Email: "bad"})
		if !errors.Is(err, ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
		var verr *ValidationError
		if !errors.As(err, &verr) || len(verr.Messages) != 3 {
			t.Fatalf("expected 3 messages, got %v", err)
		}
	})

	t.Run("create assigns id and queues the change", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		rec := mock_interfaces.NewMockIChangeRecorder(ctrl)
		uc, _ := newTestCatalog(rec)

		rec.EXPECT().RecordUpsert(gomock.Any(), entities.KindClients, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ entities.EntityKind, r entities.Record) error {
				if r.GetID() != 101 || !r.GetLastModified().Equal(testNow) {
					t.Fatalf("unexpected record %+v", r)
				}
				return nil
			},
		)

		c := mustClient(t, uc)
		got, err := uc.GetClient(ctx, c.ID)
		if err != nil || got.Name != "Prodesa" {
			t.Fatalf("unexpected client %+v err=%v", got, err)
		}
	})

	t.Run("recorder failure does not undo the save", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		rec := mock_interfaces.NewMockIChangeRecorder(ctrl)
		uc, _ := newTestCatalog(rec)

		rec.EXPECT().RecordUpsert(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("queue"))
		c := mustClient(t, uc)
		if _, err := uc.GetClient(ctx, c.ID); err != nil {
			t.Fatalf("expected client kept, got %v", err)
		}
	})

	t.Run("update unknown id", func(t *testing.T) {
		uc, _ := newTestCatalog(nil)
		_, err := uc.SaveClient(ctx, entities.Client{ID: 9, Name: "x", TaxID: "1"})
		if !errors.Is(err, ErrClientNotFound) {
			t.Fatalf("expected ErrClientNotFound, got %v", err)
		}
	})

	t.Run("delete refused while quotes reference the client", func(t *testing.T) {
		uc, state := newTestCatalog(nil)
		c := mustClient(t, uc)
		if _, err := state.Update(ctx, func(d *entities.AppData) error {
			d.Quotes[1] = entities.Quote{ID: 1, ClientID: c.ID}
			return nil
		}); err != nil {
			t.Fatalf("seed quote: %v", err)
		}

		if err := uc.DeleteClient(ctx, c.ID); !errors.Is(err, ErrClientHasQuotes) {
			t.Fatalf("expected ErrClientHasQuotes, got %v", err)
		}
		clients, _ := uc.ListClients(ctx)
		if len(clients) != 1 {
			t.Fatalf("expected client map unchanged, got %d", len(clients))
		}
	})

	t.Run("delete queues the change", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		rec := mock_interfaces.NewMockIChangeRecorder(ctrl)
		uc, _ := newTestCatalog(rec)

		rec.EXPECT().RecordUpsert(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		c := mustClient(t, uc)
		rec.EXPECT().RecordDelete(gomock.Any(), entities.KindClients, c.ID).Return(nil)

		if err := uc.DeleteClient(ctx, c.ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := uc.GetClient(ctx, c.ID); !errors.Is(err, ErrClientNotFound) {
			t.Fatalf("expected ErrClientNotFound, got %v", err)
		}
	})

	t.Run("storage full leaves state untouched", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		kv := mock_interfaces.NewMockIKeyValueStore(ctrl)
		state := repository.NewAppStateRepository(kv, "wmc_data", fixedClock{testNow})
		uc := NewCatalogUseCase(state, nil, &seqIDs{}, fixedClock{testNow})

		gomock.InOrder(
			kv.EXPECT().Get(gomock.Any(), "wmc_data").Return(nil, false, nil),
			kv.EXPECT().Set(gomock.Any(), "wmc_data", gomock.Any()).Return(nil),
			kv.EXPECT().Set(gomock.Any(), "wmc_data", gomock.Any()).Return(interfaces.ErrStorageFull),
		)

		_, err := uc.SaveClient(ctx, entities.Client{Name: "a", TaxID: "1"})
		if !errors.Is(err, interfaces.ErrStorageFull) {
			t.Fatalf("expected ErrStorageFull, got %v", err)
		}
		clients, _ := uc.ListClients(ctx)
		if len(clients) != 0 {
			t.Fatalf("expected no clients, got %d", len(clients))
		}
	})
}

func TestCatalogUseCase_MaterialsAndLabor(t *testing.T) {
	ctx := context.Background()

	t.Run("material codes are generated and unique", func(t *testing.T) {
		uc, _ := newTestCatalog(nil)
		m1, err := uc.SaveMaterial(ctx, entities.Material{Description: "Viga", Category: "Perfil", Price: 10})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		m2, _ := uc.SaveMaterial(ctx, entities.Material{Code: "mat-010", Description: "Lamina", Category: "Lamina", Price: 5})
		m3, _ := uc.SaveMaterial(ctx, entities.Material{Description: "Tubo", Category: "Perfil", Price: 2})
		if m1.Code != "MAT-001" || m2.Code != "MAT-010" || m3.Code != "MAT-011" {
			t.Fatalf("unexpected codes %s %s %s", m1.Code, m2.Code, m3.Code)
		}

		_, err = uc.SaveMaterial(ctx, entities.Material{Code: "MAT-001", Description: "x", Category: "y"})
		if !errors.Is(err, ErrDuplicateCode) {
			t.Fatalf("expected ErrDuplicateCode, got %v", err)
		}

		m1.Code = ""
		m1.Price = 12
		updated, err := uc.SaveMaterial(ctx, m1)
		if err != nil || updated.Code != "MAT-001" || updated.Price != 12 {
			t.Fatalf("expected code kept on update, got %+v err=%v", updated, err)
		}
	})

	t.Run("negative material price", func(t *testing.T) {
		uc, _ := newTestCatalog(nil)
		_, err := uc.SaveMaterial(ctx, entities.Material{Description: "x", Category: "y", Price: -1})
		if !errors.Is(err, ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
	})

	t.Run("labor codes follow the category", func(t *testing.T) {
		uc, _ := newTestCatalog(nil)
		fab, _ := uc.SaveLabor(ctx, entities.Labor{Description: "Corte", Category: entities.LaborFabrication, Cost: 5000})
		ins, _ := uc.SaveLabor(ctx, entities.Labor{Description: "Montaje", Category: entities.LaborInstallation, Cost: 45000})
		fab2, _ := uc.SaveLabor(ctx, entities.Labor{Description: "Soldadura", Category: entities.LaborFabrication, Cost: 15000})
		if fab.Code != "MO-FAB-001" || ins.Code != "MO-INS-001" || fab2.Code != "MO-FAB-002" {
			t.Fatalf("unexpected codes %s %s %s", fab.Code, ins.Code, fab2.Code)
		}

		list, _ := uc.ListLabor(ctx)
		if len(list) != 3 || list[0].Code != "MO-FAB-001" || list[2].Code != "MO-INS-001" {
			t.Fatalf("unexpected order %+v", list)
		}
	})

	t.Run("labor category is required", func(t *testing.T) {
		uc, _ := newTestCatalog(nil)
		_, err := uc.SaveLabor(ctx, entities.Labor{Description: "x"})
		if !errors.Is(err, ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
	})

	t.Run("delete unknown", func(t *testing.T) {
		uc, _ := newTestCatalog(nil)
		if err := uc.DeleteMaterial(ctx, 1); !errors.Is(err, ErrMaterialNotFound) {
			t.Fatalf("expected ErrMaterialNotFound, got %v", err)
		}
		if err := uc.DeleteLabor(ctx, 1); !errors.Is(err, ErrLaborNotFound) {
			t.Fatalf("expected ErrLaborNotFound, got %v", err)
		}
	})
}

func TestCatalogUseCase_Products(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) (*CatalogUseCase, *repository.AppStateRepository, entities.Material, entities.Labor) {
		t.Helper()
		uc, state := newTestCatalog(nil)
		m, err := uc.SaveMaterial(ctx, entities.Material{Description: "Estructura", Category: "Perfil", Price: 1000000})
		if err != nil {
			t.Fatalf("save material: %v", err)
		}
		l, err := uc.SaveLabor(ctx, entities.Labor{Description: "Soldadura", Category: entities.LaborFabrication, Cost: 500000})
		if err != nil {
			t.Fatalf("save labor: %v", err)
		}
		return uc, state, m, l
	}

	t.Run("producto price from supply margin and catalog snapshots", func(t *testing.T) {
		uc, _, m, l := setup(t)
		p, err := uc.SaveProduct(ctx, entities.Product{
			Name:      "Escalera",
			Materials: []entities.MaterialLine{{MaterialID: m.ID, Qty: 1}},
			Labor:     []entities.LaborLine{{LaborID: l.ID, Qty: 1}},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.Type != entities.ProductTypeProduct || p.Code != "PROD-001" {
			t.Fatalf("unexpected product %+v", p)
		}
		if p.Materials[0].UnitPrice != 1000000 || p.Labor[0].UnitPrice != 500000 {
			t.Fatalf("expected catalog price snapshots, got %+v", p)
		}
		if p.UnitPrice != 2142857.14 {
			t.Fatalf("expected 2142857.14, got %v", p.UnitPrice)
		}
	})

	t.Run("servicio price from AIU and shared counter", func(t *testing.T) {
		uc, _, m, l := setup(t)
		if _, err := uc.SaveProduct(ctx, entities.Product{Name: "A", Materials: []entities.MaterialLine{{MaterialID: m.ID, Qty: 1}}}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		s, err := uc.SaveProduct(ctx, entities.Product{
			Name:      "Montaje",
			Type:      entities.ProductTypeService,
			Materials: []entities.MaterialLine{{MaterialID: m.ID, Qty: 1}},
			Labor:     []entities.LaborLine{{LaborID: l.ID, Qty: 1, UnitPrice: 810000}},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.Code != "SERV-002" || s.UnitPrice != 1000000 || len(s.Materials) != 0 {
			t.Fatalf("unexpected service %+v", s)
		}
	})

	t.Run("composition rules", func(t *testing.T) {
		uc, _, _, l := setup(t)
		_, err := uc.SaveProduct(ctx, entities.Product{Name: "x", Labor: []entities.LaborLine{{LaborID: l.ID, Qty: 1}}})
		if !errors.Is(err, ErrValidation) {
			t.Fatalf("expected ErrValidation for product without materials, got %v", err)
		}
		_, err = uc.SaveProduct(ctx, entities.Product{Name: "x", Type: entities.ProductTypeService})
		if !errors.Is(err, ErrValidation) {
			t.Fatalf("expected ErrValidation for service without labor, got %v", err)
		}
		_, err = uc.SaveProduct(ctx, entities.Product{Name: "x", Materials: []entities.MaterialLine{{MaterialID: 999, Qty: 1}}})
		if !errors.Is(err, ErrMaterialNotFound) {
			t.Fatalf("expected ErrMaterialNotFound, got %v", err)
		}
	})

	t.Run("margin of 100 is rejected", func(t *testing.T) {
		uc, state, m, _ := setup(t)
		if _, err := state.Update(ctx, func(d *entities.AppData) error {
			d.Config.SupplyMargin = 100
			return nil
		}); err != nil {
			t.Fatalf("update settings: %v", err)
		}
		_, err := uc.SaveProduct(ctx, entities.Product{Name: "x", Materials: []entities.MaterialLine{{MaterialID: m.ID, Qty: 1}}})
		if !errors.Is(err, pricing.ErrInvalidMargin) {
			t.Fatalf("expected ErrInvalidMargin, got %v", err)
		}
		list, _ := uc.ListProducts(ctx)
		if len(list) != 0 {
			t.Fatalf("expected nothing stored, got %d", len(list))
		}
	})

	t.Run("duplicate gets a new id and a higher code", func(t *testing.T) {
		uc, _, m, _ := setup(t)
		p, _ := uc.SaveProduct(ctx, entities.Product{Name: "Barandal", Materials: []entities.MaterialLine{{MaterialID: m.ID, Qty: 2}}})
		dup, err := uc.DuplicateProduct(ctx, p.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if dup.ID == p.ID || dup.Code != "PROD-002" || dup.Name != "Barandal (copy)" || dup.UnitPrice != p.UnitPrice {
			t.Fatalf("unexpected duplicate %+v", dup)
		}

		list, _ := uc.ListProducts(ctx)
		if len(list) != 2 || list[0].Name != "Barandal" {
			t.Fatalf("unexpected list %+v", list)
		}
		if _, err := uc.DuplicateProduct(ctx, 12345); !errors.Is(err, ErrProductNotFound) {
			t.Fatalf("expected ErrProductNotFound, got %v", err)
		}
	})

	t.Run("edit keeps code and unknown id fails", func(t *testing.T) {
		uc, _, m, _ := setup(t)
		p, _ := uc.SaveProduct(ctx, entities.Product{Name: "A", Materials: []entities.MaterialLine{{MaterialID: m.ID, Qty: 1}}})
		p.Name = "B"
		p.Code = "HACKED"
		updated, err := uc.SaveProduct(ctx, p)
		if err != nil || updated.Code != "PROD-001" || updated.Name != "B" {
			t.Fatalf("unexpected update %+v err=%v", updated, err)
		}
		_, err = uc.SaveProduct(ctx, entities.Product{ID: 777, Name: "x", Materials: []entities.MaterialLine{{MaterialID: m.ID, Qty: 1}}})
		if !errors.Is(err, ErrProductNotFound) {
			t.Fatalf("expected ErrProductNotFound, got %v", err)
		}
	})

	t.Run("margins summary", func(t *testing.T) {
		uc, _, m, _ := setup(t)
		if _, err := uc.SaveProduct(ctx, entities.Product{Name: "A", Materials: []entities.MaterialLine{{MaterialID: m.ID, Qty: 1}}}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		sum, err := uc.ProductMargins(ctx)
		if err != nil || sum.Count != 1 || sum.Items[0].Margin != 30 {
			t.Fatalf("unexpected summary %+v err=%v", sum, err)
		}
	})
}
