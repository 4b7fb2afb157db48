package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"cotizador/internal/domain/entities"
)

func ptr[T any](v T) *T { return &v }

func TestCatalogUseCase_Settings(t *testing.T) {
	ctx := context.Background()

	t.Run("partial update", func(t *testing.T) {
		uc, _ := newTestCatalog(nil)
		s, err := uc.UpdateSettings(ctx, SettingsPatch{SupplyMargin: ptr(35.0), Observations: ptr("  Pago contado ")})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.SupplyMargin != 35 || s.InstallMargin != 45 || s.Observations != "Pago contado" {
			t.Fatalf("unexpected settings %+v", s)
		}
		got, _ := uc.GetSettings(ctx)
		if got != s {
			t.Fatalf("settings not persisted %+v", got)
		}
	})

	t.Run("out of range values are rejected", func(t *testing.T) {
		uc, _ := newTestCatalog(nil)
		patches := []SettingsPatch{
			{SupplyMargin: ptr(100.0)},
			{InstallMargin: ptr(-1.0)},
			{Admin: ptr(51.0)},
			{Tax: ptr(120.0)},
			{ValidityDays: ptr(-3)},
		}
		for i, p := range patches {
			if _, err := uc.UpdateSettings(ctx, p); !errors.Is(err, ErrValidation) {
				t.Fatalf("case %d: expected ErrValidation, got %v", i, err)
			}
		}
		got, _ := uc.GetSettings(ctx)
		if got != entities.DefaultSettings() {
			t.Fatalf("settings changed %+v", got)
		}
	})
}

func TestCatalogUseCase_Dashboard(t *testing.T) {
	ctx := context.Background()
	uc, state := newTestCatalog(nil)
	if _, err := state.Update(ctx, func(d *entities.AppData) error {
		d.Quotes[1] = entities.Quote{ID: 1, Date: "2025-03-02", Status: entities.QuoteStatusPending, Totals: entities.QuoteTotals{GrandTotal: 100.10}}
		d.Quotes[2] = entities.Quote{ID: 2, Date: "2025-03-10", Status: entities.QuoteStatusApproved, Totals: entities.QuoteTotals{GrandTotal: 5000}}
		d.Quotes[3] = entities.Quote{ID: 3, Date: "2025-02-27", Status: entities.QuoteStatusPending, Totals: entities.QuoteTotals{GrandTotal: 200.20}}
		d.Quotes[4] = entities.Quote{ID: 4, Date: "2024-03-05", Status: entities.QuoteStatusRejected, Totals: entities.QuoteTotals{GrandTotal: 9}}
		return nil
	}); err != nil {
		t.Fatalf("seed: %v", err)
	}

	stats, err := uc.Dashboard(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.Month != "2025-03" || stats.MonthQuotes != 2 || stats.PendingQuotes != 2 || stats.Approved != 1 {
		t.Fatalf("unexpected counts %+v", stats)
	}
	if stats.PendingValue != 300.30 {
		t.Fatalf("expected 300.30, got %v", stats.PendingValue)
	}
}

func TestCatalogUseCase_ExportImportReset(t *testing.T) {
	ctx := context.Background()

	t.Run("round trip", func(t *testing.T) {
		uc, _ := newTestCatalog(nil)
		c := mustClient(t, uc)
		raw, err := uc.Export(ctx)
		if err != nil {
			t.Fatalf("export: %v", err)
		}

		if _, err := uc.Reset(ctx, false); err != nil {
			t.Fatalf("reset: %v", err)
		}
		if _, err := uc.GetClient(ctx, c.ID); !errors.Is(err, ErrClientNotFound) {
			t.Fatalf("expected reset to clear clients, got %v", err)
		}

		if _, err := uc.Import(ctx, raw); err != nil {
			t.Fatalf("import: %v", err)
		}
		if got, err := uc.GetClient(ctx, c.ID); err != nil || got.Name != c.Name {
			t.Fatalf("expected client restored, got %+v err=%v", got, err)
		}
	})

	t.Run("import rejects incomplete blobs", func(t *testing.T) {
		uc, _ := newTestCatalog(nil)
		inputs := []string{
			`not json`,
			`{"config": {}}`,
			`{"version": "2.0"}`,
			`{"version": "1.0", "config": {}}`,
		}
		for _, in := range inputs {
			if _, err := uc.Import(ctx, []byte(in)); !errors.Is(err, ErrInvalidImport) {
				t.Fatalf("input %q: expected ErrInvalidImport, got %v", in, err)
			}
		}
	})

	t.Run("reset with sample catalog", func(t *testing.T) {
		uc, _ := newTestCatalog(nil)
		d, err := uc.Reset(ctx, true)
		if err != nil {
			t.Fatalf("reset: %v", err)
		}
		if len(d.Clients) != 3 || len(d.Materials) != 10 || len(d.Labor) != 8 || len(d.Products) != 4 {
			t.Fatalf("unexpected counts %v", d.Snapshot().Count())
		}
		if d.Metadata.LastProductNumber != 4 {
			t.Fatalf("expected product counter 4, got %d", d.Metadata.LastProductNumber)
		}
		for _, p := range d.Products {
			if p.UnitPrice <= 0 || !strings.HasPrefix(p.Code, p.Type.CodePrefix()) {
				t.Fatalf("unexpected product %+v", p)
			}
		}
		labor, _ := uc.ListLabor(ctx)
		if labor[0].Code != "MO-FAB-001" || labor[len(labor)-1].Code != "MO-INS-003" {
			t.Fatalf("unexpected labor codes %s..%s", labor[0].Code, labor[len(labor)-1].Code)
		}
	})
}
