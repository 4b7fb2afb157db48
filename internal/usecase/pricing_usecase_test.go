package usecase

import (
	"context"
	"testing"

	"cotizador/internal/domain/entities"
	"cotizador/internal/domain/pricing"

	"github.com/stretchr/testify/require"
)

func TestPricingUseCase(t *testing.T) {
	ctx := context.Background()
	uc := NewPricingUseCase(newTestState())

	t.Run("quote totals use the settings tax", func(t *testing.T) {
		tot, err := uc.QuoteTotals(ctx, []entities.QuoteItem{{Qty: 2, UnitPrice: 100000}}, 10)
		require.NoError(t, err)
		require.Equal(t, 214200.0, tot.GrandTotal)

		_, err = uc.QuoteTotals(ctx, []entities.QuoteItem{{Qty: 1, UnitPrice: 1, Discount: 150}}, 0)
		require.ErrorIs(t, err, ErrValidation)
	})

	t.Run("product price", func(t *testing.T) {
		res, err := uc.ProductPrice(ctx, "", 1000000, 500000)
		require.NoError(t, err)
		require.Equal(t, 2142857.14, res.UnitPrice)
		require.Equal(t, 1500000.0, res.Cost)
		require.Equal(t, 30.0, res.Margin)

		res, err = uc.ProductPrice(ctx, entities.ProductTypeService, 999, 810000)
		require.NoError(t, err)
		require.Equal(t, 1000000.0, res.UnitPrice)
		require.Equal(t, 810000.0, res.Cost)

		_, err = uc.ProductPrice(ctx, "kit", 1, 1)
		require.ErrorIs(t, err, ErrValidation)
	})

	t.Run("supply install report falls back to settings", func(t *testing.T) {
		rep, err := uc.SupplyInstall(ctx, SupplyInstallParams{
			Materials: []entities.CostLine{{Description: "Lamina", Qty: 1, Price: 700}},
			LaborInst: []entities.CostLine{{Description: "Montaje", Qty: 1, Price: 55}},
		})
		require.NoError(t, err)
		require.Equal(t, 30.0, rep.Input.MarginSupply)
		require.Equal(t, 1309.95, rep.Totals.GrandTotal)
		require.Equal(t, 5.0, rep.Taxes.TaxableBaseInstall)
		require.Equal(t, 30.0, rep.Margins.SupplyMarginPercent)

		_, err = uc.SupplyInstall(ctx, SupplyInstallParams{})
		require.ErrorIs(t, err, ErrValidation)
	})

	t.Run("compare", func(t *testing.T) {
		zero := 0.0
		a := SupplyInstallParams{Materials: []entities.CostLine{{Description: "a", Qty: 1, Price: 100}}, MarginSupply: &zero, TaxPercent: &zero}
		b := SupplyInstallParams{Materials: []entities.CostLine{{Description: "b", Qty: 1, Price: 150}}, MarginSupply: &zero, TaxPercent: &zero}
		c, err := uc.Compare(ctx, a, b)
		require.NoError(t, err)
		require.Equal(t, 50.0, c.Difference)
		require.Equal(t, 50.0, c.PercentChange)
		require.Equal(t, pricing.CheaperFirst, c.Cheaper)
		require.Equal(t, 50.0, c.SupplyDiff)
	})
}
