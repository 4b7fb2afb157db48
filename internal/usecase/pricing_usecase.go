package usecase

import (
	"context"
	"fmt"

	"cotizador/internal/domain/entities"
	"cotizador/internal/domain/pricing"
	"cotizador/internal/usecase/interfaces"
)

// SupplyInstallParams is a supply/install calculation request. Nil rates
// fall back to the stored settings.
type SupplyInstallParams struct {
	Materials      []entities.CostLine
	LaborFab       []entities.CostLine
	LaborInst      []entities.CostLine
	MarginSupply   *float64
	MarginInstall  *float64
	AIUAdmin       *float64
	AIUContingency *float64
	AIUProfit      *float64
	TaxPercent     *float64
}

// Resolve fills every nil rate from s.
func (p SupplyInstallParams) Resolve(s entities.Settings) entities.SupplyInstallInput {
	or := func(v *float64, def float64) float64 {
		if v == nil {
			return def
		}
		return *v
	}
	return entities.SupplyInstallInput{
		Materials:      p.Materials,
		LaborFab:       p.LaborFab,
		LaborInst:      p.LaborInst,
		MarginSupply:   or(p.MarginSupply, s.SupplyMargin),
		MarginInstall:  or(p.MarginInstall, s.InstallMargin),
		AIUAdmin:       or(p.AIUAdmin, s.Admin),
		AIUContingency: or(p.AIUContingency, s.Contingency),
		AIUProfit:      or(p.AIUProfit, s.Profit),
		TaxPercent:     or(p.TaxPercent, s.Tax),
	}
}

type ProductPriceResult struct {
	Type      entities.ProductType `json:"type"`
	Cost      float64              `json:"cost"`
	UnitPrice float64              `json:"unitPrice"`
	Margin    float64              `json:"margin"`
}

type SupplyInstallReport struct {
	Input   entities.SupplyInstallInput  `json:"input"`
	Totals  entities.SupplyInstallTotals `json:"totals"`
	Margins pricing.SupplyInstallMargins `json:"margins"`
	Taxes   pricing.Taxes                `json:"taxes"`
}

type IPricingUseCase interface {
	QuoteTotals(ctx context.Context, items []entities.QuoteItem, generalDiscount float64) (entities.QuoteTotals, error)
	ProductPrice(ctx context.Context, t entities.ProductType, materialsCost, laborCost float64) (ProductPriceResult, error)
	SupplyInstall(ctx context.Context, p SupplyInstallParams) (SupplyInstallReport, error)
	Compare(ctx context.Context, a, b SupplyInstallParams) (pricing.Comparison, error)
}

// PricingUseCase runs ad-hoc calculations against the current settings
// without storing anything.
type PricingUseCase struct {
	state interfaces.IAppStateRepository
}

var _ IPricingUseCase = (*PricingUseCase)(nil)

func NewPricingUseCase(state interfaces.IAppStateRepository) *PricingUseCase {
	return &PricingUseCase{state: state}
}

func (u *PricingUseCase) settings(ctx context.Context) (entities.Settings, error) {
	d, err := u.state.Load(ctx)
	if err != nil {
		return entities.Settings{}, err
	}
	return d.Config, nil
}

func (u *PricingUseCase) QuoteTotals(ctx context.Context, items []entities.QuoteItem, generalDiscount float64) (entities.QuoteTotals, error) {
	var msgs []string
	if !inRange(generalDiscount, 0, 100) {
		msgs = append(msgs, "generalDiscount must be between 0 and 100")
	}
	for i, it := range items {
		if it.Qty < 0 || it.UnitPrice < 0 {
			msgs = append(msgs, fmt.Sprintf("item %d: quantity and price cannot be negative", i+1))
		}
		if !inRange(it.Discount, 0, 100) {
			msgs = append(msgs, fmt.Sprintf("item %d: discount must be between 0 and 100", i+1))
		}
	}
	if len(msgs) > 0 {
		return entities.QuoteTotals{}, newValidationError(msgs...)
	}
	s, err := u.settings(ctx)
	if err != nil {
		return entities.QuoteTotals{}, err
	}
	return pricing.QuoteTotals(items, generalDiscount, s.Tax), nil
}

func (u *PricingUseCase) ProductPrice(ctx context.Context, t entities.ProductType, materialsCost, laborCost float64) (ProductPriceResult, error) {
	if t == "" {
		t = entities.ProductTypeProduct
	}
	if !t.Valid() {
		return ProductPriceResult{}, newValidationError(fmt.Sprintf("type must be one of [%s %s]", entities.ProductTypeProduct, entities.ProductTypeService))
	}
	if materialsCost < 0 || laborCost < 0 {
		return ProductPriceResult{}, newValidationError("costs cannot be negative")
	}
	s, err := u.settings(ctx)
	if err != nil {
		return ProductPriceResult{}, err
	}
	price, err := pricing.ProductUnitPrice(t, materialsCost, laborCost, s)
	if err != nil {
		return ProductPriceResult{}, err
	}
	cost := laborCost
	if t == entities.ProductTypeProduct {
		cost = pricing.Sum(materialsCost, laborCost)
	}
	return ProductPriceResult{Type: t, Cost: pricing.Round2(cost), UnitPrice: price, Margin: pricing.Margin(price, cost)}, nil
}

func (u *PricingUseCase) SupplyInstall(ctx context.Context, p SupplyInstallParams) (SupplyInstallReport, error) {
	s, err := u.settings(ctx)
	if err != nil {
		return SupplyInstallReport{}, err
	}
	return supplyInstallReport(p.Resolve(s))
}

// Compare prices both inputs and reports how b differs from a.
func (u *PricingUseCase) Compare(ctx context.Context, a, b SupplyInstallParams) (pricing.Comparison, error) {
	s, err := u.settings(ctx)
	if err != nil {
		return pricing.Comparison{}, err
	}
	ra, err := supplyInstallReport(a.Resolve(s))
	if err != nil {
		return pricing.Comparison{}, fmt.Errorf("first quote: %w", err)
	}
	rb, err := supplyInstallReport(b.Resolve(s))
	if err != nil {
		return pricing.Comparison{}, fmt.Errorf("second quote: %w", err)
	}
	return pricing.CompareQuotes(quoteTotalsOf(ra.Totals), quoteTotalsOf(rb.Totals)), nil
}

func supplyInstallReport(in entities.SupplyInstallInput) (SupplyInstallReport, error) {
	if res := pricing.ValidateSupplyInstall(in); !res.Valid {
		return SupplyInstallReport{}, newValidationError(res.Errors...)
	}
	totals, err := pricing.SupplyInstall(in)
	if err != nil {
		return SupplyInstallReport{}, err
	}
	return SupplyInstallReport{
		Input:   in,
		Totals:  totals,
		Margins: pricing.MarginStats(totals),
		Taxes:   pricing.TaxBreakdown(quoteTotalsOf(totals)),
	}, nil
}

func quoteTotalsOf(si entities.SupplyInstallTotals) entities.QuoteTotals {
	return entities.QuoteTotals{GrandTotal: si.GrandTotal, SupplyInstall: &si}
}
