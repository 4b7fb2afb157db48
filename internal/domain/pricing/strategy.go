package pricing

import (
	"fmt"

	"cotizador/internal/domain/entities"
)

// Strategy turns a quote into stored totals for one pricing mode.
type Strategy interface {
	Mode() entities.PricingMode
	Totals(q entities.Quote, s entities.Settings) (entities.QuoteTotals, error)
}

// ItemizedStrategy prices catalog product lines with a general discount and tax.
type ItemizedStrategy struct{}

func (ItemizedStrategy) Mode() entities.PricingMode { return entities.PricingItemized }

func (ItemizedStrategy) Totals(q entities.Quote, s entities.Settings) (entities.QuoteTotals, error) {
	return QuoteTotals(q.Items, q.GeneralDiscount, s.Tax), nil
}

// SupplyInstallStrategy prices a quote from its supply/install input. The
// tax rate always comes from settings.
type SupplyInstallStrategy struct{}

func (SupplyInstallStrategy) Mode() entities.PricingMode { return entities.PricingSupplyInstall }

func (SupplyInstallStrategy) Totals(q entities.Quote, s entities.Settings) (entities.QuoteTotals, error) {
	if q.SupplyInstall == nil {
		return entities.QuoteTotals{}, fmt.Errorf("supply/install input is missing")
	}
	in := *q.SupplyInstall
	in.TaxPercent = s.Tax
	si, err := SupplyInstall(in)
	if err != nil {
		return entities.QuoteTotals{}, err
	}
	return entities.QuoteTotals{
		ItemsSubtotal: Round2(si.SupplyTotal + si.InstallBase + si.AIUTotal),
		AfterDiscount: Round2(si.SupplyTotal + si.InstallBase + si.AIUTotal),
		Tax:           Round2(si.SupplyTax + si.InstallTax),
		GrandTotal:    si.GrandTotal,
		SupplyInstall: &si,
	}, nil
}

// StrategyFor returns the strategy for mode. An empty mode means itemized.
func StrategyFor(mode entities.PricingMode) (Strategy, error) {
	switch mode {
	case "", entities.PricingItemized:
		return ItemizedStrategy{}, nil
	case entities.PricingSupplyInstall:
		return SupplyInstallStrategy{}, nil
	}
	return nil, fmt.Errorf("unknown pricing mode %q", mode)
}
