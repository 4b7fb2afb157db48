package pricing

import (
	"strconv"
	"strings"

	"cotizador/internal/domain/entities"

	"github.com/shopspring/decimal"
)

func costLines(lines []entities.CostLine) decimal.Decimal {
	pairs := make([][2]float64, 0, len(lines))
	for _, l := range lines {
		pairs = append(pairs, [2]float64{l.Qty, l.Price})
	}
	return sumLines(pairs)
}

// SupplyInstall computes the supply/install breakdown.
//
// Supply covers materials plus fabrication labor, grossed up by the supply
// margin and fully taxed. Installation labor is grossed up by the install
// margin, carries AIU on top, and only the profit slice of AIU is taxed.
func SupplyInstall(in entities.SupplyInstallInput) (entities.SupplyInstallTotals, error) {
	supplyCost := costLines(in.Materials).Add(costLines(in.LaborFab))
	supplyTotal, err := grossUp(supplyCost, in.MarginSupply)
	if err != nil {
		return entities.SupplyInstallTotals{}, err
	}
	supplyTax := round2(supplyTotal.Mul(pct(in.TaxPercent)))
	supplyFinal := supplyTotal.Add(supplyTax)

	installCost := costLines(in.LaborInst)
	installBase, err := grossUp(installCost, in.MarginInstall)
	if err != nil {
		return entities.SupplyInstallTotals{}, err
	}
	admin := round2(installBase.Mul(pct(in.AIUAdmin)))
	contingency := round2(installBase.Mul(pct(in.AIUContingency)))
	profit := round2(installBase.Mul(pct(in.AIUProfit)))
	aiu := admin.Add(contingency).Add(profit)
	installTax := round2(profit.Mul(pct(in.TaxPercent)))
	installFinal := installBase.Add(aiu).Add(installTax)

	return entities.SupplyInstallTotals{
		SupplyCost:     toFloat(supplyCost),
		SupplyTotal:    toFloat(supplyTotal),
		SupplyTax:      toFloat(supplyTax),
		SupplyFinal:    toFloat(supplyFinal),
		InstallCost:    toFloat(installCost),
		InstallBase:    toFloat(installBase),
		AIUAdmin:       toFloat(admin),
		AIUContingency: toFloat(contingency),
		AIUProfit:      toFloat(profit),
		AIUTotal:       toFloat(aiu),
		InstallTax:     toFloat(installTax),
		InstallFinal:   toFloat(installFinal),
		GrandTotal:     toFloat(supplyFinal.Add(installFinal)),
	}, nil
}

// ValidationResult lists every problem found in an input, not just the first.
type ValidationResult struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors"`
}

// ValidateSupplyInstall checks a supply/install input before it is priced.
func ValidateSupplyInstall(in entities.SupplyInstallInput) ValidationResult {
	var errs []string
	if len(in.Materials) == 0 && len(in.LaborFab) == 0 && len(in.LaborInst) == 0 {
		errs = append(errs, "at least one material or labor line is required")
	}
	if in.MarginSupply < 0 || in.MarginSupply >= 100 {
		errs = append(errs, "supply margin must be between 0 and 99.99")
	}
	if in.MarginInstall < 0 || in.MarginInstall >= 100 {
		errs = append(errs, "install margin must be between 0 and 99.99")
	}
	aiu := []struct {
		name  string
		value float64
	}{
		{"administration", in.AIUAdmin},
		{"contingency", in.AIUContingency},
		{"profit", in.AIUProfit},
	}
	for _, a := range aiu {
		if a.value < 0 || a.value > 50 {
			errs = append(errs, a.name+" percentage must be between 0 and 50")
		}
	}
	if in.TaxPercent < 0 {
		errs = append(errs, "tax percentage cannot be negative")
	}
	checkLines := func(group string, lines []entities.CostLine) {
		for i, l := range lines {
			n := strconv.Itoa(i + 1)
			if strings.TrimSpace(l.Description) == "" {
				errs = append(errs, group+" line "+n+": description is required")
			}
			if l.Qty <= 0 {
				errs = append(errs, group+" line "+n+": quantity must be greater than zero")
			}
			if l.Price < 0 {
				errs = append(errs, group+" line "+n+": price cannot be negative")
			}
		}
	}
	checkLines("material", in.Materials)
	checkLines("fabrication", in.LaborFab)
	checkLines("installation", in.LaborInst)

	return ValidationResult{Valid: len(errs) == 0, Errors: errs}
}
