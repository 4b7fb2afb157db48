package pricing

import (
	"sort"

	"cotizador/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// Margin returns (price - cost) / price * 100, or 0 when price is not positive.
func Margin(price, cost float64) float64 {
	p := dec(price)
	if !p.IsPositive() {
		return 0
	}
	return toFloat(p.Sub(dec(cost)).Div(p).Mul(hundred))
}

// PriceFromMargin returns cost / (1 - margin/100). A margin of 100 or more
// falls back to doubling the cost.
func PriceFromMargin(cost, margin float64) float64 {
	price, err := grossUp(dec(cost), margin)
	if err != nil {
		return toFloat(dec(cost).Mul(decimal.NewFromInt(2)))
	}
	return toFloat(price)
}

// ProductMargin is the margin analysis of a single product.
type ProductMargin struct {
	ProductID int64   `json:"productId"`
	Code      string  `json:"code"`
	Name      string  `json:"name"`
	Cost      float64 `json:"cost"`
	Price     float64 `json:"price"`
	Margin    float64 `json:"margin"`
}

// ProductMarginSummary aggregates product margins across the catalog.
type ProductMarginSummary struct {
	Count   int             `json:"count"`
	Average float64         `json:"average"`
	Min     float64         `json:"min"`
	Max     float64         `json:"max"`
	Items   []ProductMargin `json:"items"`
}

// ProductMargins computes per-product margins ordered from lowest to highest.
func ProductMargins(products []entities.Product) ProductMarginSummary {
	out := ProductMarginSummary{Items: make([]ProductMargin, 0, len(products))}
	if len(products) == 0 {
		return out
	}
	sum := decimal.Zero
	for _, p := range products {
		mat, lab := CompositionCost(p)
		cost := Round2(mat + lab)
		m := Margin(p.UnitPrice, cost)
		out.Items = append(out.Items, ProductMargin{
			ProductID: p.ID,
			Code:      p.Code,
			Name:      p.Name,
			Cost:      cost,
			Price:     p.UnitPrice,
			Margin:    m,
		})
		sum = sum.Add(dec(m))
	}
	sort.SliceStable(out.Items, func(i, j int) bool { return out.Items[i].Margin < out.Items[j].Margin })
	out.Count = len(out.Items)
	out.Min = out.Items[0].Margin
	out.Max = out.Items[len(out.Items)-1].Margin
	out.Average = toFloat(sum.Div(decimal.NewFromInt(int64(out.Count))))
	return out
}

// SupplyInstallMargins summarises the margins of a supply/install calculation.
type SupplyInstallMargins struct {
	SupplyMarginPercent  float64 `json:"supplyMarginPercent"`
	SupplyMarginValue    float64 `json:"supplyMarginValue"`
	InstallMarginPercent float64 `json:"installMarginPercent"`
	InstallMarginValue   float64 `json:"installMarginValue"`
	TotalCost            float64 `json:"totalCost"`
	TotalRevenue         float64 `json:"totalRevenue"`
	TotalProfit          float64 `json:"totalProfit"`
	OverallMarginPercent float64 `json:"overallMarginPercent"`
}

// MarginStats derives margin figures from a supply/install breakdown.
func MarginStats(t entities.SupplyInstallTotals) SupplyInstallMargins {
	cost := dec(t.SupplyCost).Add(dec(t.InstallCost))
	return SupplyInstallMargins{
		SupplyMarginPercent:  Margin(t.SupplyTotal, t.SupplyCost),
		SupplyMarginValue:    toFloat(dec(t.SupplyTotal).Sub(dec(t.SupplyCost))),
		InstallMarginPercent: Margin(t.InstallBase, t.InstallCost),
		InstallMarginValue:   toFloat(dec(t.InstallBase).Sub(dec(t.InstallCost))),
		TotalCost:            toFloat(cost),
		TotalRevenue:         t.GrandTotal,
		TotalProfit:          toFloat(dec(t.GrandTotal).Sub(cost)),
		OverallMarginPercent: Margin(t.GrandTotal, toFloat(cost)),
	}
}

// Taxes lists the tax owed per slice and the bases it was computed on.
// Installation is only taxed on the AIU profit slice.
type Taxes struct {
	SupplyTax          float64 `json:"supplyTax"`
	InstallTax         float64 `json:"installTax"`
	TotalTax           float64 `json:"totalTax"`
	TaxableBaseSupply  float64 `json:"taxableBaseSupply"`
	TaxableBaseInstall float64 `json:"taxableBaseInstall"`
	BeforeTax          float64 `json:"beforeTax"`
	AfterTax           float64 `json:"afterTax"`
}

// TaxBreakdown splits the taxes of a quote's totals. Itemized totals are
// reported as a single supply slice.
func TaxBreakdown(t entities.QuoteTotals) Taxes {
	si := t.SupplyInstall
	if si == nil {
		return Taxes{
			SupplyTax:         t.Tax,
			TotalTax:          t.Tax,
			TaxableBaseSupply: t.AfterDiscount,
			BeforeTax:         t.AfterDiscount,
			AfterTax:          t.GrandTotal,
		}
	}
	return Taxes{
		SupplyTax:          si.SupplyTax,
		InstallTax:         si.InstallTax,
		TotalTax:           toFloat(dec(si.SupplyTax).Add(dec(si.InstallTax))),
		TaxableBaseSupply:  si.SupplyTotal,
		TaxableBaseInstall: si.AIUProfit,
		BeforeTax:          toFloat(dec(si.SupplyTotal).Add(dec(si.InstallBase)).Add(dec(si.AIUTotal))),
		AfterTax:           si.GrandTotal,
	}
}

// Comparison contrasts two quotes' totals, reading the second against the first.
type Comparison struct {
	Difference    float64 `json:"difference"`
	PercentChange float64 `json:"percentChange"`
	Cheaper       string  `json:"cheaper"`
	SupplyDiff    float64 `json:"supplyDiff"`
	InstallDiff   float64 `json:"installDiff"`
}

const (
	CheaperFirst  = "first"
	CheaperSecond = "second"
	CheaperEqual  = "equal"
)

// CompareQuotes returns b minus a. PercentChange is 0 when a totals zero.
// Supply and install differences are only filled when both are supply/install.
func CompareQuotes(a, b entities.QuoteTotals) Comparison {
	ta, tb := dec(a.GrandTotal), dec(b.GrandTotal)
	diff := tb.Sub(ta)
	c := Comparison{Difference: toFloat(diff)}
	if !ta.IsZero() {
		c.PercentChange = toFloat(diff.Div(ta).Mul(hundred))
	}
	switch ta.Cmp(tb) {
	case -1:
		c.Cheaper = CheaperFirst
	case 1:
		c.Cheaper = CheaperSecond
	default:
		c.Cheaper = CheaperEqual
	}
	if a.SupplyInstall != nil && b.SupplyInstall != nil {
		c.SupplyDiff = toFloat(dec(b.SupplyInstall.SupplyFinal).Sub(dec(a.SupplyInstall.SupplyFinal)))
		c.InstallDiff = toFloat(dec(b.SupplyInstall.InstallFinal).Sub(dec(a.SupplyInstall.InstallFinal)))
	}
	return c
}
