package pricing

import (
	"cotizador/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// ItemSubtotal returns qty * unitPrice * (1 - discount/100).
func ItemSubtotal(item entities.QuoteItem) float64 {
	return toFloat(itemSubtotal(item))
}

func itemSubtotal(item entities.QuoteItem) decimal.Decimal {
	gross := round2(dec(item.Qty).Mul(dec(item.UnitPrice)))
	return round2(gross.Mul(one.Sub(pct(item.Discount))))
}

// WithSubtotals returns a copy of items with Subtotal filled in.
func WithSubtotals(items []entities.QuoteItem) []entities.QuoteItem {
	out := make([]entities.QuoteItem, len(items))
	for i, it := range items {
		it.Subtotal = ItemSubtotal(it)
		out[i] = it
	}
	return out
}

// QuoteTotals computes the itemized totals of a quote. Item subtotals are
// derived from qty, unit price and discount; any stored Subtotal is ignored.
func QuoteTotals(items []entities.QuoteItem, generalDiscount, taxPercent float64) entities.QuoteTotals {
	subtotal := decimal.Zero
	for _, it := range items {
		subtotal = subtotal.Add(itemSubtotal(it))
	}
	discount := round2(subtotal.Mul(pct(generalDiscount)))
	after := subtotal.Sub(discount)
	tax := round2(after.Mul(pct(taxPercent)))

	return entities.QuoteTotals{
		ItemsSubtotal:         toFloat(subtotal),
		GeneralDiscountAmount: toFloat(discount),
		AfterDiscount:         toFloat(after),
		Tax:                   toFloat(tax),
		GrandTotal:            toFloat(after.Add(tax)),
	}
}
