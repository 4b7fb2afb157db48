package request

import "cotizador/internal/domain/entities"

type QuoteTotalsRequest struct {
	Items           []QuoteItemRequest `json:"items" binding:"required"`
	GeneralDiscount float64            `json:"generalDiscount"`
}

func (r QuoteTotalsRequest) ToItems() []entities.QuoteItem {
	out := make([]entities.QuoteItem, 0, len(r.Items))
	for _, it := range r.Items {
		out = append(out, it.ToEntity())
	}
	return out
}

type ProductPriceRequest struct {
	Type          string  `json:"type"`
	MaterialsCost float64 `json:"materialsCost"`
	LaborCost     float64 `json:"laborCost"`
}

type CompareRequest struct {
	First  SupplyInstallRequest `json:"first"`
	Second SupplyInstallRequest `json:"second"`
}
