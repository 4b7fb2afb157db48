package request

import (
	"strings"

	"cotizador/internal/domain/entities"
	"cotizador/internal/usecase"
)

type QuoteItemRequest struct {
	ProductID int64   `json:"productId" binding:"required"`
	Name      string  `json:"name"`
	Qty       float64 `json:"qty"`
	UnitPrice float64 `json:"unitPrice"`
	Discount  float64 `json:"discount"`
}

func (r QuoteItemRequest) ToEntity() entities.QuoteItem {
	return entities.QuoteItem{
		ProductID: r.ProductID,
		Name:      strings.TrimSpace(r.Name),
		Qty:       r.Qty,
		UnitPrice: r.UnitPrice,
		Discount:  r.Discount,
	}
}

type CostLineRequest struct {
	Description string  `json:"description"`
	Qty         float64 `json:"qty"`
	Price       float64 `json:"price"`
}

func toCostLines(in []CostLineRequest) []entities.CostLine {
	if len(in) == 0 {
		return nil
	}
	out := make([]entities.CostLine, 0, len(in))
	for _, l := range in {
		out = append(out, entities.CostLine{Description: strings.TrimSpace(l.Description), Qty: l.Qty, Price: l.Price})
	}
	return out
}

// SupplyInstallRequest describes a supply/install calculation. Omitted rates
// use the stored settings.
type SupplyInstallRequest struct {
	Materials      []CostLineRequest `json:"materials"`
	LaborFab       []CostLineRequest `json:"laborFab"`
	LaborInst      []CostLineRequest `json:"laborInst"`
	MarginSupply   *float64          `json:"marginSupply"`
	MarginInstall  *float64          `json:"marginInstall"`
	AIUAdmin       *float64          `json:"aiuAdmin"`
	AIUContingency *float64          `json:"aiuContingency"`
	AIUProfit      *float64          `json:"aiuProfit"`
	TaxPercent     *float64          `json:"taxPercent"`
}

func (r SupplyInstallRequest) ToParams() usecase.SupplyInstallParams {
	return usecase.SupplyInstallParams{
		Materials:      toCostLines(r.Materials),
		LaborFab:       toCostLines(r.LaborFab),
		LaborInst:      toCostLines(r.LaborInst),
		MarginSupply:   r.MarginSupply,
		MarginInstall:  r.MarginInstall,
		AIUAdmin:       r.AIUAdmin,
		AIUContingency: r.AIUContingency,
		AIUProfit:      r.AIUProfit,
		TaxPercent:     r.TaxPercent,
	}
}

// ToInput fills omitted rates from s for storage on a quote.
func (r SupplyInstallRequest) ToInput(s entities.Settings) *entities.SupplyInstallInput {
	in := r.ToParams().Resolve(s)
	return &in
}

type QuoteRequest struct {
	ClientID        int64                 `json:"clientId" binding:"required"`
	Project         string                `json:"project" binding:"required"`
	PricingMode     string                `json:"pricingMode"`
	Items           []QuoteItemRequest    `json:"items"`
	SupplyInstall   *SupplyInstallRequest `json:"supplyInstall"`
	GeneralDiscount float64               `json:"generalDiscount"`
	Observations    string                `json:"observations"`
	Status          string                `json:"status"`
}

// ToEntity builds the quote to save. Settings supply the defaults of a
// supply/install input.
func (r QuoteRequest) ToEntity(id int64, s entities.Settings) entities.Quote {
	q := entities.Quote{
		ID:              id,
		ClientID:        r.ClientID,
		Project:         r.Project,
		PricingMode:     entities.PricingMode(strings.TrimSpace(r.PricingMode)),
		GeneralDiscount: r.GeneralDiscount,
		Observations:    r.Observations,
		Status:          entities.QuoteStatus(strings.TrimSpace(r.Status)),
	}
	for _, it := range r.Items {
		q.Items = append(q.Items, it.ToEntity())
	}
	if r.SupplyInstall != nil {
		q.SupplyInstall = r.SupplyInstall.ToInput(s)
	}
	return q
}

type QuoteStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
