package entities

import "time"

// QuoteStatus represents the lifecycle of a quote.
type QuoteStatus string

const (
	QuoteStatusPending  QuoteStatus = "pending"
	QuoteStatusApproved QuoteStatus = "approved"
	QuoteStatusRejected QuoteStatus = "rejected"
)

func (s QuoteStatus) Valid() bool {
	switch s {
	case QuoteStatusPending, QuoteStatusApproved, QuoteStatusRejected:
		return true
	}
	return false
}

// PricingMode selects how a quote's totals are derived.
type PricingMode string

const (
	// PricingItemized prices a list of catalog products line by line.
	PricingItemized PricingMode = "itemized"
	// PricingSupplyInstall splits the job into a supply part and an
	// installation part carrying AIU.
	PricingSupplyInstall PricingMode = "supply_install"
)

// QuoteItem is a frozen copy of a product line at the moment it was quoted.
type QuoteItem struct {
	ProductID int64       `json:"productId"`
	Name      string      `json:"name"`
	Type      ProductType `json:"type"`
	Qty       float64     `json:"qty"`
	UnitPrice float64     `json:"unitPrice"`
	Discount  float64     `json:"discount"`
	Subtotal  float64     `json:"subtotal"`
}

// CostLine is a free-form cost entry of the supply/install calculation.
type CostLine struct {
	Description string  `json:"description"`
	Qty         float64 `json:"qty"`
	Price       float64 `json:"price"`
}

// SupplyInstallInput carries every figure the supply/install calculation needs.
// Percentages are expressed 0..100.
type SupplyInstallInput struct {
	Materials      []CostLine `json:"materials"`
	LaborFab       []CostLine `json:"laborFab"`
	LaborInst      []CostLine `json:"laborInst"`
	MarginSupply   float64    `json:"marginSupply"`
	MarginInstall  float64    `json:"marginInstall"`
	AIUAdmin       float64    `json:"aiuAdmin"`
	AIUContingency float64    `json:"aiuContingency"`
	AIUProfit      float64    `json:"aiuProfit"`
	TaxPercent     float64    `json:"taxPercent"`
}

// SupplyInstallTotals is the breakdown produced by the supply/install calculation.
type SupplyInstallTotals struct {
	SupplyCost     float64 `json:"supplyCost"`
	SupplyTotal    float64 `json:"supplyTotal"`
	SupplyTax      float64 `json:"supplyTax"`
	SupplyFinal    float64 `json:"supplyFinal"`
	InstallCost    float64 `json:"installCost"`
	InstallBase    float64 `json:"installBase"`
	AIUAdmin       float64 `json:"aiuAdmin"`
	AIUContingency float64 `json:"aiuContingency"`
	AIUProfit      float64 `json:"aiuProfit"`
	AIUTotal       float64 `json:"aiuTotal"`
	InstallTax     float64 `json:"installTax"`
	InstallFinal   float64 `json:"installFinal"`
	GrandTotal     float64 `json:"grandTotal"`
}

// QuoteTotals is stored with the quote and never recalculated on read.
type QuoteTotals struct {
	ItemsSubtotal         float64              `json:"itemsSubtotal"`
	GeneralDiscountAmount float64              `json:"generalDiscountAmount"`
	AfterDiscount         float64              `json:"afterDiscount"`
	Tax                   float64              `json:"tax"`
	GrandTotal            float64              `json:"grandTotal"`
	SupplyInstall         *SupplyInstallTotals `json:"supplyInstall,omitempty"`
}

// Quote is a priced proposal for a client.
//
// Number and Date are assigned once on creation and kept on every later update.
// Date is a calendar day formatted YYYY-MM-DD.
type Quote struct {
	ID              int64               `json:"id"`
	Number          string              `json:"number"`
	ClientID        int64               `json:"clientId"`
	Project         string              `json:"project"`
	Date            string              `json:"date"`
	Status          QuoteStatus         `json:"status"`
	PricingMode     PricingMode         `json:"pricingMode"`
	Items           []QuoteItem         `json:"items"`
	SupplyInstall   *SupplyInstallInput `json:"supplyInstall,omitempty"`
	GeneralDiscount float64             `json:"generalDiscount"`
	Totals          QuoteTotals         `json:"totals"`
	Observations    string              `json:"observations"`
	LastModified    time.Time           `json:"lastModified"`
}

func (q Quote) GetID() int64               { return q.ID }
func (q Quote) GetLastModified() time.Time { return q.LastModified }

// Mode returns the pricing mode, treating an empty value as itemized.
func (q Quote) Mode() PricingMode {
	if q.PricingMode == "" {
		return PricingItemized
	}
	return q.PricingMode
}
