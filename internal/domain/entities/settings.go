package entities

import "time"

const DefaultObservations = "Precios sujetos a cambio sin previo aviso. Tiempo de entrega a convenir. Forma de pago: 50% anticipo, 50% contra entrega."

// Settings holds the pricing parameters. All percentages are 0..100.
type Settings struct {
	Admin         float64 `json:"admin"`
	Contingency   float64 `json:"contingency"`
	Profit        float64 `json:"profit"`
	Tax           float64 `json:"tax"`
	ValidityDays  int     `json:"validityDays"`
	SupplyMargin  float64 `json:"supplyMargin"`
	InstallMargin float64 `json:"installMargin"`
	Observations  string  `json:"observations"`
}

// AIUPercent returns the sum of administration, contingency and profit.
func (s Settings) AIUPercent() float64 {
	return s.Admin + s.Contingency + s.Profit
}

func DefaultSettings() Settings {
	return Settings{
		Admin:         7,
		Contingency:   7,
		Profit:        5,
		Tax:           19,
		ValidityDays:  20,
		SupplyMargin:  30,
		InstallMargin: 45,
		Observations:  DefaultObservations,
	}
}

// Metadata carries the numbering counters, which only ever grow, and the
// time the blob was last written.
type Metadata struct {
	LastQuoteNumber   int        `json:"lastQuoteNumber"`
	LastProductNumber int        `json:"lastProductNumber"`
	LastSync          *time.Time `json:"lastSync,omitempty"`
}
