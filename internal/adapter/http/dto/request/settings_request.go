package request

import "cotizador/internal/usecase"

// SettingsRequest is a partial update; omitted fields keep their value.
type SettingsRequest struct {
	Admin         *float64 `json:"admin"`
	Contingency   *float64 `json:"contingency"`
	Profit        *float64 `json:"profit"`
	Tax           *float64 `json:"tax"`
	ValidityDays  *int     `json:"validityDays"`
	SupplyMargin  *float64 `json:"supplyMargin"`
	InstallMargin *float64 `json:"installMargin"`
	Observations  *string  `json:"observations"`
}

func (r SettingsRequest) ToPatch() usecase.SettingsPatch {
	return usecase.SettingsPatch{
		Admin:         r.Admin,
		Contingency:   r.Contingency,
		Profit:        r.Profit,
		Tax:           r.Tax,
		ValidityDays:  r.ValidityDays,
		SupplyMargin:  r.SupplyMargin,
		InstallMargin: r.InstallMargin,
		Observations:  r.Observations,
	}
}
