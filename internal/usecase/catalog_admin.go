package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"cotizador/internal/domain/entities"
	"cotizador/internal/domain/pricing"
)

// SettingsPatch carries a partial settings update; nil fields are untouched.
type SettingsPatch struct {
	Admin         *float64 `json:"admin,omitempty"`
	Contingency   *float64 `json:"contingency,omitempty"`
	Profit        *float64 `json:"profit,omitempty"`
	Tax           *float64 `json:"tax,omitempty"`
	ValidityDays  *int     `json:"validityDays,omitempty"`
	SupplyMargin  *float64 `json:"supplyMargin,omitempty"`
	InstallMargin *float64 `json:"installMargin,omitempty"`
	Observations  *string  `json:"observations,omitempty"`
}

func (p SettingsPatch) apply(s entities.Settings) entities.Settings {
	if p.Admin != nil {
		s.Admin = *p.Admin
	}
	if p.Contingency != nil {
		s.Contingency = *p.Contingency
	}
	if p.Profit != nil {
		s.Profit = *p.Profit
	}
	if p.Tax != nil {
		s.Tax = *p.Tax
	}
	if p.ValidityDays != nil {
		s.ValidityDays = *p.ValidityDays
	}
	if p.SupplyMargin != nil {
		s.SupplyMargin = *p.SupplyMargin
	}
	if p.InstallMargin != nil {
		s.InstallMargin = *p.InstallMargin
	}
	if p.Observations != nil {
		s.Observations = strings.TrimSpace(*p.Observations)
	}
	return s
}

// DashboardStats is the summary shown on the landing page. PendingValue only
// sums pending quotes; approved and rejected ones are not open pipeline.
type DashboardStats struct {
	Month         string  `json:"month"`
	MonthQuotes   int     `json:"monthQuotes"`
	PendingQuotes int     `json:"pendingQuotes"`
	Approved      int     `json:"approvedQuotes"`
	PendingValue  float64 `json:"pendingValue"`
	Clients       int     `json:"clients"`
	Products      int     `json:"products"`
}

func (u *CatalogUseCase) GetSettings(ctx context.Context) (entities.Settings, error) {
	d, err := u.state.Load(ctx)
	if err != nil {
		return entities.Settings{}, err
	}
	return d.Config, nil
}

func (u *CatalogUseCase) UpdateSettings(ctx context.Context, patch SettingsPatch) (entities.Settings, error) {
	var out entities.Settings
	err := u.commit(ctx, func(d *entities.AppData) error {
		s := patch.apply(d.Config)
		if msgs := settingsErrors(s); len(msgs) > 0 {
			return newValidationError(msgs...)
		}
		d.Config = s
		out = s
		return nil
	})
	if err != nil {
		return entities.Settings{}, err
	}
	log.Printf("[catalog][usecase] settings updated supply_margin=%.2f install_margin=%.2f tax=%.2f", out.SupplyMargin, out.InstallMargin, out.Tax)
	return out, nil
}

func settingsErrors(s entities.Settings) []string {
	var msgs []string
	if s.SupplyMargin < 0 || s.SupplyMargin >= 100 {
		msgs = append(msgs, "supplyMargin must be between 0 and 99.99")
	}
	if s.InstallMargin < 0 || s.InstallMargin >= 100 {
		msgs = append(msgs, "installMargin must be between 0 and 99.99")
	}
	for _, f := range []struct {
		name  string
		value float64
	}{{"admin", s.Admin}, {"contingency", s.Contingency}, {"profit", s.Profit}} {
		if !inRange(f.value, 0, 50) {
			msgs = append(msgs, f.name+" must be between 0 and 50")
		}
	}
	if s.AIUPercent() >= 100 {
		msgs = append(msgs, "admin + contingency + profit must stay below 100")
	}
	if !inRange(s.Tax, 0, 100) {
		msgs = append(msgs, "tax must be between 0 and 100")
	}
	if s.ValidityDays < 0 {
		msgs = append(msgs, "validityDays cannot be negative")
	}
	return msgs
}

func (u *CatalogUseCase) Dashboard(ctx context.Context) (DashboardStats, error) {
	d, err := u.state.Load(ctx)
	if err != nil {
		return DashboardStats{}, err
	}
	month := u.clock.Now().Format("2006-01")
	stats := DashboardStats{Month: month, Clients: len(d.Clients), Products: len(d.Products)}
	var pending []float64
	for _, q := range d.Quotes {
		if strings.HasPrefix(q.Date, month) {
			stats.MonthQuotes++
		}
		switch q.Status {
		case entities.QuoteStatusPending:
			stats.PendingQuotes++
			pending = append(pending, q.Totals.GrandTotal)
		case entities.QuoteStatusApproved:
			stats.Approved++
		}
	}
	stats.PendingValue = pricing.Sum(pending...)
	return stats, nil
}

// Export returns the whole state as indented JSON.
func (u *CatalogUseCase) Export(ctx context.Context) ([]byte, error) {
	d, err := u.state.Load(ctx)
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(d, "", "  ")
}

// Import replaces the whole state with a previously exported blob. The blob
// must carry the current schema version and a config section.
func (u *CatalogUseCase) Import(ctx context.Context, raw []byte) (entities.AppData, error) {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(raw, &probe); err != nil {
		return entities.AppData{}, fmt.Errorf("%w: %v", ErrInvalidImport, err)
	}
	if _, ok := probe["version"]; !ok {
		return entities.AppData{}, fmt.Errorf("%w: version is missing", ErrInvalidImport)
	}
	if _, ok := probe["config"]; !ok {
		return entities.AppData{}, fmt.Errorf("%w: config is missing", ErrInvalidImport)
	}
	var d entities.AppData
	if err := json.Unmarshal(raw, &d); err != nil {
		return entities.AppData{}, fmt.Errorf("%w: %v", ErrInvalidImport, err)
	}
	if d.Version != entities.SchemaVersion {
		return entities.AppData{}, fmt.Errorf("%w: version %q is not %q", ErrInvalidImport, d.Version, entities.SchemaVersion)
	}
	d.EnsureMaps()
	if err := u.state.Replace(ctx, d); err != nil {
		return entities.AppData{}, err
	}
	log.Printf("[catalog][usecase] state imported counts=%v", d.Snapshot().Count())
	return d, nil
}

// Reset wipes the state back to defaults, optionally loading the sample catalog.
func (u *CatalogUseCase) Reset(ctx context.Context, seed bool) (entities.AppData, error) {
	d, err := u.state.Reset(ctx)
	if err != nil {
		return entities.AppData{}, err
	}
	if seed {
		d, err = u.state.Update(ctx, func(d *entities.AppData) error {
			return seedSampleCatalog(d, u.ids, u.clock.Now())
		})
		if err != nil {
			return entities.AppData{}, err
		}
	}
	log.Printf("[catalog][usecase] state reset seed=%t", seed)
	return d, nil
}
