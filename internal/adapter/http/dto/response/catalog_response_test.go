package response

import (
	"encoding/json"
	"testing"

	"cotizador/internal/domain/entities"
)

func TestNewList(t *testing.T) {
	l := NewList[entities.Client](nil)
	raw, _ := json.Marshal(l)
	if string(raw) != `{"items":[],"count":0}` {
		t.Fatalf("unexpected body %s", raw)
	}
}

func TestFromQuote(t *testing.T) {
	t.Run("itemized", func(t *testing.T) {
		q := entities.Quote{ID: 1, Number: "COT-2025-001", Totals: entities.QuoteTotals{AfterDiscount: 100, Tax: 19, GrandTotal: 119}}
		res := FromQuote(q)
		if res.Margins != nil || res.Taxes.TotalTax != 19 || res.Taxes.BeforeTax != 100 {
			t.Fatalf("unexpected response %+v", res)
		}

		raw, _ := json.Marshal(res)
		var body map[string]any
		_ = json.Unmarshal(raw, &body)
		if body["number"] != "COT-2025-001" || body["taxes"] == nil {
			t.Fatalf("expected embedded quote fields, got %s", raw)
		}
	})

	t.Run("supply install adds margins", func(t *testing.T) {
		si := entities.SupplyInstallTotals{SupplyCost: 700, SupplyTotal: 1000, GrandTotal: 1190}
		res := FromQuote(entities.Quote{Totals: entities.QuoteTotals{GrandTotal: 1190, SupplyInstall: &si}})
		if res.Margins == nil || res.Margins.SupplyMarginPercent != 30 {
			t.Fatalf("unexpected margins %+v", res.Margins)
		}
	})
}
