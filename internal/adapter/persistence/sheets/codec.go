package sheets

import (
	"encoding/json"
	"log"
	"strconv"
	"strings"
	"time"

	"cotizador/internal/domain/entities"

	"github.com/shockerli/cvt"
)

// Row layouts, one per sheet. Complex fields travel as JSON text in a single
// cell. Identifiers are written as text so large ids keep full precision.

var (
	clientHeader   = []string{"ID", "Nombre", "NIT", "Contacto", "Teléfono", "Email", "Ciudad", "LastModified"}
	materialHeader = []string{"ID", "Código", "Descripción", "Tipo", "Unidad", "Precio", "LastModified"}
	laborHeader    = []string{"ID", "Código", "Descripción", "Tipo", "Unidad", "Costo", "LastModified"}
	productHeader  = []string{"ID", "Código", "Nombre", "Tipo", "Materials (JSON)", "Labor (JSON)", "Precio Unitario", "LastModified"}
	quoteHeader    = []string{"ID", "Número", "ClientID", "Proyecto", "Fecha", "Items (JSON)", "Descuento General", "Totals (JSON)", "Observaciones", "Estado", "LastModified", "Modo", "SupplyInstall (JSON)"}
)

func headerFor(kind entities.EntityKind) []string {
	switch kind {
	case entities.KindClients:
		return clientHeader
	case entities.KindMaterials:
		return materialHeader
	case entities.KindLabor:
		return laborHeader
	case entities.KindProducts:
		return productHeader
	case entities.KindQuotes:
		return quoteHeader
	}
	return nil
}

func cell(row []interface{}, i int) interface{} {
	if i < len(row) {
		return row[i]
	}
	return nil
}

func str(row []interface{}, i int) string {
	return cvt.String(cell(row, i))
}

func num(row []interface{}, i int) float64 {
	return cvt.Float64(cell(row, i))
}

func id(row []interface{}, i int) int64 {
	if s, ok := cell(row, i).(string); ok {
		return cvt.Int64(strings.TrimSpace(s))
	}
	return cvt.Int64(cell(row, i))
}

// timestamp reads an RFC 3339 cell; a blank or unreadable cell becomes now.
func timestamp(row []interface{}, i int, now time.Time) time.Time {
	if t, err := time.Parse(time.RFC3339Nano, strings.TrimSpace(str(row, i))); err == nil {
		return t
	}
	return now
}

// jsonCell decodes an embedded JSON cell, falling back to def when the cell is
// blank or malformed.
func jsonCell[T any](row []interface{}, i int, def T) T {
	raw := strings.TrimSpace(str(row, i))
	if raw == "" {
		return def
	}
	var out T
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		log.Printf("[sheets][codec] malformed json cell column=%d err=%v", i, err)
		return def
	}
	return out
}

func jsonText(v interface{}) string {
	raw, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(raw)
}

func idText(v int64) string {
	return strconv.FormatInt(v, 10)
}

func timeText(t, now time.Time) string {
	if t.IsZero() {
		t = now
	}
	return t.UTC().Format(time.RFC3339Nano)
}

// decodeRows parses rows with decode and drops rows without a usable id.
func decodeRows[T entities.Record](rows [][]interface{}, now time.Time, decode func([]interface{}, time.Time) T) []T {
	out := make([]T, 0, len(rows))
	for _, r := range rows {
		rec := decode(r, now)
		if rec.GetID() == 0 {
			continue
		}
		out = append(out, rec)
	}
	return out
}

func encodeRows[T any](items []T, now time.Time, encode func(T, time.Time) []interface{}) [][]interface{} {
	out := make([][]interface{}, 0, len(items))
	for _, it := range items {
		out = append(out, encode(it, now))
	}
	return out
}

func decodeClient(r []interface{}, now time.Time) entities.Client {
	return entities.Client{
		ID:           id(r, 0),
		Name:         str(r, 1),
		TaxID:        str(r, 2),
		Contact:      str(r, 3),
		Phone:        str(r, 4),
		Email:        str(r, 5),
		City:         str(r, 6),
		LastModified: timestamp(r, 7, now),
	}
}

func encodeClient(c entities.Client, now time.Time) []interface{} {
	return []interface{}{idText(c.ID), c.Name, c.TaxID, c.Contact, c.Phone, c.Email, c.City, timeText(c.LastModified, now)}
}

func decodeMaterial(r []interface{}, now time.Time) entities.Material {
	return entities.Material{
		ID:           id(r, 0),
		Code:         str(r, 1),
		Description:  str(r, 2),
		Category:     str(r, 3),
		Unit:         str(r, 4),
		Price:        num(r, 5),
		LastModified: timestamp(r, 6, now),
	}
}

func encodeMaterial(m entities.Material, now time.Time) []interface{} {
	return []interface{}{idText(m.ID), m.Code, m.Description, m.Category, m.Unit, m.Price, timeText(m.LastModified, now)}
}

func decodeLabor(r []interface{}, now time.Time) entities.Labor {
	return entities.Labor{
		ID:           id(r, 0),
		Code:         str(r, 1),
		Description:  str(r, 2),
		Category:     entities.LaborCategory(str(r, 3)),
		Unit:         str(r, 4),
		Cost:         num(r, 5),
		LastModified: timestamp(r, 6, now),
	}
}

func encodeLabor(l entities.Labor, now time.Time) []interface{} {
	return []interface{}{idText(l.ID), l.Code, l.Description, string(l.Category), l.Unit, l.Cost, timeText(l.LastModified, now)}
}

func decodeProduct(r []interface{}, now time.Time) entities.Product {
	t := entities.ProductType(str(r, 3))
	if t == "" {
		t = entities.ProductTypeProduct
	}
	return entities.Product{
		ID:           id(r, 0),
		Code:         str(r, 1),
		Name:         str(r, 2),
		Type:         t,
		Materials:    jsonCell(r, 4, []entities.MaterialLine{}),
		Labor:        jsonCell(r, 5, []entities.LaborLine{}),
		UnitPrice:    num(r, 6),
		LastModified: timestamp(r, 7, now),
	}
}

func encodeProduct(p entities.Product, now time.Time) []interface{} {
	materials, labor := p.Materials, p.Labor
	if materials == nil {
		materials = []entities.MaterialLine{}
	}
	if labor == nil {
		labor = []entities.LaborLine{}
	}
	return []interface{}{idText(p.ID), p.Code, p.Name, string(p.Type), jsonText(materials), jsonText(labor), p.UnitPrice, timeText(p.LastModified, now)}
}

func decodeQuote(r []interface{}, now time.Time) entities.Quote {
	status := entities.QuoteStatus(str(r, 9))
	if status == "" {
		status = entities.QuoteStatusPending
	}
	q := entities.Quote{
		ID:              id(r, 0),
		Number:          str(r, 1),
		ClientID:        id(r, 2),
		Project:         str(r, 3),
		Date:            str(r, 4),
		Items:           jsonCell(r, 5, []entities.QuoteItem{}),
		GeneralDiscount: num(r, 6),
		Totals:          jsonCell(r, 7, entities.QuoteTotals{}),
		Observations:    str(r, 8),
		Status:          status,
		LastModified:    timestamp(r, 10, now),
		PricingMode:     entities.PricingMode(str(r, 11)),
	}
	if q.PricingMode == "" {
		q.PricingMode = entities.PricingItemized
	}
	q.SupplyInstall = jsonCell[*entities.SupplyInstallInput](r, 12, nil)
	return q
}

func encodeQuote(q entities.Quote, now time.Time) []interface{} {
	items := q.Items
	if items == nil {
		items = []entities.QuoteItem{}
	}
	supply := ""
	if q.SupplyInstall != nil {
		supply = jsonText(q.SupplyInstall)
	}
	return []interface{}{
		idText(q.ID), q.Number, idText(q.ClientID), q.Project, q.Date, jsonText(items),
		q.GeneralDiscount, jsonText(q.Totals), q.Observations, string(q.Status),
		timeText(q.LastModified, now), string(q.Mode()), supply,
	}
}
