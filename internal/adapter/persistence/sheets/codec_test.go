package sheets

import (
	"testing"
	"time"

	"cotizador/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var codecNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func TestDecodeRows_SkipsRowsWithoutID(t *testing.T) {
	rows := [][]interface{}{
		{"", "No id"},
		{"abc", "Bad id"},
		{"17", "Acme", "900"},
		{},
	}
	clients := decodeRows(rows, codecNow, decodeClient)
	require.Len(t, clients, 1)
	assert.Equal(t, int64(17), clients[0].ID)
	assert.Equal(t, "Acme", clients[0].Name)
	assert.Equal(t, codecNow, clients[0].LastModified, "missing lastModified defaults to now")
}

func TestDecodeRows_NumericCells(t *testing.T) {
	rows := [][]interface{}{{float64(5), "MAT-001", "Steel", "metal", "kg", "12.5", "2024-01-02T03:04:05Z"}}
	materials := decodeRows(rows, codecNow, decodeMaterial)
	require.Len(t, materials, 1)
	assert.Equal(t, int64(5), materials[0].ID)
	assert.Equal(t, 12.5, materials[0].Price)
	assert.Equal(t, time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC), materials[0].LastModified)
}

func TestProductCodec(t *testing.T) {
	p := entities.Product{
		ID:           1700000000000000001,
		Code:         "PROD-001",
		Name:         "Railing",
		Type:         entities.ProductTypeProduct,
		Materials:    []entities.MaterialLine{{MaterialID: 3, Qty: 2, UnitPrice: 10}},
		Labor:        []entities.LaborLine{{LaborID: 4, Qty: 1, UnitPrice: 5}},
		UnitPrice:    35.71,
		LastModified: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	row := encodeProduct(p, codecNow)
	assert.Equal(t, "1700000000000000001", row[0])

	got := decodeProduct(row, codecNow)
	assert.Equal(t, p, got)
}

func TestProductCodec_MalformedJSONDegrades(t *testing.T) {
	row := []interface{}{"9", "SERV-002", "Install", "", "{broken", "[{\"laborId\":1,\"qty\":2,\"price\":3}]", 10}
	got := decodeProduct(row, codecNow)
	assert.Equal(t, entities.ProductTypeProduct, got.Type)
	assert.Empty(t, got.Materials)
	assert.NotNil(t, got.Materials)
	require.Len(t, got.Labor, 1)
	assert.Equal(t, 3.0, got.Labor[0].UnitPrice)
}

func TestQuoteCodec(t *testing.T) {
	q := entities.Quote{
		ID:              42,
		Number:          "COT-2025-001",
		ClientID:        7,
		Project:         "Lobby",
		Date:            "2025-05-30",
		Status:          entities.QuoteStatusApproved,
		PricingMode:     entities.PricingItemized,
		Items:           []entities.QuoteItem{{ProductID: 1, Name: "Railing", Qty: 2, UnitPrice: 100, Subtotal: 200}},
		GeneralDiscount: 5,
		Totals:          entities.QuoteTotals{ItemsSubtotal: 200, GrandTotal: 226.1},
		Observations:    "n/a",
		LastModified:    time.Date(2025, 5, 30, 8, 0, 0, 0, time.UTC),
	}
	got := decodeQuote(encodeQuote(q, codecNow), codecNow)
	assert.Equal(t, q, got)

	t.Run("legacy row without mode or status", func(t *testing.T) {
		row := []interface{}{"43", "COT-2025-002", "7", "Hall", "2025-06-01", "not json", 0, "", ""}
		got := decodeQuote(row, codecNow)
		assert.Equal(t, entities.QuoteStatusPending, got.Status)
		assert.Equal(t, entities.PricingItemized, got.PricingMode)
		assert.Empty(t, got.Items)
		assert.Equal(t, entities.QuoteTotals{}, got.Totals)
		assert.Nil(t, got.SupplyInstall)
	})
}

func TestEncodeClient_StampsMissingLastModified(t *testing.T) {
	row := encodeClient(entities.Client{ID: 1, Name: "Acme"}, codecNow)
	assert.Equal(t, codecNow.Format(time.RFC3339Nano), row[7])
}
