package response

import (
	"cotizador/internal/domain/entities"
	"cotizador/internal/domain/pricing"
	"cotizador/internal/usecase"
)

type ListResponse[T any] struct {
	Items []T `json:"items"`
	Count int `json:"count"`
}

func NewList[T any](items []T) ListResponse[T] {
	if items == nil {
		items = []T{}
	}
	return ListResponse[T]{Items: items, Count: len(items)}
}

// QuoteResponse is a stored quote plus the derived figures shown next to it.
type QuoteResponse struct {
	entities.Quote
	Taxes   pricing.Taxes                 `json:"taxes"`
	Margins *pricing.SupplyInstallMargins `json:"margins,omitempty"`
}

func FromQuote(q entities.Quote) QuoteResponse {
	out := QuoteResponse{Quote: q, Taxes: pricing.TaxBreakdown(q.Totals)}
	if q.Totals.SupplyInstall != nil {
		m := pricing.MarginStats(*q.Totals.SupplyInstall)
		out.Margins = &m
	}
	return out
}

func FromQuotes(qs []entities.Quote) ListResponse[QuoteResponse] {
	out := make([]QuoteResponse, 0, len(qs))
	for _, q := range qs {
		out = append(out, FromQuote(q))
	}
	return NewList(out)
}

type ImportResponse struct {
	Version string                      `json:"version"`
	Counts  map[entities.EntityKind]int `json:"counts"`
}

func FromAppData(d entities.AppData) ImportResponse {
	return ImportResponse{Version: d.Version, Counts: d.Snapshot().Count()}
}

type SyncResponse struct {
	usecase.SyncResult
	Status *entities.SyncStatus `json:"status,omitempty"`
}

func FromSyncResult(res usecase.SyncResult, st *entities.SyncStatus) SyncResponse {
	return SyncResponse{SyncResult: res, Status: st}
}
