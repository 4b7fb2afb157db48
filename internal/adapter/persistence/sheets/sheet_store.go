package sheets

import (
	"context"
	"fmt"
	"log"

	"cotizador/internal/domain/entities"
	"cotizador/internal/usecase/interfaces"
)

// SheetNames maps every collection to its sheet (tab) title.
type SheetNames struct {
	Clients   string
	Materials string
	Labor     string
	Products  string
	Quotes    string
}

func DefaultSheetNames() SheetNames {
	return SheetNames{
		Clients:   "Clientes",
		Materials: "Materiales",
		Labor:     "ManoDeObra",
		Products:  "Productos",
		Quotes:    "Cotizaciones",
	}
}

func (n SheetNames) name(kind entities.EntityKind) string {
	switch kind {
	case entities.KindClients:
		return n.Clients
	case entities.KindMaterials:
		return n.Materials
	case entities.KindLabor:
		return n.Labor
	case entities.KindProducts:
		return n.Products
	case entities.KindQuotes:
		return n.Quotes
	}
	return ""
}

// dataRange addresses every row below the header.
func (n SheetNames) dataRange(kind entities.EntityKind) string {
	return n.name(kind) + "!A2:Z"
}

// SheetStore reads and writes the five collections in a spreadsheet, one
// sheet per collection with a header in row 1.
type SheetStore struct {
	client  interfaces.IValuesClient
	names   SheetNames
	backoff *Backoff
	clock   interfaces.IClock
}

var _ interfaces.IRemoteSheetStore = (*SheetStore)(nil)

func NewSheetStore(client interfaces.IValuesClient, names SheetNames, backoff *Backoff, clock interfaces.IClock) *SheetStore {
	return &SheetStore{client: client, names: names, backoff: backoff, clock: clock}
}

func (s *SheetStore) ranges() []string {
	out := make([]string, 0, len(entities.AllKinds))
	for _, k := range entities.AllKinds {
		out = append(out, s.names.dataRange(k))
	}
	return out
}

func (s *SheetStore) ReadAll(ctx context.Context) (entities.Snapshot, error) {
	var vrs []interfaces.ValueRange
	err := s.backoff.Execute(ctx, "read all", func(ctx context.Context) error {
		var err error
		vrs, err = s.client.BatchGet(ctx, s.ranges())
		return err
	})
	if err != nil {
		log.Printf("[sheets][store] read failed err=%v", err)
		return entities.Snapshot{}, err
	}
	if len(vrs) != len(entities.AllKinds) {
		return entities.Snapshot{}, fmt.Errorf("expected %d value ranges, got %d", len(entities.AllKinds), len(vrs))
	}

	now := s.clock.Now()
	snap := entities.Snapshot{
		Clients:   decodeRows(vrs[0].Values, now, decodeClient),
		Materials: decodeRows(vrs[1].Values, now, decodeMaterial),
		Labor:     decodeRows(vrs[2].Values, now, decodeLabor),
		Products:  decodeRows(vrs[3].Values, now, decodeProduct),
		Quotes:    decodeRows(vrs[4].Values, now, decodeQuote),
	}
	c := snap.Count()
	log.Printf("[sheets][store] read clients=%d materials=%d labor=%d products=%d quotes=%d",
		c[entities.KindClients], c[entities.KindMaterials], c[entities.KindLabor], c[entities.KindProducts], c[entities.KindQuotes])
	return snap, nil
}

// WriteAll clears every data range, then writes the snapshot in one batch.
func (s *SheetStore) WriteAll(ctx context.Context, snap entities.Snapshot) error {
	now := s.clock.Now()
	data := []interfaces.ValueRange{
		{Range: s.names.dataRange(entities.KindClients), Values: encodeRows(snap.Clients, now, encodeClient)},
		{Range: s.names.dataRange(entities.KindMaterials), Values: encodeRows(snap.Materials, now, encodeMaterial)},
		{Range: s.names.dataRange(entities.KindLabor), Values: encodeRows(snap.Labor, now, encodeLabor)},
		{Range: s.names.dataRange(entities.KindProducts), Values: encodeRows(snap.Products, now, encodeProduct)},
		{Range: s.names.dataRange(entities.KindQuotes), Values: encodeRows(snap.Quotes, now, encodeQuote)},
	}

	if err := s.ClearAll(ctx); err != nil {
		return err
	}
	err := s.backoff.Execute(ctx, "write all", func(ctx context.Context) error {
		return s.client.BatchUpdate(ctx, data)
	})
	if err != nil {
		log.Printf("[sheets][store] write failed err=%v", err)
		return err
	}
	rows := 0
	for _, d := range data {
		rows += len(d.Values)
	}
	log.Printf("[sheets][store] write done rows=%d", rows)
	return nil
}

// ClearAll empties every data range and leaves the headers alone.
func (s *SheetStore) ClearAll(ctx context.Context) error {
	err := s.backoff.Execute(ctx, "clear all", func(ctx context.Context) error {
		return s.client.BatchClear(ctx, s.ranges())
	})
	if err != nil {
		log.Printf("[sheets][store] clear failed err=%v", err)
	}
	return err
}

// InitializeSheets writes the header row of every sheet.
func (s *SheetStore) InitializeSheets(ctx context.Context) error {
	for _, kind := range entities.AllKinds {
		header := headerFor(kind)
		row := make([]interface{}, len(header))
		for i, h := range header {
			row[i] = h
		}
		vr := interfaces.ValueRange{
			Range:  fmt.Sprintf("%s!A1:%c1", s.names.name(kind), rune('A'+len(header)-1)),
			Values: [][]interface{}{row},
		}
		err := s.backoff.Execute(ctx, "init "+string(kind), func(ctx context.Context) error {
			return s.client.Update(ctx, vr)
		})
		if err != nil {
			log.Printf("[sheets][store] header init failed sheet=%s err=%v", s.names.name(kind), err)
			return err
		}
		log.Printf("[sheets][store] header initialized sheet=%s", s.names.name(kind))
	}
	return nil
}
