package entities

import (
	"encoding/json"
	"sort"
)

// SchemaVersion is the blob version this build reads and writes. A stored
// blob carrying any other version is discarded and replaced by defaults.
const SchemaVersion = "2.0"

// AppData is the full local state persisted as a single blob.
type AppData struct {
	Version   string             `json:"version"`
	Config    Settings           `json:"config"`
	Clients   map[int64]Client   `json:"clients"`
	Materials map[int64]Material `json:"materials"`
	Labor     map[int64]Labor    `json:"labor"`
	Products  map[int64]Product  `json:"products"`
	Quotes    map[int64]Quote    `json:"quotes"`
	Metadata  Metadata           `json:"metadata"`
}

func NewAppData() AppData {
	return AppData{
		Version:   SchemaVersion,
		Config:    DefaultSettings(),
		Clients:   map[int64]Client{},
		Materials: map[int64]Material{},
		Labor:     map[int64]Labor{},
		Products:  map[int64]Product{},
		Quotes:    map[int64]Quote{},
	}
}

// EnsureMaps replaces nil collections with empty ones.
func (d *AppData) EnsureMaps() {
	if d.Clients == nil {
		d.Clients = map[int64]Client{}
	}
	if d.Materials == nil {
		d.Materials = map[int64]Material{}
	}
	if d.Labor == nil {
		d.Labor = map[int64]Labor{}
	}
	if d.Products == nil {
		d.Products = map[int64]Product{}
	}
	if d.Quotes == nil {
		d.Quotes = map[int64]Quote{}
	}
}

// Clone returns a deep copy of d.
func (d AppData) Clone() (AppData, error) {
	raw, err := json.Marshal(d)
	if err != nil {
		return AppData{}, err
	}
	var out AppData
	if err := json.Unmarshal(raw, &out); err != nil {
		return AppData{}, err
	}
	out.EnsureMaps()
	return out, nil
}

// Snapshot flattens the collections into id-ordered slices.
func (d AppData) Snapshot() Snapshot {
	return Snapshot{
		Clients:   sortedValues(d.Clients),
		Materials: sortedValues(d.Materials),
		Labor:     sortedValues(d.Labor),
		Products:  sortedValues(d.Products),
		Quotes:    sortedValues(d.Quotes),
	}
}

// ReplaceEntities overwrites every collection with the snapshot contents.
// Settings and metadata are left alone.
func (d *AppData) ReplaceEntities(s Snapshot) {
	d.Clients = indexByID(s.Clients)
	d.Materials = indexByID(s.Materials)
	d.Labor = indexByID(s.Labor)
	d.Products = indexByID(s.Products)
	d.Quotes = indexByID(s.Quotes)
}

// Snapshot is the list view of the five synchronised collections.
type Snapshot struct {
	Clients   []Client   `json:"clients"`
	Materials []Material `json:"materials"`
	Labor     []Labor    `json:"labor"`
	Products  []Product  `json:"products"`
	Quotes    []Quote    `json:"quotes"`
}

// Count returns the number of records per collection.
func (s Snapshot) Count() map[EntityKind]int {
	return map[EntityKind]int{
		KindClients:   len(s.Clients),
		KindMaterials: len(s.Materials),
		KindLabor:     len(s.Labor),
		KindProducts:  len(s.Products),
		KindQuotes:    len(s.Quotes),
	}
}

func sortedValues[T Record](m map[int64]T) []T {
	out := make([]T, 0, len(m))
	for _, v := range m {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].GetID() < out[j].GetID() })
	return out
}

func indexByID[T Record](items []T) map[int64]T {
	out := make(map[int64]T, len(items))
	for _, it := range items {
		out[it.GetID()] = it
	}
	return out
}
