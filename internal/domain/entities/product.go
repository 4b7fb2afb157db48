package entities

import "time"

type ProductType string

const (
	ProductTypeProduct ProductType = "producto"
	ProductTypeService ProductType = "servicio"
)

// CodePrefix returns PROD or SERV. Both share one monotonic counter.
func (t ProductType) CodePrefix() string {
	if t == ProductTypeService {
		return "SERV-"
	}
	return "PROD-"
}

func (t ProductType) Valid() bool {
	return t == ProductTypeProduct || t == ProductTypeService
}

// MaterialLine is one material entry of a product composition. UnitPrice is a
// snapshot of the material price taken when the product was saved.
type MaterialLine struct {
	MaterialID int64   `json:"materialId"`
	Qty        float64 `json:"qty"`
	UnitPrice  float64 `json:"price"`
}

// LaborLine is one labor entry of a product composition.
type LaborLine struct {
	LaborID   int64   `json:"laborId"`
	Qty       float64 `json:"qty"`
	UnitPrice float64 `json:"price"`
}

// Product is a sellable product or service built from materials and labor.
//
// UnitPrice is recomputed and stored on every save; later catalog price
// changes never alter it silently.
type Product struct {
	ID           int64          `json:"id"`
	Code         string         `json:"code"`
	Name         string         `json:"name"`
	Type         ProductType    `json:"type"`
	Materials    []MaterialLine `json:"materials"`
	Labor        []LaborLine    `json:"labor"`
	UnitPrice    float64        `json:"unitPrice"`
	LastModified time.Time      `json:"lastModified"`
}

func (p Product) GetID() int64               { return p.ID }
func (p Product) GetLastModified() time.Time { return p.LastModified }
