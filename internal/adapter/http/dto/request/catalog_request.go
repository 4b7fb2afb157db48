package request

import (
	"strings"

	"cotizador/internal/domain/entities"
)

type ClientRequest struct {
	Name    string `json:"name" binding:"required"`
	TaxID   string `json:"taxId" binding:"required"`
	Contact string `json:"contact"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	City    string `json:"city"`
}

func (r ClientRequest) ToEntity(id int64) entities.Client {
	return entities.Client{
		ID:      id,
		Name:    r.Name,
		TaxID:   r.TaxID,
		Contact: strings.TrimSpace(r.Contact),
		Phone:   strings.TrimSpace(r.Phone),
		Email:   r.Email,
		City:    strings.TrimSpace(r.City),
	}
}

type MaterialRequest struct {
	Code        string  `json:"code"`
	Description string  `json:"description" binding:"required"`
	Category    string  `json:"category" binding:"required"`
	Unit        string  `json:"unit"`
	Price       float64 `json:"price"`
}

func (r MaterialRequest) ToEntity(id int64) entities.Material {
	return entities.Material{
		ID:          id,
		Code:        r.Code,
		Description: r.Description,
		Category:    r.Category,
		Unit:        strings.TrimSpace(r.Unit),
		Price:       r.Price,
	}
}

type LaborRequest struct {
	Code        string  `json:"code"`
	Description string  `json:"description" binding:"required"`
	Category    string  `json:"category" binding:"required"`
	Unit        string  `json:"unit"`
	Cost        float64 `json:"cost"`
}

func (r LaborRequest) ToEntity(id int64) entities.Labor {
	return entities.Labor{
		ID:          id,
		Code:        r.Code,
		Description: r.Description,
		Category:    entities.LaborCategory(strings.ToLower(strings.TrimSpace(r.Category))),
		Unit:        strings.TrimSpace(r.Unit),
		Cost:        r.Cost,
	}
}

type MaterialLineRequest struct {
	MaterialID int64   `json:"materialId" binding:"required"`
	Qty        float64 `json:"qty"`
	Price      float64 `json:"price"`
}

type LaborLineRequest struct {
	LaborID int64   `json:"laborId" binding:"required"`
	Qty     float64 `json:"qty"`
	Price   float64 `json:"price"`
}

// ProductRequest carries a product composition. A zero line price takes the
// current catalog price.
type ProductRequest struct {
	Name      string                `json:"name" binding:"required"`
	Type      string                `json:"type"`
	Materials []MaterialLineRequest `json:"materials"`
	Labor     []LaborLineRequest    `json:"labor"`
}

func (r ProductRequest) ToEntity(id int64) entities.Product {
	p := entities.Product{
		ID:   id,
		Name: r.Name,
		Type: entities.ProductType(strings.ToLower(strings.TrimSpace(r.Type))),
	}
	for _, m := range r.Materials {
		p.Materials = append(p.Materials, entities.MaterialLine{MaterialID: m.MaterialID, Qty: m.Qty, UnitPrice: m.Price})
	}
	for _, l := range r.Labor {
		p.Labor = append(p.Labor, entities.LaborLine{LaborID: l.LaborID, Qty: l.Qty, UnitPrice: l.Price})
	}
	return p
}
