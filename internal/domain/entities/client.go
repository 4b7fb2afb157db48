package entities

import "time"

// EntityKind names one of the catalog collections. The value doubles as the
// key of the collection inside the persisted state blob.
type EntityKind string

const (
	KindClients   EntityKind = "clients"
	KindMaterials EntityKind = "materials"
	KindLabor     EntityKind = "labor"
	KindProducts  EntityKind = "products"
	KindQuotes    EntityKind = "quotes"
)

// AllKinds lists the collections in the fixed order used for remote pulls and pushes.
var AllKinds = []EntityKind{KindClients, KindMaterials, KindLabor, KindProducts, KindQuotes}

// Valid reports whether k is one of the known collections.
func (k EntityKind) Valid() bool {
	for _, known := range AllKinds {
		if k == known {
			return true
		}
	}
	return false
}

// Record is implemented by every synchronised entity.
type Record interface {
	GetID() int64
	GetLastModified() time.Time
}

// Client is a customer quotes are addressed to.
//
// Clients are referenced by Quote.ClientID and cannot be deleted while any
// quote still points at them.
type Client struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name" validate:"required"`
	TaxID        string    `json:"taxId" validate:"required"`
	Contact      string    `json:"contact"`
	Phone        string    `json:"phone"`
	Email        string    `json:"email" validate:"omitempty,email"`
	City         string    `json:"city"`
	LastModified time.Time `json:"lastModified"`
}

func (c Client) GetID() int64               { return c.ID }
func (c Client) GetLastModified() time.Time { return c.LastModified }
