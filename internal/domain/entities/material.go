package entities

import (
	"fmt"
	"time"
)

const MaterialCodePrefix = "MAT-"

// Material is a raw input priced per unit. Materials only appear inside
// product compositions, never directly on a quote.
type Material struct {
	ID           int64     `json:"id"`
	Code         string    `json:"code"`
	Description  string    `json:"description" validate:"required"`
	Category     string    `json:"category" validate:"required"`
	Unit         string    `json:"unit"`
	Price        float64   `json:"price" validate:"gte=0"`
	LastModified time.Time `json:"lastModified"`
}

func (m Material) GetID() int64               { return m.ID }
func (m Material) GetLastModified() time.Time { return m.LastModified }

// SequenceCode formats a catalog code such as MAT-007.
func SequenceCode(prefix string, n int) string {
	return fmt.Sprintf("%s%03d", prefix, n)
}
