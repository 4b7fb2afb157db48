package entities

import "time"

type LaborCategory string

const (
	LaborFabrication  LaborCategory = "fabricacion"
	LaborInstallation LaborCategory = "instalacion"
)

// CodePrefix returns the code prefix used for auto-generated labor codes.
func (c LaborCategory) CodePrefix() string {
	if c == LaborFabrication {
		return "MO-FAB-"
	}
	return "MO-INS-"
}

// Labor is a workmanship activity priced per unit.
type Labor struct {
	ID           int64         `json:"id"`
	Code         string        `json:"code"`
	Description  string        `json:"description" validate:"required"`
	Category     LaborCategory `json:"category" validate:"oneof=fabricacion instalacion"`
	Unit         string        `json:"unit"`
	Cost         float64       `json:"cost" validate:"gte=0"`
	LastModified time.Time     `json:"lastModified"`
}

func (l Labor) GetID() int64               { return l.ID }
func (l Labor) GetLastModified() time.Time { return l.LastModified }
