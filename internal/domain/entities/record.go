package entities

import (
	"fmt"
	"time"
)

// Touch returns a copy of r with LastModified set to t.
func Touch(r Record, t time.Time) (Record, error) {
	switch v := r.(type) {
	case Client:
		v.LastModified = t
		return v, nil
	case Material:
		v.LastModified = t
		return v, nil
	case Labor:
		v.LastModified = t
		return v, nil
	case Product:
		v.LastModified = t
		return v, nil
	case Quote:
		v.LastModified = t
		return v, nil
	}
	return nil, fmt.Errorf("unsupported record type %T", r)
}

// KindOf returns the collection a record belongs to.
func KindOf(r Record) (EntityKind, error) {
	switch r.(type) {
	case Client:
		return KindClients, nil
	case Material:
		return KindMaterials, nil
	case Labor:
		return KindLabor, nil
	case Product:
		return KindProducts, nil
	case Quote:
		return KindQuotes, nil
	}
	return "", fmt.Errorf("unsupported record type %T", r)
}

// Upsert stores r in the collection matching its type.
func (d *AppData) Upsert(r Record) error {
	d.EnsureMaps()
	switch v := r.(type) {
	case Client:
		d.Clients[v.ID] = v
	case Material:
		d.Materials[v.ID] = v
	case Labor:
		d.Labor[v.ID] = v
	case Product:
		d.Products[v.ID] = v
	case Quote:
		d.Quotes[v.ID] = v
	default:
		return fmt.Errorf("unsupported record type %T", r)
	}
	return nil
}

// Delete removes id from the collection and reports whether it was present.
func (d *AppData) Delete(kind EntityKind, id int64) (bool, error) {
	var found bool
	switch kind {
	case KindClients:
		_, found = d.Clients[id]
		delete(d.Clients, id)
	case KindMaterials:
		_, found = d.Materials[id]
		delete(d.Materials, id)
	case KindLabor:
		_, found = d.Labor[id]
		delete(d.Labor, id)
	case KindProducts:
		_, found = d.Products[id]
		delete(d.Products, id)
	case KindQuotes:
		_, found = d.Quotes[id]
		delete(d.Quotes, id)
	default:
		return false, fmt.Errorf("unknown entity kind %q", kind)
	}
	return found, nil
}
