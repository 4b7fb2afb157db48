package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"

	"cotizador/internal/domain/entities"
	"cotizador/internal/domain/pricing"
)

func (u *CatalogUseCase) ListProducts(ctx context.Context) ([]entities.Product, error) {
	d, err := u.state.Load(ctx)
	if err != nil {
		return nil, err
	}
	out := d.Snapshot().Products
	sort.SliceStable(out, func(i, j int) bool { return lessFold(out[i].Name, out[j].Name) })
	return out, nil
}

func (u *CatalogUseCase) GetProduct(ctx context.Context, id int64) (entities.Product, error) {
	d, err := u.state.Load(ctx)
	if err != nil {
		return entities.Product{}, err
	}
	p, ok := d.Products[id]
	if !ok {
		return entities.Product{}, ErrProductNotFound
	}
	return p, nil
}

// SaveProduct validates the composition, snapshots missing line prices from
// the catalog and derives the unit price from the current settings. New
// products get the next PROD-/SERV- code.
func (u *CatalogUseCase) SaveProduct(ctx context.Context, p entities.Product) (entities.Product, error) {
	p.Name = strings.TrimSpace(p.Name)
	if p.Type == "" {
		p.Type = entities.ProductTypeProduct
	}
	if p.Type == entities.ProductTypeService {
		p.Materials = nil
	}
	if msgs := productErrors(p); len(msgs) > 0 {
		return entities.Product{}, newValidationError(msgs...)
	}

	err := u.commit(ctx, func(d *entities.AppData) error {
		if p.ID != 0 {
			prev, ok := d.Products[p.ID]
			if !ok {
				return ErrProductNotFound
			}
			p.Code = prev.Code
		}
		if err := snapshotLinePrices(d, &p); err != nil {
			return err
		}
		mat, lab := pricing.CompositionCost(p)
		price, err := pricing.ProductUnitPrice(p.Type, mat, lab, d.Config)
		if err != nil {
			return err
		}
		p.UnitPrice = price
		if p.ID == 0 {
			p.ID = u.ids.NextID()
			d.Metadata.LastProductNumber++
			p.Code = entities.SequenceCode(p.Type.CodePrefix(), d.Metadata.LastProductNumber)
		}
		p.LastModified = u.clock.Now()
		d.Products[p.ID] = p
		return nil
	})
	if err != nil {
		return entities.Product{}, err
	}
	log.Printf("[catalog][usecase] product saved id=%d code=%s unit_price=%.2f", p.ID, p.Code, p.UnitPrice)
	u.recordUpsert(ctx, entities.KindProducts, p)
	return p, nil
}

func (u *CatalogUseCase) DeleteProduct(ctx context.Context, id int64) error {
	err := u.commit(ctx, func(d *entities.AppData) error {
		if _, ok := d.Products[id]; !ok {
			return ErrProductNotFound
		}
		delete(d.Products, id)
		return nil
	})
	if err != nil {
		return err
	}
	log.Printf("[catalog][usecase] product deleted id=%d", id)
	u.recordDelete(ctx, entities.KindProducts, id)
	return nil
}

// DuplicateProduct copies a product under a new id and the next code.
func (u *CatalogUseCase) DuplicateProduct(ctx context.Context, id int64) (entities.Product, error) {
	var dup entities.Product
	err := u.commit(ctx, func(d *entities.AppData) error {
		src, ok := d.Products[id]
		if !ok {
			return ErrProductNotFound
		}
		dup = src
		dup.Materials = append([]entities.MaterialLine(nil), src.Materials...)
		dup.Labor = append([]entities.LaborLine(nil), src.Labor...)
		dup.ID = u.ids.NextID()
		d.Metadata.LastProductNumber++
		dup.Code = entities.SequenceCode(src.Type.CodePrefix(), d.Metadata.LastProductNumber)
		dup.Name = src.Name + " (copy)"
		dup.LastModified = u.clock.Now()
		d.Products[dup.ID] = dup
		return nil
	})
	if err != nil {
		return entities.Product{}, err
	}
	log.Printf("[catalog][usecase] product duplicated source=%d id=%d code=%s", id, dup.ID, dup.Code)
	u.recordUpsert(ctx, entities.KindProducts, dup)
	return dup, nil
}

func (u *CatalogUseCase) ProductMargins(ctx context.Context) (pricing.ProductMarginSummary, error) {
	d, err := u.state.Load(ctx)
	if err != nil {
		return pricing.ProductMarginSummary{}, err
	}
	return pricing.ProductMargins(d.Snapshot().Products), nil
}

func productErrors(p entities.Product) []string {
	var msgs []string
	if p.Name == "" {
		msgs = append(msgs, "name is required")
	}
	if !p.Type.Valid() {
		msgs = append(msgs, fmt.Sprintf("type must be one of [%s %s]", entities.ProductTypeProduct, entities.ProductTypeService))
		return msgs
	}
	if p.Type == entities.ProductTypeProduct && len(p.Materials) == 0 {
		msgs = append(msgs, "a product needs at least one material line")
	}
	if p.Type == entities.ProductTypeService && len(p.Labor) == 0 {
		msgs = append(msgs, "a service needs at least one labor line")
	}
	for i, l := range p.Materials {
		if l.MaterialID == 0 {
			msgs = append(msgs, fmt.Sprintf("material line %d: material is required", i+1))
		}
		if l.Qty <= 0 {
			msgs = append(msgs, fmt.Sprintf("material line %d: quantity must be greater than zero", i+1))
		}
		if l.UnitPrice < 0 {
			msgs = append(msgs, fmt.Sprintf("material line %d: price cannot be negative", i+1))
		}
	}
	for i, l := range p.Labor {
		if l.LaborID == 0 {
			msgs = append(msgs, fmt.Sprintf("labor line %d: labor is required", i+1))
		}
		if l.Qty <= 0 {
			msgs = append(msgs, fmt.Sprintf("labor line %d: quantity must be greater than zero", i+1))
		}
		if l.UnitPrice < 0 {
			msgs = append(msgs, fmt.Sprintf("labor line %d: price cannot be negative", i+1))
		}
	}
	return msgs
}

// snapshotLinePrices fills zero line prices with the current catalog price.
func snapshotLinePrices(d *entities.AppData, p *entities.Product) error {
	p.Materials = append([]entities.MaterialLine(nil), p.Materials...)
	for i, l := range p.Materials {
		if l.UnitPrice != 0 {
			continue
		}
		m, ok := d.Materials[l.MaterialID]
		if !ok {
			return fmt.Errorf("material line %d: %w", i+1, ErrMaterialNotFound)
		}
		p.Materials[i].UnitPrice = m.Price
	}
	p.Labor = append([]entities.LaborLine(nil), p.Labor...)
	for i, l := range p.Labor {
		if l.UnitPrice != 0 {
			continue
		}
		lb, ok := d.Labor[l.LaborID]
		if !ok {
			return fmt.Errorf("labor line %d: %w", i+1, ErrLaborNotFound)
		}
		p.Labor[i].UnitPrice = lb.Cost
	}
	return nil
}

// IsNotFound reports whether err is one of the catalog lookup failures.
func IsNotFound(err error) bool {
	for _, target := range []error{ErrClientNotFound, ErrMaterialNotFound, ErrLaborNotFound, ErrProductNotFound, ErrQuoteNotFound} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
