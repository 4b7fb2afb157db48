package pricing

import (
	"cotizador/internal/domain/entities"
)

// CompositionCost returns the material and labor cost of a product from the
// price snapshots stored on its lines.
func CompositionCost(p entities.Product) (materials, labor float64) {
	m := make([][2]float64, 0, len(p.Materials))
	for _, l := range p.Materials {
		m = append(m, [2]float64{l.Qty, l.UnitPrice})
	}
	lb := make([][2]float64, 0, len(p.Labor))
	for _, l := range p.Labor {
		lb = append(lb, [2]float64{l.Qty, l.UnitPrice})
	}
	return toFloat(sumLines(m)), toFloat(sumLines(lb))
}

// ProductUnitPrice derives the sale price of a product.
//
// A producto is (materials + labor) / (1 - supplyMargin). A servicio is
// labor / (1 - AIU) where AIU is admin + contingency + profit; its material
// cost is ignored.
func ProductUnitPrice(t entities.ProductType, materialsCost, laborCost float64, s entities.Settings) (float64, error) {
	if t == entities.ProductTypeService {
		price, err := grossUp(round2(dec(laborCost)), s.AIUPercent())
		if err != nil {
			return 0, err
		}
		return toFloat(price), nil
	}
	cost := round2(dec(materialsCost)).Add(round2(dec(laborCost)))
	price, err := grossUp(cost, s.SupplyMargin)
	if err != nil {
		return 0, err
	}
	return toFloat(price), nil
}
