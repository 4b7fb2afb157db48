package usecase

import (
	"time"

	"cotizador/internal/domain/entities"
	"cotizador/internal/domain/pricing"
	"cotizador/internal/usecase/interfaces"
)

type sampleLine struct {
	ref int
	qty float64
}

type sampleProduct struct {
	name      string
	kind      entities.ProductType
	materials []sampleLine
	labor     []sampleLine
}

var (
	sampleClients = []entities.Client{
		{Name: "Prodesa Constructora", TaxID: "800.200.598-2", Contact: "Carlos Martínez", Phone: "3101234567", Email: "cmartinez@prodesa.co", City: "Bogotá"},
		{Name: "Constructora Bolívar", TaxID: "860.034.313-1", Contact: "Ana Rodríguez", Phone: "3209876543", Email: "arodriguez@bolivar.co", City: "Medellín"},
		{Name: "Amarilo S.A.", TaxID: "900.123.456-7", Contact: "Luis Gómez", Phone: "3156789012", Email: "lgomez@amarilo.co", City: "Cali"},
	}

	sampleMaterials = []entities.Material{
		{Description: "COLUMNAS 70 X 70 2.5 MM", Category: "Perfil", Unit: "M", Price: 85000},
		{Description: "VIGA IPE 100", Category: "Viga", Unit: "M", Price: 120000},
		{Description: "LAMINA GALVANIZADA CAL 24", Category: "Lámina", Unit: "M2", Price: 45000},
		{Description: "PERFIL C 100X50X15X2MM", Category: "Perfil", Unit: "M", Price: 35000},
		{Description: "TUBO CUADRADO 40X40X2MM", Category: "Perfil", Unit: "M", Price: 28000},
		{Description: "PLATINA 1/4\" X 2\"", Category: "Platina", Unit: "M", Price: 18000},
		{Description: "SOLDADURA E6013", Category: "Soldadura", Unit: "KG", Price: 12000},
		{Description: "PINTURA ANTICORROSIVA", Category: "Pintura", Unit: "GL", Price: 95000},
		{Description: "TORNILLO EXPANSION 3/8\"X3\"", Category: "Fijación", Unit: "UND", Price: 2500},
		{Description: "PERNO GRADO 8 1/2\"X4\"", Category: "Fijación", Unit: "UND", Price: 3200},
	}

	sampleLabor = []entities.Labor{
		{Description: "CORTE TUBERIA", Category: entities.LaborFabrication, Unit: "M", Cost: 5000},
		{Description: "SOLDADURA ESTRUCTURAL", Category: entities.LaborFabrication, Unit: "M", Cost: 15000},
		{Description: "ARMADO MODULO", Category: entities.LaborFabrication, Unit: "UND", Cost: 250000},
		{Description: "PINTURA Y ACABADOS", Category: entities.LaborFabrication, Unit: "M2", Cost: 8000},
		{Description: "PERFORACION", Category: entities.LaborFabrication, Unit: "UND", Cost: 3000},
		{Description: "MONTAJE ESTRUCTURA", Category: entities.LaborInstallation, Unit: "M2", Cost: 45000},
		{Description: "ANCLAJE A LOSA", Category: entities.LaborInstallation, Unit: "UND", Cost: 35000},
		{Description: "AJUSTES FINALES", Category: entities.LaborInstallation, Unit: "JOR", Cost: 250000},
	}

	// refs index into sampleMaterials and sampleLabor.
	sampleProducts = []sampleProduct{
		{
			name:      "Escalera Metálica Tipo Industrial 3m",
			kind:      entities.ProductTypeProduct,
			materials: []sampleLine{{0, 6}, {3, 4}, {6, 2}, {7, 0.5}},
			labor:     []sampleLine{{0, 6}, {1, 10}, {3, 8}},
		},
		{
			name:      "Barandal Inoxidable 1.20m Altura",
			kind:      entities.ProductTypeProduct,
			materials: []sampleLine{{4, 3}, {5, 2}, {8, 8}},
			labor:     []sampleLine{{0, 3}, {1, 5}, {4, 8}},
		},
		{
			name:      "Estructura Soporte Mezzanine 20m2",
			kind:      entities.ProductTypeProduct,
			materials: []sampleLine{{1, 12}, {0, 8}, {2, 20}, {9, 24}},
			labor:     []sampleLine{{1, 20}, {2, 1}, {3, 20}},
		},
		{
			name:  "Instalación y Montaje Especializado",
			kind:  entities.ProductTypeService,
			labor: []sampleLine{{5, 20}, {6, 8}, {7, 1}},
		},
	}
)

// seedSampleCatalog loads a small metalwork catalog into d. Product prices
// are derived from d's current settings.
func seedSampleCatalog(d *entities.AppData, ids interfaces.IIDGenerator, now time.Time) error {
	d.EnsureMaps()
	for _, c := range sampleClients {
		c.ID = ids.NextID()
		c.LastModified = now
		d.Clients[c.ID] = c
	}

	materials := make([]entities.Material, len(sampleMaterials))
	for i, m := range sampleMaterials {
		m.ID = ids.NextID()
		m.Code = entities.SequenceCode(entities.MaterialCodePrefix, i+1)
		m.LastModified = now
		d.Materials[m.ID] = m
		materials[i] = m
	}

	labor := make([]entities.Labor, len(sampleLabor))
	perCategory := map[entities.LaborCategory]int{}
	for i, l := range sampleLabor {
		perCategory[l.Category]++
		l.ID = ids.NextID()
		l.Code = entities.SequenceCode(l.Category.CodePrefix(), perCategory[l.Category])
		l.LastModified = now
		d.Labor[l.ID] = l
		labor[i] = l
	}

	for _, sp := range sampleProducts {
		p := entities.Product{ID: ids.NextID(), Name: sp.name, Type: sp.kind, LastModified: now}
		for _, ln := range sp.materials {
			m := materials[ln.ref]
			p.Materials = append(p.Materials, entities.MaterialLine{MaterialID: m.ID, Qty: ln.qty, UnitPrice: m.Price})
		}
		for _, ln := range sp.labor {
			l := labor[ln.ref]
			p.Labor = append(p.Labor, entities.LaborLine{LaborID: l.ID, Qty: ln.qty, UnitPrice: l.Cost})
		}
		mat, lab := pricing.CompositionCost(p)
		price, err := pricing.ProductUnitPrice(p.Type, mat, lab, d.Config)
		if err != nil {
			return err
		}
		p.UnitPrice = price
		d.Metadata.LastProductNumber++
		p.Code = entities.SequenceCode(p.Type.CodePrefix(), d.Metadata.LastProductNumber)
		d.Products[p.ID] = p
	}
	return nil
}
