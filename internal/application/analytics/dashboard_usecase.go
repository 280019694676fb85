// Package analytics contiene los casos de uso de reporte: el resumen del
// estado de la bodega que alimenta el dashboard.
package analytics

import (
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/bodega-api/internal/application/dto"
	"github.com/tu-usuario/bodega-api/internal/application/inventory"
	"github.com/tu-usuario/bodega-api/internal/domain/entity"
)

// DashboardUseCase calcula existencias por familia, alertas de stock mínimo
// y la valorización estimada del vino embotellado.
//
// Lee siempre sobre una copia del agregado; no muta nada.
type DashboardUseCase struct {
	inv *inventory.UseCase
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(inv *inventory.UseCase) *DashboardUseCase {
	return &DashboardUseCase{inv: inv}
}

// GetSummary construye el DashboardSummaryDTO con el estado actual.
//
// La valorización se calcula en decimal y no en float: los costos son dinero
// y la suma de muchos productos cantidad × costo acumula error binario.
func (uc *DashboardUseCase) GetSummary() *dto.DashboardSummaryDTO {
	data := uc.inv.Snapshot()

	summary := &dto.DashboardSummaryDTO{
		Movements: len(data.Movements),
		LowStock:  []dto.LowStockAlertDTO{},
	}

	var grapesTotal, bulkTotal, finishedTotal, materialsTotal float64
	for _, g := range data.Grapes {
		grapesTotal += g.Weight
	}
	for _, b := range data.Bulk {
		bulkTotal += b.Volume
	}

	cellarValue := decimal.Zero
	for _, f := range data.Finished {
		finishedTotal += f.Quantity
		if f.Cost > 0 {
			value := decimal.NewFromFloat(f.Quantity).Mul(decimal.NewFromFloat(f.Cost))
			cellarValue = cellarValue.Add(value)
		}
		if f.MinStock > 0 && f.Quantity < f.MinStock {
			summary.LowStock = append(summary.LowStock, dto.LowStockAlertDTO{
				ItemID:   f.ID,
				Name:     f.DisplayName(),
				Kind:     string(entity.KindFinished),
				Quantity: f.Quantity,
				MinStock: f.MinStock,
			})
		}
	}
	for _, m := range data.Materials {
		materialsTotal += m.Quantity
		if m.MinStock > 0 && m.Quantity < m.MinStock {
			summary.LowStock = append(summary.LowStock, dto.LowStockAlertDTO{
				ItemID:   m.ID,
				Name:     m.DisplayName(),
				Kind:     string(entity.KindMaterial),
				Quantity: m.Quantity,
				MinStock: m.MinStock,
			})
		}
	}

	summary.Grapes = dto.CollectionSummaryDTO{Count: len(data.Grapes), TotalStock: grapesTotal, Unit: entity.KindGrape.Unit()}
	summary.Bulk = dto.CollectionSummaryDTO{Count: len(data.Bulk), TotalStock: bulkTotal, Unit: entity.KindBulk.Unit()}
	summary.Finished = dto.CollectionSummaryDTO{Count: len(data.Finished), TotalStock: finishedTotal, Unit: entity.KindFinished.Unit()}
	summary.Materials = dto.CollectionSummaryDTO{Count: len(data.Materials), TotalStock: materialsTotal, Unit: entity.KindMaterial.Unit()}
	summary.CellarValue = cellarValue.Round(2)

	return summary
}
