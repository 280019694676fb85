package analytics_test

import (
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/bodega-api/internal/application/analytics"
	"github.com/tu-usuario/bodega-api/internal/application/inventory"
	"github.com/tu-usuario/bodega-api/internal/domain/entity"
	"github.com/tu-usuario/bodega-api/internal/infrastructure/storage"
	"github.com/tu-usuario/bodega-api/pkg/logger"
)

func newInventory(t *testing.T) *inventory.UseCase {
	t.Helper()
	store := storage.NewFileStore(filepath.Join(t.TempDir(), "bodega.json"), logger.Nop())
	uc, err := inventory.NewUseCase(store, logger.Nop())
	require.NoError(t, err)
	return uc
}

func TestGetSummary_BodegaVacia(t *testing.T) {
	dash := analytics.NewDashboardUseCase(newInventory(t))

	sum := dash.GetSummary()
	assert.Zero(t, sum.Grapes.Count)
	assert.Zero(t, sum.Finished.TotalStock)
	assert.Zero(t, sum.Movements)
	assert.Empty(t, sum.LowStock)
	assert.True(t, sum.CellarValue.IsZero())
}

func TestGetSummary_TotalesPorFamilia(t *testing.T) {
	inv := newInventory(t)
	_, err := inv.AddGrape(inventory.GrapeInput{Variety: "Malbec", Weight: 1200})
	require.NoError(t, err)
	_, err = inv.AddGrape(inventory.GrapeInput{Variety: "Syrah", Weight: 800})
	require.NoError(t, err)
	_, err = inv.AddBulk(inventory.BulkInput{TankID: "T-01", BatchID: "L-1", Stage: entity.StageFermentation, Volume: 950})
	require.NoError(t, err)
	_, err = inv.AddFinished(inventory.FinishedInput{Name: "Gran Reserva", Winery: "B", Varietal: "Malbec", Region: "Mendoza", Format: "750ml", Vintage: 2021, Quantity: 36})
	require.NoError(t, err)
	_, err = inv.AddMaterial(inventory.MaterialInput{Name: "Corchos", Supplier: "Corchera SA", Quantity: 500})
	require.NoError(t, err)

	sum := analytics.NewDashboardUseCase(inv).GetSummary()

	assert.Equal(t, 2, sum.Grapes.Count)
	assert.Equal(t, 2000.0, sum.Grapes.TotalStock)
	assert.Equal(t, "Kg", sum.Grapes.Unit)
	assert.Equal(t, 950.0, sum.Bulk.TotalStock)
	assert.Equal(t, "Lts", sum.Bulk.Unit)
	assert.Equal(t, 36.0, sum.Finished.TotalStock)
	assert.Equal(t, 500.0, sum.Materials.TotalStock)
	assert.Equal(t, "Uni", sum.Materials.Unit)
	// cinco altas, cinco entradas implícitas en el libro
	assert.Equal(t, 5, sum.Movements)
}

func TestGetSummary_AlertasDeStockMinimo(t *testing.T) {
	inv := newInventory(t)
	// por debajo del mínimo
	low, err := inv.AddFinished(inventory.FinishedInput{SKU: "CR-2020", Name: "Crianza", Winery: "B", Varietal: "Tempranillo", Region: "Rioja", Format: "750ml", Vintage: 2020, Quantity: 6, MinStock: 12})
	require.NoError(t, err)
	// en el mínimo exacto: no alerta
	_, err = inv.AddFinished(inventory.FinishedInput{SKU: "JV-2024", Name: "Joven", Winery: "B", Varietal: "Garnacha", Region: "Rioja", Format: "750ml", Vintage: 2024, Quantity: 12, MinStock: 12})
	require.NoError(t, err)
	// sin mínimo configurado: nunca alerta aunque esté a cero
	_, err = inv.AddMaterial(inventory.MaterialInput{Name: "Etiquetas", Supplier: "S", Quantity: 1})
	require.NoError(t, err)
	_, err = inv.AdjustStock(entity.KindMaterial, inv.Materials()[0].ID, -1, "")
	require.NoError(t, err)
	// insumo bajo mínimo
	_, err = inv.AddMaterial(inventory.MaterialInput{Name: "Corchos", Supplier: "S", Quantity: 40, MinStock: 100})
	require.NoError(t, err)

	sum := analytics.NewDashboardUseCase(inv).GetSummary()

	require.Len(t, sum.LowStock, 2)
	assert.Equal(t, low.ID, sum.LowStock[0].ItemID)
	assert.Equal(t, "Crianza", sum.LowStock[0].Name)
	assert.Equal(t, "finished", sum.LowStock[0].Kind)
	assert.Equal(t, "Corchos", sum.LowStock[1].Name)
	assert.Equal(t, "material", sum.LowStock[1].Kind)
}

func TestGetSummary_ValorizacionEnDecimal(t *testing.T) {
	inv := newInventory(t)
	// 0.1 + 0.2 clásico: 3 × 10.1 y 3 × 0.2 deben sumar exacto
	_, err := inv.AddFinished(inventory.FinishedInput{SKU: "A", Name: "A", Winery: "B", Varietal: "V", Region: "R", Format: "750ml", Vintage: 2021, Quantity: 3, Cost: 10.1})
	require.NoError(t, err)
	_, err = inv.AddFinished(inventory.FinishedInput{SKU: "B", Name: "B", Winery: "B", Varietal: "V", Region: "R", Format: "750ml", Vintage: 2022, Quantity: 3, Cost: 0.2})
	require.NoError(t, err)
	// sin costo: no aporta a la valorización
	_, err = inv.AddFinished(inventory.FinishedInput{SKU: "C", Name: "C", Winery: "B", Varietal: "V", Region: "R", Format: "750ml", Vintage: 2023, Quantity: 99})
	require.NoError(t, err)

	sum := analytics.NewDashboardUseCase(inv).GetSummary()

	assert.True(t, decimal.NewFromFloat(30.9).Equal(sum.CellarValue),
		"esperado 30.9, obtenido %s", sum.CellarValue)
}
