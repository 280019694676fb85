package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/bodega-api/internal/application/analytics"
	"github.com/tu-usuario/bodega-api/internal/application/inventory"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	InventoryUC *inventory.UseCase
	DashboardUC *analytics.DashboardUseCase
	ReportGen   InventoryReportGenerator
}

// Router registra las rutas de la API. Es una herramienta monousuario en
// local: no hay autenticación, la confirmación destructiva del import viaja
// como query param explícito.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Ítems de inventario (las cuatro familias)
	inventoryHandler := NewInventoryHandler(deps.InventoryUC)
	items := api.Group("/items")
	items.Get("/", inventoryHandler.ListItems)
	items.Post("/", inventoryHandler.CreateItem)
	items.Post("/:id/adjust", inventoryHandler.AdjustStock)
	items.Delete("/:id", inventoryHandler.DeleteItem)

	// Libro de movimientos
	movements := api.Group("/movements")
	movements.Get("/", inventoryHandler.ListMovements)
	movements.Get("/reasons", inventoryHandler.MovementReasons)
	movements.Post("/", inventoryHandler.RegisterMovement)

	// Snapshot completo (export / import destructivo)
	snapshotHandler := NewSnapshotHandler(deps.InventoryUC)
	api.Get("/export", snapshotHandler.Export)
	api.Post("/import", snapshotHandler.Import)

	// Dashboard e informes
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	api.Get("/dashboard/summary", dashboardHandler.Summary)

	reportHandler := NewReportHandler(deps.InventoryUC, deps.ReportGen)
	api.Get("/reports/inventory", reportHandler.InventoryPDF)
}
