package dto

import "github.com/shopspring/decimal"

// CollectionSummaryDTO existencias agregadas de una familia.
type CollectionSummaryDTO struct {
	Count      int     `json:"count"`
	TotalStock float64 `json:"total_stock"`
	Unit       string  `json:"unit"`
}

// LowStockAlertDTO ítem por debajo de su stock mínimo configurado.
type LowStockAlertDTO struct {
	ItemID   string  `json:"item_id"`
	Name     string  `json:"name"`
	Kind     string  `json:"kind"`
	Quantity float64 `json:"quantity"`
	MinStock float64 `json:"min_stock"`
}

// DashboardSummaryDTO resumen del estado de la bodega.
type DashboardSummaryDTO struct {
	Grapes    CollectionSummaryDTO `json:"grapes"`
	Bulk      CollectionSummaryDTO `json:"bulk"`
	Finished  CollectionSummaryDTO `json:"finished"`
	Materials CollectionSummaryDTO `json:"materials"`
	Movements int                  `json:"movements"`
	LowStock  []LowStockAlertDTO   `json:"low_stock"`
	// Valorización estimada de botellas: Σ cantidad × costo, redondeada a 2.
	CellarValue decimal.Decimal `json:"cellar_value"`
}
