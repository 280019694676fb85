package entity

// FinishedWine es vino embotellado listo para venta. El stock vivo es Quantity
// (botellas); LotCode permite trazabilidad hasta el lote de embotellado.
type FinishedWine struct {
	ID           string  `json:"id"` // SKU o identificador interno
	Type         Kind    `json:"type"`
	SKU          string  `json:"sku"`
	Name         string  `json:"name"` // nombre comercial
	Vintage      int     `json:"vintage"`
	Format       string  `json:"format"` // 750ml, 1.5L...
	Quantity     float64 `json:"quantity"`
	Location     string  `json:"location"` // bodega / fila
	BottlingDate string  `json:"bottlingDate,omitempty"`
	LotCode      string  `json:"lotCode"`
	Cost         float64 `json:"cost,omitempty"`
	MinStock     float64 `json:"minStock,omitempty"`
	Winery       string  `json:"winery"`
	Varietal     string  `json:"varietal"`
	Region       string  `json:"region"`
	Notes        string  `json:"notes,omitempty"`
}

func (f *FinishedWine) ItemID() string     { return f.ID }
func (f *FinishedWine) Kind() Kind         { return KindFinished }
func (f *FinishedWine) Stock() float64     { return f.Quantity }
func (f *FinishedWine) SetStock(q float64) { f.Quantity = q }

func (f *FinishedWine) DisplayName() string {
	if f.Name != "" {
		return f.Name
	}
	return f.ID
}
