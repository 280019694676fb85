package entity

// GrapeBatch es un lote de uva recibido en bodega. El stock vivo es Weight
// (Kg); InitialWeight conserva el peso de recepción para calcular rendimientos.
type GrapeBatch struct {
	ID            string  `json:"id"` // ej. grape-Cab-1709925600000
	Type          Kind    `json:"type"`
	Variety       string  `json:"variety"`
	Vineyard      string  `json:"vineyard"` // origen / cuartel
	HarvestDate   string  `json:"harvestDate"`
	Weight        float64 `json:"weight"`
	InitialWeight float64 `json:"initialWeight"`
	Sugar         float64 `json:"sugar"`   // Baumé / Brix
	Acidity       float64 `json:"acidity"` // g/L
	Notes         string  `json:"notes,omitempty"`
}

func (g *GrapeBatch) ItemID() string     { return g.ID }
func (g *GrapeBatch) Kind() Kind         { return KindGrape }
func (g *GrapeBatch) Stock() float64     { return g.Weight }
func (g *GrapeBatch) SetStock(q float64) { g.Weight = q }

// DisplayName: la uva no tiene nombre comercial; se identifica por variedad.
func (g *GrapeBatch) DisplayName() string {
	if g.Variety != "" {
		return g.Variety
	}
	return g.ID
}
