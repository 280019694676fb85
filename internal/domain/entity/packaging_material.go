package entity

// PackagingMaterial es un insumo de embotellado (corchos, etiquetas, cápsulas,
// cajas). El stock vivo es Quantity, en unidades.
type PackagingMaterial struct {
	ID       string  `json:"id"`
	Type     Kind    `json:"type"`
	Name     string  `json:"name"` // tipo de material
	Supplier string  `json:"supplier"`
	Quantity float64 `json:"quantity"`
	MinStock float64 `json:"minStock,omitempty"`
	Notes    string  `json:"notes,omitempty"`
}

func (m *PackagingMaterial) ItemID() string     { return m.ID }
func (m *PackagingMaterial) Kind() Kind         { return KindMaterial }
func (m *PackagingMaterial) Stock() float64     { return m.Quantity }
func (m *PackagingMaterial) SetStock(q float64) { m.Quantity = q }

func (m *PackagingMaterial) DisplayName() string {
	if m.Name != "" {
		return m.Name
	}
	return m.ID
}
