package dto

// AddItemRequest body de POST /api/items. El campo `type` discrimina la
// familia; el resto de campos aplican según ella (los de las otras familias
// se ignoran). La capa HTTP traduce esto a los inputs tipados del caso de uso:
// el núcleo nunca ve el formulario crudo.
type AddItemRequest struct {
	Type string `json:"type"`

	// uva
	Variety     string  `json:"variety,omitempty"`
	Vineyard    string  `json:"vineyard,omitempty"`
	HarvestDate string  `json:"harvest_date,omitempty"`
	Weight      float64 `json:"weight,omitempty"`
	Sugar       float64 `json:"sugar,omitempty"`
	Acidity     float64 `json:"acidity,omitempty"`

	// granel
	TankID                string  `json:"tank_id,omitempty"`
	BatchID               string  `json:"batch_id,omitempty"`
	Volume                float64 `json:"volume,omitempty"`
	Stage                 string  `json:"stage,omitempty"`
	Alcohol               float64 `json:"alcohol,omitempty"`
	BarrelType            string  `json:"barrel_type,omitempty"`
	FermentationStartDate string  `json:"fermentation_start_date,omitempty"`
	FermentationEndDate   string  `json:"fermentation_end_date,omitempty"`
	RackingDate           string  `json:"racking_date,omitempty"`

	// botellas
	SKU          string  `json:"sku,omitempty"`
	Name         string  `json:"name,omitempty"`
	Winery       string  `json:"winery,omitempty"`
	Vintage      int     `json:"vintage,omitempty"`
	Varietal     string  `json:"varietal,omitempty"`
	Region       string  `json:"region,omitempty"`
	Format       string  `json:"format,omitempty"`
	Location     string  `json:"location,omitempty"`
	Quantity     float64 `json:"quantity,omitempty"`
	Cost         float64 `json:"cost,omitempty"`
	MinStock     float64 `json:"min_stock,omitempty"`
	BottlingDate string  `json:"bottling_date,omitempty"`

	// insumos (Name y Quantity se comparten con botellas)
	Supplier string `json:"supplier,omitempty"`

	Notes string `json:"notes,omitempty"`
}

// RegisterMovementRequest body de POST /api/movements.
type RegisterMovementRequest struct {
	ItemID   string  `json:"item_id"`
	Type     string  `json:"type"` // IN | OUT
	Quantity float64 `json:"quantity"`
	Reason   string  `json:"reason"`
	User     string  `json:"user"`
	Notes    string  `json:"notes,omitempty"`
}

// AdjustStockRequest body de POST /api/items/:id/adjust (ajuste directo,
// con recorte a cero en lugar de rechazo).
type AdjustStockRequest struct {
	Kind  string  `json:"kind"`
	Delta float64 `json:"delta"`
	User  string  `json:"user,omitempty"`
}
