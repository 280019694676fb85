package entity

// Etapas de elaboración del vino a granel.
const (
	StageFermentation  = "Fermentación"
	StageMaceration    = "Maceración"
	StagePressing      = "Prensado"
	StageAging         = "Crianza"
	StageStabilization = "Estabilización"
	StageFiltering     = "Filtrado"
)

// BulkWine es vino a granel en un tanque o barrica. El ID es el identificador
// del envase (ej. T-INOX-05) y el stock vivo es Volume (Lts).
type BulkWine struct {
	ID                    string  `json:"id"`
	Type                  Kind    `json:"type"`
	BatchID               string  `json:"batchId"` // lote interno de elaboración
	Volume                float64 `json:"volume"`
	Stage                 string  `json:"stage"`
	FermentationStartDate string  `json:"fermentationStartDate,omitempty"`
	FermentationEndDate   string  `json:"fermentationEndDate,omitempty"`
	RackingDate           string  `json:"rackingDate,omitempty"`
	Alcohol               float64 `json:"alcohol,omitempty"` // % vol
	BarrelType            string  `json:"barrelType,omitempty"`
	Notes                 string  `json:"notes,omitempty"`
}

func (b *BulkWine) ItemID() string     { return b.ID }
func (b *BulkWine) Kind() Kind         { return KindBulk }
func (b *BulkWine) Stock() float64     { return b.Volume }
func (b *BulkWine) SetStock(q float64) { b.Volume = q }

// DisplayName: el tanque se identifica por su propio ID.
func (b *BulkWine) DisplayName() string { return b.ID }
