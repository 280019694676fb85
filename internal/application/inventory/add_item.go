package inventory

import (
	"fmt"
	"time"

	"github.com/tu-usuario/bodega-api/internal/domain"
	"github.com/tu-usuario/bodega-api/internal/domain/entity"
)

// El alta de un ítem es un caso degenerado del flujo de movimientos: se crea
// el ítem y se asienta una entrada implícita por su stock de partida, con
// motivo "Alta inicial" atribuida al sistema. Así todo stock que alguna vez
// existió es trazable hasta un asiento del libro.

// GrapeInput datos de recepción de un lote de uva.
type GrapeInput struct {
	Variety     string
	Vineyard    string
	HarvestDate string
	Weight      float64 // Kg recibidos; será también el peso inicial
	Sugar       float64
	Acidity     float64
	Notes       string
}

// AddGrape registra la recepción de uva. El id se deriva de la variedad y el
// instante de alta (ej. grape-Cab-1709925600000).
func (uc *UseCase) AddGrape(in GrapeInput) (*entity.GrapeBatch, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if in.Variety == "" {
		return nil, domain.ErrInvalidInput
	}
	if !validQuantity(in.Weight) {
		return nil, domain.ErrInvalidQuantity
	}

	short := in.Variety
	if len([]rune(short)) > 3 {
		short = string([]rune(short)[:3])
	}
	g := entity.GrapeBatch{
		ID:            fmt.Sprintf("grape-%s-%d", short, time.Now().UnixMilli()),
		Type:          entity.KindGrape,
		Variety:       in.Variety,
		Vineyard:      in.Vineyard,
		HarvestDate:   in.HarvestDate,
		Weight:        in.Weight,
		InitialWeight: in.Weight,
		Sugar:         in.Sugar,
		Acidity:       in.Acidity,
		Notes:         in.Notes,
	}
	uc.data.Grapes = append(uc.data.Grapes, g)

	// se devuelve una copia, nunca una referencia al elemento vivo: el
	// llamante la serializa ya fuera del mutex
	uc.record(&g, entity.MovementTypeIN, in.Weight, entity.ReasonInitialEntry, entity.SystemUser, "")
	return &g, uc.persist()
}

// BulkInput datos de ingreso de vino a granel en un tanque.
type BulkInput struct {
	TankID                string // vacío = se genera TANK-<ms>
	BatchID               string
	Volume                float64 // Lts
	Stage                 string
	Alcohol               float64
	BarrelType            string
	FermentationStartDate string
	FermentationEndDate   string
	RackingDate           string
	Notes                 string
}

// AddBulk registra un tanque. El id del tanque lo pone el usuario, así que se
// valida su unicidad dentro de la colección.
func (uc *UseCase) AddBulk(in BulkInput) (*entity.BulkWine, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if in.BatchID == "" || in.Stage == "" {
		return nil, domain.ErrInvalidInput
	}
	if !validQuantity(in.Volume) {
		return nil, domain.ErrInvalidQuantity
	}
	id := in.TankID
	if id == "" {
		id = fmt.Sprintf("TANK-%d", time.Now().UnixMilli())
	}
	if _, exists := uc.data.FindItemIn(entity.KindBulk, id); exists {
		return nil, domain.ErrDuplicate
	}

	b := entity.BulkWine{
		ID:                    id,
		Type:                  entity.KindBulk,
		BatchID:               in.BatchID,
		Volume:                in.Volume,
		Stage:                 in.Stage,
		FermentationStartDate: in.FermentationStartDate,
		FermentationEndDate:   in.FermentationEndDate,
		RackingDate:           in.RackingDate,
		Alcohol:               in.Alcohol,
		BarrelType:            in.BarrelType,
		Notes:                 in.Notes,
	}
	uc.data.Bulk = append(uc.data.Bulk, b)

	uc.record(&b, entity.MovementTypeIN, in.Volume, entity.ReasonInitialEntry, entity.SystemUser, "")
	return &b, uc.persist()
}

// FinishedInput datos de alta de vino embotellado.
type FinishedInput struct {
	SKU          string // vacío = se genera SKU-<ms>
	Name         string
	Winery       string
	Vintage      int
	Varietal     string
	Region       string
	Format       string
	Location     string
	Quantity     float64 // botellas
	Cost         float64
	MinStock     float64
	BottlingDate string
	Notes        string
}

// AddFinished registra vino embotellado. El código de lote se deriva del
// instante de alta (L-<ms>) para trazabilidad.
func (uc *UseCase) AddFinished(in FinishedInput) (*entity.FinishedWine, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if !validQuantity(in.Quantity) {
		return nil, domain.ErrInvalidQuantity
	}
	now := time.Now().UnixMilli()
	id := in.SKU
	if id == "" {
		id = fmt.Sprintf("SKU-%d", now)
	}
	if _, exists := uc.data.FindItemIn(entity.KindFinished, id); exists {
		return nil, domain.ErrDuplicate
	}

	f := entity.FinishedWine{
		ID:           id,
		Type:         entity.KindFinished,
		SKU:          in.SKU,
		Name:         in.Name,
		Vintage:      in.Vintage,
		Format:       in.Format,
		Quantity:     in.Quantity,
		Location:     in.Location,
		BottlingDate: in.BottlingDate,
		LotCode:      fmt.Sprintf("L-%d", now),
		Cost:         in.Cost,
		MinStock:     in.MinStock,
		Winery:       in.Winery,
		Varietal:     in.Varietal,
		Region:       in.Region,
		Notes:        in.Notes,
	}
	uc.data.Finished = append(uc.data.Finished, f)

	uc.record(&f, entity.MovementTypeIN, in.Quantity, entity.ReasonInitialEntry, entity.SystemUser, "")
	return &f, uc.persist()
}

// MaterialInput datos de alta de un insumo de embotellado.
type MaterialInput struct {
	Name     string
	Supplier string
	Quantity float64
	MinStock float64
	Notes    string
}

// AddMaterial registra un insumo con id generado MAT-<ms>.
func (uc *UseCase) AddMaterial(in MaterialInput) (*entity.PackagingMaterial, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if !validQuantity(in.Quantity) {
		return nil, domain.ErrInvalidQuantity
	}

	m := entity.PackagingMaterial{
		ID:       fmt.Sprintf("MAT-%d", time.Now().UnixMilli()),
		Type:     entity.KindMaterial,
		Name:     in.Name,
		Supplier: in.Supplier,
		Quantity: in.Quantity,
		MinStock: in.MinStock,
		Notes:    in.Notes,
	}
	uc.data.Materials = append(uc.data.Materials, m)

	uc.record(&m, entity.MovementTypeIN, in.Quantity, entity.ReasonInitialEntry, entity.SystemUser, "")
	return &m, uc.persist()
}
