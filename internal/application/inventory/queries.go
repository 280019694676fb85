package inventory

import "github.com/tu-usuario/bodega-api/internal/domain/entity"

// Lecturas del agregado. Devuelven copias: el estado vivo solo se muta dentro
// del propio caso de uso, bajo el mutex.

// Grapes devuelve los lotes de uva.
func (uc *UseCase) Grapes() []entity.GrapeBatch {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	out := make([]entity.GrapeBatch, len(uc.data.Grapes))
	copy(out, uc.data.Grapes)
	return out
}

// Bulk devuelve los tanques de vino a granel.
func (uc *UseCase) Bulk() []entity.BulkWine {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	out := make([]entity.BulkWine, len(uc.data.Bulk))
	copy(out, uc.data.Bulk)
	return out
}

// Finished devuelve el vino embotellado.
func (uc *UseCase) Finished() []entity.FinishedWine {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	out := make([]entity.FinishedWine, len(uc.data.Finished))
	copy(out, uc.data.Finished)
	return out
}

// Materials devuelve los insumos de embotellado.
func (uc *UseCase) Materials() []entity.PackagingMaterial {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	out := make([]entity.PackagingMaterial, len(uc.data.Materials))
	copy(out, uc.data.Materials)
	return out
}

// Movements devuelve el libro (más reciente primero), opcionalmente filtrado
// por el id del ítem referenciado. El filtro acepta ids de ítems ya borrados:
// el libro nunca se poda.
func (uc *UseCase) Movements(itemID string) []entity.Movement {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if itemID == "" {
		out := make([]entity.Movement, len(uc.data.Movements))
		copy(out, uc.data.Movements)
		return out
	}
	out := []entity.Movement{}
	for _, m := range uc.data.Movements {
		if m.ItemID == itemID {
			out = append(out, m)
		}
	}
	return out
}

// Snapshot devuelve una copia del agregado completo para lecturas de volumen
// (informes, export, resumen).
func (uc *UseCase) Snapshot() *entity.WineryData {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.data.Clone()
}
