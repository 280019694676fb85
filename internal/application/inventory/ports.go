package inventory

import "github.com/tu-usuario/bodega-api/internal/domain/entity"

// SnapshotStore persiste y recupera la raíz de agregado completa como una
// sola unidad. Garantiza la atomicidad del snapshot: nunca se escribe ni se
// lee colección a colección. La implementación de fichero local vive en
// infrastructure/storage.
type SnapshotStore interface {
	// Load recupera el último snapshot; si no existe todavía devuelve un
	// agregado vacío, no un error.
	Load() (*entity.WineryData, error)
	Save(data *entity.WineryData) error

	// Export serializa el agregado con el formato de intercambio (legible).
	Export(data *entity.WineryData) ([]byte, error)
	// Import valida y deserializa un blob de intercambio, aplicando la
	// migración del formato antiguo. No toca ningún estado: solo traduce.
	Import(blob []byte) (*entity.WineryData, error)
}
