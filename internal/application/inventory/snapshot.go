package inventory

import (
	"fmt"
	"time"
)

// ExportJSON serializa el agregado completo con el formato de intercambio.
func (uc *UseCase) ExportJSON() ([]byte, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.store.Export(uc.data)
}

// ExportFileName nombre de descarga sugerido, fechado con el día actual en
// UTC, el mismo huso con el que se fechan los asientos.
func ExportFileName(now time.Time) string {
	return fmt.Sprintf("bodega_%s.json", now.UTC().Format("2006-01-02"))
}

// ImportJSON reemplaza el agregado completo por el contenido del blob. Es
// todo-o-nada: primero se valida y deserializa por completo; solo si eso
// tiene éxito se sustituye el estado en memoria y se persiste. Un blob
// malformado devuelve ErrInvalidFormat sin tocar nada. La confirmación del
// usuario es responsabilidad del llamante: aquí ya no hay vuelta atrás.
func (uc *UseCase) ImportJSON(blob []byte) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	data, err := uc.store.Import(blob)
	if err != nil {
		return err
	}
	uc.data = data
	return uc.persist()
}
