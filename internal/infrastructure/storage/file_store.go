package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tu-usuario/bodega-api/internal/domain"
	"github.com/tu-usuario/bodega-api/internal/domain/entity"
	"github.com/tu-usuario/bodega-api/pkg/logger"
)

// FileStore guarda y carga WineryData de un fichero JSON local. Implementa
// inventory.SnapshotStore.
type FileStore struct {
	path string
	log  *logger.Logger
}

// NewFileStore construye el store sobre la ruta indicada. El fichero y su
// directorio se crean en el primer Save.
func NewFileStore(path string, log *logger.Logger) *FileStore {
	return &FileStore{path: path, log: log}
}

// Load lee el último snapshot. Un fichero inexistente no es un error: es una
// bodega recién estrenada y se devuelve el agregado vacío.
func (s *FileStore) Load() (*entity.WineryData, error) {
	raw, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return entity.NewWineryData(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: leer %s: %v", domain.ErrStorageUnavailable, s.path, err)
	}
	data, err := DecodeSnapshot(raw)
	if err != nil {
		return nil, fmt.Errorf("cargar snapshot %s: %w", s.path, err)
	}
	return data, nil
}

// Save escribe el agregado completo de forma atómica: primero a un fichero
// temporal del mismo directorio y después rename, para no dejar nunca un
// snapshot a medio escribir si el proceso muere.
func (s *FileStore) Save(data *entity.WineryData) error {
	blob, err := EncodeSnapshot(data)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("%w: crear %s: %v", domain.ErrStorageUnavailable, dir, err)
		}
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, blob, 0o644); err != nil {
		return fmt.Errorf("%w: escribir %s: %v", domain.ErrStorageUnavailable, tmp, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("%w: renombrar a %s: %v", domain.ErrStorageUnavailable, s.path, err)
	}
	s.log.Debug().Str("path", s.path).Msg("snapshot de bodega guardado")
	return nil
}

// Export serializa para descarga; el blob es el mismo que se persiste.
func (s *FileStore) Export(data *entity.WineryData) ([]byte, error) {
	return EncodeSnapshot(data)
}

// Import valida y deserializa un blob subido por el usuario, con migración
// del formato antiguo. No escribe nada: el reemplazo lo decide el caso de uso.
func (s *FileStore) Import(blob []byte) (*entity.WineryData, error) {
	return DecodeSnapshot(blob)
}
