// Package storage implementa la pasarela de persistencia: el agregado
// completo se vuelca como un único blob JSON a un fichero local, y el mismo
// formato sirve de contrato de export/import.
package storage

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/tu-usuario/bodega-api/internal/domain"
	"github.com/tu-usuario/bodega-api/internal/domain/entity"
)

// EncodeSnapshot serializa el agregado con el formato de intercambio: JSON
// con sangría de dos espacios, idéntico al blob que se persiste.
func EncodeSnapshot(data *entity.WineryData) ([]byte, error) {
	blob, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("storage: serializar snapshot: %w", err)
	}
	return blob, nil
}

// DecodeSnapshot interpreta un blob con la precedencia de compatibilidad:
//
//  1. lista desnuda → formato antiguo: se interpreta como la colección de
//     botellas terminadas, el resto queda vacío;
//  2. objeto → los campos ausentes se rellenan como colecciones vacías, de
//     forma explícita y no por coerción;
//  3. cualquier otra cosa → ErrInvalidFormat. Nunca se devuelve un agregado
//     a medias: o se deserializa completo o falla sin efectos.
func DecodeSnapshot(raw []byte) (*entity.WineryData, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil, domain.ErrInvalidFormat
	}

	switch trimmed[0] {
	case '[':
		var finished []entity.FinishedWine
		if err := json.Unmarshal(trimmed, &finished); err != nil {
			return nil, fmt.Errorf("%w: lista antigua ilegible: %v", domain.ErrInvalidFormat, err)
		}
		data := entity.NewWineryData()
		if finished != nil {
			data.Finished = finished
		}
		// el formato antiguo no llevaba discriminante: se sella aquí para que
		// el siguiente export ya salga en el esquema actual
		for i := range data.Finished {
			data.Finished[i].Type = entity.KindFinished
		}
		return data, nil
	case '{':
		var data entity.WineryData
		if err := json.Unmarshal(trimmed, &data); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrInvalidFormat, err)
		}
		data.Normalize()
		return &data, nil
	default:
		return nil, domain.ErrInvalidFormat
	}
}
