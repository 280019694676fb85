package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrItemNotFound       = errors.New("ítem no encontrado")
	ErrInsufficientStock  = errors.New("stock insuficiente")
	ErrInvalidQuantity    = errors.New("cantidad inválida")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("ya existe un ítem con ese identificador")
	ErrInvalidFormat      = errors.New("formato de datos inválido")
	ErrStorageUnavailable = errors.New("almacenamiento no disponible")
)
