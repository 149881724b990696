package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrConflict          = errors.New("conflicto con el estado actual")
	ErrStoreNotFound     = errors.New("tienda no encontrada")
	ErrMissingNameColumn = errors.New("el CSV no tiene columna de nombre")
)
