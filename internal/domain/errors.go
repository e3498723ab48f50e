package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// Los casos de uso los retornan como valores; los handlers HTTP los traducen
// a códigos de estado. Nunca se usan panics para fallos esperables.
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrDuplicate    = errors.New("recurso duplicado")
	ErrConflict     = errors.New("conflicto con el estado actual")
)
