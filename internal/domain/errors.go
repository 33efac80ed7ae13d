package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrForeignKey         = errors.New("referencia a ubicación inexistente")
	ErrInvalidCredentials = errors.New("credenciales inválidas")
)
