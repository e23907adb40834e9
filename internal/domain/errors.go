package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// ErrNotFound cubre también el caso "existe pero es de otra empresa":
// a propósito no se distingue para no filtrar existencia entre tenants.
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidCredentials = errors.New("credenciales inválidas")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")
	ErrTenantNotResolved  = errors.New("empresa del gerente no encontrada")
)
