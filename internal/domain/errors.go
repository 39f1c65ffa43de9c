package domain

import "errors"

// Errores de dominio (sin dependencias externas). Los handlers HTTP los
// traducen a la taxonomía de códigos de la API.
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrInvalidCredentials = errors.New("credenciales inválidas")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrCompanyInactive    = errors.New("empresa inactiva")
	ErrAssetLimitReached  = errors.New("límite de activos del plan alcanzado")
	ErrUserLimitReached   = errors.New("límite de usuarios del plan alcanzado")
)
