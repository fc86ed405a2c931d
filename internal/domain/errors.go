package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound      = errors.New("recurso no encontrado")
	ErrUserNotFound  = errors.New("usuario no encontrado")
	ErrInvalidInput  = errors.New("entrada inválida")
	ErrUnauthorized  = errors.New("no autorizado")
	ErrForbidden     = errors.New("acceso denegado")
	ErrNoSession     = errors.New("no hay sesión autenticada")
	ErrUnknownScreen = errors.New("pantalla desconocida")
	ErrDataSource    = errors.New("fuente de datos no disponible")
	ErrInUse         = errors.New("el registro tiene dependencias y no se puede eliminar")
)
