package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")
)

// Errores del motor de pronóstico y reposición. Se reportan por producto:
// un producto que falla no aborta el reporte de los demás.
var (
	ErrInsufficientData = errors.New("sin historial de ventas para pronosticar")
	ErrInvalidProduct   = errors.New("producto inválido para reposición")
	ErrInvalidLeadTime  = errors.New("lead time negativo")
	ErrNoDemandSignal   = errors.New("sin señal de demanda ni stock: requiere revisión manual")
)
