package repository

import (
	"github.com/shopspring/decimal"
	"github.com/jhoicas/Pronostico-api/internal/domain/entity"
)

// SalesRepository define el puerto de lectura/escritura del historial de ventas.
// Los registros son inmutables una vez insertados; el motor de pronóstico
// consume la vista de solo lectura que devuelven estas consultas.
type SalesRepository interface {
	Create(record *entity.SalesRecord) error
	// ListByProduct devuelve el historial completo de un producto ordenado por fecha ascendente.
	ListByProduct(productID string) ([]*entity.SalesRecord, error)
	// DailyQuantities devuelve las cantidades vendidas por día (orden ascendente por fecha),
	// agregando múltiples registros del mismo día. Es la entrada directa del motor.
	DailyQuantities(productID string) ([]decimal.Decimal, error)
}
