package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalesRecord es una venta diaria registrada para un producto.
// Inmutable una vez persistida; el motor de pronóstico solo la lee,
// ordenada por fecha ascendente.
type SalesRecord struct {
	ID        string
	CompanyID string
	ProductID string
	Date      time.Time // día de la venta (hora en cero)
	Quantity  decimal.Decimal
	CreatedAt time.Time
}
