package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto perecedero del catálogo de una tienda.
// OnHand se descuenta con cada venta registrada y sube con los restock;
// ShelfLifeDays es la vida útil en días (> 0 siempre).
// Los productos nunca se borran: Retired los saca de los reportes.
type Product struct {
	ID            string
	CompanyID     string
	SKU           string // código único por tienda
	Name          string
	ShelfLifeDays int
	OnHand        decimal.Decimal // unidades en mano (entero en la práctica, NUMERIC en DB)
	Retired       bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
