package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegisterSaleRequest body para POST /api/sales.
// Date en formato YYYY-MM-DD; si viene vacío el handler usa la fecha del servidor
// (el caso de uso siempre recibe la fecha explícita para seguir siendo determinista).
type RegisterSaleRequest struct {
	ProductID string          `json:"product_id"`
	Date      string          `json:"date"`
	Quantity  decimal.Decimal `json:"quantity"`
}

// SaleResponse respuesta para un registro de venta.
type SaleResponse struct {
	ID        string          `json:"id"`
	ProductID string          `json:"product_id"`
	Date      string          `json:"date"` // YYYY-MM-DD
	Quantity  decimal.Decimal `json:"quantity"`
	CreatedAt time.Time       `json:"created_at"`
}

// SalesHistoryResponse historial de ventas de un producto, ordenado por fecha.
type SalesHistoryResponse struct {
	ProductID string         `json:"product_id"`
	Items     []SaleResponse `json:"items"`
}
