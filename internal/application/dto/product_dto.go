package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest body para POST /api/products.
type CreateProductRequest struct {
	SKU           string          `json:"sku"`
	Name          string          `json:"name"`
	ShelfLifeDays int             `json:"shelf_life_days"`
	InitialStock  decimal.Decimal `json:"initial_stock"` // opcional, default 0
}

// UpdateProductRequest body para PUT /api/products/:id. Campos nil no se tocan.
// OnHand no se actualiza por aquí: solo vía ventas y restock.
type UpdateProductRequest struct {
	Name          *string `json:"name,omitempty"`
	ShelfLifeDays *int    `json:"shelf_life_days,omitempty"`
}

// RestockRequest body para POST /api/products/:id/restock.
type RestockRequest struct {
	Quantity decimal.Decimal `json:"quantity"`
}

// ProductResponse respuesta para Product.
type ProductResponse struct {
	ID            string          `json:"id"`
	CompanyID     string          `json:"company_id"`
	SKU           string          `json:"sku"`
	Name          string          `json:"name"`
	ShelfLifeDays int             `json:"shelf_life_days"`
	OnHand        decimal.Decimal `json:"on_hand"`
	Retired       bool            `json:"retired"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// ProductListResponse listado paginado de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
