package repository

import (
	"github.com/shopspring/decimal"
	"github.com/jhoicas/Pronostico-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
// OnHand solo se modifica vía UpdateOnHand (ventas y restock); los productos
// nunca se borran, solo se retiran (Retire).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetByCompanyAndSKU(companyID, sku string) (*entity.Product, error)
	Update(product *entity.Product) error
	UpdateOnHand(productID string, onHand decimal.Decimal) error
	ListByCompany(companyID string, includeRetired bool, limit, offset int) ([]*entity.Product, error)
	ListActiveByCompany(companyID string) ([]*entity.Product, error)
	Retire(id string) error
}
