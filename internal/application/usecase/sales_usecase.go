package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/jhoicas/Pronostico-api/internal/application/dto"
	"github.com/jhoicas/Pronostico-api/internal/domain"
	"github.com/jhoicas/Pronostico-api/internal/domain/entity"
	"github.com/jhoicas/Pronostico-api/internal/domain/repository"
)

// SalesTxRunner ejecuta el registro de venta dentro de una transacción:
// insertar el registro y descontar el stock deben ser atómicos.
type SalesTxRunner interface {
	Run(ctx context.Context, fn func(
		salesRepo repository.SalesRepository,
		productRepo repository.ProductRepository,
	) error) error
}

// SalesUseCase ingesta de ventas diarias y lectura del historial.
type SalesUseCase struct {
	txRunner    SalesTxRunner
	productRepo repository.ProductRepository
	salesRepo   repository.SalesRepository
}

// NewSalesUseCase construye el caso de uso.
func NewSalesUseCase(txRunner SalesTxRunner, productRepo repository.ProductRepository, salesRepo repository.SalesRepository) *SalesUseCase {
	return &SalesUseCase{txRunner: txRunner, productRepo: productRepo, salesRepo: salesRepo}
}

// Register registra una venta diaria y descuenta el stock en mano del producto
// en la misma transacción. La cantidad no puede ser negativa; el producto debe
// existir, pertenecer a la tienda y no estar retirado.
//
// Si la venta supera el stock registrado, el stock queda en cero: la venta es
// un hecho ya ocurrido y el invariante on-hand >= 0 se preserva.
func (uc *SalesUseCase) Register(ctx context.Context, companyID string, productID string, date time.Time, quantity decimal.Decimal) (*dto.SaleResponse, error) {
	if quantity.IsNegative() {
		return nil, domain.ErrInvalidInput
	}

	record := &entity.SalesRecord{
		ID:        uuid.New().String(),
		CompanyID: companyID,
		ProductID: productID,
		Date:      truncateToDay(date),
		Quantity:  quantity,
		CreatedAt: time.Now(),
	}

	err := uc.txRunner.Run(ctx, func(salesRepo repository.SalesRepository, productRepo repository.ProductRepository) error {
		product, err := productRepo.GetByID(productID)
		if err != nil {
			return err
		}
		if product == nil || product.CompanyID != companyID {
			return domain.ErrNotFound
		}
		if product.Retired {
			return domain.ErrConflict
		}
		if err := salesRepo.Create(record); err != nil {
			return err
		}
		remaining := product.OnHand.Sub(quantity)
		if remaining.IsNegative() {
			remaining = decimal.Zero
		}
		return productRepo.UpdateOnHand(productID, remaining)
	})
	if err != nil {
		return nil, err
	}

	return toSaleResponse(record), nil
}

// History devuelve el historial completo de un producto, ordenado por fecha.
func (uc *SalesUseCase) History(companyID, productID string) (*dto.SalesHistoryResponse, error) {
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil || product.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}
	records, err := uc.salesRepo.ListByProduct(productID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SaleResponse, 0, len(records))
	for _, r := range records {
		items = append(items, *toSaleResponse(r))
	}
	return &dto.SalesHistoryResponse{ProductID: productID, Items: items}, nil
}

func toSaleResponse(r *entity.SalesRecord) *dto.SaleResponse {
	return &dto.SaleResponse{
		ID:        r.ID,
		ProductID: r.ProductID,
		Date:      r.Date.Format("2006-01-02"),
		Quantity:  r.Quantity,
		CreatedAt: r.CreatedAt,
	}
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
