package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/jhoicas/Pronostico-api/internal/application/dto"
	"github.com/jhoicas/Pronostico-api/internal/domain"
	"github.com/jhoicas/Pronostico-api/internal/domain/entity"
	"github.com/jhoicas/Pronostico-api/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos. OnHand se maneja vía ventas y restock.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create registra un nuevo producto. La vida útil debe ser positiva y el
// stock inicial no puede ser negativo.
func (uc *ProductUseCase) Create(companyID string, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	existing, _ := uc.repo.GetByCompanyAndSKU(companyID, in.SKU)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	if in.ShelfLifeDays <= 0 {
		return nil, domain.ErrInvalidProduct
	}
	if in.InitialStock.IsNegative() {
		return nil, domain.ErrInvalidProduct
	}
	now := time.Now()
	product := &entity.Product{
		ID:            uuid.New().String(),
		CompanyID:     companyID,
		SKU:           in.SKU,
		Name:          in.Name,
		ShelfLifeDays: in.ShelfLifeDays,
		OnHand:        in.InitialStock,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID dentro de una tienda. Devuelve nil si no
// existe o pertenece a otra tienda: un tenant nunca ve productos ajenos.
func (uc *ProductUseCase) GetByID(companyID, id string) (*dto.ProductResponse, error) {
	product, err := uc.getOwned(companyID, id)
	if err != nil || product == nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Update actualiza nombre y vida útil. No permite tocar OnHand (ventas/restock).
func (uc *ProductUseCase) Update(companyID, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.getOwned(companyID, id)
	if err != nil || product == nil {
		return nil, err
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.ShelfLifeDays != nil {
		if *in.ShelfLifeDays <= 0 {
			return nil, domain.ErrInvalidProduct
		}
		product.ShelfLifeDays = *in.ShelfLifeDays
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Restock suma unidades al stock en mano. La cantidad debe ser positiva y el
// producto debe pertenecer a la tienda: OnHand alimenta el asesor de reposición.
func (uc *ProductUseCase) Restock(companyID, id string, quantity decimal.Decimal) (*dto.ProductResponse, error) {
	if quantity.LessThanOrEqual(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.getOwned(companyID, id)
	if err != nil || product == nil {
		return nil, err
	}
	if product.Retired {
		return nil, domain.ErrConflict
	}
	product.OnHand = product.OnHand.Add(quantity)
	product.UpdatedAt = time.Now()
	if err := uc.repo.UpdateOnHand(product.ID, product.OnHand); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Retire retira un producto de la tienda (soft delete): sale de listados y reportes.
func (uc *ProductUseCase) Retire(companyID, id string) error {
	product, err := uc.getOwned(companyID, id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Retire(id)
}

// getOwned obtiene el producto solo si pertenece a la tienda; un ID ajeno se
// trata igual que uno inexistente.
func (uc *ProductUseCase) getOwned(companyID, id string) (*entity.Product, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil || product.CompanyID != companyID {
		return nil, nil
	}
	return product, nil
}

// List lista productos de una tienda con paginación.
func (uc *ProductUseCase) List(companyID string, includeRetired bool, limit, offset int) (*dto.ProductListResponse, error) {
	products, err := uc.repo.ListByCompany(companyID, includeRetired, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:            p.ID,
		CompanyID:     p.CompanyID,
		SKU:           p.SKU,
		Name:          p.Name,
		ShelfLifeDays: p.ShelfLifeDays,
		OnHand:        p.OnHand,
		Retired:       p.Retired,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}
