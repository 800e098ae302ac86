package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/ventas-plazos-api/internal/application/dto"
	"github.com/tu-usuario/ventas-plazos-api/internal/domain"
	"github.com/tu-usuario/ventas-plazos-api/internal/domain/entity"
	"github.com/tu-usuario/ventas-plazos-api/internal/domain/repository"
)

// ProductUseCase casos de uso para productos del inventario.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create crea un producto. Código único por sucursal; stock inicial no negativo.
func (uc *ProductUseCase) Create(branchID string, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Code == "" || in.Name == "" || in.Stock < 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.CashPrice.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.repo.GetByBranchAndCode(branchID, in.Code)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	product := &entity.Product{
		ID:        uuid.New().String(),
		BranchID:  branchID,
		Code:      in.Code,
		Name:      in.Name,
		Brand:     in.Brand,
		Model:     in.Model,
		CashPrice: in.CashPrice,
		Stock:     in.Stock,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto.
func (uc *ProductUseCase) GetByID(branchID, id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if product.BranchID != branchID {
		return nil, domain.ErrForbidden
	}
	return toProductResponse(product), nil
}

// List lista productos de la sucursal con búsqueda opcional por nombre/código.
func (uc *ProductUseCase) List(branchID, search string, limit, offset int) ([]*dto.ProductResponse, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	list, err := uc.repo.ListByBranch(branchID, search, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ProductResponse, 0, len(list))
	for _, p := range list {
		out = append(out, toProductResponse(p))
	}
	return out, nil
}

// Update actualiza un producto.
func (uc *ProductUseCase) Update(branchID, id string, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if product.BranchID != branchID {
		return nil, domain.ErrForbidden
	}
	if in.Code == "" || in.Name == "" || in.Stock < 0 {
		return nil, domain.ErrInvalidInput
	}
	product.Code = in.Code
	product.Name = in.Name
	product.Brand = in.Brand
	product.Model = in.Model
	product.CashPrice = in.CashPrice
	product.Stock = in.Stock
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Delete elimina un producto.
func (uc *ProductUseCase) Delete(branchID, id string) error {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	if product.BranchID != branchID {
		return domain.ErrForbidden
	}
	return uc.repo.Delete(id)
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:        p.ID,
		BranchID:  p.BranchID,
		Code:      p.Code,
		Name:      p.Name,
		Brand:     p.Brand,
		Model:     p.Model,
		CashPrice: p.CashPrice,
		Stock:     p.Stock,
	}
}
