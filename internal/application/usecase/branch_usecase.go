package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/ventas-plazos-api/internal/application/dto"
	"github.com/tu-usuario/ventas-plazos-api/internal/domain"
	"github.com/tu-usuario/ventas-plazos-api/internal/domain/entity"
	"github.com/tu-usuario/ventas-plazos-api/internal/domain/repository"
)

// BranchUseCase casos de uso para sucursales.
type BranchUseCase struct {
	repo repository.BranchRepository
}

// NewBranchUseCase construye el caso de uso.
func NewBranchUseCase(repo repository.BranchRepository) *BranchUseCase {
	return &BranchUseCase{repo: repo}
}

// Create crea una sucursal.
func (uc *BranchUseCase) Create(in dto.CreateBranchRequest) (*dto.BranchResponse, error) {
	if in.Code == "" || in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.repo.GetByCode(in.Code)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	branch := &entity.Branch{
		ID:        uuid.New().String(),
		Code:      in.Code,
		Name:      in.Name,
		Address:   in.Address,
		Phone:     in.Phone,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(branch); err != nil {
		return nil, err
	}
	return toBranchResponse(branch), nil
}

// GetByID obtiene una sucursal.
func (uc *BranchUseCase) GetByID(id string) (*dto.BranchResponse, error) {
	branch, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if branch == nil {
		return nil, domain.ErrNotFound
	}
	return toBranchResponse(branch), nil
}

// List lista sucursales.
func (uc *BranchUseCase) List(limit, offset int) ([]*dto.BranchResponse, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.BranchResponse, 0, len(list))
	for _, b := range list {
		out = append(out, toBranchResponse(b))
	}
	return out, nil
}

func toBranchResponse(b *entity.Branch) *dto.BranchResponse {
	return &dto.BranchResponse{
		ID:      b.ID,
		Code:    b.Code,
		Name:    b.Name,
		Address: b.Address,
		Phone:   b.Phone,
	}
}
