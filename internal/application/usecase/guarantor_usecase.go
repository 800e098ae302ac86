package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/ventas-plazos-api/internal/application/dto"
	"github.com/tu-usuario/ventas-plazos-api/internal/domain"
	"github.com/tu-usuario/ventas-plazos-api/internal/domain/entity"
	"github.com/tu-usuario/ventas-plazos-api/internal/domain/repository"
)

// GuarantorUseCase casos de uso para fiadores. Mismo flujo que clientes;
// entidad separada porque el fiador no es sujeto de contratos propios.
type GuarantorUseCase struct {
	repo repository.GuarantorRepository
}

// NewGuarantorUseCase construye el caso de uso.
func NewGuarantorUseCase(repo repository.GuarantorRepository) *GuarantorUseCase {
	return &GuarantorUseCase{repo: repo}
}

// Create crea un fiador.
func (uc *GuarantorUseCase) Create(branchID string, in dto.CreateCustomerRequest) (*dto.GuarantorResponse, error) {
	if in.FirstName == "" || in.IDCard == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.repo.GetByBranchAndIDCard(branchID, in.IDCard)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	g := &entity.Guarantor{
		ID:        uuid.New().String(),
		BranchID:  branchID,
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Nickname:  in.Nickname,
		IDCard:    in.IDCard,
		Address:   in.Address,
		District:  in.District,
		City:      in.City,
		Phone1:    in.Phone1,
		Phone2:    in.Phone2,
		Email:     in.Email,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(g); err != nil {
		return nil, err
	}
	return toGuarantorResponse(g), nil
}

// GetByID obtiene un fiador.
func (uc *GuarantorUseCase) GetByID(branchID, id string) (*dto.GuarantorResponse, error) {
	g, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, domain.ErrNotFound
	}
	if g.BranchID != branchID {
		return nil, domain.ErrForbidden
	}
	return toGuarantorResponse(g), nil
}

// List lista fiadores de la sucursal.
func (uc *GuarantorUseCase) List(branchID, search string, limit, offset int) ([]*dto.GuarantorResponse, error) {
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
	out := make([]*dto.GuarantorResponse, 0, len(list))
	for _, g := range list {
		out = append(out, toGuarantorResponse(g))
	}
	return out, nil
}

// Update actualiza los datos de un fiador.
func (uc *GuarantorUseCase) Update(branchID, id string, in dto.CreateCustomerRequest) (*dto.GuarantorResponse, error) {
	g, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, domain.ErrNotFound
	}
	if g.BranchID != branchID {
		return nil, domain.ErrForbidden
	}
	if in.FirstName == "" || in.IDCard == "" {
		return nil, domain.ErrInvalidInput
	}
	g.FirstName = in.FirstName
	g.LastName = in.LastName
	g.Nickname = in.Nickname
	g.IDCard = in.IDCard
	g.Address = in.Address
	g.District = in.District
	g.City = in.City
	g.Phone1 = in.Phone1
	g.Phone2 = in.Phone2
	g.Email = in.Email
	g.UpdatedAt = time.Now()
	if err := uc.repo.Update(g); err != nil {
		return nil, err
	}
	return toGuarantorResponse(g), nil
}

// Delete elimina un fiador.
func (uc *GuarantorUseCase) Delete(branchID, id string) error {
	g, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if g == nil {
		return domain.ErrNotFound
	}
	if g.BranchID != branchID {
		return domain.ErrForbidden
	}
	return uc.repo.Delete(id)
}

func toGuarantorResponse(g *entity.Guarantor) *dto.GuarantorResponse {
	return &dto.GuarantorResponse{
		ID:        g.ID,
		BranchID:  g.BranchID,
		FirstName: g.FirstName,
		LastName:  g.LastName,
		FullName:  g.FullName(),
		Nickname:  g.Nickname,
		IDCard:    g.IDCard,
		Address:   g.Address,
		District:  g.District,
		City:      g.City,
		Phone1:    g.Phone1,
		Phone2:    g.Phone2,
		Email:     g.Email,
	}
}
