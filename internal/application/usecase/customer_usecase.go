package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/ventas-plazos-api/internal/application/dto"
	"github.com/tu-usuario/ventas-plazos-api/internal/domain"
	"github.com/tu-usuario/ventas-plazos-api/internal/domain/entity"
	"github.com/tu-usuario/ventas-plazos-api/internal/domain/repository"
)

// CustomerUseCase casos de uso para clientes.
type CustomerUseCase struct {
	repo repository.CustomerRepository
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(repo repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo}
}

// Create crea un nuevo cliente. El documento es único por sucursal.
func (uc *CustomerUseCase) Create(branchID string, in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	if in.FirstName == "" || in.IDCard == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.repo.GetByBranchAndIDCard(branchID, in.IDCard)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	customer := &entity.Customer{
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
		Phone3:    in.Phone3,
		Email:     in.Email,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// GetByID obtiene un cliente; ErrForbidden si es de otra sucursal.
func (uc *CustomerUseCase) GetByID(branchID, id string) (*dto.CustomerResponse, error) {
	customer, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	if customer.BranchID != branchID {
		return nil, domain.ErrForbidden
	}
	return toCustomerResponse(customer), nil
}

// List lista clientes de la sucursal, con búsqueda opcional por nombre/documento.
func (uc *CustomerUseCase) List(branchID, search string, limit, offset int) ([]*dto.CustomerResponse, error) {
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
	out := make([]*dto.CustomerResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toCustomerResponse(c))
	}
	return out, nil
}

// Update actualiza los datos de contacto de un cliente.
func (uc *CustomerUseCase) Update(branchID, id string, in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	customer, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	if customer.BranchID != branchID {
		return nil, domain.ErrForbidden
	}
	if in.FirstName == "" || in.IDCard == "" {
		return nil, domain.ErrInvalidInput
	}
	customer.FirstName = in.FirstName
	customer.LastName = in.LastName
	customer.Nickname = in.Nickname
	customer.IDCard = in.IDCard
	customer.Address = in.Address
	customer.District = in.District
	customer.City = in.City
	customer.Phone1 = in.Phone1
	customer.Phone2 = in.Phone2
	customer.Phone3 = in.Phone3
	customer.Email = in.Email
	customer.UpdatedAt = time.Now()
	if err := uc.repo.Update(customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// Delete elimina un cliente.
func (uc *CustomerUseCase) Delete(branchID, id string) error {
	customer, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if customer == nil {
		return domain.ErrNotFound
	}
	if customer.BranchID != branchID {
		return domain.ErrForbidden
	}
	return uc.repo.Delete(id)
}

func toCustomerResponse(c *entity.Customer) *dto.CustomerResponse {
	return &dto.CustomerResponse{
		ID:        c.ID,
		BranchID:  c.BranchID,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		FullName:  c.FullName(),
		Nickname:  c.Nickname,
		IDCard:    c.IDCard,
		Address:   c.Address,
		District:  c.District,
		City:      c.City,
		Phone1:    c.Phone1,
		Phone2:    c.Phone2,
		Phone3:    c.Phone3,
		Email:     c.Email,
	}
}
