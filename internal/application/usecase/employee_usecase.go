package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/ventas-plazos-api/internal/application/dto"
	"github.com/tu-usuario/ventas-plazos-api/internal/domain"
	"github.com/tu-usuario/ventas-plazos-api/internal/domain/entity"
	"github.com/tu-usuario/ventas-plazos-api/internal/domain/repository"
)

// EmployeeUseCase casos de uso para empleados (vendedores, inspectores, cobradores).
type EmployeeUseCase struct {
	repo repository.EmployeeRepository
}

// NewEmployeeUseCase construye el caso de uso.
func NewEmployeeUseCase(repo repository.EmployeeRepository) *EmployeeUseCase {
	return &EmployeeUseCase{repo: repo}
}

// Create crea un empleado. El rol debe ser uno de los tipados.
func (uc *EmployeeUseCase) Create(branchID string, in dto.CreateEmployeeRequest) (*dto.EmployeeResponse, error) {
	if in.FirstName == "" || in.Role == "" {
		return nil, domain.ErrInvalidInput
	}
	if !entity.ValidEmployeeRole(in.Role) {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	emp := &entity.Employee{
		ID:        uuid.New().String(),
		BranchID:  branchID,
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Nickname:  in.Nickname,
		IDCard:    in.IDCard,
		Role:      in.Role,
		Route:     in.Route,
		Phone:     in.Phone,
		Status:    "active",
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(emp); err != nil {
		return nil, err
	}
	return toEmployeeResponse(emp), nil
}

// GetByID obtiene un empleado.
func (uc *EmployeeUseCase) GetByID(branchID, id string) (*dto.EmployeeResponse, error) {
	emp, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if emp == nil {
		return nil, domain.ErrNotFound
	}
	if emp.BranchID != branchID {
		return nil, domain.ErrForbidden
	}
	return toEmployeeResponse(emp), nil
}

// List lista empleados de la sucursal; role filtra por rol tipado (vacío = todos).
// Listar con role=inspector reemplaza al antiguo endpoint separado de inspectores.
func (uc *EmployeeUseCase) List(branchID, role string, limit, offset int) ([]*dto.EmployeeResponse, error) {
	if role != "" && !entity.ValidEmployeeRole(role) {
		return nil, domain.ErrInvalidInput
	}
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	list, err := uc.repo.ListByBranch(branchID, role, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.EmployeeResponse, 0, len(list))
	for _, e := range list {
		out = append(out, toEmployeeResponse(e))
	}
	return out, nil
}

// Update actualiza un empleado.
func (uc *EmployeeUseCase) Update(branchID, id string, in dto.CreateEmployeeRequest) (*dto.EmployeeResponse, error) {
	emp, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if emp == nil {
		return nil, domain.ErrNotFound
	}
	if emp.BranchID != branchID {
		return nil, domain.ErrForbidden
	}
	if in.FirstName == "" || !entity.ValidEmployeeRole(in.Role) {
		return nil, domain.ErrInvalidInput
	}
	emp.FirstName = in.FirstName
	emp.LastName = in.LastName
	emp.Nickname = in.Nickname
	emp.IDCard = in.IDCard
	emp.Role = in.Role
	emp.Route = in.Route
	emp.Phone = in.Phone
	emp.UpdatedAt = time.Now()
	if err := uc.repo.Update(emp); err != nil {
		return nil, err
	}
	return toEmployeeResponse(emp), nil
}

// Delete elimina un empleado.
func (uc *EmployeeUseCase) Delete(branchID, id string) error {
	emp, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if emp == nil {
		return domain.ErrNotFound
	}
	if emp.BranchID != branchID {
		return domain.ErrForbidden
	}
	return uc.repo.Delete(id)
}

func toEmployeeResponse(e *entity.Employee) *dto.EmployeeResponse {
	return &dto.EmployeeResponse{
		ID:        e.ID,
		BranchID:  e.BranchID,
		FirstName: e.FirstName,
		LastName:  e.LastName,
		FullName:  e.FullName(),
		Nickname:  e.Nickname,
		IDCard:    e.IDCard,
		Role:      e.Role,
		Route:     e.Route,
		Phone:     e.Phone,
		Status:    e.Status,
	}
}
