package contracts

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/ventas-plazos-api/internal/application/dto"
	"github.com/tu-usuario/ventas-plazos-api/internal/domain"
	"github.com/tu-usuario/ventas-plazos-api/internal/domain/entity"
	"github.com/tu-usuario/ventas-plazos-api/internal/domain/repository"
)

// ContractUseCase consultas y actualizaciones de contratos ya creados.
type ContractUseCase struct {
	contractRepo repository.ContractRepository
	customerRepo repository.CustomerRepository
	productRepo  repository.ProductRepository
	employeeRepo repository.EmployeeRepository
	paymentRepo  repository.PaymentRepository
}

// NewContractUseCase construye el caso de uso.
func NewContractUseCase(
	contractRepo repository.ContractRepository,
	customerRepo repository.CustomerRepository,
	productRepo repository.ProductRepository,
	employeeRepo repository.EmployeeRepository,
	paymentRepo repository.PaymentRepository,
) *ContractUseCase {
	return &ContractUseCase{
		contractRepo: contractRepo,
		customerRepo: customerRepo,
		productRepo:  productRepo,
		employeeRepo: employeeRepo,
		paymentRepo:  paymentRepo,
	}
}

// GetByID obtiene un contrato con nombres de cliente y producto.
func (uc *ContractUseCase) GetByID(branchID, id string) (*dto.ContractResponse, error) {
	contract, err := uc.loadOwned(branchID, id)
	if err != nil {
		return nil, err
	}
	resp := ToContractResponse(contract)
	if customer, _ := uc.customerRepo.GetByID(contract.CustomerID); customer != nil {
		resp.CustomerName = customer.FullName()
	}
	if product, _ := uc.productRepo.GetByID(contract.ProductID); product != nil {
		resp.ProductName = product.Name
	}
	return resp, nil
}

// List lista contratos de la sucursal, filtrables por estado.
func (uc *ContractUseCase) List(branchID, status string, limit, offset int) ([]*dto.ContractResponse, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	switch status {
	case "", entity.ContractStatusActive, entity.ContractStatusCompleted, entity.ContractStatusCancelled:
	default:
		return nil, domain.ErrInvalidInput
	}
	list, err := uc.contractRepo.ListByBranch(branchID, status, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ContractResponse, 0, len(list))
	for _, c := range list {
		out = append(out, ToContractResponse(c))
	}
	return out, nil
}

// ListByCustomer contratos de un cliente.
func (uc *ContractUseCase) ListByCustomer(branchID, customerID string) ([]*dto.ContractResponse, error) {
	customer, err := uc.customerRepo.GetByID(customerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	if customer.BranchID != branchID {
		return nil, domain.ErrForbidden
	}
	list, err := uc.contractRepo.ListByCustomer(customerID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ContractResponse, 0, len(list))
	for _, c := range list {
		out = append(out, ToContractResponse(c))
	}
	return out, nil
}

// Update actualiza asignaciones de personal y cobranza de un contrato activo.
func (uc *ContractUseCase) Update(branchID, id string, in dto.UpdateContractRequest) (*dto.ContractResponse, error) {
	contract, err := uc.loadOwned(branchID, id)
	if err != nil {
		return nil, err
	}
	if contract.Status != entity.ContractStatusActive {
		return nil, domain.ErrContractClosed
	}
	if in.SalespersonID != "" {
		if err := uc.checkEmployee(branchID, in.SalespersonID, entity.RoleVendedor); err != nil {
			return nil, err
		}
		contract.SalespersonID = in.SalespersonID
	}
	if in.InspectorID != "" {
		if err := uc.checkEmployee(branchID, in.InspectorID, entity.RoleInspector); err != nil {
			return nil, err
		}
		contract.InspectorID = in.InspectorID
	}
	if in.CollectorID != "" {
		if err := uc.checkEmployee(branchID, in.CollectorID, entity.RoleCobrador); err != nil {
			return nil, err
		}
		contract.CollectorID = in.CollectorID
	}
	if in.CollectionDay != 0 {
		if in.CollectionDay < 1 || in.CollectionDay > 31 {
			return nil, domain.ErrInvalidInput
		}
		contract.CollectionDay = in.CollectionDay
	}
	if in.Notes != "" {
		contract.Notes = in.Notes
	}
	contract.UpdatedAt = time.Now()
	if err := uc.contractRepo.Update(contract); err != nil {
		return nil, err
	}
	return ToContractResponse(contract), nil
}

// UpdateCommissionRate persiste la tasa de comisión del contrato.
// La tasa vive en el contrato: cambiarla aquí jamás toca otro contrato.
func (uc *ContractUseCase) UpdateCommissionRate(branchID, id string, rate decimal.Decimal) (*dto.ContractResponse, error) {
	if rate.IsNegative() || rate.GreaterThan(decimal.NewFromInt(100)) {
		return nil, domain.ErrInvalidInput
	}
	contract, err := uc.loadOwned(branchID, id)
	if err != nil {
		return nil, err
	}
	if err := uc.contractRepo.UpdateCommissionRate(id, rate); err != nil {
		return nil, err
	}
	contract.CommissionRate = rate
	return ToContractResponse(contract), nil
}

// Cancel cancela un contrato: estado cancelled y cuotas pendientes canceladas.
// No se borra ninguna fila; el historial de pagos queda intacto.
func (uc *ContractUseCase) Cancel(branchID, id string) error {
	contract, err := uc.loadOwned(branchID, id)
	if err != nil {
		return err
	}
	if contract.Status != entity.ContractStatusActive {
		return domain.ErrContractClosed
	}
	if err := uc.contractRepo.UpdateStatus(id, entity.ContractStatusCancelled); err != nil {
		return err
	}
	return uc.paymentRepo.CancelPending(id)
}

func (uc *ContractUseCase) loadOwned(branchID, id string) (*entity.Contract, error) {
	contract, err := uc.contractRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if contract == nil {
		return nil, domain.ErrNotFound
	}
	if contract.BranchID != branchID {
		return nil, domain.ErrForbidden
	}
	return contract, nil
}

func (uc *ContractUseCase) checkEmployee(branchID, id, role string) error {
	emp, err := uc.employeeRepo.GetByID(id)
	if err != nil || emp == nil || emp.BranchID != branchID {
		return domain.ErrNotFound
	}
	if emp.Role != role && emp.Role != entity.RoleAdmin {
		return domain.ErrInvalidInput
	}
	return nil
}
