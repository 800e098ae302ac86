package repository

import (
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/ventas-plazos-api/internal/domain/entity"
)

// ContractRepository define el puerto de persistencia para Contract.
type ContractRepository interface {
	Create(contract *entity.Contract) error
	GetByID(id string) (*entity.Contract, error)
	GetByBranchAndNumber(branchID, number string) (*entity.Contract, error)
	// ListByBranch lista contratos de la sucursal; status filtra por estado
	// (vacío = todos).
	ListByBranch(branchID, status string, limit, offset int) ([]*entity.Contract, error)
	// ListByInspector contratos verificados por un inspector (reportes de cobranza).
	ListByInspector(inspectorID string) ([]*entity.Contract, error)
	ListByCustomer(customerID string) ([]*entity.Contract, error)
	Update(contract *entity.Contract) error
	UpdateStatus(id, status string) error
	UpdateCommissionRate(id string, rate decimal.Decimal) error
}
