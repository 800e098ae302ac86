package repository

import "github.com/tu-usuario/ventas-plazos-api/internal/domain/entity"

// CustomerRepository define el puerto de persistencia para Customer.
type CustomerRepository interface {
	Create(customer *entity.Customer) error
	GetByID(id string) (*entity.Customer, error)
	GetByBranchAndIDCard(branchID, idCard string) (*entity.Customer, error)
	// ListByBranch lista clientes de la sucursal; search filtra por nombre,
	// apellido, apodo o documento (vacío = sin filtro).
	ListByBranch(branchID, search string, limit, offset int) ([]*entity.Customer, error)
	Update(customer *entity.Customer) error
	Delete(id string) error
}
