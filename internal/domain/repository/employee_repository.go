package repository

import "github.com/tu-usuario/ventas-plazos-api/internal/domain/entity"

// EmployeeRepository define el puerto de persistencia para Employee.
type EmployeeRepository interface {
	Create(employee *entity.Employee) error
	GetByID(id string) (*entity.Employee, error)
	// ListByBranch lista empleados de la sucursal; role filtra por rol tipado
	// (vacío = todos). Reemplaza al antiguo listado aparte de inspectores.
	ListByBranch(branchID, role string, limit, offset int) ([]*entity.Employee, error)
	Update(employee *entity.Employee) error
	Delete(id string) error
}
