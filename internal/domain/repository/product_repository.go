package repository

import "github.com/tu-usuario/ventas-plazos-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetByBranchAndCode(branchID, code string) (*entity.Product, error)
	ListByBranch(branchID, search string, limit, offset int) ([]*entity.Product, error)
	Update(product *entity.Product) error
	// DecrementStock descuenta qty unidades con bloqueo de fila.
	// Retorna domain.ErrInsufficientStock si no alcanza el inventario.
	DecrementStock(id string, qty int) error
	Delete(id string) error
}
