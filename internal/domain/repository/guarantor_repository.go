package repository

import "github.com/tu-usuario/ventas-plazos-api/internal/domain/entity"

// GuarantorRepository define el puerto de persistencia para Guarantor (fiador).
type GuarantorRepository interface {
	Create(guarantor *entity.Guarantor) error
	GetByID(id string) (*entity.Guarantor, error)
	GetByBranchAndIDCard(branchID, idCard string) (*entity.Guarantor, error)
	ListByBranch(branchID, search string, limit, offset int) ([]*entity.Guarantor, error)
	Update(guarantor *entity.Guarantor) error
	Delete(id string) error
}
