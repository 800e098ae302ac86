package repository

import "github.com/tu-usuario/ventas-plazos-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (login del back-office).
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmailAndBranch(email, branchID string) (*entity.User, error)
	FindByEmail(email string) (*entity.User, error)
}
