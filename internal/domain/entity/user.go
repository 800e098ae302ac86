package entity

import "time"

// User usuario del back-office (login). El rol reutiliza los roles de empleado.
type User struct {
	ID           string
	BranchID     string
	Email        string
	PasswordHash string
	Name         string
	Role         string // RoleAdmin | RoleVendedor | RoleInspector | RoleCobrador
	Status       string // "active" | "inactive"
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
