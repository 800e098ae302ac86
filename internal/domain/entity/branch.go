package entity

import "time"

// Branch sucursal de la empresa. Toda entidad de negocio queda asociada a una sucursal.
type Branch struct {
	ID        string
	Code      string // Código corto de la sucursal (ej. "SUC-01")
	Name      string
	Address   string
	Phone     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
