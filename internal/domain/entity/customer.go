package entity

import "time"

// Customer cliente de la venta a plazos.
// Se conservan hasta tres teléfonos de contacto porque la cobranza en ruta
// depende de poder localizar al cliente.
type Customer struct {
	ID        string
	BranchID  string
	FirstName string
	LastName  string
	Nickname  string
	IDCard    string // Documento de identidad (único por sucursal)
	Address   string
	District  string
	City      string
	Phone1    string
	Phone2    string
	Phone3    string
	Email     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// FullName nombre completo para listados y documentos.
func (c *Customer) FullName() string {
	if c.LastName == "" {
		return c.FirstName
	}
	return c.FirstName + " " + c.LastName
}
