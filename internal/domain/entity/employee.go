package entity

import "time"

// Roles de empleado. El rol es un campo tipado, no se infiere del cargo en texto libre.
const (
	RoleAdmin     = "admin"
	RoleVendedor  = "vendedor"
	RoleInspector = "inspector" // Verifica y aprueba contratos; agrupa los reportes de cobranza
	RoleCobrador  = "cobrador"  // Cobra las cuotas periódicas en ruta
)

// ValidEmployeeRole indica si el rol es uno de los conocidos.
func ValidEmployeeRole(role string) bool {
	switch role {
	case RoleAdmin, RoleVendedor, RoleInspector, RoleCobrador:
		return true
	}
	return false
}

// Employee empleado de la sucursal: vendedor, inspector o cobrador.
type Employee struct {
	ID        string
	BranchID  string
	FirstName string
	LastName  string
	Nickname  string
	IDCard    string
	Role      string // RoleVendedor | RoleInspector | RoleCobrador | RoleAdmin
	Route     string // "Ruta" de cobranza; solo aplica a cobradores
	Phone     string
	Status    string // "active" | "inactive"
	CreatedAt time.Time
	UpdatedAt time.Time
}

// FullName nombre completo para listados.
func (e *Employee) FullName() string {
	if e.LastName == "" {
		return e.FirstName
	}
	return e.FirstName + " " + e.LastName
}
