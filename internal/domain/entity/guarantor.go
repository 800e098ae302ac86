package entity

import "time"

// Guarantor fiador (codeudor) de un contrato. Misma información de contacto que el cliente.
type Guarantor struct {
	ID        string
	BranchID  string
	FirstName string
	LastName  string
	Nickname  string
	IDCard    string
	Address   string
	District  string
	City      string
	Phone1    string
	Phone2    string
	Email     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// FullName nombre completo para documentos.
func (g *Guarantor) FullName() string {
	if g.LastName == "" {
		return g.FirstName
	}
	return g.FirstName + " " + g.LastName
}
