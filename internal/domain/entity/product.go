package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product artículo vendido a plazos (electrodomésticos, muebles, etc.).
// CashPrice es el precio de contado; el precio a crédito surge del contrato
// (cuota inicial + cuota mensual × meses).
type Product struct {
	ID        string
	BranchID  string
	Code      string // Código interno (único por sucursal)
	Name      string
	Brand     string
	Model     string
	CashPrice decimal.Decimal
	Stock     int
	CreatedAt time.Time
	UpdatedAt time.Time
}
