package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un contrato de venta a plazos.
const (
	ContractStatusActive    = "active"
	ContractStatusCompleted = "completed"
	ContractStatusCancelled = "cancelled"
)

// Contract contrato de venta a plazos: ata cliente, fiador, producto y plan de pagos.
// Invariante: TotalAmount = DownPayment + MonthlyPayment × Months.
type Contract struct {
	ID             string
	BranchID       string
	Number         string // Número de contrato (único por sucursal)
	CustomerID     string
	GuarantorID    string // Opcional
	ProductID      string
	SalespersonID  string
	InspectorID    string
	CollectorID    string
	DownPayment    decimal.Decimal // Cuota inicial pagada a la firma
	MonthlyPayment decimal.Decimal
	Months         int
	TotalAmount    decimal.Decimal
	CommissionRate decimal.Decimal // Porcentaje de comisión del vendedor (persistido por contrato)
	StartDate      time.Time
	EndDate        time.Time // StartDate + Months meses
	CollectionDay  int       // Día del mes en que vence cada cuota
	Status         string    // active | completed | cancelled
	Notes          string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
