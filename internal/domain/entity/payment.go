package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una cuota del plan de pagos.
// "overdue" no se persiste: una cuota pending con vencimiento pasado se reporta vencida.
const (
	PaymentStatusPending   = "pending"
	PaymentStatusPaid      = "paid"
	PaymentStatusCancelled = "cancelled"
	PaymentStatusOverdue   = "overdue"
)

// PeriodDownPayment período reservado para la cuota inicial dentro del plan.
// La cuota inicial es una fila real del plan, escrita al crear el contrato.
const PeriodDownPayment = 0

// Payment una cuota del plan de pagos de un contrato.
// Recibo, cobrador y descuento son campos tipados propios, no texto libre en Notes.
type Payment struct {
	ID            string
	ContractID    string
	Period        int // 0 = cuota inicial; 1..Months = cuotas mensuales
	Amount        decimal.Decimal
	DueDate       time.Time
	PaymentDate   *time.Time // nil mientras la cuota esté pendiente
	Status        string     // pending | paid | cancelled
	ReceiptNumber string
	CollectorID   string
	Discount      decimal.Decimal // Descuento aplicado al cobrar (cero si no hubo)
	Notes         string          // Texto libre; nunca codifica estado ni recibo
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// IsDownPayment indica si la fila corresponde a la cuota inicial.
func (p *Payment) IsDownPayment() bool { return p.Period == PeriodDownPayment }

// EffectiveStatus estado a reportar: pending con vencimiento anterior a ref se informa overdue.
func (p *Payment) EffectiveStatus(ref time.Time) string {
	if p.Status == PaymentStatusPending && p.DueDate.Before(ref) {
		return PaymentStatusOverdue
	}
	return p.Status
}
