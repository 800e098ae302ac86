package dto

import "github.com/shopspring/decimal"

// RegisterPaymentRequest body para POST /api/contracts/:id/payments.
// El servidor busca la primera cuota pendiente cuyo monto coincida exactamente;
// si ninguna coincide, crea una cuota pagada adicional.
type RegisterPaymentRequest struct {
	Amount        decimal.Decimal `json:"amount"`
	PaymentDate   string          `json:"payment_date"` // "2006-01-02"; vacío = hoy
	ReceiptNumber string          `json:"receipt_number"`
	CollectorID   string          `json:"collector_id,omitempty"`
	Discount      decimal.Decimal `json:"discount,omitempty"`
	Notes         string          `json:"notes,omitempty"`
}

// UpdatePaymentRequest body para PUT /api/payments/:id.
type UpdatePaymentRequest struct {
	Amount        *decimal.Decimal `json:"amount,omitempty"`
	DueDate       string           `json:"due_date,omitempty"`
	PaymentDate   string           `json:"payment_date,omitempty"`
	ReceiptNumber *string          `json:"receipt_number,omitempty"`
	CollectorID   *string          `json:"collector_id,omitempty"`
	Discount      *decimal.Decimal `json:"discount,omitempty"`
	Notes         *string          `json:"notes,omitempty"`
}

// AssignCollectorRequest body para PUT /api/payments/:id/collector.
type AssignCollectorRequest struct {
	CollectorID string `json:"collector_id"`
}

// PaymentResponse una cuota del plan en respuestas. Remaining es el saldo del
// contrato después de aplicar esta cuota (solo en el plan ordenado).
type PaymentResponse struct {
	ID            string           `json:"id"`
	ContractID    string           `json:"contract_id"`
	Period        int              `json:"period"`
	IsDownPayment bool             `json:"is_down_payment"`
	Amount        decimal.Decimal  `json:"amount"`
	DueDate       string           `json:"due_date"`
	PaymentDate   string           `json:"payment_date,omitempty"`
	Status        string           `json:"status"` // pending | paid | overdue | cancelled
	ReceiptNumber string           `json:"receipt_number,omitempty"`
	CollectorID   string           `json:"collector_id,omitempty"`
	Discount      decimal.Decimal  `json:"discount"`
	Notes         string           `json:"notes,omitempty"`
	Remaining     *decimal.Decimal `json:"remaining,omitempty"`
}

// ScheduleResponse plan de pagos completo con totales y saldo.
type ScheduleResponse struct {
	ContractID   string            `json:"contract_id"`
	Number       string            `json:"number"`
	TotalAmount  decimal.Decimal   `json:"total_amount"`
	PaidTotal    decimal.Decimal   `json:"paid_total"`
	Remaining    decimal.Decimal   `json:"remaining"`
	OverdueCount int               `json:"overdue_count"`
	Payments     []PaymentResponse `json:"payments"`
}
