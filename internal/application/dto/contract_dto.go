package dto

import "github.com/shopspring/decimal"

// CreateContractRequest body para POST /api/contracts.
// TotalAmount y EndDate no se reciben: los calcula el servidor
// (total = cuota inicial + mensualidad × meses; fin = inicio + meses).
type CreateContractRequest struct {
	Number         string          `json:"number"`
	CustomerID     string          `json:"customer_id"`
	GuarantorID    string          `json:"guarantor_id,omitempty"`
	ProductID      string          `json:"product_id"`
	SalespersonID  string          `json:"salesperson_id"`
	InspectorID    string          `json:"inspector_id"`
	CollectorID    string          `json:"collector_id,omitempty"`
	DownPayment    decimal.Decimal `json:"down_payment"`
	MonthlyPayment decimal.Decimal `json:"monthly_payment"`
	Months         int             `json:"months"`
	StartDate      string          `json:"start_date"` // "2006-01-02"
	CollectionDay  int             `json:"collection_day,omitempty"`
	CommissionRate decimal.Decimal `json:"commission_rate,omitempty"` // vacío = tasa por defecto
	Notes          string          `json:"notes,omitempty"`
}

// UpdateContractRequest body para PUT /api/contracts/:id.
// Solo campos de asignación de personal y cobranza; los montos del plan no se
// editan una vez generado el plan de pagos.
type UpdateContractRequest struct {
	SalespersonID string `json:"salesperson_id,omitempty"`
	InspectorID   string `json:"inspector_id,omitempty"`
	CollectorID   string `json:"collector_id,omitempty"`
	CollectionDay int    `json:"collection_day,omitempty"`
	Notes         string `json:"notes,omitempty"`
}

// UpdateCommissionRateRequest body para PUT /api/contracts/:id/commission-rate.
type UpdateCommissionRateRequest struct {
	CommissionRate decimal.Decimal `json:"commission_rate"`
}

// ContractResponse contrato en respuestas.
type ContractResponse struct {
	ID             string          `json:"id"`
	BranchID       string          `json:"branch_id"`
	Number         string          `json:"number"`
	CustomerID     string          `json:"customer_id"`
	CustomerName   string          `json:"customer_name,omitempty"`
	GuarantorID    string          `json:"guarantor_id,omitempty"`
	ProductID      string          `json:"product_id"`
	ProductName    string          `json:"product_name,omitempty"`
	SalespersonID  string          `json:"salesperson_id"`
	InspectorID    string          `json:"inspector_id"`
	CollectorID    string          `json:"collector_id,omitempty"`
	DownPayment    decimal.Decimal `json:"down_payment"`
	MonthlyPayment decimal.Decimal `json:"monthly_payment"`
	Months         int             `json:"months"`
	TotalAmount    decimal.Decimal `json:"total_amount"`
	CommissionRate decimal.Decimal `json:"commission_rate"`
	StartDate      string          `json:"start_date"`
	EndDate        string          `json:"end_date"`
	CollectionDay  int             `json:"collection_day"`
	Status         string          `json:"status"`
	Notes          string          `json:"notes,omitempty"`
}
