package dto

import "github.com/shopspring/decimal"

// SalesCommissionRowDTO fila del reporte de ventas/comisiones.
type SalesCommissionRowDTO struct {
	ContractID       string          `json:"contract_id"`
	ContractNumber   string          `json:"contract_number"`
	CustomerName     string          `json:"customer_name"`
	SalespersonID    string          `json:"salesperson_id"`
	SalespersonName  string          `json:"salesperson_name"`
	StartDate        string          `json:"start_date"`
	DownPayment      decimal.Decimal `json:"down_payment"`
	MonthlyPayment   decimal.Decimal `json:"monthly_payment"`
	Months           int             `json:"months"`
	GrandTotal       decimal.Decimal `json:"grand_total"`
	CommissionRate   decimal.Decimal `json:"commission_rate"`
	CommissionAmount decimal.Decimal `json:"commission_amount"`
}

// SalesCommissionReportDTO reporte completo con totales.
type SalesCommissionReportDTO struct {
	BranchID        string                  `json:"branch_id"`
	StartDate       string                  `json:"start_date"`
	EndDate         string                  `json:"end_date"`
	Rows            []SalesCommissionRowDTO `json:"rows"`
	GrandTotalSum   decimal.Decimal         `json:"grand_total_sum"`
	CommissionTotal decimal.Decimal         `json:"commission_total"`
}

// MonthlyCollectionDTO cubeta mensual del reporte de cobranza.
type MonthlyCollectionDTO struct {
	Month         string          `json:"month"` // "2025-03"
	ContractCount int             `json:"contract_count"`
	DueTotal      decimal.Decimal `json:"due_total"`
	PaidTotal     decimal.Decimal `json:"paid_total"`
	PendingTotal  decimal.Decimal `json:"pending_total"`
}

// CollectionReportDTO reporte de cobranza de un inspector, agrupado por mes.
type CollectionReportDTO struct {
	InspectorID   string                 `json:"inspector_id"`
	InspectorName string                 `json:"inspector_name,omitempty"`
	StartDate     string                 `json:"start_date"`
	EndDate       string                 `json:"end_date"`
	Months        []MonthlyCollectionDTO `json:"months"`
	DueTotal      decimal.Decimal        `json:"due_total"`
	PaidTotal     decimal.Decimal        `json:"paid_total"`
	PendingTotal  decimal.Decimal        `json:"pending_total"`
}

// InspectorContractsDTO contratos a cargo de un inspector con su saldo.
type InspectorContractsDTO struct {
	InspectorID string             `json:"inspector_id"`
	Contracts   []ContractResponse `json:"contracts"`
}
