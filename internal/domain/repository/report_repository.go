package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// SalesCommissionResult una fila del reporte de ventas/comisiones: un contrato
// con su total y la comisión calculada con la tasa persistida.
type SalesCommissionResult struct {
	ContractID       string
	ContractNumber   string
	CustomerName     string
	SalespersonID    string
	SalespersonName  string
	StartDate        time.Time
	DownPayment      decimal.Decimal
	MonthlyPayment   decimal.Decimal
	Months           int
	GrandTotal       decimal.Decimal
	CommissionRate   decimal.Decimal
	CommissionAmount decimal.Decimal
}

// MonthlyCollectionResult cubeta mensual del reporte de cobranza de un inspector:
// cuotas agrupadas por YYYY-MM de vencimiento.
type MonthlyCollectionResult struct {
	Month         string // "2025-03"
	ContractCount int
	DueTotal      decimal.Decimal // Total de cuotas que vencen en el mes
	PaidTotal     decimal.Decimal // Cobrado de esas cuotas
	PendingTotal  decimal.Decimal // Pendiente (incluye vencidas)
}

// ReportRepository consultas de solo lectura para reportes de ventas y cobranza.
type ReportRepository interface {
	// GetSalesCommissions contratos de la sucursal firmados en el período, con
	// comisión calculada en SQL sobre la tasa persistida en el contrato.
	GetSalesCommissions(ctx context.Context, branchID string, startDate, endDate time.Time) ([]SalesCommissionResult, error)
	// GetMonthlyCollections agrupa las cuotas de los contratos del inspector por
	// mes de vencimiento, en orden cronológico.
	GetMonthlyCollections(ctx context.Context, inspectorID string, startDate, endDate time.Time) ([]MonthlyCollectionResult, error)
}
