package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/tu-usuario/ventas-plazos-api/internal/domain/entity"
	"github.com/tu-usuario/ventas-plazos-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas agregadas de reportes. Solo lectura, siempre sobre el pool.
type ReportRepo struct {
	q Querier
}

// NewReportRepository construye el adaptador de reportes.
func NewReportRepository(q Querier) *ReportRepo {
	return &ReportRepo{q: q}
}

// GetSalesCommissions contratos firmados en el período con la comisión calculada
// en SQL sobre la tasa persistida de cada contrato.
func (r *ReportRepo) GetSalesCommissions(ctx context.Context, branchID string, startDate, endDate time.Time) ([]repository.SalesCommissionResult, error) {
	query := `
		SELECT c.id, c.number,
		       cu.first_name || ' ' || cu.last_name AS customer_name,
		       c.salesperson_id,
		       e.first_name || ' ' || e.last_name AS salesperson_name,
		       c.start_date, c.down_payment, c.monthly_payment, c.months,
		       c.total_amount, c.commission_rate,
		       ROUND(c.total_amount * c.commission_rate / 100, 2) AS commission_amount
		FROM contracts c
		JOIN customers cu ON cu.id = c.customer_id
		JOIN employees e ON e.id = c.salesperson_id
		WHERE c.branch_id = $1
		  AND c.start_date >= $2 AND c.start_date <= $3
		  AND c.status <> $4
		ORDER BY c.start_date, c.number`
	rows, err := r.q.Query(ctx, query, branchID, startDate, endDate, entity.ContractStatusCancelled)
	if err != nil {
		return nil, fmt.Errorf("sales commissions: %w", err)
	}
	defer rows.Close()

	var results []repository.SalesCommissionResult
	for rows.Next() {
		var res repository.SalesCommissionResult
		if err := rows.Scan(
			&res.ContractID, &res.ContractNumber, &res.CustomerName,
			&res.SalespersonID, &res.SalespersonName,
			&res.StartDate, &res.DownPayment, &res.MonthlyPayment, &res.Months,
			&res.GrandTotal, &res.CommissionRate, &res.CommissionAmount,
		); err != nil {
			return nil, fmt.Errorf("scan sales commission: %w", err)
		}
		results = append(results, res)
	}
	return results, rows.Err()
}

// GetMonthlyCollections agrupa las cuotas de los contratos del inspector por mes
// de vencimiento (YYYY-MM), en orden cronológico. Las cuotas canceladas no cuentan.
func (r *ReportRepo) GetMonthlyCollections(ctx context.Context, inspectorID string, startDate, endDate time.Time) ([]repository.MonthlyCollectionResult, error) {
	query := `
		SELECT to_char(p.due_date, 'YYYY-MM') AS month,
		       COUNT(DISTINCT p.contract_id) AS contract_count,
		       COALESCE(SUM(p.amount), 0) AS due_total,
		       COALESCE(SUM(p.amount) FILTER (WHERE p.status = $4), 0) AS paid_total,
		       COALESCE(SUM(p.amount) FILTER (WHERE p.status = $5), 0) AS pending_total
		FROM payments p
		JOIN contracts c ON c.id = p.contract_id
		WHERE c.inspector_id = $1
		  AND p.due_date >= $2 AND p.due_date <= $3
		  AND p.status <> $6
		GROUP BY to_char(p.due_date, 'YYYY-MM')
		ORDER BY month`
	rows, err := r.q.Query(ctx, query, inspectorID, startDate, endDate,
		entity.PaymentStatusPaid, entity.PaymentStatusPending, entity.PaymentStatusCancelled)
	if err != nil {
		return nil, fmt.Errorf("monthly collections: %w", err)
	}
	defer rows.Close()

	var results []repository.MonthlyCollectionResult
	for rows.Next() {
		var res repository.MonthlyCollectionResult
		if err := rows.Scan(
			&res.Month, &res.ContractCount, &res.DueTotal, &res.PaidTotal, &res.PendingTotal,
		); err != nil {
			return nil, fmt.Errorf("scan monthly collection: %w", err)
		}
		results = append(results, res)
	}
	return results, rows.Err()
}
