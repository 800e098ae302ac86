package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/ventas-plazos-api/internal/domain"
	"github.com/tu-usuario/ventas-plazos-api/internal/domain/entity"
	"github.com/tu-usuario/ventas-plazos-api/internal/domain/repository"
)

var _ repository.ContractRepository = (*ContractRepo)(nil)

// Fiador y cobrador son opcionales: NULL en la tabla, cadena vacía en la entidad.
const contractColumns = `id, branch_id, number, customer_id, COALESCE(guarantor_id, ''), product_id,
		salesperson_id, inspector_id, COALESCE(collector_id, ''),
		down_payment, monthly_payment, months, total_amount, commission_rate,
		start_date, end_date, collection_day, status, notes, created_at, updated_at`

// ContractRepo implementación de ContractRepository (usable con pool o tx).
type ContractRepo struct {
	q Querier
}

// NewContractRepository construye el adaptador. Pasar pool o tx (Querier).
func NewContractRepository(q Querier) *ContractRepo {
	return &ContractRepo{q: q}
}

// Create persiste un nuevo contrato.
func (r *ContractRepo) Create(contract *entity.Contract) error {
	query := `
		INSERT INTO contracts (id, branch_id, number, customer_id, guarantor_id, product_id,
			salesperson_id, inspector_id, collector_id,
			down_payment, monthly_payment, months, total_amount, commission_rate,
			start_date, end_date, collection_day, status, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6, $7, $8, NULLIF($9, ''),
			$10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)`
	_, err := r.q.Exec(context.Background(), query,
		contract.ID, contract.BranchID, contract.Number, contract.CustomerID, contract.GuarantorID,
		contract.ProductID, contract.SalespersonID, contract.InspectorID, contract.CollectorID,
		contract.DownPayment, contract.MonthlyPayment, contract.Months, contract.TotalAmount,
		contract.CommissionRate, contract.StartDate, contract.EndDate, contract.CollectionDay,
		contract.Status, contract.Notes, contract.CreatedAt, contract.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert contract: %w", err)
	}
	return nil
}

func scanContract(row pgx.Row) (*entity.Contract, error) {
	var c entity.Contract
	err := row.Scan(
		&c.ID, &c.BranchID, &c.Number, &c.CustomerID, &c.GuarantorID, &c.ProductID,
		&c.SalespersonID, &c.InspectorID, &c.CollectorID,
		&c.DownPayment, &c.MonthlyPayment, &c.Months, &c.TotalAmount, &c.CommissionRate,
		&c.StartDate, &c.EndDate, &c.CollectionDay, &c.Status, &c.Notes,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// GetByID obtiene un contrato por ID.
func (r *ContractRepo) GetByID(id string) (*entity.Contract, error) {
	query := `SELECT ` + contractColumns + ` FROM contracts WHERE id = $1`
	c, err := scanContract(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get contract: %w", err)
	}
	return c, nil
}

// GetByBranchAndNumber obtiene un contrato por sucursal y número.
func (r *ContractRepo) GetByBranchAndNumber(branchID, number string) (*entity.Contract, error) {
	query := `SELECT ` + contractColumns + ` FROM contracts WHERE branch_id = $1 AND number = $2`
	c, err := scanContract(r.q.QueryRow(context.Background(), query, branchID, number))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get contract by number: %w", err)
	}
	return c, nil
}

// ListByBranch lista contratos de la sucursal; status filtra por estado (vacío = todos).
func (r *ContractRepo) ListByBranch(branchID, status string, limit, offset int) ([]*entity.Contract, error) {
	query := `SELECT ` + contractColumns + `
		FROM contracts
		WHERE branch_id = $1 AND ($2 = '' OR status = $2)
		ORDER BY start_date DESC, number DESC LIMIT $3 OFFSET $4`
	rows, err := r.q.Query(context.Background(), query, branchID, status, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list contracts: %w", err)
	}
	defer rows.Close()
	return collectContracts(rows)
}

// ListByInspector contratos verificados por un inspector.
func (r *ContractRepo) ListByInspector(inspectorID string) ([]*entity.Contract, error) {
	query := `SELECT ` + contractColumns + `
		FROM contracts WHERE inspector_id = $1 ORDER BY start_date DESC`
	rows, err := r.q.Query(context.Background(), query, inspectorID)
	if err != nil {
		return nil, fmt.Errorf("list contracts by inspector: %w", err)
	}
	defer rows.Close()
	return collectContracts(rows)
}

// ListByCustomer contratos de un cliente.
func (r *ContractRepo) ListByCustomer(customerID string) ([]*entity.Contract, error) {
	query := `SELECT ` + contractColumns + `
		FROM contracts WHERE customer_id = $1 ORDER BY start_date DESC`
	rows, err := r.q.Query(context.Background(), query, customerID)
	if err != nil {
		return nil, fmt.Errorf("list contracts by customer: %w", err)
	}
	defer rows.Close()
	return collectContracts(rows)
}

func collectContracts(rows pgx.Rows) ([]*entity.Contract, error) {
	var list []*entity.Contract
	for rows.Next() {
		c, err := scanContract(rows)
		if err != nil {
			return nil, fmt.Errorf("scan contract: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// Update actualiza los campos editables de un contrato. El plan de pagos y los
// montos pactados no se tocan por esta vía.
func (r *ContractRepo) Update(contract *entity.Contract) error {
	query := `
		UPDATE contracts SET salesperson_id = $2, inspector_id = $3, collector_id = NULLIF($4, ''),
			collection_day = $5, notes = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		contract.ID, contract.SalespersonID, contract.InspectorID, contract.CollectorID,
		contract.CollectionDay, contract.Notes, contract.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update contract: %w", err)
	}
	return nil
}

// UpdateStatus cambia el estado del contrato (active | completed | cancelled).
func (r *ContractRepo) UpdateStatus(id, status string) error {
	query := `UPDATE contracts SET status = $2, updated_at = now() WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query, id, status)
	if err != nil {
		return fmt.Errorf("update contract status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateCommissionRate cambia la tasa de comisión persistida del contrato.
// Solo afecta a este contrato: los reportes de los demás no cambian.
func (r *ContractRepo) UpdateCommissionRate(id string, rate decimal.Decimal) error {
	query := `UPDATE contracts SET commission_rate = $2, updated_at = now() WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query, id, rate)
	if err != nil {
		return fmt.Errorf("update commission rate: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
