package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/ventas-plazos-api/internal/domain"
	"github.com/tu-usuario/ventas-plazos-api/internal/domain/entity"
	"github.com/tu-usuario/ventas-plazos-api/internal/domain/repository"
)

var _ repository.PaymentRepository = (*PaymentRepo)(nil)

const paymentColumns = `id, contract_id, period, amount, due_date, payment_date, status,
		receipt_number, COALESCE(collector_id, ''), discount, notes, created_at, updated_at`

// PaymentRepo implementación de PaymentRepository (usable con pool o tx).
type PaymentRepo struct {
	q Querier
}

// NewPaymentRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPaymentRepository(q Querier) *PaymentRepo {
	return &PaymentRepo{q: q}
}

const insertPayment = `
	INSERT INTO payments (id, contract_id, period, amount, due_date, payment_date, status,
		receipt_number, collector_id, discount, notes, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NULLIF($9, ''), $10, $11, $12, $13)`

// Create persiste una cuota suelta (cobro fuera de plan).
func (r *PaymentRepo) Create(payment *entity.Payment) error {
	_, err := r.q.Exec(context.Background(), insertPayment,
		payment.ID, payment.ContractID, payment.Period, payment.Amount, payment.DueDate,
		payment.PaymentDate, payment.Status, payment.ReceiptNumber, payment.CollectorID,
		payment.Discount, payment.Notes, payment.CreatedAt, payment.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert payment: %w", err)
	}
	return nil
}

// CreateBatch inserta el plan completo de un contrato en un solo batch de pgx.
func (r *PaymentRepo) CreateBatch(payments []*entity.Payment) error {
	if len(payments) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	for _, p := range payments {
		batch.Queue(insertPayment,
			p.ID, p.ContractID, p.Period, p.Amount, p.DueDate,
			p.PaymentDate, p.Status, p.ReceiptNumber, p.CollectorID,
			p.Discount, p.Notes, p.CreatedAt, p.UpdatedAt,
		)
	}
	// pgxpool.Pool y pgx.Tx exponen SendBatch; el fallback fila a fila cubre
	// cualquier otro Querier.
	if sender, ok := r.q.(interface {
		SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults
	}); ok {
		res := sender.SendBatch(context.Background(), batch)
		defer res.Close()
		for range payments {
			if _, err := res.Exec(); err != nil {
				if isUniqueViolation(err) {
					return domain.ErrDuplicate
				}
				return fmt.Errorf("insert payment batch: %w", err)
			}
		}
		return nil
	}
	for _, p := range payments {
		if err := r.Create(p); err != nil {
			return err
		}
	}
	return nil
}

func scanPayment(row pgx.Row) (*entity.Payment, error) {
	var p entity.Payment
	err := row.Scan(
		&p.ID, &p.ContractID, &p.Period, &p.Amount, &p.DueDate, &p.PaymentDate, &p.Status,
		&p.ReceiptNumber, &p.CollectorID, &p.Discount, &p.Notes, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// GetByID obtiene una cuota por ID.
func (r *PaymentRepo) GetByID(id string) (*entity.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE id = $1`
	p, err := scanPayment(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get payment: %w", err)
	}
	return p, nil
}

// ListByContract cuotas del contrato ordenadas por período ascendente
// (la cuota inicial, período 0, va primero).
func (r *PaymentRepo) ListByContract(contractID string) ([]*entity.Payment, error) {
	query := `SELECT ` + paymentColumns + `
		FROM payments WHERE contract_id = $1 ORDER BY period`
	rows, err := r.q.Query(context.Background(), query, contractID)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	defer rows.Close()
	var list []*entity.Payment
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan payment: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// Update actualiza una cuota completa (monto, fechas, estado, recibo, cobrador, descuento).
func (r *PaymentRepo) Update(payment *entity.Payment) error {
	query := `
		UPDATE payments SET amount = $2, due_date = $3, payment_date = $4, status = $5,
			receipt_number = $6, collector_id = NULLIF($7, ''), discount = $8, notes = $9,
			updated_at = $10
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		payment.ID, payment.Amount, payment.DueDate, payment.PaymentDate, payment.Status,
		payment.ReceiptNumber, payment.CollectorID, payment.Discount, payment.Notes,
		payment.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update payment: %w", err)
	}
	return nil
}

// UpdateCollector reasigna el cobrador de una cuota.
func (r *PaymentRepo) UpdateCollector(id, collectorID string) error {
	query := `UPDATE payments SET collector_id = NULLIF($2, ''), updated_at = now() WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query, id, collectorID)
	if err != nil {
		return fmt.Errorf("update payment collector: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// CancelPending marca como canceladas las cuotas pendientes del contrato.
func (r *PaymentRepo) CancelPending(contractID string) error {
	query := `
		UPDATE payments SET status = $2, updated_at = now()
		WHERE contract_id = $1 AND status = $3`
	_, err := r.q.Exec(context.Background(), query,
		contractID, entity.PaymentStatusCancelled, entity.PaymentStatusPending,
	)
	if err != nil {
		return fmt.Errorf("cancel pending payments: %w", err)
	}
	return nil
}

// Delete elimina una cuota por ID.
func (r *PaymentRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM payments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete payment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
