package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tu-usuario/ventas-plazos-api/internal/application/contracts"
	"github.com/tu-usuario/ventas-plazos-api/internal/application/payments"
	"github.com/tu-usuario/ventas-plazos-api/internal/domain/repository"
)

// Ensure TxRunner implements contracts.TxRunner and payments.TxRunner.
var _ contracts.TxRunner = (*TxRunner)(nil)
var _ payments.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción para la creación de un contrato: el contrato, su
// plan de pagos y el descuento de stock se confirman juntos o se revierten.
func (r *TxRunner) Run(ctx context.Context, fn func(
	contractRepo repository.ContractRepository,
	paymentRepo repository.PaymentRepository,
	productRepo repository.ProductRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	contractRepo := NewContractRepository(tx)
	paymentRepo := NewPaymentRepository(tx)
	productRepo := NewProductRepository(tx)

	if err := fn(contractRepo, paymentRepo, productRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunSchedule inicia una transacción para conciliar un cobro: leer el plan y
// escribir la cuota pagada (o la fila nueva) sin entrelazarse con otro cobro.
func (r *TxRunner) RunSchedule(ctx context.Context, fn func(
	paymentRepo repository.PaymentRepository,
	contractRepo repository.ContractRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	paymentRepo := NewPaymentRepository(tx)
	contractRepo := NewContractRepository(tx)

	if err := fn(paymentRepo, contractRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
