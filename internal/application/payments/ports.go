package payments

import (
	"context"

	"github.com/tu-usuario/ventas-plazos-api/internal/domain/repository"
)

// TxRunner ejecuta la conciliación de un cobro dentro de una transacción:
// la lectura del plan y la escritura (flip o inserción) no deben entrelazarse
// con otro cobro del mismo contrato.
type TxRunner interface {
	RunSchedule(ctx context.Context, fn func(
		paymentRepo repository.PaymentRepository,
		contractRepo repository.ContractRepository,
	) error) error
}
