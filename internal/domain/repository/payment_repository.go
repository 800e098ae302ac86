package repository

import "github.com/tu-usuario/ventas-plazos-api/internal/domain/entity"

// PaymentRepository define el puerto de persistencia para las cuotas del plan de pagos.
type PaymentRepository interface {
	Create(payment *entity.Payment) error
	// CreateBatch inserta el plan completo de un contrato (una fila por cuota).
	CreateBatch(payments []*entity.Payment) error
	GetByID(id string) (*entity.Payment, error)
	// ListByContract cuotas del contrato ordenadas por período ascendente.
	ListByContract(contractID string) ([]*entity.Payment, error)
	Update(payment *entity.Payment) error
	UpdateCollector(id, collectorID string) error
	// CancelPending marca como canceladas las cuotas pendientes del contrato
	// (al cancelar el contrato no se borran filas).
	CancelPending(contractID string) error
	Delete(id string) error
}
