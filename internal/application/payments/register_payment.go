package payments

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/ventas-plazos-api/internal/application/dto"
	"github.com/tu-usuario/ventas-plazos-api/internal/domain"
	"github.com/tu-usuario/ventas-plazos-api/internal/domain/credit"
	"github.com/tu-usuario/ventas-plazos-api/internal/domain/entity"
	"github.com/tu-usuario/ventas-plazos-api/internal/domain/repository"
)

const dateLayout = "2006-01-02"

// RegisterPaymentUseCase registra cobros contra el plan de pagos de un contrato.
// Conciliación: la primera cuota pendiente (por período) cuyo monto coincide
// exactamente con el cobrado se marca pagada; si ninguna coincide se inserta
// una cuota pagada adicional, sin tocar las existentes.
type RegisterPaymentUseCase struct {
	txRunner     TxRunner
	contractRepo repository.ContractRepository
	employeeRepo repository.EmployeeRepository
}

// NewRegisterPaymentUseCase construye el caso de uso.
func NewRegisterPaymentUseCase(
	txRunner TxRunner,
	contractRepo repository.ContractRepository,
	employeeRepo repository.EmployeeRepository,
) *RegisterPaymentUseCase {
	return &RegisterPaymentUseCase{
		txRunner:     txRunner,
		contractRepo: contractRepo,
		employeeRepo: employeeRepo,
	}
}

// Register concilia y persiste un cobro. Devuelve la cuota afectada (pagada o creada)
// y si el contrato quedó saldado (se marca completed).
func (uc *RegisterPaymentUseCase) Register(ctx context.Context, branchID, contractID string, in dto.RegisterPaymentRequest) (*dto.PaymentResponse, error) {
	if in.Amount.LessThanOrEqual(decimal.Zero) || in.ReceiptNumber == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Discount.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	paymentDate := time.Now()
	if in.PaymentDate != "" {
		parsed, err := time.Parse(dateLayout, in.PaymentDate)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		paymentDate = parsed
	}

	contract, err := uc.contractRepo.GetByID(contractID)
	if err != nil {
		return nil, err
	}
	if contract == nil {
		return nil, domain.ErrNotFound
	}
	if contract.BranchID != branchID {
		return nil, domain.ErrForbidden
	}
	if contract.Status != entity.ContractStatusActive {
		return nil, domain.ErrContractClosed
	}
	if in.CollectorID != "" {
		collector, err := uc.employeeRepo.GetByID(in.CollectorID)
		if err != nil || collector == nil || collector.BranchID != branchID {
			return nil, domain.ErrNotFound
		}
	}

	var affected *entity.Payment
	err = uc.txRunner.RunSchedule(ctx, func(
		paymentRepo repository.PaymentRepository,
		contractRepo repository.ContractRepository,
	) error {
		schedule, err := paymentRepo.ListByContract(contractID)
		if err != nil {
			return err
		}

		now := time.Now()
		if match := credit.MatchPending(schedule, in.Amount); match != nil {
			match.Status = entity.PaymentStatusPaid
			match.PaymentDate = &paymentDate
			match.ReceiptNumber = in.ReceiptNumber
			match.CollectorID = in.CollectorID
			match.Discount = in.Discount
			match.Notes = in.Notes
			match.UpdatedAt = now
			if err := paymentRepo.Update(match); err != nil {
				return err
			}
			affected = match
		} else {
			// Cobro sin cuota equivalente: fila nueva, las existentes no se tocan
			extra := &entity.Payment{
				ID:            uuid.New().String(),
				ContractID:    contractID,
				Period:        nextPeriod(schedule),
				Amount:        in.Amount,
				DueDate:       paymentDate,
				PaymentDate:   &paymentDate,
				Status:        entity.PaymentStatusPaid,
				ReceiptNumber: in.ReceiptNumber,
				CollectorID:   in.CollectorID,
				Discount:      in.Discount,
				Notes:         in.Notes,
				CreatedAt:     now,
				UpdatedAt:     now,
			}
			if err := paymentRepo.Create(extra); err != nil {
				return err
			}
			schedule = append(schedule, extra)
			affected = extra
		}

		// Saldo cero y sin pendientes: el contrato queda completado
		if scheduleSettled(schedule, contract.TotalAmount) {
			return contractRepo.UpdateStatus(contractID, entity.ContractStatusCompleted)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ToPaymentResponse(affected, time.Now()), nil
}

// nextPeriod período para una cuota extra: uno más que el máximo del plan.
func nextPeriod(schedule []*entity.Payment) int {
	max := 0
	for _, p := range schedule {
		if p.Period > max {
			max = p.Period
		}
	}
	return max + 1
}

// scheduleSettled indica si lo pagado cubre el total y no quedan cuotas pendientes.
func scheduleSettled(schedule []*entity.Payment, total decimal.Decimal) bool {
	paid := decimal.Zero
	for _, p := range schedule {
		switch p.Status {
		case entity.PaymentStatusPending:
			return false
		case entity.PaymentStatusPaid:
			paid = paid.Add(p.Amount)
		}
	}
	return paid.GreaterThanOrEqual(total)
}

// ToPaymentResponse mapea una cuota al DTO, con estado efectivo (overdue calculado).
func ToPaymentResponse(p *entity.Payment, ref time.Time) *dto.PaymentResponse {
	resp := &dto.PaymentResponse{
		ID:            p.ID,
		ContractID:    p.ContractID,
		Period:        p.Period,
		IsDownPayment: p.IsDownPayment(),
		Amount:        p.Amount,
		DueDate:       p.DueDate.Format(dateLayout),
		Status:        p.EffectiveStatus(ref),
		ReceiptNumber: p.ReceiptNumber,
		CollectorID:   p.CollectorID,
		Discount:      p.Discount,
		Notes:         p.Notes,
	}
	if p.PaymentDate != nil {
		resp.PaymentDate = p.PaymentDate.Format(dateLayout)
	}
	return resp
}
