package payments

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/ventas-plazos-api/internal/application/dto"
	"github.com/tu-usuario/ventas-plazos-api/internal/domain"
	"github.com/tu-usuario/ventas-plazos-api/internal/domain/credit"
	"github.com/tu-usuario/ventas-plazos-api/internal/domain/entity"
	"github.com/tu-usuario/ventas-plazos-api/internal/domain/repository"
)

// ScheduleUseCase consulta y edición del plan de pagos.
type ScheduleUseCase struct {
	contractRepo repository.ContractRepository
	paymentRepo  repository.PaymentRepository
	employeeRepo repository.EmployeeRepository
}

// NewScheduleUseCase construye el caso de uso.
func NewScheduleUseCase(
	contractRepo repository.ContractRepository,
	paymentRepo repository.PaymentRepository,
	employeeRepo repository.EmployeeRepository,
) *ScheduleUseCase {
	return &ScheduleUseCase{
		contractRepo: contractRepo,
		paymentRepo:  paymentRepo,
		employeeRepo: employeeRepo,
	}
}

// GetSchedule devuelve el plan completo del contrato, ordenado por período,
// con saldo restante por fila pagada y totales.
func (uc *ScheduleUseCase) GetSchedule(branchID, contractID string) (*dto.ScheduleResponse, error) {
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
	schedule, err := uc.paymentRepo.ListByContract(contractID)
	if err != nil {
		return nil, err
	}
	credit.SortByPeriod(schedule)

	now := time.Now()
	resp := &dto.ScheduleResponse{
		ContractID:  contract.ID,
		Number:      contract.Number,
		TotalAmount: contract.TotalAmount,
		Payments:    make([]dto.PaymentResponse, 0, len(schedule)),
	}

	// Saldo corrido solo sobre las filas pagadas, en orden de período
	var paidAmounts []decimal.Decimal
	for _, p := range schedule {
		if p.Status == entity.PaymentStatusPaid {
			paidAmounts = append(paidAmounts, p.Amount)
		}
	}
	remainings := credit.RemainingAfter(contract.TotalAmount, paidAmounts)

	paidIdx := 0
	paidTotal := decimal.Zero
	for _, p := range schedule {
		row := ToPaymentResponse(p, now)
		if p.Status == entity.PaymentStatusPaid {
			r := remainings[paidIdx]
			row.Remaining = &r
			paidIdx++
			paidTotal = paidTotal.Add(p.Amount)
		}
		if row.Status == entity.PaymentStatusOverdue {
			resp.OverdueCount++
		}
		resp.Payments = append(resp.Payments, *row)
	}

	resp.PaidTotal = paidTotal
	resp.Remaining = contract.TotalAmount.Sub(paidTotal)
	if resp.Remaining.IsNegative() {
		resp.Remaining = decimal.Zero
	}
	return resp, nil
}

// UpdatePayment edita una cuota (monto, fechas, recibo, cobrador, descuento, notas).
func (uc *ScheduleUseCase) UpdatePayment(branchID, paymentID string, in dto.UpdatePaymentRequest) (*dto.PaymentResponse, error) {
	payment, err := uc.loadOwned(branchID, paymentID)
	if err != nil {
		return nil, err
	}
	if in.Amount != nil {
		if in.Amount.LessThanOrEqual(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		payment.Amount = *in.Amount
	}
	if in.DueDate != "" {
		parsed, err := time.Parse(dateLayout, in.DueDate)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		payment.DueDate = parsed
	}
	if in.PaymentDate != "" {
		parsed, err := time.Parse(dateLayout, in.PaymentDate)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		payment.PaymentDate = &parsed
	}
	if in.ReceiptNumber != nil {
		payment.ReceiptNumber = *in.ReceiptNumber
	}
	if in.CollectorID != nil {
		if *in.CollectorID != "" {
			collector, err := uc.employeeRepo.GetByID(*in.CollectorID)
			if err != nil || collector == nil || collector.BranchID != branchID {
				return nil, domain.ErrNotFound
			}
		}
		payment.CollectorID = *in.CollectorID
	}
	if in.Discount != nil {
		if in.Discount.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		payment.Discount = *in.Discount
	}
	if in.Notes != nil {
		payment.Notes = *in.Notes
	}
	payment.UpdatedAt = time.Now()
	if err := uc.paymentRepo.Update(payment); err != nil {
		return nil, err
	}
	return ToPaymentResponse(payment, time.Now()), nil
}

// AssignCollector asigna el cobrador de una cuota.
func (uc *ScheduleUseCase) AssignCollector(branchID, paymentID, collectorID string) (*dto.PaymentResponse, error) {
	if collectorID == "" {
		return nil, domain.ErrInvalidInput
	}
	payment, err := uc.loadOwned(branchID, paymentID)
	if err != nil {
		return nil, err
	}
	collector, err := uc.employeeRepo.GetByID(collectorID)
	if err != nil || collector == nil || collector.BranchID != branchID {
		return nil, domain.ErrNotFound
	}
	if collector.Role != entity.RoleCobrador && collector.Role != entity.RoleAdmin {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.paymentRepo.UpdateCollector(paymentID, collectorID); err != nil {
		return nil, err
	}
	payment.CollectorID = collectorID
	return ToPaymentResponse(payment, time.Now()), nil
}

// DeletePayment elimina una cuota del plan tras confirmación del operador.
func (uc *ScheduleUseCase) DeletePayment(branchID, paymentID string) error {
	payment, err := uc.loadOwned(branchID, paymentID)
	if err != nil {
		return err
	}
	return uc.paymentRepo.Delete(payment.ID)
}

// loadOwned carga la cuota y valida que su contrato sea de la sucursal.
func (uc *ScheduleUseCase) loadOwned(branchID, paymentID string) (*entity.Payment, error) {
	payment, err := uc.paymentRepo.GetByID(paymentID)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, domain.ErrNotFound
	}
	contract, err := uc.contractRepo.GetByID(payment.ContractID)
	if err != nil || contract == nil {
		return nil, domain.ErrNotFound
	}
	if contract.BranchID != branchID {
		return nil, domain.ErrForbidden
	}
	return payment, nil
}
