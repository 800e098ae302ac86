package contracts

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

// CreateContractUseCase crea contratos de forma transaccional: valida las
// referencias, calcula total y fecha fin, genera el plan de pagos completo
// (cuota inicial incluida como fila real) y descuenta el stock del producto.
type CreateContractUseCase struct {
	txRunner      TxRunner
	customerRepo  repository.CustomerRepository
	guarantorRepo repository.GuarantorRepository
	employeeRepo  repository.EmployeeRepository
	productRepo   repository.ProductRepository
	contractRepo  repository.ContractRepository

	defaultCommissionRate decimal.Decimal
	defaultCollectionDay  int
}

// NewCreateContractUseCase construye el caso de uso.
func NewCreateContractUseCase(
	txRunner TxRunner,
	customerRepo repository.CustomerRepository,
	guarantorRepo repository.GuarantorRepository,
	employeeRepo repository.EmployeeRepository,
	productRepo repository.ProductRepository,
	contractRepo repository.ContractRepository,
	defaultCommissionRate decimal.Decimal,
	defaultCollectionDay int,
) *CreateContractUseCase {
	return &CreateContractUseCase{
		txRunner:              txRunner,
		customerRepo:          customerRepo,
		guarantorRepo:         guarantorRepo,
		employeeRepo:          employeeRepo,
		productRepo:           productRepo,
		contractRepo:          contractRepo,
		defaultCommissionRate: defaultCommissionRate,
		defaultCollectionDay:  defaultCollectionDay,
	}
}

// Create valida y crea el contrato con su plan de pagos en una transacción.
func (uc *CreateContractUseCase) Create(ctx context.Context, branchID string, in dto.CreateContractRequest) (*dto.ContractResponse, error) {
	if in.Number == "" || in.CustomerID == "" || in.ProductID == "" ||
		in.SalespersonID == "" || in.InspectorID == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Months <= 0 || in.MonthlyPayment.LessThanOrEqual(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	if in.DownPayment.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	startDate, err := time.Parse(dateLayout, in.StartDate)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}

	existing, _ := uc.contractRepo.GetByBranchAndNumber(branchID, in.Number)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}

	customer, err := uc.customerRepo.GetByID(in.CustomerID)
	if err != nil || customer == nil || customer.BranchID != branchID {
		return nil, domain.ErrNotFound
	}
	if in.GuarantorID != "" {
		guarantor, err := uc.guarantorRepo.GetByID(in.GuarantorID)
		if err != nil || guarantor == nil || guarantor.BranchID != branchID {
			return nil, domain.ErrNotFound
		}
	}
	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil || product == nil || product.BranchID != branchID {
		return nil, domain.ErrNotFound
	}
	if product.Stock < 1 {
		return nil, domain.ErrInsufficientStock
	}
	if err := uc.checkEmployee(branchID, in.SalespersonID, entity.RoleVendedor); err != nil {
		return nil, err
	}
	if err := uc.checkEmployee(branchID, in.InspectorID, entity.RoleInspector); err != nil {
		return nil, err
	}
	if in.CollectorID != "" {
		if err := uc.checkEmployee(branchID, in.CollectorID, entity.RoleCobrador); err != nil {
			return nil, err
		}
	}

	collectionDay := in.CollectionDay
	if collectionDay == 0 {
		collectionDay = uc.defaultCollectionDay
	}
	commissionRate := in.CommissionRate
	if commissionRate.IsZero() {
		commissionRate = uc.defaultCommissionRate
	}

	totalAmount, err := credit.GrandTotal(in.DownPayment, in.MonthlyPayment, in.Months)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	lines, err := credit.GenerateSchedule(startDate, in.DownPayment, in.MonthlyPayment, in.Months, collectionDay)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	contract := &entity.Contract{
		ID:             uuid.New().String(),
		BranchID:       branchID,
		Number:         in.Number,
		CustomerID:     in.CustomerID,
		GuarantorID:    in.GuarantorID,
		ProductID:      in.ProductID,
		SalespersonID:  in.SalespersonID,
		InspectorID:    in.InspectorID,
		CollectorID:    in.CollectorID,
		DownPayment:    in.DownPayment,
		MonthlyPayment: in.MonthlyPayment,
		Months:         in.Months,
		TotalAmount:    totalAmount,
		CommissionRate: commissionRate,
		StartDate:      startDate,
		EndDate:        credit.EndDate(startDate, in.Months),
		CollectionDay:  collectionDay,
		Status:         entity.ContractStatusActive,
		Notes:          in.Notes,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	payments := make([]*entity.Payment, 0, len(lines))
	for _, l := range lines {
		payments = append(payments, &entity.Payment{
			ID:         uuid.New().String(),
			ContractID: contract.ID,
			Period:     l.Period,
			Amount:     l.Amount,
			DueDate:    l.DueDate,
			Status:     entity.PaymentStatusPending,
			Discount:   decimal.Zero,
			CreatedAt:  now,
			UpdatedAt:  now,
		})
	}

	// Contrato + plan + stock en una sola transacción; Rollback ante cualquier fallo.
	err = uc.txRunner.Run(ctx, func(
		contractRepo repository.ContractRepository,
		paymentRepo repository.PaymentRepository,
		productRepo repository.ProductRepository,
	) error {
		if err := contractRepo.Create(contract); err != nil {
			return err
		}
		if err := paymentRepo.CreateBatch(payments); err != nil {
			return err
		}
		return productRepo.DecrementStock(contract.ProductID, 1)
	})
	if err != nil {
		return nil, err
	}

	resp := ToContractResponse(contract)
	resp.CustomerName = customer.FullName()
	resp.ProductName = product.Name
	return resp, nil
}

// checkEmployee valida que el empleado exista, sea de la sucursal y tenga el rol esperado.
func (uc *CreateContractUseCase) checkEmployee(branchID, id, role string) error {
	emp, err := uc.employeeRepo.GetByID(id)
	if err != nil || emp == nil || emp.BranchID != branchID {
		return domain.ErrNotFound
	}
	if emp.Role != role && emp.Role != entity.RoleAdmin {
		return domain.ErrInvalidInput
	}
	return nil
}

// ToContractResponse mapea la entidad al DTO de respuesta.
func ToContractResponse(c *entity.Contract) *dto.ContractResponse {
	return &dto.ContractResponse{
		ID:             c.ID,
		BranchID:       c.BranchID,
		Number:         c.Number,
		CustomerID:     c.CustomerID,
		GuarantorID:    c.GuarantorID,
		ProductID:      c.ProductID,
		SalespersonID:  c.SalespersonID,
		InspectorID:    c.InspectorID,
		CollectorID:    c.CollectorID,
		DownPayment:    c.DownPayment,
		MonthlyPayment: c.MonthlyPayment,
		Months:         c.Months,
		TotalAmount:    c.TotalAmount,
		CommissionRate: c.CommissionRate,
		StartDate:      c.StartDate.Format(dateLayout),
		EndDate:        c.EndDate.Format(dateLayout),
		CollectionDay:  c.CollectionDay,
		Status:         c.Status,
		Notes:          c.Notes,
	}
}
