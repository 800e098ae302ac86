package payments_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/ventas-plazos-api/internal/application/dto"
	"github.com/tu-usuario/ventas-plazos-api/internal/application/payments"
	"github.com/tu-usuario/ventas-plazos-api/internal/domain"
	"github.com/tu-usuario/ventas-plazos-api/internal/domain/entity"
	"github.com/tu-usuario/ventas-plazos-api/internal/domain/repository"
)

func d(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakePaymentRepo struct {
	rows map[string]*entity.Payment
}

func newFakePaymentRepo() *fakePaymentRepo {
	return &fakePaymentRepo{rows: make(map[string]*entity.Payment)}
}

func (f *fakePaymentRepo) Create(p *entity.Payment) error {
	cp := *p
	f.rows[p.ID] = &cp
	return nil
}

func (f *fakePaymentRepo) CreateBatch(ps []*entity.Payment) error {
	for _, p := range ps {
		if err := f.Create(p); err != nil {
			return err
		}
	}
	return nil
}

func (f *fakePaymentRepo) GetByID(id string) (*entity.Payment, error) {
	p, ok := f.rows[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (f *fakePaymentRepo) ListByContract(contractID string) ([]*entity.Payment, error) {
	var out []*entity.Payment
	for _, p := range f.rows {
		if p.ContractID == contractID {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakePaymentRepo) Update(p *entity.Payment) error {
	cp := *p
	f.rows[p.ID] = &cp
	return nil
}

func (f *fakePaymentRepo) UpdateCollector(id, collectorID string) error {
	if p, ok := f.rows[id]; ok {
		p.CollectorID = collectorID
	}
	return nil
}

func (f *fakePaymentRepo) CancelPending(contractID string) error {
	for _, p := range f.rows {
		if p.ContractID == contractID && p.Status == entity.PaymentStatusPending {
			p.Status = entity.PaymentStatusCancelled
		}
	}
	return nil
}

func (f *fakePaymentRepo) Delete(id string) error {
	delete(f.rows, id)
	return nil
}

type fakeContractRepo struct {
	rows map[string]*entity.Contract
}

func newFakeContractRepo() *fakeContractRepo {
	return &fakeContractRepo{rows: make(map[string]*entity.Contract)}
}

func (f *fakeContractRepo) Create(c *entity.Contract) error {
	cp := *c
	f.rows[c.ID] = &cp
	return nil
}

func (f *fakeContractRepo) GetByID(id string) (*entity.Contract, error) {
	c, ok := f.rows[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (f *fakeContractRepo) GetByBranchAndNumber(branchID, number string) (*entity.Contract, error) {
	for _, c := range f.rows {
		if c.BranchID == branchID && c.Number == number {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeContractRepo) ListByBranch(string, string, int, int) ([]*entity.Contract, error) {
	return nil, nil
}
func (f *fakeContractRepo) ListByInspector(string) ([]*entity.Contract, error) { return nil, nil }
func (f *fakeContractRepo) ListByCustomer(string) ([]*entity.Contract, error)  { return nil, nil }

func (f *fakeContractRepo) Update(c *entity.Contract) error {
	cp := *c
	f.rows[c.ID] = &cp
	return nil
}

func (f *fakeContractRepo) UpdateStatus(id, status string) error {
	if c, ok := f.rows[id]; ok {
		c.Status = status
	}
	return nil
}

func (f *fakeContractRepo) UpdateCommissionRate(id string, rate decimal.Decimal) error {
	if c, ok := f.rows[id]; ok {
		c.CommissionRate = rate
	}
	return nil
}

type fakeEmployeeRepo struct {
	rows map[string]*entity.Employee
}

func (f *fakeEmployeeRepo) Create(e *entity.Employee) error { f.rows[e.ID] = e; return nil }
func (f *fakeEmployeeRepo) GetByID(id string) (*entity.Employee, error) {
	return f.rows[id], nil
}
func (f *fakeEmployeeRepo) ListByBranch(string, string, int, int) ([]*entity.Employee, error) {
	return nil, nil
}
func (f *fakeEmployeeRepo) Update(*entity.Employee) error { return nil }
func (f *fakeEmployeeRepo) Delete(string) error           { return nil }

// fakeTxRunner ejecuta el callback directamente sobre los fakes (sin transacción real).
type fakeTxRunner struct {
	paymentRepo  *fakePaymentRepo
	contractRepo *fakeContractRepo
}

func (f *fakeTxRunner) RunSchedule(_ context.Context, fn func(
	paymentRepo repository.PaymentRepository,
	contractRepo repository.ContractRepository,
) error) error {
	return fn(f.paymentRepo, f.contractRepo)
}

// ──────────────────────────────────────────────────────────────────────────────
// Fixture
// ──────────────────────────────────────────────────────────────────────────────

const (
	testBranchID   = "branch-1"
	testContractID = "contract-1"
)

type fixture struct {
	uc       *payments.RegisterPaymentUseCase
	payments *fakePaymentRepo
	contract *fakeContractRepo
}

// buildFixture contrato activo de total 12840 con cuota inicial 1500 pendiente
// y cuotas 1 y 2 de 756 pendientes.
func buildFixture(t *testing.T) *fixture {
	t.Helper()
	paymentRepo := newFakePaymentRepo()
	contractRepo := newFakeContractRepo()
	employeeRepo := &fakeEmployeeRepo{rows: map[string]*entity.Employee{
		"cobrador-1": {ID: "cobrador-1", BranchID: testBranchID, Role: entity.RoleCobrador},
	}}

	require.NoError(t, contractRepo.Create(&entity.Contract{
		ID:          testContractID,
		BranchID:    testBranchID,
		Number:      "C-0001",
		TotalAmount: d("12840"),
		Status:      entity.ContractStatusActive,
	}))
	due := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)
	require.NoError(t, paymentRepo.CreateBatch([]*entity.Payment{
		{ID: "p0", ContractID: testContractID, Period: 0, Amount: d("1500"), DueDate: due, Status: entity.PaymentStatusPending},
		{ID: "p1", ContractID: testContractID, Period: 1, Amount: d("756"), DueDate: due.AddDate(0, 1, 0), Status: entity.PaymentStatusPending},
		{ID: "p2", ContractID: testContractID, Period: 2, Amount: d("756"), DueDate: due.AddDate(0, 2, 0), Status: entity.PaymentStatusPending},
	}))

	txRunner := &fakeTxRunner{paymentRepo: paymentRepo, contractRepo: contractRepo}
	return &fixture{
		uc:       payments.NewRegisterPaymentUseCase(txRunner, contractRepo, employeeRepo),
		payments: paymentRepo,
		contract: contractRepo,
	}
}

func registerReq(amount string) dto.RegisterPaymentRequest {
	return dto.RegisterPaymentRequest{
		Amount:        d(amount),
		PaymentDate:   "2025-04-10",
		ReceiptNumber: "R-100",
		CollectorID:   "cobrador-1",
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests de conciliación
// ──────────────────────────────────────────────────────────────────────────────

// Dos cuotas pendientes de 756: debe pagarse exactamente una, la de período 1.
func TestRegister_MontoCoincide_PagaExactamenteUnaCuota(t *testing.T) {
	f := buildFixture(t)

	resp, err := f.uc.Register(context.Background(), testBranchID, testContractID, registerReq("756"))
	require.NoError(t, err)
	assert.Equal(t, "p1", resp.ID, "debe pagarse la cuota de período más bajo")
	assert.Equal(t, entity.PaymentStatusPaid, resp.Status)
	assert.Equal(t, "R-100", resp.ReceiptNumber)

	p1, _ := f.payments.GetByID("p1")
	p2, _ := f.payments.GetByID("p2")
	assert.Equal(t, entity.PaymentStatusPaid, p1.Status)
	assert.Equal(t, entity.PaymentStatusPending, p2.Status, "la otra cuota de 756 no se toca")
	require.NotNil(t, p1.PaymentDate)
}

// Monto sin coincidencia exacta: se crea una cuota nueva, nada existente muta.
func TestRegister_SinCoincidencia_CreaCuotaNueva(t *testing.T) {
	f := buildFixture(t)

	resp, err := f.uc.Register(context.Background(), testBranchID, testContractID, registerReq("800"))
	require.NoError(t, err)
	assert.NotContains(t, []string{"p0", "p1", "p2"}, resp.ID, "debe ser una fila nueva")
	assert.Equal(t, entity.PaymentStatusPaid, resp.Status)
	assert.Equal(t, 3, resp.Period, "período siguiente al máximo del plan")

	for _, id := range []string{"p0", "p1", "p2"} {
		p, _ := f.payments.GetByID(id)
		assert.Equal(t, entity.PaymentStatusPending, p.Status, "cuota %s no debe mutar", id)
	}
}

// Al pagar todas las cuotas el contrato queda completed.
func TestRegister_PlanSaldado_CompletaElContrato(t *testing.T) {
	f := buildFixture(t)
	ctx := context.Background()

	_, err := f.uc.Register(ctx, testBranchID, testContractID, registerReq("1500"))
	require.NoError(t, err)
	_, err = f.uc.Register(ctx, testBranchID, testContractID, registerReq("756"))
	require.NoError(t, err)

	c, _ := f.contract.GetByID(testContractID)
	assert.Equal(t, entity.ContractStatusActive, c.Status, "aún falta una cuota")

	// El total del fixture no cubre las tres cuotas (plan parcial de prueba):
	// pagada la última pendiente ya no quedan pendientes pero el monto pagado
	// (3012) no alcanza 12840, así que el contrato sigue activo.
	_, err = f.uc.Register(ctx, testBranchID, testContractID, registerReq("756"))
	require.NoError(t, err)
	c, _ = f.contract.GetByID(testContractID)
	assert.Equal(t, entity.ContractStatusActive, c.Status)
}

// Contrato cuyo plan suma exactamente el total: al pagar la última cuota
// pendiente queda completed.
func TestRegister_UltimaCuota_CompletaContratoSaldado(t *testing.T) {
	f := buildFixture(t)
	ctx := context.Background()

	c, _ := f.contract.GetByID(testContractID)
	c.TotalAmount = d("3012") // 1500 + 756 + 756
	require.NoError(t, f.contract.Update(c))

	_, err := f.uc.Register(ctx, testBranchID, testContractID, registerReq("1500"))
	require.NoError(t, err)
	_, err = f.uc.Register(ctx, testBranchID, testContractID, registerReq("756"))
	require.NoError(t, err)

	c, _ = f.contract.GetByID(testContractID)
	assert.Equal(t, entity.ContractStatusActive, c.Status, "aún queda una cuota pendiente")

	_, err = f.uc.Register(ctx, testBranchID, testContractID, registerReq("756"))
	require.NoError(t, err)

	c, _ = f.contract.GetByID(testContractID)
	assert.Equal(t, entity.ContractStatusCompleted, c.Status,
		"sin pendientes y total cubierto: contrato completado")
}

func TestRegister_ContratoCancelado_Rechaza(t *testing.T) {
	f := buildFixture(t)
	require.NoError(t, f.contract.UpdateStatus(testContractID, entity.ContractStatusCancelled))

	_, err := f.uc.Register(context.Background(), testBranchID, testContractID, registerReq("756"))
	assert.ErrorIs(t, err, domain.ErrContractClosed)
}

func TestRegister_OtraSucursal_Forbidden(t *testing.T) {
	f := buildFixture(t)
	_, err := f.uc.Register(context.Background(), "otra-sucursal", testContractID, registerReq("756"))
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestRegister_ContratoInexistente_NotFound(t *testing.T) {
	f := buildFixture(t)
	_, err := f.uc.Register(context.Background(), testBranchID, "no-existe", registerReq("756"))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRegister_ValidacionDeEntrada(t *testing.T) {
	f := buildFixture(t)
	ctx := context.Background()

	in := registerReq("756")
	in.Amount = decimal.Zero
	_, err := f.uc.Register(ctx, testBranchID, testContractID, in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "monto cero")

	in = registerReq("756")
	in.ReceiptNumber = ""
	_, err = f.uc.Register(ctx, testBranchID, testContractID, in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "recibo requerido")

	in = registerReq("756")
	in.PaymentDate = "10/04/2025"
	_, err = f.uc.Register(ctx, testBranchID, testContractID, in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "fecha mal formada")
}

func TestRegister_CobradorDeOtraSucursal_NotFound(t *testing.T) {
	f := buildFixture(t)
	in := registerReq("756")
	in.CollectorID = "cobrador-fantasma"
	_, err := f.uc.Register(context.Background(), testBranchID, testContractID, in)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
