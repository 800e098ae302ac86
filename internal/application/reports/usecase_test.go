package reports_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/ventas-plazos-api/internal/application/dto"
	"github.com/tu-usuario/ventas-plazos-api/internal/application/reports"
	"github.com/tu-usuario/ventas-plazos-api/internal/domain"
	"github.com/tu-usuario/ventas-plazos-api/internal/domain/credit"
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
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

type fakeReportRepo struct {
	sales map[string]*salesRow // por contrato, la tasa vive aquí
}

type salesRow struct {
	number string
	rate   decimal.Decimal
	total  decimal.Decimal
}

func (f *fakeReportRepo) GetSalesCommissions(_ context.Context, _ string, _, _ time.Time) ([]repository.SalesCommissionResult, error) {
	var out []repository.SalesCommissionResult
	for id, r := range f.sales {
		out = append(out, repository.SalesCommissionResult{
			ContractID:       id,
			ContractNumber:   r.number,
			GrandTotal:       r.total,
			CommissionRate:   r.rate,
			CommissionAmount: credit.Commission(r.total, r.rate),
		})
	}
	return out, nil
}

func (f *fakeReportRepo) GetMonthlyCollections(_ context.Context, _ string, _, _ time.Time) ([]repository.MonthlyCollectionResult, error) {
	return []repository.MonthlyCollectionResult{
		{Month: "2025-01", ContractCount: 2, DueTotal: d("3000"), PaidTotal: d("2000"), PendingTotal: d("1000")},
		{Month: "2025-02", ContractCount: 2, DueTotal: d("3000"), PaidTotal: d("1500"), PendingTotal: d("1500")},
	}, nil
}

type fakeContractRepo struct {
	byInspector []*entity.Contract
}

func (f *fakeContractRepo) Create(*entity.Contract) error                 { return nil }
func (f *fakeContractRepo) GetByID(string) (*entity.Contract, error)      { return nil, nil }
func (f *fakeContractRepo) GetByBranchAndNumber(string, string) (*entity.Contract, error) {
	return nil, nil
}
func (f *fakeContractRepo) ListByBranch(string, string, int, int) ([]*entity.Contract, error) {
	return nil, nil
}
func (f *fakeContractRepo) ListByInspector(string) ([]*entity.Contract, error) {
	return f.byInspector, nil
}
func (f *fakeContractRepo) ListByCustomer(string) ([]*entity.Contract, error) { return nil, nil }
func (f *fakeContractRepo) Update(*entity.Contract) error                     { return nil }
func (f *fakeContractRepo) UpdateStatus(string, string) error                 { return nil }
func (f *fakeContractRepo) UpdateCommissionRate(string, decimal.Decimal) error {
	return nil
}

type fakeEmployeeRepo struct {
	rows map[string]*entity.Employee
}

func (f *fakeEmployeeRepo) Create(*entity.Employee) error { return nil }
func (f *fakeEmployeeRepo) GetByID(id string) (*entity.Employee, error) {
	return f.rows[id], nil
}
func (f *fakeEmployeeRepo) ListByBranch(string, string, int, int) ([]*entity.Employee, error) {
	return nil, nil
}
func (f *fakeEmployeeRepo) Update(*entity.Employee) error { return nil }
func (f *fakeEmployeeRepo) Delete(string) error           { return nil }

func rowFor(t *testing.T, rows []dto.SalesCommissionRowDTO, number string) dto.SalesCommissionRowDTO {
	t.Helper()
	for _, r := range rows {
		if r.ContractNumber == number {
			return r
		}
	}
	t.Fatalf("no hay fila para el contrato %s", number)
	return dto.SalesCommissionRowDTO{}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests — reporte de ventas/comisiones
// ──────────────────────────────────────────────────────────────────────────────

// Editar la tasa de un contrato no puede alterar la comisión de los demás:
// cada fila se calcula con su tasa persistida.
func TestSalesCommissions_AislamientoEntreFilas(t *testing.T) {
	repo := &fakeReportRepo{sales: map[string]*salesRow{
		"c1": {number: "C-0001", rate: d("5"), total: d("50000")},
		"c2": {number: "C-0002", rate: d("5"), total: d("20000")},
	}}
	uc := reports.NewReportUseCase(repo, &fakeContractRepo{}, &fakeEmployeeRepo{})

	before, err := uc.SalesCommissions(context.Background(), "b1", "2025-01-01", "2025-12-31")
	require.NoError(t, err)
	require.Len(t, before.Rows, 2)
	assert.True(t, rowFor(t, before.Rows, "C-0001").CommissionAmount.Equal(d("2500")),
		"50000 al 5%% debe ser 2500")

	// Se edita la tasa solo de c1
	repo.sales["c1"].rate = d("7")

	after, err := uc.SalesCommissions(context.Background(), "b1", "2025-01-01", "2025-12-31")
	require.NoError(t, err)
	assert.True(t, rowFor(t, after.Rows, "C-0001").CommissionAmount.Equal(d("3500")),
		"la fila editada pasa a 3500")
	assert.True(t, rowFor(t, after.Rows, "C-0002").CommissionAmount.Equal(d("1000")),
		"la fila no editada no cambia")
}

func TestSalesCommissions_Totales(t *testing.T) {
	repo := &fakeReportRepo{sales: map[string]*salesRow{
		"c1": {number: "C-0001", rate: d("5"), total: d("50000")},
		"c2": {number: "C-0002", rate: d("10"), total: d("10000")},
	}}
	uc := reports.NewReportUseCase(repo, &fakeContractRepo{}, &fakeEmployeeRepo{})

	report, err := uc.SalesCommissions(context.Background(), "b1", "2025-01-01", "2025-12-31")
	require.NoError(t, err)
	assert.True(t, report.GrandTotalSum.Equal(d("60000")))
	assert.True(t, report.CommissionTotal.Equal(d("3500")), "2500 + 1000")
}

func TestSalesCommissions_PeriodoInvalido(t *testing.T) {
	uc := reports.NewReportUseCase(&fakeReportRepo{}, &fakeContractRepo{}, &fakeEmployeeRepo{})
	_, err := uc.SalesCommissions(context.Background(), "b1", "2025-12-31", "2025-01-01")
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "fin antes de inicio")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests — cobranza por inspector
// ──────────────────────────────────────────────────────────────────────────────

func inspectorFixture() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{rows: map[string]*entity.Employee{
		"insp-1": {ID: "insp-1", BranchID: "b1", FirstName: "Marta", Role: entity.RoleInspector},
	}}
}

func TestMonthlyCollections_OrdenYTotales(t *testing.T) {
	uc := reports.NewReportUseCase(&fakeReportRepo{}, &fakeContractRepo{}, inspectorFixture())

	report, err := uc.MonthlyCollections(context.Background(), "b1", "insp-1", "2025-01-01", "2025-02-28")
	require.NoError(t, err)
	require.Len(t, report.Months, 2)
	assert.Equal(t, "2025-01", report.Months[0].Month)
	assert.Equal(t, "2025-02", report.Months[1].Month)
	assert.True(t, report.DueTotal.Equal(d("6000")))
	assert.True(t, report.PaidTotal.Equal(d("3500")))
	assert.True(t, report.PendingTotal.Equal(d("2500")))
}

func TestMonthlyCollections_InspectorDeOtraSucursal(t *testing.T) {
	uc := reports.NewReportUseCase(&fakeReportRepo{}, &fakeContractRepo{}, inspectorFixture())
	_, err := uc.MonthlyCollections(context.Background(), "b2", "insp-1", "2025-01-01", "2025-02-28")
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestInspectorContracts_DeDuplicaPorID(t *testing.T) {
	a := &entity.Contract{ID: "a", BranchID: "b1", Number: "C-1"}
	b := &entity.Contract{ID: "b", BranchID: "b1", Number: "C-2"}
	uc := reports.NewReportUseCase(&fakeReportRepo{},
		&fakeContractRepo{byInspector: []*entity.Contract{a, b, a}}, inspectorFixture())

	out, err := uc.InspectorContracts("b1", "insp-1")
	require.NoError(t, err)
	assert.Len(t, out.Contracts, 2, "los contratos repetidos se consolidan en el servidor")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests — export CSV
// ──────────────────────────────────────────────────────────────────────────────

func TestSalesCommissionsCSV(t *testing.T) {
	repo := &fakeReportRepo{sales: map[string]*salesRow{
		"c1": {number: "C-0001", rate: d("5"), total: d("50000")},
	}}
	uc := reports.NewReportUseCase(repo, &fakeContractRepo{}, &fakeEmployeeRepo{})
	report, err := uc.SalesCommissions(context.Background(), "b1", "2025-01-01", "2025-12-31")
	require.NoError(t, err)

	data, filename, err := reports.SalesCommissionsCSV(report)
	require.NoError(t, err)
	assert.Equal(t, "ventas-2025-01-01-2025-12-31.csv", filename)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 3, "cabecera + 1 fila + totales")
	assert.Contains(t, lines[0], "tasa_comision")
	assert.Contains(t, lines[1], "C-0001")
	assert.Contains(t, lines[1], "2500")
	assert.Contains(t, lines[2], "TOTAL")
}
