package credit_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/ventas-plazos-api/internal/domain/credit"
	"github.com/tu-usuario/ventas-plazos-api/internal/domain/entity"
)

func d(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

// ──────────────────────────────────────────────────────────────────────────────
// GrandTotal — total del contrato
// ──────────────────────────────────────────────────────────────────────────────

func TestGrandTotal_CuotaInicialMasMensualidades(t *testing.T) {
	total, err := credit.GrandTotal(d("1500"), d("756"), 15)
	require.NoError(t, err)
	assert.True(t, total.Equal(d("12840")),
		"1500 + 756×15 debe ser 12840, fue %s", total)
}

func TestGrandTotal_CeroMeses(t *testing.T) {
	// Venta de contado registrada como contrato: solo cuota inicial
	total, err := credit.GrandTotal(d("5000"), d("756"), 0)
	require.NoError(t, err)
	assert.True(t, total.Equal(d("5000")))
}

func TestGrandTotal_MesesNegativos_RetornaError(t *testing.T) {
	_, err := credit.GrandTotal(d("1500"), d("756"), -1)
	assert.Error(t, err, "meses negativos deben rechazarse")
}

// ──────────────────────────────────────────────────────────────────────────────
// Commission — comisión del vendedor
// ──────────────────────────────────────────────────────────────────────────────

func TestCommission_CincoPorCiento(t *testing.T) {
	got := credit.Commission(d("50000"), d("5"))
	assert.True(t, got.Equal(d("2500")), "50000 al 5%% debe ser 2500, fue %s", got)
}

func TestCommission_CambioDeTasa(t *testing.T) {
	got := credit.Commission(d("50000"), d("7"))
	assert.True(t, got.Equal(d("3500")), "50000 al 7%% debe ser 3500, fue %s", got)
}

// Cambiar la tasa de un contrato no puede afectar la comisión de otro:
// Commission es una función pura por fila.
func TestCommission_AislamientoEntreContratos(t *testing.T) {
	otro := credit.Commission(d("20000"), d("5"))
	_ = credit.Commission(d("50000"), d("7")) // tasa editada en otro contrato
	assert.True(t, otro.Equal(d("1000")), "la comisión del otro contrato no debe cambiar")
}

// ──────────────────────────────────────────────────────────────────────────────
// RemainingAfter — saldo restante acumulado
// ──────────────────────────────────────────────────────────────────────────────

// Vector del dominio: total 12840, cuota inicial 1500, dos cuotas de 756.
// Saldos esperados: 11340 → 10584 → 9828.
func TestRemainingAfter_VectorExacto(t *testing.T) {
	got := credit.RemainingAfter(d("12840"), []decimal.Decimal{d("1500"), d("756"), d("756")})
	require.Len(t, got, 3)
	assert.True(t, got[0].Equal(d("11340")), "tras la cuota inicial: %s", got[0])
	assert.True(t, got[1].Equal(d("10584")), "tras la primera cuota: %s", got[1])
	assert.True(t, got[2].Equal(d("9828")), "tras la segunda cuota: %s", got[2])
}

func TestRemainingAfter_NuncaNegativoYNoCreciente(t *testing.T) {
	pagos := []decimal.Decimal{d("5000"), d("5000"), d("5000"), d("5000")}
	got := credit.RemainingAfter(d("12840"), pagos)
	require.Len(t, got, 4)
	prev := d("12840")
	for i, r := range got {
		assert.False(t, r.IsNegative(), "saldo[%d] no puede ser negativo: %s", i, r)
		assert.True(t, r.LessThanOrEqual(prev), "saldo[%d] no puede crecer: %s > %s", i, r, prev)
		prev = r
	}
	assert.True(t, got[3].IsZero(), "pagado de más, el saldo queda en cero")
}

func TestRemainingAfter_SinPagos(t *testing.T) {
	got := credit.RemainingAfter(d("12840"), nil)
	assert.Empty(t, got)
}

// ──────────────────────────────────────────────────────────────────────────────
// GenerateSchedule — plan de pagos
// ──────────────────────────────────────────────────────────────────────────────

func TestGenerateSchedule_ConCuotaInicial(t *testing.T) {
	start := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)
	lines, err := credit.GenerateSchedule(start, d("1500"), d("756"), 15, 10)
	require.NoError(t, err)
	require.Len(t, lines, 16, "cuota inicial + 15 mensualidades")

	// Período 0: cuota inicial, vence el día de la firma
	assert.Equal(t, entity.PeriodDownPayment, lines[0].Period)
	assert.True(t, lines[0].Amount.Equal(d("1500")))
	assert.Equal(t, start, lines[0].DueDate)

	// Primera mensualidad: un mes después, día de cobro 10
	assert.Equal(t, 1, lines[1].Period)
	assert.Equal(t, time.Date(2025, time.April, 10, 0, 0, 0, 0, time.UTC), lines[1].DueDate)

	// Última mensualidad
	last := lines[len(lines)-1]
	assert.Equal(t, 15, last.Period)
	assert.Equal(t, time.Date(2026, time.June, 10, 0, 0, 0, 0, time.UTC), last.DueDate)

	// La suma del plan es el total del contrato
	sum := decimal.Zero
	for _, l := range lines {
		sum = sum.Add(l.Amount)
	}
	assert.True(t, sum.Equal(d("12840")), "la suma del plan debe igualar el total")
}

func TestGenerateSchedule_SinCuotaInicial(t *testing.T) {
	start := time.Date(2025, time.January, 5, 0, 0, 0, 0, time.UTC)
	lines, err := credit.GenerateSchedule(start, decimal.Zero, d("500"), 6, 5)
	require.NoError(t, err)
	require.Len(t, lines, 6, "sin cuota inicial no hay período 0")
	assert.Equal(t, 1, lines[0].Period)
}

// Día de cobro 31 en meses cortos: la cuota vence el último día del mes.
func TestGenerateSchedule_DiaDeCobroAjustadoAlMes(t *testing.T) {
	start := time.Date(2025, time.January, 31, 0, 0, 0, 0, time.UTC)
	lines, err := credit.GenerateSchedule(start, decimal.Zero, d("900"), 3, 31)
	require.NoError(t, err)
	require.Len(t, lines, 3)
	assert.Equal(t, time.Date(2025, time.February, 28, 0, 0, 0, 0, time.UTC), lines[0].DueDate)
	assert.Equal(t, time.Date(2025, time.March, 31, 0, 0, 0, 0, time.UTC), lines[1].DueDate)
	assert.Equal(t, time.Date(2025, time.April, 30, 0, 0, 0, 0, time.UTC), lines[2].DueDate)
}

func TestGenerateSchedule_DiaDeCobroInvalido(t *testing.T) {
	start := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	_, err := credit.GenerateSchedule(start, decimal.Zero, d("900"), 3, 0)
	assert.Error(t, err)
	_, err = credit.GenerateSchedule(start, decimal.Zero, d("900"), 3, 32)
	assert.Error(t, err)
}

// ──────────────────────────────────────────────────────────────────────────────
// MatchPending — conciliación de cobros
// ──────────────────────────────────────────────────────────────────────────────

func pendiente(id string, period int, amount string) *entity.Payment {
	return &entity.Payment{
		ID:     id,
		Period: period,
		Amount: d(amount),
		Status: entity.PaymentStatusPending,
	}
}

// Dos cuotas pendientes del mismo monto: debe ganar exactamente una, la de
// período más bajo.
func TestMatchPending_MontosIguales_GanaPeriodoMasBajo(t *testing.T) {
	cuotas := []*entity.Payment{
		pendiente("2", 2, "756"),
		pendiente("1", 1, "756"),
	}
	m := credit.MatchPending(cuotas, d("756"))
	require.NotNil(t, m)
	assert.Equal(t, "1", m.ID, "debe aplicarse a la cuota más antigua")
}

func TestMatchPending_SinCoincidencia_RetornaNil(t *testing.T) {
	cuotas := []*entity.Payment{pendiente("1", 1, "756"), pendiente("2", 2, "756")}
	assert.Nil(t, credit.MatchPending(cuotas, d("800")),
		"monto sin coincidencia exacta: no se toca ninguna cuota existente")
}

func TestMatchPending_IgnoraPagadasYCanceladas(t *testing.T) {
	pagada := pendiente("1", 1, "756")
	pagada.Status = entity.PaymentStatusPaid
	cancelada := pendiente("2", 2, "756")
	cancelada.Status = entity.PaymentStatusCancelled
	cuotas := []*entity.Payment{pagada, cancelada, pendiente("3", 3, "756")}

	m := credit.MatchPending(cuotas, d("756"))
	require.NotNil(t, m)
	assert.Equal(t, "3", m.ID)
}

func TestMatchPending_NoReordenaElSliceOriginal(t *testing.T) {
	cuotas := []*entity.Payment{pendiente("2", 2, "500"), pendiente("1", 1, "500")}
	_ = credit.MatchPending(cuotas, d("500"))
	assert.Equal(t, "2", cuotas[0].ID, "el slice de entrada no debe mutarse")
}

// ──────────────────────────────────────────────────────────────────────────────
// DedupContracts — de-duplicación por ID
// ──────────────────────────────────────────────────────────────────────────────

func TestDedupContracts_EliminaRepetidosYEsIdempotente(t *testing.T) {
	a := &entity.Contract{ID: "a"}
	b := &entity.Contract{ID: "b"}
	in := []*entity.Contract{a, b, a, b, a}

	once := credit.DedupContracts(in)
	require.Len(t, once, 2)
	assert.Equal(t, "a", once[0].ID)
	assert.Equal(t, "b", once[1].ID)

	twice := credit.DedupContracts(once)
	assert.Equal(t, once, twice, "aplicar dos veces da el mismo conjunto")
}

func TestDedupContracts_IgnoraNil(t *testing.T) {
	a := &entity.Contract{ID: "a"}
	out := credit.DedupContracts([]*entity.Contract{nil, a, nil})
	require.Len(t, out, 1)
	assert.Equal(t, "a", out[0].ID)
}
