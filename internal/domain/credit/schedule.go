// Package credit contiene la aritmética del crédito a plazos: total del contrato,
// generación del plan de pagos, saldo restante y conciliación de cuotas.
// Sin dependencias de infraestructura; todo opera sobre decimal y time.
package credit

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/ventas-plazos-api/internal/domain/entity"
)

var hundred = decimal.NewFromInt(100)

// GrandTotal total del contrato: cuota inicial + cuota mensual × meses.
func GrandTotal(downPayment, monthlyPayment decimal.Decimal, months int) (decimal.Decimal, error) {
	if months < 0 {
		return decimal.Zero, fmt.Errorf("credit: meses negativos (%d)", months)
	}
	return downPayment.Add(monthlyPayment.Mul(decimal.NewFromInt(int64(months)))), nil
}

// Commission comisión del vendedor: total × tasa / 100.
func Commission(grandTotal, rate decimal.Decimal) decimal.Decimal {
	return grandTotal.Mul(rate).Div(hundred)
}

// EndDate fecha de fin del contrato: inicio + meses.
func EndDate(start time.Time, months int) time.Time {
	return start.AddDate(0, months, 0)
}

// ScheduleLine una línea del plan de pagos a generar.
type ScheduleLine struct {
	Period  int // 0 = cuota inicial
	Amount  decimal.Decimal
	DueDate time.Time
}

// GenerateSchedule genera el plan de pagos completo de un contrato.
// Si downPayment > 0 la primera línea es la cuota inicial (período 0, vence el día
// de la firma). Las cuotas 1..months vencen el collectionDay de cada mes siguiente
// al inicio; si el mes no tiene ese día, vence el último día del mes.
func GenerateSchedule(start time.Time, downPayment, monthlyPayment decimal.Decimal, months, collectionDay int) ([]ScheduleLine, error) {
	if months < 0 {
		return nil, fmt.Errorf("credit: meses negativos (%d)", months)
	}
	if collectionDay < 1 || collectionDay > 31 {
		return nil, fmt.Errorf("credit: día de cobro fuera de rango (%d)", collectionDay)
	}

	lines := make([]ScheduleLine, 0, months+1)
	if downPayment.GreaterThan(decimal.Zero) {
		lines = append(lines, ScheduleLine{
			Period:  entity.PeriodDownPayment,
			Amount:  downPayment,
			DueDate: start,
		})
	}
	for i := 1; i <= months; i++ {
		lines = append(lines, ScheduleLine{
			Period:  i,
			Amount:  monthlyPayment,
			DueDate: dueDateFor(start, i, collectionDay),
		})
	}
	return lines, nil
}

// dueDateFor día de vencimiento del período i: el collectionDay del mes i-ésimo
// posterior al inicio, ajustado al último día del mes si hace falta.
func dueDateFor(start time.Time, period, collectionDay int) time.Time {
	y, m, _ := start.Date()
	first := time.Date(y, m, 1, 0, 0, 0, 0, start.Location()).AddDate(0, period, 0)
	day := collectionDay
	if last := daysInMonth(first); day > last {
		day = last
	}
	return time.Date(first.Year(), first.Month(), day, 0, 0, 0, 0, start.Location())
}

// daysInMonth número de días del mes de t.
func daysInMonth(t time.Time) int {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location()).
		AddDate(0, 1, -1).Day()
}
