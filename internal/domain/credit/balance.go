package credit

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/ventas-plazos-api/internal/domain/entity"
)

// RemainingAfter saldo restante tras aplicar, en orden, los montos pagados:
// remaining[i] = max(0, total − Σ amounts[0..i]). La serie nunca crece y se
// trunca en cero aunque los pagos excedan el total.
func RemainingAfter(total decimal.Decimal, amounts []decimal.Decimal) []decimal.Decimal {
	out := make([]decimal.Decimal, len(amounts))
	remaining := total
	for i, a := range amounts {
		remaining = remaining.Sub(a)
		if remaining.IsNegative() {
			remaining = decimal.Zero
		}
		out[i] = remaining
	}
	return out
}

// SortByPeriod ordena las cuotas por período ascendente (cuota inicial primero).
// Orden estable: ante períodos repetidos conserva el orden de llegada.
func SortByPeriod(payments []*entity.Payment) {
	sort.SliceStable(payments, func(i, j int) bool {
		return payments[i].Period < payments[j].Period
	})
}

// MatchPending devuelve la primera cuota pendiente (en orden de período) cuyo
// monto coincide exactamente con el pagado, o nil si ninguna coincide.
// Ante varias cuotas pendientes del mismo monto gana la de período más bajo:
// el cobro siempre se aplica a la cuota más antigua.
func MatchPending(payments []*entity.Payment, amount decimal.Decimal) *entity.Payment {
	sorted := make([]*entity.Payment, len(payments))
	copy(sorted, payments)
	SortByPeriod(sorted)
	for _, p := range sorted {
		if p.Status == entity.PaymentStatusPending && p.Amount.Equal(amount) {
			return p
		}
	}
	return nil
}

// DedupContracts elimina contratos repetidos por ID conservando la primera
// aparición. Idempotente: aplicarla dos veces da el mismo resultado.
func DedupContracts(contracts []*entity.Contract) []*entity.Contract {
	seen := make(map[string]bool, len(contracts))
	out := make([]*entity.Contract, 0, len(contracts))
	for _, c := range contracts {
		if c == nil || seen[c.ID] {
			continue
		}
		seen[c.ID] = true
		out = append(out, c)
	}
	return out
}
