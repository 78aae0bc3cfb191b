package payment

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Pagos-api/internal/domain/entity"
)

// CreditPool suma los saldos restantes de las notas crédito de la cuenta.
// El pool es efímero: se recalcula a partir de los datos del backend y el
// núcleo nunca lo muta; solo el "monto a aplicar" elegido por el usuario
// se recorta con ClampCreditToApply.
func CreditPool(memos []*entity.CreditMemo) decimal.Decimal {
	pool := decimal.Zero
	for _, memo := range memos {
		if memo == nil || memo.RemainingBalance.IsNegative() {
			continue
		}
		pool = pool.Add(memo.RemainingBalance)
	}
	return pool
}

// ClampCreditToApply recorta el crédito elegido por el usuario a
// [0, min(crédito disponible, total de asignaciones)].
func ClampCreditToApply(requested, available, allocationTotal decimal.Decimal) decimal.Decimal {
	if requested.IsNegative() {
		return decimal.Zero
	}
	limit := available
	if allocationTotal.LessThan(limit) {
		limit = allocationTotal
	}
	if limit.IsNegative() {
		return decimal.Zero
	}
	if requested.GreaterThan(limit) {
		return limit
	}
	return requested
}

// ApplyCredit distribuye el crédito sobre las asignaciones recorriéndolas en
// su orden: cada factura consume min(crédito restante, monto de la
// asignación) hasta agotar el crédito. Es una política voraz y dependiente
// del orden (primera seleccionada absorbe primero), no proporcional.
//
// Las asignaciones que quedan en cero (cubiertas por completo) se eliminan
// del resultado. Las restantes conservan su IsFullPayment original aunque el
// monto haya bajado: la bandera refleja la intención de pago a nivel de
// factura, no la magnitud después del crédito. Nunca retorna error; con
// crédito en exceso simplemente no puede consumir más que el monto de cada
// asignación. No muta la lista de entrada.
func ApplyCredit(allocs []Allocation, creditToApply decimal.Decimal) []Allocation {
	remaining := creditToApply
	if remaining.IsNegative() {
		remaining = decimal.Zero
	}
	out := make([]Allocation, 0, len(allocs))
	for _, alloc := range allocs {
		consumed := remaining
		if alloc.Amount.LessThan(consumed) {
			consumed = alloc.Amount
		}
		reduced := alloc.Amount.Sub(consumed)
		remaining = remaining.Sub(consumed)
		if reduced.GreaterThan(decimal.Zero) {
			out = append(out, Allocation{
				InvoiceID:     alloc.InvoiceID,
				Amount:        reduced,
				IsFullPayment: alloc.IsFullPayment,
			})
		}
	}
	return out
}
