// Package payment implementa el núcleo de asignación de pagos: a partir de la
// selección de facturas del usuario produce la lista ordenada de asignaciones
// por factura (monto y modo), distribuye el crédito de cuenta disponible y
// arma el payload de envío a la pasarela.
//
// Todo monto es decimal.Decimal; nunca float binario, para que las sumas
// cuadren exactas contra el libro del backend.
package payment

import "github.com/shopspring/decimal"

// Allocation es el registro de salida del núcleo: cuánto se paga de cada
// factura. IsFullPayment conserva la intención del usuario al momento de
// seleccionar (no se recalcula si el crédito reduce el monto).
type Allocation struct {
	InvoiceID     string
	Amount        decimal.Decimal
	IsFullPayment bool
}

// ClampAmount recorta un monto solicitado al rango [0, balanceDue].
// Se aplica en cada cambio del campo de monto parcial, tanto en el flujo de
// una factura como en el multi-factura; garantiza el invariante de la
// selección contra cualquier entrada (negativos, montos mayores al saldo,
// entradas no numéricas ya convertidas a cero aguas arriba).
func ClampAmount(requested, balanceDue decimal.Decimal) decimal.Decimal {
	if balanceDue.IsNegative() {
		balanceDue = decimal.Zero
	}
	if requested.IsNegative() {
		return decimal.Zero
	}
	if requested.GreaterThan(balanceDue) {
		return balanceDue
	}
	return requested
}

// BuildAllocations convierte la selección en la lista ordenada de
// asignaciones y su total. Función pura: no muta la selección.
//
// Las asignaciones conservan el orden de inserción de la selección y el total
// es la suma decimal exacta de los montos. Selección vacía produce lista
// vacía y total cero. Los montos ya vienen recortados por la selección; aquí
// no se revalida contra la factura.
func BuildAllocations(sel *SelectionSet) ([]Allocation, decimal.Decimal) {
	if sel == nil || sel.Len() == 0 {
		return []Allocation{}, decimal.Zero
	}
	allocs := make([]Allocation, 0, sel.Len())
	total := decimal.Zero
	for _, entry := range sel.Entries() {
		allocs = append(allocs, Allocation{
			InvoiceID:     entry.InvoiceID,
			Amount:        entry.Amount,
			IsFullPayment: entry.IsFullPayment,
		})
		total = total.Add(entry.Amount)
	}
	return allocs, total
}

// AllocateSingle es el caso degenerado de una sola factura, usado por el
// flujo de pago individual: pago total fija el monto al saldo exacto, pago
// parcial recorta el monto a [0, saldo]. Falla solo si la factura no tiene
// saldo pendiente.
func AllocateSingle(invoiceID string, balanceDue decimal.Decimal, full bool, amount decimal.Decimal) (Allocation, error) {
	if !balanceDue.GreaterThan(decimal.Zero) {
		return Allocation{}, ErrNoBalanceDue
	}
	if full {
		amount = balanceDue
	} else {
		amount = ClampAmount(amount, balanceDue)
	}
	return Allocation{InvoiceID: invoiceID, Amount: amount, IsFullPayment: full}, nil
}
