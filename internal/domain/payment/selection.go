package payment

import "github.com/shopspring/decimal"

// SelectionEntry guarda la elección de pago sobre una factura: modo
// (total o parcial) y monto. El monto siempre cumple 0 <= Amount <= BalanceDue.
type SelectionEntry struct {
	InvoiceID     string
	BalanceDue    decimal.Decimal // snapshot del saldo al momento de seleccionar
	Amount        decimal.Decimal
	IsFullPayment bool
}

// SelectionSet es el conjunto de facturas seleccionadas para un pago,
// indexado por ID de factura y con orden de inserción estable. El orden
// importa: la distribución de crédito consume crédito recorriendo las
// asignaciones en este mismo orden.
type SelectionSet struct {
	order   []string
	entries map[string]*SelectionEntry
}

// NewSelectionSet construye un conjunto vacío.
func NewSelectionSet() *SelectionSet {
	return &SelectionSet{entries: make(map[string]*SelectionEntry)}
}

// Select agrega (o reemplaza) la selección de una factura. En modo pago total
// el monto se fija exactamente al saldo; en modo parcial inicia en el saldo
// completo y puede ajustarse con SetPartialAmount. Volver a seleccionar una
// factura ya presente conserva su posición original.
func (s *SelectionSet) Select(invoiceID string, balanceDue decimal.Decimal, full bool) {
	if balanceDue.IsNegative() {
		balanceDue = decimal.Zero
	}
	entry, exists := s.entries[invoiceID]
	if !exists {
		entry = &SelectionEntry{InvoiceID: invoiceID}
		s.entries[invoiceID] = entry
		s.order = append(s.order, invoiceID)
	}
	entry.BalanceDue = balanceDue
	entry.IsFullPayment = full
	entry.Amount = balanceDue
}

// SetPartialAmount cambia la factura a modo parcial y fija el monto,
// recortado siempre a [0, BalanceDue]. No hace nada si la factura no está
// seleccionada.
func (s *SelectionSet) SetPartialAmount(invoiceID string, amount decimal.Decimal) {
	entry, exists := s.entries[invoiceID]
	if !exists {
		return
	}
	entry.IsFullPayment = false
	entry.Amount = ClampAmount(amount, entry.BalanceDue)
}

// SetFullPayment vuelve la factura a modo pago total: el monto se fija al
// saldo y deja de ser editable.
func (s *SelectionSet) SetFullPayment(invoiceID string) {
	entry, exists := s.entries[invoiceID]
	if !exists {
		return
	}
	entry.IsFullPayment = true
	entry.Amount = entry.BalanceDue
}

// Deselect elimina la entrada por completo (no la deja en cero).
func (s *SelectionSet) Deselect(invoiceID string) {
	if _, exists := s.entries[invoiceID]; !exists {
		return
	}
	delete(s.entries, invoiceID)
	for i, id := range s.order {
		if id == invoiceID {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

// Clear vacía la selección (acción "limpiar todo").
func (s *SelectionSet) Clear() {
	s.order = s.order[:0]
	s.entries = make(map[string]*SelectionEntry)
}

// Contains indica si la factura está seleccionada.
func (s *SelectionSet) Contains(invoiceID string) bool {
	_, exists := s.entries[invoiceID]
	return exists
}

// Get devuelve la entrada de una factura, o nil si no está seleccionada.
func (s *SelectionSet) Get(invoiceID string) *SelectionEntry {
	return s.entries[invoiceID]
}

// Len devuelve la cantidad de facturas seleccionadas.
func (s *SelectionSet) Len() int {
	return len(s.order)
}

// Entries devuelve las entradas en orden de inserción.
func (s *SelectionSet) Entries() []*SelectionEntry {
	out := make([]*SelectionEntry, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.entries[id])
	}
	return out
}
