package payment

import "github.com/shopspring/decimal"

// Submission es el payload final que se entrega al colaborador de envío de
// pagos: ensamblaje puro, sin cálculo adicional.
type Submission struct {
	AccountID   string
	GatewayID   string
	Allocations []Allocation
	Total       decimal.Decimal
}

// BuildSubmission arma el payload de envío a partir de la lista final de
// asignaciones (ya con el crédito aplicado). Valida que haya al menos una
// asignación y que la pasarela esté presente; estos errores se reportan al
// caller como errores de validación, nunca como fallos fatales.
func BuildSubmission(accountID, gatewayID string, allocs []Allocation) (*Submission, error) {
	if len(allocs) == 0 {
		return nil, ErrNoAllocations
	}
	if gatewayID == "" {
		return nil, ErrNoGateway
	}
	total := decimal.Zero
	for _, alloc := range allocs {
		total = total.Add(alloc.Amount)
	}
	return &Submission{
		AccountID:   accountID,
		GatewayID:   gatewayID,
		Allocations: allocs,
		Total:       total,
	}, nil
}
