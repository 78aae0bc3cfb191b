package payment_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Pagos-api/internal/domain/payment"
)

// ──────────────────────────────────────────────────────────────────────────────
// SelectionSet — colección asociativa con orden de inserción
// ──────────────────────────────────────────────────────────────────────────────

func TestSelectionSet_SeleccionTotalFijaElSaldo(t *testing.T) {
	sel := payment.NewSelectionSet()
	sel.Select("inv-1", dec("150"), true)

	entry := sel.Get("inv-1")
	require.NotNil(t, entry)
	assert.True(t, dec("150").Equal(entry.Amount), "modo total fija el monto al saldo exacto")
	assert.True(t, entry.IsFullPayment)
}

func TestSelectionSet_MontoParcialSeRecorta(t *testing.T) {
	sel := payment.NewSelectionSet()
	sel.Select("inv-1", dec("150"), false)

	sel.SetPartialAmount("inv-1", dec("80"))
	assert.True(t, dec("80").Equal(sel.Get("inv-1").Amount))

	sel.SetPartialAmount("inv-1", dec("900"))
	assert.True(t, dec("150").Equal(sel.Get("inv-1").Amount), "monto mayor al saldo se recorta")

	sel.SetPartialAmount("inv-1", dec("-10"))
	assert.True(t, sel.Get("inv-1").Amount.IsZero(), "monto negativo queda en cero")
}

func TestSelectionSet_VolverAPagoTotalRestauraElSaldo(t *testing.T) {
	sel := payment.NewSelectionSet()
	sel.Select("inv-1", dec("150"), false)
	sel.SetPartialAmount("inv-1", dec("20"))

	sel.SetFullPayment("inv-1")

	entry := sel.Get("inv-1")
	assert.True(t, entry.IsFullPayment)
	assert.True(t, dec("150").Equal(entry.Amount))
}

// TestSelectionSet_RoundTrip verifica la propiedad de ida y vuelta:
// seleccionar y deseleccionar deja el conjunto como estaba (la entrada se
// elimina, no queda en cero).
func TestSelectionSet_RoundTrip(t *testing.T) {
	sel := payment.NewSelectionSet()
	sel.Select("inv-1", dec("100"), true)
	require.Equal(t, 1, sel.Len())

	sel.Deselect("inv-1")

	assert.Equal(t, 0, sel.Len())
	assert.False(t, sel.Contains("inv-1"))
	assert.Nil(t, sel.Get("inv-1"))

	allocs, total := payment.BuildAllocations(sel)
	assert.Empty(t, allocs)
	assert.True(t, total.IsZero())
}

func TestSelectionSet_DeseleccionConservaOrdenDelResto(t *testing.T) {
	sel := payment.NewSelectionSet()
	sel.Select("a", dec("1"), true)
	sel.Select("b", dec("2"), true)
	sel.Select("c", dec("3"), true)

	sel.Deselect("b")

	entries := sel.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "a", entries[0].InvoiceID)
	assert.Equal(t, "c", entries[1].InvoiceID)
}

func TestSelectionSet_ReseleccionConservaPosicion(t *testing.T) {
	sel := payment.NewSelectionSet()
	sel.Select("a", dec("10"), true)
	sel.Select("b", dec("20"), true)

	// re-seleccionar "a" en modo parcial no la mueve al final
	sel.Select("a", dec("10"), false)

	entries := sel.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "a", entries[0].InvoiceID)
	assert.False(t, entries[0].IsFullPayment)
}

func TestSelectionSet_ClearVaciaTodo(t *testing.T) {
	sel := payment.NewSelectionSet()
	sel.Select("a", dec("10"), true)
	sel.Select("b", dec("20"), true)

	sel.Clear()

	assert.Equal(t, 0, sel.Len())
	assert.Empty(t, sel.Entries())
}

func TestSelectionSet_SaldoNegativoSeTrataComoCero(t *testing.T) {
	sel := payment.NewSelectionSet()
	sel.Select("inv-1", dec("-40"), true)
	entry := sel.Get("inv-1")
	assert.True(t, entry.Amount.IsZero())
	assert.True(t, entry.BalanceDue.IsZero())
}
