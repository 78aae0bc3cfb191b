package payment_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Pagos-api/internal/domain/payment"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// ──────────────────────────────────────────────────────────────────────────────
// ClampAmount
// ──────────────────────────────────────────────────────────────────────────────

func TestClampAmount_DentroDelRango(t *testing.T) {
	got := payment.ClampAmount(dec("50"), dec("100"))
	assert.True(t, dec("50").Equal(got), "un monto dentro del rango no se modifica")
}

func TestClampAmount_NegativoVaACero(t *testing.T) {
	got := payment.ClampAmount(dec("-10"), dec("100"))
	assert.True(t, got.IsZero(), "un monto negativo se recorta a cero")
}

func TestClampAmount_MayorAlSaldoVaAlSaldo(t *testing.T) {
	got := payment.ClampAmount(dec("500"), dec("100"))
	assert.True(t, dec("100").Equal(got), "un monto mayor al saldo se recorta al saldo")
}

func TestClampAmount_SaldoNegativoSeTrataComoCero(t *testing.T) {
	got := payment.ClampAmount(dec("10"), dec("-5"))
	assert.True(t, got.IsZero(), "con saldo negativo el rango válido es [0, 0]")
}

// TestClampAmount_SiempreEnRango verifica la propiedad: para cualquier input,
// la salida queda en [0, balanceDue].
func TestClampAmount_SiempreEnRango(t *testing.T) {
	inputs := []string{"-999999", "-0.01", "0", "0.01", "33.33", "100", "100.01", "999999"}
	balance := dec("100")
	for _, in := range inputs {
		got := payment.ClampAmount(dec(in), balance)
		assert.False(t, got.IsNegative(), "clamp(%s) no puede ser negativo", in)
		assert.False(t, got.GreaterThan(balance), "clamp(%s) no puede exceder el saldo", in)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// BuildAllocations
// ──────────────────────────────────────────────────────────────────────────────

func TestBuildAllocations_SeleccionVacia(t *testing.T) {
	sel := payment.NewSelectionSet()
	allocs, total := payment.BuildAllocations(sel)
	assert.Empty(t, allocs, "selección vacía produce lista vacía")
	assert.True(t, total.IsZero(), "selección vacía produce total cero")
}

// TestBuildAllocations_TotalYLongitud verifica las propiedades básicas:
// total == suma de montos y longitud de salida == entradas de la selección.
func TestBuildAllocations_TotalYLongitud(t *testing.T) {
	sel := payment.NewSelectionSet()
	sel.Select("inv-1", dec("100.50"), true)
	sel.Select("inv-2", dec("80"), false)
	sel.SetPartialAmount("inv-2", dec("25.25"))
	sel.Select("inv-3", dec("10"), true)

	allocs, total := payment.BuildAllocations(sel)

	require.Len(t, allocs, 3, "una asignación por cada entrada de la selección")
	assert.True(t, dec("135.75").Equal(total), "total = 100.50 + 25.25 + 10")
}

// TestBuildAllocations_EscenarioTotalYParcial reproduce el escenario:
// invA saldo 200 en pago total, invB saldo 50 en parcial con monto 30
// → [{invA,200,true},{invB,30,false}], total 230.
func TestBuildAllocations_EscenarioTotalYParcial(t *testing.T) {
	sel := payment.NewSelectionSet()
	sel.Select("invA", dec("200"), true)
	sel.Select("invB", dec("50"), false)
	sel.SetPartialAmount("invB", dec("30"))

	allocs, total := payment.BuildAllocations(sel)

	require.Len(t, allocs, 2)
	assert.Equal(t, "invA", allocs[0].InvoiceID)
	assert.True(t, dec("200").Equal(allocs[0].Amount))
	assert.True(t, allocs[0].IsFullPayment)
	assert.Equal(t, "invB", allocs[1].InvoiceID)
	assert.True(t, dec("30").Equal(allocs[1].Amount))
	assert.False(t, allocs[1].IsFullPayment)
	assert.True(t, dec("230").Equal(total))
}

// TestBuildAllocations_ConservaOrdenDeSeleccion verifica que la salida respeta
// el orden de inserción aunque los IDs no estén ordenados.
func TestBuildAllocations_ConservaOrdenDeSeleccion(t *testing.T) {
	sel := payment.NewSelectionSet()
	sel.Select("zeta", dec("1"), true)
	sel.Select("alfa", dec("2"), true)
	sel.Select("media", dec("3"), true)

	allocs, _ := payment.BuildAllocations(sel)

	require.Len(t, allocs, 3)
	assert.Equal(t, "zeta", allocs[0].InvoiceID)
	assert.Equal(t, "alfa", allocs[1].InvoiceID)
	assert.Equal(t, "media", allocs[2].InvoiceID)
}

func TestBuildAllocations_EsPura(t *testing.T) {
	sel := payment.NewSelectionSet()
	sel.Select("inv-1", dec("100"), true)

	allocs, _ := payment.BuildAllocations(sel)
	allocs[0].Amount = dec("1")

	again, total := payment.BuildAllocations(sel)
	assert.True(t, dec("100").Equal(again[0].Amount), "mutar la salida no afecta la selección")
	assert.True(t, dec("100").Equal(total))
}

// ──────────────────────────────────────────────────────────────────────────────
// AllocateSingle
// ──────────────────────────────────────────────────────────────────────────────

func TestAllocateSingle_PagoTotalFijaElSaldoExacto(t *testing.T) {
	alloc, err := payment.AllocateSingle("inv-1", dec("120.40"), true, dec("999"))
	require.NoError(t, err)
	assert.True(t, dec("120.40").Equal(alloc.Amount), "pago total ignora el monto pedido y usa el saldo")
	assert.True(t, alloc.IsFullPayment)
}

func TestAllocateSingle_ParcialRecortaElMonto(t *testing.T) {
	alloc, err := payment.AllocateSingle("inv-1", dec("120"), false, dec("500"))
	require.NoError(t, err)
	assert.True(t, dec("120").Equal(alloc.Amount))
	assert.False(t, alloc.IsFullPayment)

	alloc, err = payment.AllocateSingle("inv-1", dec("120"), false, dec("-3"))
	require.NoError(t, err)
	assert.True(t, alloc.Amount.IsZero(), "monto negativo queda en cero")
}

func TestAllocateSingle_SinSaldoRetornaError(t *testing.T) {
	_, err := payment.AllocateSingle("inv-1", decimal.Zero, true, decimal.Zero)
	assert.ErrorIs(t, err, payment.ErrNoBalanceDue)
}

// ──────────────────────────────────────────────────────────────────────────────
// BuildSubmission
// ──────────────────────────────────────────────────────────────────────────────

func TestBuildSubmission_OK(t *testing.T) {
	allocs := []payment.Allocation{
		{InvoiceID: "inv-1", Amount: dec("70"), IsFullPayment: true},
		{InvoiceID: "inv-2", Amount: dec("30")},
	}
	sub, err := payment.BuildSubmission("acc-1", "gw-1", allocs)
	require.NoError(t, err)
	assert.Equal(t, "acc-1", sub.AccountID)
	assert.Equal(t, "gw-1", sub.GatewayID)
	assert.True(t, dec("100").Equal(sub.Total))
}

func TestBuildSubmission_SinAsignacionesFalla(t *testing.T) {
	_, err := payment.BuildSubmission("acc-1", "gw-1", nil)
	assert.ErrorIs(t, err, payment.ErrNoAllocations)
}

func TestBuildSubmission_SinPasarelaFalla(t *testing.T) {
	allocs := []payment.Allocation{{InvoiceID: "inv-1", Amount: dec("10")}}
	_, err := payment.BuildSubmission("acc-1", "", allocs)
	assert.ErrorIs(t, err, payment.ErrNoGateway)
}
