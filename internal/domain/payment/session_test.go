package payment_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Pagos-api/internal/domain/payment"
)

// ──────────────────────────────────────────────────────────────────────────────
// Session — máquina de estados del flujo de pago
// ──────────────────────────────────────────────────────────────────────────────

func reviewedSession(t *testing.T) *payment.Session {
	t.Helper()
	s := payment.NewSession()
	s.Selection().Select("inv-1", dec("100"), true)
	require.NoError(t, s.Review())
	return s
}

func submissionFor(t *testing.T, s *payment.Session) *payment.Submission {
	t.Helper()
	allocs, _ := payment.BuildAllocations(s.Selection())
	sub, err := payment.BuildSubmission("acc-1", "gw-1", allocs)
	require.NoError(t, err)
	return sub
}

func TestSession_FlujoExitoso(t *testing.T) {
	s := payment.NewSession()
	assert.Equal(t, payment.StateSelecting, s.State())

	s.Selection().Select("inv-1", dec("100"), true)
	require.NoError(t, s.Review())
	assert.Equal(t, payment.StateReviewing, s.State())

	sub := submissionFor(t, s)
	require.NoError(t, s.BeginSubmit(sub))
	assert.Equal(t, payment.StateSubmitting, s.State())
	assert.Same(t, sub, s.Frozen(), "el payload queda congelado durante el envío")

	require.NoError(t, s.Succeed())
	assert.Equal(t, payment.StateSucceeded, s.State())
}

func TestSession_ReviewSinSeleccionFalla(t *testing.T) {
	s := payment.NewSession()
	assert.ErrorIs(t, s.Review(), payment.ErrNoAllocations)
}

// TestSession_DobleEnvioBloqueado: la bandera de ocupado rechaza un segundo
// intento de envío mientras hay uno en curso.
func TestSession_DobleEnvioBloqueado(t *testing.T) {
	s := reviewedSession(t)
	sub := submissionFor(t, s)
	require.NoError(t, s.BeginSubmit(sub))

	err := s.BeginSubmit(sub)
	assert.ErrorIs(t, err, payment.ErrSessionBusy)
}

// TestSession_FalloConservaSeleccion: el fallo regresa a revisión (vía Retry)
// con la misma selección, para reenviar sin recalcular.
func TestSession_FalloConservaSeleccion(t *testing.T) {
	s := reviewedSession(t)
	require.NoError(t, s.BeginSubmit(submissionFor(t, s)))

	require.NoError(t, s.Fail("tarjeta rechazada"))
	assert.Equal(t, payment.StateFailed, s.State())
	assert.Equal(t, "tarjeta rechazada", s.LastError())
	assert.Equal(t, 1, s.Selection().Len(), "la selección queda intacta tras el fallo")

	require.NoError(t, s.Retry())
	assert.Equal(t, payment.StateReviewing, s.State())

	// el reintento puede volver a enviar el mismo estado de asignación
	require.NoError(t, s.BeginSubmit(submissionFor(t, s)))
	require.NoError(t, s.Succeed())
}

func TestSession_EditarSeleccionDesdeRevision(t *testing.T) {
	s := reviewedSession(t)
	require.NoError(t, s.EditSelection())
	assert.Equal(t, payment.StateSelecting, s.State())
}

func TestSession_TransicionesInvalidas(t *testing.T) {
	s := payment.NewSession()
	assert.ErrorIs(t, s.Succeed(), payment.ErrInvalidTransition)
	assert.ErrorIs(t, s.Fail("x"), payment.ErrInvalidTransition)
	assert.ErrorIs(t, s.Retry(), payment.ErrInvalidTransition)
	assert.ErrorIs(t, s.EditSelection(), payment.ErrInvalidTransition)

	s.Selection().Select("inv-1", dec("10"), true)
	require.NoError(t, s.Review())
	assert.ErrorIs(t, s.Review(), payment.ErrInvalidTransition)
	assert.Nil(t, s.Frozen(), "fuera del envío no hay payload congelado")
}
