package payment

// Estados de una sesión de pago.
//
//	selecting → reviewing → submitting → succeeded
//	                ↑            ↓
//	                └── failed ──┘ (reintentable vía Retry)
type SessionState string

const (
	StateSelecting  SessionState = "selecting"
	StateReviewing  SessionState = "reviewing"
	StateSubmitting SessionState = "submitting"
	StateSucceeded  SessionState = "succeeded"
	StateFailed     SessionState = "failed"
)

// Session modela el ciclo de vida de un flujo de pago. La selección vive lo
// que dura la sesión y se descarta al terminar. El estado "submitting" actúa
// como bandera de ocupado: un segundo intento de envío mientras hay uno en
// curso se rechaza aquí, no cancelando la llamada en vuelo.
type Session struct {
	state     SessionState
	selection *SelectionSet
	frozen    *Submission // payload congelado durante el envío
	lastError string
}

// NewSession inicia una sesión en estado de selección con un conjunto vacío.
func NewSession() *Session {
	return &Session{state: StateSelecting, selection: NewSelectionSet()}
}

// State devuelve el estado actual.
func (s *Session) State() SessionState { return s.state }

// Selection devuelve el conjunto de selección de la sesión.
func (s *Session) Selection() *SelectionSet { return s.selection }

// LastError devuelve el mensaje del último fallo de envío, si lo hubo.
func (s *Session) LastError() string { return s.lastError }

// Review pasa de selección a revisión. Requiere al menos una factura.
func (s *Session) Review() error {
	if s.state != StateSelecting {
		return ErrInvalidTransition
	}
	if s.selection.Len() == 0 {
		return ErrNoAllocations
	}
	s.state = StateReviewing
	return nil
}

// EditSelection vuelve de revisión a selección (el usuario quiere ajustar).
func (s *Session) EditSelection() error {
	if s.state != StateReviewing {
		return ErrInvalidTransition
	}
	s.state = StateSelecting
	return nil
}

// BeginSubmit congela el payload y pasa a "submitting". Solo es válido desde
// revisión; si ya hay un envío en curso retorna ErrSessionBusy.
func (s *Session) BeginSubmit(sub *Submission) error {
	if s.state == StateSubmitting {
		return ErrSessionBusy
	}
	if s.state != StateReviewing {
		return ErrInvalidTransition
	}
	if sub == nil || len(sub.Allocations) == 0 {
		return ErrNoAllocations
	}
	s.frozen = sub
	s.state = StateSubmitting
	return nil
}

// Frozen devuelve el payload congelado del envío en curso (nil fuera de él).
func (s *Session) Frozen() *Submission {
	if s.state != StateSubmitting {
		return nil
	}
	return s.frozen
}

// Succeed marca el envío como exitoso; la sesión queda terminada.
func (s *Session) Succeed() error {
	if s.state != StateSubmitting {
		return ErrInvalidTransition
	}
	s.state = StateSucceeded
	return nil
}

// Fail marca el envío como fallido, conservando la selección intacta para
// que el usuario pueda reintentar sin recalcular.
func (s *Session) Fail(message string) error {
	if s.state != StateSubmitting {
		return ErrInvalidTransition
	}
	s.lastError = message
	s.frozen = nil
	s.state = StateFailed
	return nil
}

// Retry vuelve de fallo a revisión con el mismo estado de asignación.
func (s *Session) Retry() error {
	if s.state != StateFailed {
		return ErrInvalidTransition
	}
	s.state = StateReviewing
	return nil
}
