package payment

import "errors"

// Errores del núcleo de asignación.
var (
	ErrNoBalanceDue  = errors.New("la factura no tiene saldo pendiente")
	ErrNoAllocations = errors.New("no hay facturas seleccionadas para el pago")
	ErrNoGateway     = errors.New("pasarela de pago requerida")

	// Errores de transición de la sesión de pago.
	ErrSessionBusy       = errors.New("ya hay un envío en curso")
	ErrInvalidTransition = errors.New("transición de estado inválida")
)
