package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una transacción de pago.
const (
	PaymentStatusSucceeded = "Succeeded"
	PaymentStatusFailed    = "Failed"
)

// Canales por los que se originó el cobro.
const (
	PaymentChannelWeb = "web" // portal de autoservicio
	PaymentChannelPOS = "pos" // caja / call center
)

// PaymentTransaction representa un intento de cobro contra la pasarela.
// Se persiste también cuando la pasarela rechaza (Status = Failed) para
// dejar rastro del intento; en ese caso las facturas no se tocan.
type PaymentTransaction struct {
	ID                   string
	CompanyID            string
	AccountID            string
	GatewayID            string
	CollectedByUserID    string // usuario que registró el cobro (POS) o dueño de la sesión
	Channel              string
	Amount               decimal.Decimal // monto cobrado a la pasarela (post-crédito)
	CreditApplied        decimal.Decimal // crédito de cuenta consumido en este pago
	Status               string
	GatewayTransactionID string
	ErrorMessage         string
	MethodSummary        string // ej. "visa ****4242" o "ach ****6789"
	CreatedAt            time.Time
}

// PaymentAllocation representa la aplicación de un pago a una factura concreta.
// Amount es el monto cobrado a la pasarela para esa factura (después de crédito);
// IsFullPayment conserva la intención original del usuario al seleccionarla,
// aunque el crédito haya reducido el monto.
type PaymentAllocation struct {
	ID            string
	PaymentID     string
	InvoiceID     string
	Amount        decimal.Decimal
	IsFullPayment bool
}
