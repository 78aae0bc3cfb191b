package payments

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Pagos-api/internal/domain/entity"
	"github.com/jhoicas/Pagos-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción que incluye los
// repos de cobros. Si fn retorna error, el caller hace rollback (atomicidad
// entre transacción, asignaciones, facturas y notas crédito).
type TxRunner interface {
	RunPayments(ctx context.Context, fn func(
		invoiceRepo repository.InvoiceRepository,
		creditRepo repository.CreditMemoRepository,
		paymentRepo repository.PaymentRepository,
	) error) error
}

// GatewayCharge es la orden de cobro que se envía a la pasarela. El token ya
// viene tokenizado por el frontend o por un método guardado: este servicio
// nunca ve números completos de tarjeta o cuenta.
type GatewayCharge struct {
	AccountID   string
	Amount      decimal.Decimal
	Currency    string // código ISO 4217
	Token       string
	Description string
}

// GatewayResult respuesta de la pasarela ante un cobro aceptado.
type GatewayResult struct {
	TransactionID string // ID de la transacción en la pasarela
}

// GatewayClient define el puerto hacia la pasarela de pagos. Un error de
// Charge significa cobro rechazado o fallo de red; en ambos casos el cobro
// no se aplicó.
type GatewayClient interface {
	Charge(ctx context.Context, gateway *entity.PaymentGateway, charge GatewayCharge) (*GatewayResult, error)
}
