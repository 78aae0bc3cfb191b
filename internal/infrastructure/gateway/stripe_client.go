// Package gateway contiene los adaptadores hacia las pasarelas de pago.
package gateway

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/paymentintent"

	"github.com/jhoicas/Pagos-api/internal/application/payments"
	"github.com/jhoicas/Pagos-api/internal/domain/entity"
	"github.com/jhoicas/Pagos-api/pkg/logger"
)

var _ payments.GatewayClient = (*StripeClient)(nil)

// StripeClient implementa el puerto GatewayClient cobrando vía PaymentIntents.
// El monto viaja en unidades menores (centavos), convertido desde el decimal
// exacto del dominio justo en esta frontera.
type StripeClient struct {
	log *logger.Logger
}

// NewStripeClient inicializa la API key global de stripe-go y construye el cliente.
func NewStripeClient(secretKey string, log *logger.Logger) *StripeClient {
	stripe.Key = secretKey
	return &StripeClient{log: log}
}

// Charge crea y confirma un PaymentIntent por el monto del cobro. Un rechazo
// de la tarjeta o cuenta se devuelve como error con el mensaje de Stripe.
func (c *StripeClient) Charge(ctx context.Context, gw *entity.PaymentGateway, charge payments.GatewayCharge) (*payments.GatewayResult, error) {
	if gw.Provider != entity.GatewayProviderStripe {
		return nil, fmt.Errorf("stripe: la pasarela %s es de proveedor %s", gw.ID, gw.Provider)
	}
	if charge.Token == "" {
		return nil, fmt.Errorf("stripe: token de pago vacío")
	}

	params := &stripe.PaymentIntentParams{
		Amount:        stripe.Int64(toMinorUnits(charge.Amount)),
		Currency:      stripe.String(strings.ToLower(charge.Currency)),
		PaymentMethod: stripe.String(charge.Token),
		Confirm:       stripe.Bool(true),
		Description:   stripe.String(charge.Description),
		// Sin redirecciones: los cobros de este servicio son server-side.
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled:        stripe.Bool(true),
			AllowRedirects: stripe.String("never"),
		},
	}
	params.Context = ctx
	params.AddMetadata("account_id", charge.AccountID)

	intent, err := paymentintent.New(params)
	if err != nil {
		var stripeErr *stripe.Error
		if errors.As(err, &stripeErr) {
			c.log.Warn().
				Str("account_id", charge.AccountID).
				Str("code", string(stripeErr.Code)).
				Msg("cobro rechazado por Stripe")
			return nil, fmt.Errorf("%s: %s", stripeErr.Code, stripeErr.Msg)
		}
		return nil, fmt.Errorf("stripe: crear payment intent: %w", err)
	}
	if intent.Status != stripe.PaymentIntentStatusSucceeded {
		return nil, fmt.Errorf("stripe: payment intent en estado %s", intent.Status)
	}

	c.log.Info().
		Str("account_id", charge.AccountID).
		Str("payment_intent", intent.ID).
		Msg("cobro confirmado por Stripe")
	return &payments.GatewayResult{TransactionID: intent.ID}, nil
}

// toMinorUnits convierte el monto decimal a unidades menores (centavos),
// redondeando a 2 decimales antes de escalar.
func toMinorUnits(amount decimal.Decimal) int64 {
	return amount.Round(2).Mul(decimal.NewFromInt(100)).IntPart()
}
