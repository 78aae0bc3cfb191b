package entity

import "time"

// Proveedores de pasarela soportados.
const (
	GatewayProviderStripe       = "stripe"
	GatewayProviderAuthorizeNet = "authorize_net"
)

// PaymentGateway representa una pasarela de pago configurada por la empresa.
type PaymentGateway struct {
	ID        string
	CompanyID string
	Name      string
	Provider  string // stripe | authorize_net
	IsDefault bool
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
