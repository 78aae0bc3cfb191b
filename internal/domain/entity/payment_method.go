package entity

import "time"

// Tipos de método de pago guardado.
const (
	PaymentMethodCard = "card"
	PaymentMethodACH  = "ach"
)

// PaymentMethod representa un método de pago tokenizado y guardado para una
// cuenta. Nunca se almacenan números completos de tarjeta o cuenta bancaria:
// solo el token de la pasarela y datos de presentación (marca, últimos 4).
type PaymentMethod struct {
	ID           string
	CompanyID    string
	AccountID    string
	Type         string // card | ach
	GatewayToken string
	Brand        string // marca de tarjeta o nombre del banco
	Last4        string
	ExpMonth     int // solo tarjetas
	ExpYear      int // solo tarjetas
	CreatedAt    time.Time
}
