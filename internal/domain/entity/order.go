package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un pedido respecto a facturación.
const (
	OrderStatusDraft     = "Draft"
	OrderStatusConfirmed = "Confirmed"
	OrderStatusInvoiced  = "Invoiced"
)

// Order representa un pedido del CRM a partir del cual se genera una factura.
type Order struct {
	ID        string
	CompanyID string
	AccountID string
	Number    string
	Status    string
	InvoiceID string // factura generada, vacío mientras no se facture
	CreatedAt time.Time
	UpdatedAt time.Time
}

// OrderItem representa una línea del pedido.
type OrderItem struct {
	ID          string
	OrderID     string
	Description string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
}

// Subtotal devuelve cantidad por precio unitario (decimal exacto).
func (it *OrderItem) Subtotal() decimal.Decimal {
	return it.Quantity.Mul(it.UnitPrice)
}
