package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de cobro de una factura.
const (
	InvoiceStatusPending       = "Pending"        // Emitida, sin pagos
	InvoiceStatusScheduled     = "Scheduled"      // Con pago programado
	InvoiceStatusPartiallyPaid = "Partially Paid" // Con pagos parciales aplicados
	InvoiceStatusOverdue       = "Overdue"        // Vencida sin pago completo
	InvoiceStatusFailed        = "Failed"         // Último intento de cobro rechazado
	InvoiceStatusPaid          = "Paid"           // Saldo en cero
)

// OpenInvoiceStatuses estados considerados "abiertos" para cobro.
var OpenInvoiceStatuses = []string{
	InvoiceStatusPending,
	InvoiceStatusScheduled,
	InvoiceStatusPartiallyPaid,
	InvoiceStatusOverdue,
	InvoiceStatusFailed,
}

// Invoice representa la cabecera de una factura por cobrar.
type Invoice struct {
	ID          string
	CompanyID   string
	AccountID   string
	OrderID     string // pedido de origen, vacío si fue creada manualmente
	Number      string
	IssueDate   time.Time
	DueDate     time.Time
	TotalAmount decimal.Decimal
	AmountPaid  decimal.Decimal
	Status      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// BalanceDue devuelve el saldo pendiente: TotalAmount - AmountPaid, nunca negativo.
func (i *Invoice) BalanceDue() decimal.Decimal {
	balance := i.TotalAmount.Sub(i.AmountPaid)
	if balance.IsNegative() {
		return decimal.Zero
	}
	return balance
}

// InvoiceLine representa una línea de detalle de una factura.
type InvoiceLine struct {
	ID          string
	InvoiceID   string
	Description string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
	Subtotal    decimal.Decimal
}
