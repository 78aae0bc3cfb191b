package repository

import "github.com/jhoicas/Pagos-api/internal/domain/entity"

// InvoiceRepository define el puerto de persistencia para facturas por cobrar.
type InvoiceRepository interface {
	Create(invoice *entity.Invoice) error
	CreateLine(line *entity.InvoiceLine) error
	GetByID(id string) (*entity.Invoice, error)
	GetLinesByInvoiceID(invoiceID string) ([]*entity.InvoiceLine, error)
	// ListOpenByAccount devuelve las facturas abiertas (con saldo pendiente)
	// de una cuenta, en orden estable por fecha de vencimiento. Es el
	// snapshot de sesión del flujo de pago.
	ListOpenByAccount(accountID string) ([]*entity.Invoice, error)
	// UpdatePayment actualiza monto pagado y estado tras aplicar un pago.
	UpdatePayment(invoice *entity.Invoice) error
}
