package billing

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Pagos-api/internal/domain/entity"
	"github.com/jhoicas/Pagos-api/internal/domain/repository"
)

// BillingTxRunner ejecuta una función dentro de una transacción que incluye
// los repos de pedidos y facturas. La generación de factura marca el pedido y
// crea cabecera y líneas de forma atómica.
type BillingTxRunner interface {
	RunBilling(ctx context.Context, fn func(
		orderRepo repository.OrderRepository,
		invoiceRepo repository.InvoiceRepository,
	) error) error
}

// ReceiptAllocationForPDF asignación enriquecida con el número de factura
// para la representación gráfica del recibo.
type ReceiptAllocationForPDF struct {
	InvoiceNumber string
	Amount        decimal.Decimal
	IsFullPayment bool
}

// ReceiptData datos completos del recibo de pago.
type ReceiptData struct {
	Payment     *entity.PaymentTransaction
	Company     *entity.Company
	Account     *entity.Account
	Allocations []ReceiptAllocationForPDF
}

// ReceiptPDFGenerator define el puerto hacia el generador de PDF del recibo.
type ReceiptPDFGenerator interface {
	GenerateReceiptPDF(ctx context.Context, data *ReceiptData) ([]byte, error)
}
