package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Pagos-api/internal/application/billing"
	"github.com/jhoicas/Pagos-api/internal/application/payments"
	"github.com/jhoicas/Pagos-api/internal/domain/repository"
)

var _ payments.TxRunner = (*TxRunner)(nil)
var _ billing.BillingTxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunPayments inicia una transacción con los repos de cobros: transacción de
// pago, asignaciones, abonos a facturas y débitos de notas crédito se aplican
// todos o ninguno.
func (r *TxRunner) RunPayments(ctx context.Context, fn func(
	invoiceRepo repository.InvoiceRepository,
	creditRepo repository.CreditMemoRepository,
	paymentRepo repository.PaymentRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	invoiceRepo := NewInvoiceRepository(tx)
	creditRepo := NewCreditMemoRepository(tx)
	paymentRepo := NewPaymentRepository(tx)

	if err := fn(invoiceRepo, creditRepo, paymentRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunBilling inicia una transacción con repos de pedidos y facturas (para la
// generación de factura desde pedido).
func (r *TxRunner) RunBilling(ctx context.Context, fn func(
	orderRepo repository.OrderRepository,
	invoiceRepo repository.InvoiceRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	orderRepo := NewOrderRepository(tx)
	invoiceRepo := NewInvoiceRepository(tx)

	if err := fn(orderRepo, invoiceRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
