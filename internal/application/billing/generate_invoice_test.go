package billing_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Pagos-api/internal/application/billing"
	"github.com/jhoicas/Pagos-api/internal/application/dto"
	"github.com/jhoicas/Pagos-api/internal/domain"
	"github.com/jhoicas/Pagos-api/internal/domain/entity"
	"github.com/jhoicas/Pagos-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeOrderRepo struct {
	orders map[string]*entity.Order
	items  map[string][]*entity.OrderItem
}

func (r *fakeOrderRepo) GetByID(id string) (*entity.Order, error) { return r.orders[id], nil }
func (r *fakeOrderRepo) GetItemsByOrderID(orderID string) ([]*entity.OrderItem, error) {
	return r.items[orderID], nil
}
func (r *fakeOrderRepo) MarkInvoiced(o *entity.Order) error { r.orders[o.ID] = o; return nil }

type fakeInvoiceRepo struct {
	invoices map[string]*entity.Invoice
	lines    map[string][]*entity.InvoiceLine
}

func (r *fakeInvoiceRepo) Create(inv *entity.Invoice) error { r.invoices[inv.ID] = inv; return nil }
func (r *fakeInvoiceRepo) CreateLine(line *entity.InvoiceLine) error {
	r.lines[line.InvoiceID] = append(r.lines[line.InvoiceID], line)
	return nil
}
func (r *fakeInvoiceRepo) GetByID(id string) (*entity.Invoice, error) { return r.invoices[id], nil }
func (r *fakeInvoiceRepo) GetLinesByInvoiceID(invoiceID string) ([]*entity.InvoiceLine, error) {
	return r.lines[invoiceID], nil
}
func (r *fakeInvoiceRepo) ListOpenByAccount(string) ([]*entity.Invoice, error) { return nil, nil }
func (r *fakeInvoiceRepo) UpdatePayment(inv *entity.Invoice) error {
	r.invoices[inv.ID] = inv
	return nil
}

type fakeBillingTxRunner struct {
	orderRepo   repository.OrderRepository
	invoiceRepo repository.InvoiceRepository
}

func (r *fakeBillingTxRunner) RunBilling(_ context.Context, fn func(
	repository.OrderRepository,
	repository.InvoiceRepository,
) error) error {
	return fn(r.orderRepo, r.invoiceRepo)
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func newUseCase(t *testing.T) (*billing.GenerateInvoiceUseCase, *fakeOrderRepo, *fakeInvoiceRepo) {
	t.Helper()
	now := time.Now()
	orderRepo := &fakeOrderRepo{
		orders: map[string]*entity.Order{
			"ord-1": {ID: "ord-1", CompanyID: "co-1", AccountID: "acc-1", Number: "P-100", Status: entity.OrderStatusConfirmed, CreatedAt: now},
			"ord-2": {ID: "ord-2", CompanyID: "co-1", AccountID: "acc-1", Number: "P-101", Status: entity.OrderStatusDraft, CreatedAt: now},
		},
		items: map[string][]*entity.OrderItem{
			"ord-1": {
				{ID: "it-1", OrderID: "ord-1", Description: "Plan anual", Quantity: dec("2"), UnitPrice: dec("120.50")},
				{ID: "it-2", OrderID: "ord-1", Description: "Soporte premium", Quantity: dec("1"), UnitPrice: dec("59")},
			},
		},
	}
	invoiceRepo := &fakeInvoiceRepo{invoices: map[string]*entity.Invoice{}, lines: map[string][]*entity.InvoiceLine{}}
	txRunner := &fakeBillingTxRunner{orderRepo: orderRepo, invoiceRepo: invoiceRepo}
	return billing.NewGenerateInvoiceUseCase(txRunner, orderRepo, invoiceRepo), orderRepo, invoiceRepo
}

// ──────────────────────────────────────────────────────────────────────────────
// GenerateFromOrder
// ──────────────────────────────────────────────────────────────────────────────

func TestGenerateFromOrder_CopiaLineasYCalculaTotal(t *testing.T) {
	uc, orderRepo, invoiceRepo := newUseCase(t)

	resp, err := uc.GenerateFromOrder(context.Background(), "co-1", "ord-1", dto.GenerateInvoiceRequest{})
	require.NoError(t, err)

	// 2 × 120.50 + 1 × 59 = 300.00
	assert.True(t, resp.TotalAmount.Equal(dec("300")), "total = suma de cantidad × precio por línea")
	assert.Equal(t, entity.InvoiceStatusPending, resp.Status)
	assert.True(t, resp.BalanceDue.Equal(dec("300")), "la factura nace sin pagos")
	require.Len(t, resp.Lines, 2)
	assert.True(t, resp.Lines[0].Subtotal.Equal(dec("241")))

	// El pedido queda enlazado y marcado como facturado.
	order := orderRepo.orders["ord-1"]
	assert.Equal(t, entity.OrderStatusInvoiced, order.Status)
	assert.Equal(t, resp.ID, order.InvoiceID)
	assert.NotNil(t, invoiceRepo.invoices[resp.ID])
}

func TestGenerateFromOrder_PedidoYaFacturado(t *testing.T) {
	uc, _, _ := newUseCase(t)

	_, err := uc.GenerateFromOrder(context.Background(), "co-1", "ord-1", dto.GenerateInvoiceRequest{})
	require.NoError(t, err)

	_, err = uc.GenerateFromOrder(context.Background(), "co-1", "ord-1", dto.GenerateInvoiceRequest{})
	assert.ErrorIs(t, err, domain.ErrAlreadyInvoiced, "un pedido solo se factura una vez")
}

func TestGenerateFromOrder_PedidoEnBorrador(t *testing.T) {
	uc, _, _ := newUseCase(t)

	_, err := uc.GenerateFromOrder(context.Background(), "co-1", "ord-2", dto.GenerateInvoiceRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestGenerateFromOrder_PedidoDeOtraEmpresa(t *testing.T) {
	uc, _, _ := newUseCase(t)

	_, err := uc.GenerateFromOrder(context.Background(), "co-2", "ord-1", dto.GenerateInvoiceRequest{})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestGenerateFromOrder_PedidoInexistente(t *testing.T) {
	uc, _, _ := newUseCase(t)

	_, err := uc.GenerateFromOrder(context.Background(), "co-1", "ord-999", dto.GenerateInvoiceRequest{})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGenerateFromOrder_FechaDeVencimientoExplicita(t *testing.T) {
	uc, _, _ := newUseCase(t)

	resp, err := uc.GenerateFromOrder(context.Background(), "co-1", "ord-1", dto.GenerateInvoiceRequest{
		Number:  "FAC-2026-001",
		DueDate: "2026-10-15",
	})
	require.NoError(t, err)
	assert.Equal(t, "FAC-2026-001", resp.Number)
	assert.Equal(t, "2026-10-15", resp.DueDate)
}

func TestGenerateFromOrder_FechaInvalida(t *testing.T) {
	uc, _, _ := newUseCase(t)

	_, err := uc.GenerateFromOrder(context.Background(), "co-1", "ord-1", dto.GenerateInvoiceRequest{DueDate: "15/10/2026"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
