package billing

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Pagos-api/internal/application/dto"
	"github.com/jhoicas/Pagos-api/internal/domain"
	"github.com/jhoicas/Pagos-api/internal/domain/entity"
	"github.com/jhoicas/Pagos-api/internal/domain/repository"
)

// Plazo de pago por defecto cuando el request no trae fecha de vencimiento.
const defaultDueDays = 30

// GenerateInvoiceUseCase genera una factura por cobrar a partir de un pedido
// confirmado: copia las líneas, calcula el total y enlaza pedido y factura en
// una sola transacción. Un pedido solo puede facturarse una vez.
type GenerateInvoiceUseCase struct {
	txRunner    BillingTxRunner
	orderRepo   repository.OrderRepository
	invoiceRepo repository.InvoiceRepository
}

// NewGenerateInvoiceUseCase construye el caso de uso.
func NewGenerateInvoiceUseCase(
	txRunner BillingTxRunner,
	orderRepo repository.OrderRepository,
	invoiceRepo repository.InvoiceRepository,
) *GenerateInvoiceUseCase {
	return &GenerateInvoiceUseCase{
		txRunner:    txRunner,
		orderRepo:   orderRepo,
		invoiceRepo: invoiceRepo,
	}
}

// GenerateFromOrder crea la factura del pedido. Devuelve ErrAlreadyInvoiced si
// el pedido ya tiene factura y ErrInvalidInput si está en borrador o sin líneas.
func (uc *GenerateInvoiceUseCase) GenerateFromOrder(ctx context.Context, companyID, orderID string, in dto.GenerateInvoiceRequest) (*dto.InvoiceResponse, error) {
	order, err := uc.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, fmt.Errorf("cargar pedido: %w", err)
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	if order.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	if order.Status == entity.OrderStatusInvoiced || order.InvoiceID != "" {
		return nil, domain.ErrAlreadyInvoiced
	}
	if order.Status != entity.OrderStatusConfirmed {
		return nil, fmt.Errorf("%w: solo se facturan pedidos confirmados (estado actual: %s)", domain.ErrInvalidInput, order.Status)
	}

	items, err := uc.orderRepo.GetItemsByOrderID(order.ID)
	if err != nil {
		return nil, fmt.Errorf("cargar líneas del pedido: %w", err)
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: el pedido no tiene líneas", domain.ErrInvalidInput)
	}
	for _, it := range items {
		if !it.Quantity.GreaterThan(decimal.Zero) || it.UnitPrice.IsNegative() {
			return nil, fmt.Errorf("%w: línea %s con cantidad o precio inválido", domain.ErrInvalidInput, it.ID)
		}
	}

	now := time.Now()
	dueDate, err := resolveDueDate(in.DueDate, now)
	if err != nil {
		return nil, err
	}
	number := in.Number
	if number == "" {
		number = fmt.Sprintf("FAC-%s-%d", order.Number, now.Unix())
	}

	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Subtotal())
	}

	inv := &entity.Invoice{
		ID:          uuid.New().String(),
		CompanyID:   companyID,
		AccountID:   order.AccountID,
		OrderID:     order.ID,
		Number:      number,
		IssueDate:   now,
		DueDate:     dueDate,
		TotalAmount: total,
		AmountPaid:  decimal.Zero,
		Status:      entity.InvoiceStatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	lines := make([]*entity.InvoiceLine, 0, len(items))
	for _, it := range items {
		lines = append(lines, &entity.InvoiceLine{
			ID:          uuid.New().String(),
			InvoiceID:   inv.ID,
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			Subtotal:    it.Subtotal(),
		})
	}

	err = uc.txRunner.RunBilling(ctx, func(
		orderRepo repository.OrderRepository,
		invoiceRepo repository.InvoiceRepository,
	) error {
		if err := invoiceRepo.Create(inv); err != nil {
			return err
		}
		for _, line := range lines {
			if err := invoiceRepo.CreateLine(line); err != nil {
				return err
			}
		}
		order.Status = entity.OrderStatusInvoiced
		order.InvoiceID = inv.ID
		order.UpdatedAt = now
		return orderRepo.MarkInvoiced(order)
	})
	if err != nil {
		return nil, fmt.Errorf("persistir factura: %w", err)
	}

	return toInvoiceResponse(inv, lines), nil
}

// GetInvoice obtiene una factura por ID con sus líneas.
func (uc *GenerateInvoiceUseCase) GetInvoice(ctx context.Context, companyID, invoiceID string) (*dto.InvoiceResponse, error) {
	inv, err := uc.invoiceRepo.GetByID(invoiceID)
	if err != nil {
		return nil, fmt.Errorf("cargar factura: %w", err)
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	if inv.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	lines, err := uc.invoiceRepo.GetLinesByInvoiceID(inv.ID)
	if err != nil {
		return nil, fmt.Errorf("cargar líneas: %w", err)
	}
	return toInvoiceResponse(inv, lines), nil
}

func resolveDueDate(raw string, now time.Time) (time.Time, error) {
	if raw == "" {
		return now.AddDate(0, 0, defaultDueDays), nil
	}
	due, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: fecha de vencimiento inválida (esperado YYYY-MM-DD)", domain.ErrInvalidInput)
	}
	return due, nil
}

func toInvoiceResponse(inv *entity.Invoice, lines []*entity.InvoiceLine) *dto.InvoiceResponse {
	resp := &dto.InvoiceResponse{
		ID:          inv.ID,
		AccountID:   inv.AccountID,
		OrderID:     inv.OrderID,
		Number:      inv.Number,
		IssueDate:   inv.IssueDate.Format("2006-01-02"),
		DueDate:     inv.DueDate.Format("2006-01-02"),
		Status:      inv.Status,
		TotalAmount: inv.TotalAmount,
		AmountPaid:  inv.AmountPaid,
		BalanceDue:  inv.BalanceDue(),
		Lines:       make([]dto.InvoiceLineResponse, 0, len(lines)),
	}
	for _, line := range lines {
		resp.Lines = append(resp.Lines, dto.InvoiceLineResponse{
			ID:          line.ID,
			Description: line.Description,
			Quantity:    line.Quantity,
			UnitPrice:   line.UnitPrice,
			Subtotal:    line.Subtotal,
		})
	}
	return resp
}
