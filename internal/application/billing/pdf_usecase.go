package billing

import (
	"context"
	"fmt"

	"github.com/jhoicas/Pagos-api/internal/domain"
	"github.com/jhoicas/Pagos-api/internal/domain/entity"
	"github.com/jhoicas/Pagos-api/internal/domain/repository"
)

// ReceiptPDFUseCase genera la representación gráfica (PDF) del recibo de un
// pago exitoso. Un intento rechazado no tiene recibo.
type ReceiptPDFUseCase struct {
	paymentRepo repository.PaymentRepository
	invoiceRepo repository.InvoiceRepository
	accountRepo repository.AccountRepository
	companyRepo repository.CompanyRepository
	generator   ReceiptPDFGenerator
}

// NewReceiptPDFUseCase construye el caso de uso inyectando todas sus dependencias.
func NewReceiptPDFUseCase(
	paymentRepo repository.PaymentRepository,
	invoiceRepo repository.InvoiceRepository,
	accountRepo repository.AccountRepository,
	companyRepo repository.CompanyRepository,
	generator ReceiptPDFGenerator,
) *ReceiptPDFUseCase {
	return &ReceiptPDFUseCase{
		paymentRepo: paymentRepo,
		invoiceRepo: invoiceRepo,
		accountRepo: accountRepo,
		companyRepo: companyRepo,
		generator:   generator,
	}
}

// DownloadReceiptPDF recupera el pago con sus asignaciones y genera el PDF.
//
// Retorna:
//   - (pdfBytes, filename, nil)  si todo sale bien.
//   - domain.ErrNotFound         si el pago no existe.
//   - domain.ErrForbidden        si el pago no pertenece a la empresa del token.
//   - domain.ErrInvalidInput     si el pago no fue exitoso.
func (uc *ReceiptPDFUseCase) DownloadReceiptPDF(
	ctx context.Context,
	companyID, paymentID string,
) (pdfBytes []byte, filename string, err error) {
	payment, err := uc.paymentRepo.GetByID(paymentID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener pago: %w", err)
	}
	if payment == nil {
		return nil, "", domain.ErrNotFound
	}
	if payment.CompanyID != companyID {
		return nil, "", domain.ErrForbidden
	}
	if payment.Status != entity.PaymentStatusSucceeded {
		return nil, "", fmt.Errorf("%w: el pago está en estado %s, solo los pagos exitosos tienen recibo",
			domain.ErrInvalidInput, payment.Status)
	}

	company, err := uc.companyRepo.GetByID(companyID)
	if err != nil || company == nil {
		return nil, "", fmt.Errorf("pdf: obtener empresa: %w", err)
	}
	account, err := uc.accountRepo.GetByID(payment.AccountID)
	if err != nil || account == nil {
		return nil, "", fmt.Errorf("pdf: obtener cuenta: %w", err)
	}

	// Asignaciones enriquecidas con el número de factura.
	rawAllocs, err := uc.paymentRepo.GetAllocationsByPaymentID(payment.ID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener asignaciones: %w", err)
	}
	allocs := make([]ReceiptAllocationForPDF, 0, len(rawAllocs))
	for _, a := range rawAllocs {
		number := a.InvoiceID // fallback
		if inv, iErr := uc.invoiceRepo.GetByID(a.InvoiceID); iErr == nil && inv != nil {
			number = inv.Number
		}
		allocs = append(allocs, ReceiptAllocationForPDF{
			InvoiceNumber: number,
			Amount:        a.Amount,
			IsFullPayment: a.IsFullPayment,
		})
	}

	pdfBytes, err = uc.generator.GenerateReceiptPDF(ctx, &ReceiptData{
		Payment:     payment,
		Company:     company,
		Account:     account,
		Allocations: allocs,
	})
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generación fallida: %w", err)
	}

	filename = fmt.Sprintf("recibo_%s.pdf", payment.ID)
	return pdfBytes, filename, nil
}
