package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Pagos-api/internal/application/billing"
	"github.com/jhoicas/Pagos-api/internal/application/dto"
	"github.com/jhoicas/Pagos-api/internal/application/payments"
	"github.com/jhoicas/Pagos-api/internal/domain"
	"github.com/jhoicas/Pagos-api/internal/domain/entity"
	"github.com/jhoicas/Pagos-api/internal/domain/payment"
)

// PaymentHandler maneja los cobros del portal de autoservicio y la descarga
// del recibo.
type PaymentHandler struct {
	uc        *payments.PaymentUseCase
	receiptUC *billing.ReceiptPDFUseCase
}

// NewPaymentHandler construye el handler.
func NewPaymentHandler(uc *payments.PaymentUseCase, receiptUC *billing.ReceiptPDFUseCase) *PaymentHandler {
	return &PaymentHandler{uc: uc, receiptUC: receiptUC}
}

// Submit ejecuta un pago multi-factura con crédito de cuenta.
// POST /api/payments
func (h *PaymentHandler) Submit(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	userID := GetUserID(c)
	if companyID == "" || userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.SubmitPaymentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	resp, err := h.uc.SubmitPayment(c.Context(), companyID, userID, entity.PaymentChannelWeb, in)
	if err != nil {
		return paymentError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// PayInvoice ejecuta el pago de una sola factura.
// POST /api/invoices/:id/pay
func (h *PaymentHandler) PayInvoice(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	userID := GetUserID(c)
	if companyID == "" || userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.PayInvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	resp, err := h.uc.PayInvoice(c.Context(), companyID, userID, c.Params("id"), in)
	if err != nil {
		return paymentError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// GetByID devuelve una transacción de pago con sus asignaciones.
// GET /api/payments/:id
func (h *PaymentHandler) GetByID(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	resp, err := h.uc.GetPayment(c.Context(), companyID, c.Params("id"))
	if err != nil {
		return paymentError(c, err)
	}
	return c.JSON(resp)
}

// Receipt descarga el recibo del pago en PDF.
// GET /api/payments/:id/receipt
func (h *PaymentHandler) Receipt(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	pdfBytes, filename, err := h.receiptUC.DownloadReceiptPDF(c.Context(), companyID, c.Params("id"))
	if err != nil {
		return paymentError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}

// paymentError traduce los errores del dominio de cobros a códigos HTTP.
func paymentError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, payment.ErrNoAllocations),
		errors.Is(err, payment.ErrNoBalanceDue):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, payment.ErrNoGateway):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "NO_GATEWAY", Message: "no hay pasarela de pago activa configurada"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "acceso denegado al recurso"})
	case errors.Is(err, payment.ErrSessionBusy):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "SUBMIT_IN_PROGRESS", Message: "ya hay un envío en curso"})
	case errors.Is(err, domain.ErrGatewayDeclined):
		// 402: la pasarela rechazó el cobro; el cliente puede reintentar con otro método.
		return c.Status(fiber.StatusPaymentRequired).JSON(dto.ErrorResponse{Code: "GATEWAY_DECLINED", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
