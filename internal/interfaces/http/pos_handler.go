package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Pagos-api/internal/application/dto"
	"github.com/jhoicas/Pagos-api/internal/application/payments"
	"github.com/jhoicas/Pagos-api/internal/domain/entity"
)

// POSHandler maneja los cobros de caja y call center. Mismo flujo que el
// portal, pero el canal queda registrado como "pos" y el usuario del token es
// el agente que cobra, no el pagador.
type POSHandler struct {
	uc *payments.PaymentUseCase
}

// NewPOSHandler construye el handler.
func NewPOSHandler(uc *payments.PaymentUseCase) *POSHandler {
	return &POSHandler{uc: uc}
}

// Submit ejecuta un cobro de caja para la cuenta indicada.
// POST /api/pos/payments
func (h *POSHandler) Submit(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	userID := GetUserID(c)
	if companyID == "" || userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.SubmitPaymentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	resp, err := h.uc.SubmitPayment(c.Context(), companyID, userID, entity.PaymentChannelPOS, in)
	if err != nil {
		return paymentError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}
