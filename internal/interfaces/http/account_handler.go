package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Pagos-api/internal/application/dto"
	"github.com/jhoicas/Pagos-api/internal/application/payments"
	"github.com/jhoicas/Pagos-api/internal/domain"
)

// AccountHandler maneja las consultas de cuenta para el flujo de pago:
// facturas abiertas, crédito disponible y búsqueda (lookup de caja).
type AccountHandler struct {
	uc *payments.PaymentUseCase
}

// NewAccountHandler construye el handler.
func NewAccountHandler(uc *payments.PaymentUseCase) *AccountHandler {
	return &AccountHandler{uc: uc}
}

// OpenInvoices devuelve el snapshot de facturas abiertas de la cuenta.
// GET /api/accounts/:id/invoices
func (h *AccountHandler) OpenInvoices(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	resp, err := h.uc.ListOpenInvoices(c.Context(), companyID, c.Params("id"))
	if err != nil {
		return accountError(c, err)
	}
	return c.JSON(resp)
}

// Credits devuelve las notas crédito abiertas y el crédito disponible.
// GET /api/accounts/:id/credits
func (h *AccountHandler) Credits(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	resp, err := h.uc.ListCredits(c.Context(), companyID, c.Params("id"))
	if err != nil {
		return accountError(c, err)
	}
	return c.JSON(resp)
}

// Search busca cuentas por nombre para el lookup de caja.
// GET /api/accounts/search?name=...&limit=...
func (h *AccountHandler) Search(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	name := c.Query("name")
	if name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "parámetro name requerido"})
	}
	accounts, err := h.uc.SearchAccounts(c.Context(), companyID, name, c.QueryInt("limit"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(accounts)
}

func accountError(c *fiber.Ctx, err error) error {
	if errors.Is(err, domain.ErrInvalidInput) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	if errors.Is(err, domain.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "cuenta no encontrada"})
	}
	if errors.Is(err, domain.ErrForbidden) {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "acceso denegado al recurso"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
