package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Pagos-api/internal/application/auth"
	"github.com/jhoicas/Pagos-api/internal/application/billing"
	"github.com/jhoicas/Pagos-api/internal/application/payments"
	"github.com/jhoicas/Pagos-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC          *auth.AuthUseCase
	PaymentUC       *payments.PaymentUseCase
	GenerateInvoice *billing.GenerateInvoiceUseCase
	ReceiptPDF      *billing.ReceiptPDFUseCase
	JWTSecret       string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Cuentas: snapshot de facturas abiertas, crédito disponible y búsqueda
	accounts := protected.Group("/accounts")
	accountHandler := NewAccountHandler(deps.PaymentUC)
	accounts.Get("/search", accountHandler.Search)
	accounts.Get("/:id/invoices", accountHandler.OpenInvoices)
	accounts.Get("/:id/credits", accountHandler.Credits)

	// Pagos del portal de autoservicio
	paymentHandler := NewPaymentHandler(deps.PaymentUC, deps.ReceiptPDF)
	paymentsGroup := protected.Group("/payments")
	paymentsGroup.Post("/", paymentHandler.Submit)
	paymentsGroup.Get("/:id", paymentHandler.GetByID)
	paymentsGroup.Get("/:id/receipt", paymentHandler.Receipt)

	// Caja / call center: solo agentes y cajeros (o admin)
	pos := protected.Group("/pos", RequireRole(entity.RoleAdmin, entity.RoleAgente, entity.RoleCajero))
	posHandler := NewPOSHandler(deps.PaymentUC)
	pos.Post("/payments", posHandler.Submit)

	// Facturas: pago individual y consulta
	orderHandler := NewOrderHandler(deps.GenerateInvoice)
	invoices := protected.Group("/invoices")
	invoices.Get("/:id", orderHandler.GetInvoice)
	invoices.Post("/:id/pay", paymentHandler.PayInvoice)

	// Pedidos: generación de factura
	orders := protected.Group("/orders")
	orders.Post("/:id/invoice", orderHandler.GenerateInvoice)
}
