package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/Pagos-api/internal/application/auth"
	"github.com/jhoicas/Pagos-api/internal/application/billing"
	"github.com/jhoicas/Pagos-api/internal/application/payments"
	infragateway "github.com/jhoicas/Pagos-api/internal/infrastructure/gateway"
	infrapdf "github.com/jhoicas/Pagos-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Pagos-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Pagos-api/internal/interfaces/http"
	"github.com/jhoicas/Pagos-api/pkg/config"
	"github.com/jhoicas/Pagos-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	companyRepo := postgres.NewCompanyRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	accountRepo := postgres.NewAccountRepository(pool)
	invoiceRepo := postgres.NewInvoiceRepository(pool)
	creditRepo := postgres.NewCreditMemoRepository(pool)
	gatewayRepo := postgres.NewGatewayRepository(pool)
	methodRepo := postgres.NewPaymentMethodRepository(pool)
	paymentRepo := postgres.NewPaymentRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	stripeClient := infragateway.NewStripeClient(cfg.Stripe.SecretKey, log)

	paymentUC := payments.NewPaymentUseCase(
		txRunner, accountRepo, invoiceRepo, creditRepo, gatewayRepo,
		methodRepo, paymentRepo, stripeClient,
		payments.FormatConfig{Currency: cfg.Payments.Currency, Locale: cfg.Payments.Locale},
		log,
	)
	generateInvoiceUC := billing.NewGenerateInvoiceUseCase(txRunner, orderRepo, invoiceRepo)

	// PDF: recibo de pago
	pdfGenerator := infrapdf.NewMarotoReceiptGenerator()
	receiptPDFUC := billing.NewReceiptPDFUseCase(
		paymentRepo, invoiceRepo, accountRepo, companyRepo, pdfGenerator,
	)
	authUC := auth.NewAuthUseCase(userRepo, companyRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Pagos API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:          authUC,
		PaymentUC:       paymentUC,
		GenerateInvoice: generateInvoiceUC,
		ReceiptPDF:      receiptPDFUC,
		JWTSecret:       cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
