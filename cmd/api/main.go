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
	"github.com/shopspring/decimal"

	appbilling "github.com/pylondev/invoicing-api/internal/application/billing"
	"github.com/pylondev/invoicing-api/internal/application/usecase"
	"github.com/pylondev/invoicing-api/internal/domain/entity"
	"github.com/pylondev/invoicing-api/internal/infrastructure/memory"
	infrapdf "github.com/pylondev/invoicing-api/internal/infrastructure/pdf"
	httpRouter "github.com/pylondev/invoicing-api/internal/interfaces/http"
	"github.com/pylondev/invoicing-api/pkg/config"
	"github.com/pylondev/invoicing-api/pkg/logger"
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

	// Estado inicial: roster de demostración o colecciones vacías.
	// Todo vive en memoria; al reiniciar el proceso se pierde (por alcance).
	var (
		seedClients  []*entity.Client
		seedInvoices []*entity.Invoice
		seedProfile  *entity.UserProfile
	)
	if cfg.Billing.SeedDemoData {
		seedClients = memory.DemoClients()
		seedInvoices = memory.DemoInvoices()
		seedProfile = memory.DemoProfile()
		log.Info().Int("clients", len(seedClients)).Int("invoices", len(seedInvoices)).Msg("datos de demostración cargados")
	}

	clientRepo := memory.NewClientRepository(seedClients)
	invoiceRepo := memory.NewInvoiceRepository(seedInvoices)
	profileRepo := memory.NewProfileRepository(seedProfile)

	taxRate := decimal.NewFromFloat(cfg.Billing.TaxRate)
	invoiceUC := appbilling.NewInvoiceUseCase(invoiceRepo, clientRepo, taxRate, log)
	clientUC := appbilling.NewClientUseCase(clientRepo)
	profileUC := usecase.NewProfileUseCase(profileRepo)
	insightsUC := usecase.NewInsightsUseCase(invoiceRepo)

	pdfGenerator := infrapdf.NewMarotoPDFGenerator(taxRate)
	invoicePDFUC := appbilling.NewPDFUseCase(invoiceRepo, clientRepo, profileRepo, pdfGenerator)

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
		Title:    "Pylon Invoicing API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		InvoiceUC:  invoiceUC,
		ClientUC:   clientUC,
		InvoicePDF: invoicePDFUC,
		ProfileUC:  profileUC,
		InsightsUC: insightsUC,
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
