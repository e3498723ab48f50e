package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/pylondev/invoicing-api/internal/application/billing"
	"github.com/pylondev/invoicing-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	InvoiceUC  *billing.InvoiceUseCase
	ClientUC   *billing.ClientUseCase
	InvoicePDF *billing.PDFUseCase
	ProfileUC  *usecase.ProfileUseCase
	InsightsUC *usecase.InsightsUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Clients
	clients := api.Group("/clients")
	clientHandler := NewClientHandler(deps.ClientUC)
	clients.Post("/", clientHandler.Create)
	clients.Get("/", clientHandler.List)
	clients.Get("/:id", clientHandler.GetByID)
	clients.Put("/:id", clientHandler.Update)
	clients.Delete("/:id", clientHandler.Delete)

	// Invoices
	invoices := api.Group("/invoices")
	invoiceHandler := NewInvoiceHandler(deps.InvoiceUC, deps.InvoicePDF)
	invoices.Post("/", invoiceHandler.Create)
	invoices.Get("/", invoiceHandler.List)
	invoices.Get("/:id", invoiceHandler.GetByID)
	invoices.Put("/:id", invoiceHandler.Update)
	invoices.Delete("/:id", invoiceHandler.Delete)
	invoices.Post("/:id/send", invoiceHandler.Send)
	invoices.Post("/:id/pay", invoiceHandler.Pay)
	invoices.Post("/:id/remind", invoiceHandler.Remind)
	invoices.Get("/:id/pdf", invoiceHandler.DownloadPDF)

	// Profile (singleton)
	profile := api.Group("/profile")
	profileHandler := NewProfileHandler(deps.ProfileUC)
	profile.Get("/", profileHandler.Get)
	profile.Put("/", profileHandler.Update)
	profile.Put("/business", profileHandler.UpdateBusiness)
	profile.Put("/image", profileHandler.UpdateImage)

	// Insights
	insightsHandler := NewInsightsHandler(deps.InsightsUC)
	api.Get("/insights", insightsHandler.Summary)
}
