package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/pylondev/invoicing-api/internal/application/billing"
	"github.com/pylondev/invoicing-api/internal/application/dto"
)

// InvoiceHandler maneja las peticiones HTTP de facturas.
type InvoiceHandler struct {
	uc  *billing.InvoiceUseCase
	pdf *billing.PDFUseCase
}

// NewInvoiceHandler construye el handler.
func NewInvoiceHandler(uc *billing.InvoiceUseCase, pdf *billing.PDFUseCase) *InvoiceHandler {
	return &InvoiceHandler{uc: uc, pdf: pdf}
}

// Create POST /api/invoices
func (h *InvoiceHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateInvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	inv, err := h.uc.Create(in)
	if err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(inv)
}

// List GET /api/invoices?status=Overdue — el filtro usa el estado efectivo.
func (h *InvoiceHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.Query("status"))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(list)
}

// GetByID GET /api/invoices/:id
func (h *InvoiceHandler) GetByID(c *fiber.Ctx) error {
	inv, err := h.uc.Get(c.Params("id"))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(inv)
}

// Update PUT /api/invoices/:id
func (h *InvoiceHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateInvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	inv, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(inv)
}

// Send POST /api/invoices/:id/send — Draft → Unpaid.
func (h *InvoiceHandler) Send(c *fiber.Ctx) error {
	inv, err := h.uc.Send(c.Params("id"))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(inv)
}

// Pay POST /api/invoices/:id/pay — marca como pagada y estampa la fecha.
func (h *InvoiceHandler) Pay(c *fiber.Ctx) error {
	inv, err := h.uc.MarkAsPaid(c.Params("id"))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(inv)
}

// Remind POST /api/invoices/:id/remind
func (h *InvoiceHandler) Remind(c *fiber.Ctx) error {
	inv, err := h.uc.SendReminder(c.Params("id"))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(inv)
}

// Delete DELETE /api/invoices/:id
func (h *InvoiceHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return domainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// DownloadPDF GET /api/invoices/:id/pdf
func (h *InvoiceHandler) DownloadPDF(c *fiber.Ctx) error {
	pdfBytes, filename, err := h.pdf.DownloadInvoicePDF(c.Context(), c.Params("id"))
	if err != nil {
		return domainError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}
