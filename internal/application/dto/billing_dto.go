package dto

import "github.com/shopspring/decimal"

// InvoiceItemRequest línea de factura en creación/edición.
type InvoiceItemRequest struct {
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	Unit        string          `json:"unit,omitempty"` // "hrs", "item", "day"
	Rate        decimal.Decimal `json:"rate"`
}

// CreateInvoiceRequest body para POST /api/invoices.
// ClientID es opcional: una factura puede referenciar solo el nombre de la
// empresa. Si hay líneas, Amount se ignora y se calcula de las líneas.
type CreateInvoiceRequest struct {
	ClientID    string               `json:"client_id,omitempty"`
	CompanyName string               `json:"company_name,omitempty"`
	Status      string               `json:"status,omitempty"` // por defecto Draft
	Amount      decimal.Decimal      `json:"amount"`
	IssueDate   string               `json:"issue_date,omitempty"` // "24 Oct, 2023"; por defecto hoy
	DueDate     string               `json:"due_date,omitempty"`   // por defecto emisión + 14 días
	Items       []InvoiceItemRequest `json:"items,omitempty"`
	Notes       string               `json:"notes,omitempty"`
}

// UpdateInvoiceRequest body para PUT /api/invoices/:id. Campos nil no se tocan.
type UpdateInvoiceRequest struct {
	CompanyName *string              `json:"company_name,omitempty"`
	Status      *string              `json:"status,omitempty"`
	Amount      *decimal.Decimal     `json:"amount,omitempty"`
	IssueDate   *string              `json:"issue_date,omitempty"`
	DueDate     *string              `json:"due_date,omitempty"`
	Items       []InvoiceItemRequest `json:"items,omitempty"`
	Notes       *string              `json:"notes,omitempty"`
}

// InvoiceItemResponse línea en respuestas, con su subtotal calculado.
type InvoiceItemResponse struct {
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	Unit        string          `json:"unit,omitempty"`
	Rate        decimal.Decimal `json:"rate"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

// TotalsResponse desglose subtotal/impuesto/total de la factura.
type TotalsResponse struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Tax      decimal.Decimal `json:"tax"`
	Total    decimal.Decimal `json:"total"`
}

// InvoiceResponse factura en respuestas. Status es el estado efectivo:
// una Unpaid vencida se reporta Overdue aunque el estado almacenado no cambie.
type InvoiceResponse struct {
	ID             string                `json:"id"`
	Number         string                `json:"number"`
	ClientID       string                `json:"client_id,omitempty"`
	CompanyName    string                `json:"company_name"`
	Domain         string                `json:"domain,omitempty"`
	LogoColor      string                `json:"logo_color,omitempty"`
	Status         string                `json:"status"`
	Amount         decimal.Decimal       `json:"amount"`
	IssueDate      string                `json:"issue_date"`
	DueDate        string                `json:"due_date,omitempty"`
	DatePaid       string                `json:"date_paid,omitempty"`
	Items          []InvoiceItemResponse `json:"items,omitempty"`
	Totals         *TotalsResponse       `json:"totals,omitempty"` // solo cuando hay líneas
	Notes          string                `json:"notes,omitempty"`
	LastReminderAt string                `json:"last_reminder_at,omitempty"` // RFC 3339
}
