package dto

import "github.com/shopspring/decimal"

// CreateClientRequest body para POST /api/clients. El id lo genera el store.
type CreateClientRequest struct {
	CompanyName string `json:"company_name"`
	ContactName string `json:"contact_name,omitempty"`
	Email       string `json:"email,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Domain      string `json:"domain,omitempty"`
	LogoColor   string `json:"logo_color,omitempty"`
}

// UpdateClientRequest body para PUT /api/clients/:id. Campos nil no se tocan.
type UpdateClientRequest struct {
	CompanyName *string `json:"company_name,omitempty"`
	ContactName *string `json:"contact_name,omitempty"`
	Email       *string `json:"email,omitempty"`
	Phone       *string `json:"phone,omitempty"`
	Domain      *string `json:"domain,omitempty"`
	LogoColor   *string `json:"logo_color,omitempty"`
}

// ClientResponse cliente en respuestas, con sus agregados de facturación.
type ClientResponse struct {
	ID             string          `json:"id"`
	CompanyName    string          `json:"company_name"`
	ContactName    string          `json:"contact_name,omitempty"`
	Email          string          `json:"email,omitempty"`
	Phone          string          `json:"phone,omitempty"`
	Domain         string          `json:"domain,omitempty"`
	LogoColor      string          `json:"logo_color,omitempty"`
	TotalBilled    decimal.Decimal `json:"total_billed"`
	ActiveInvoices int             `json:"active_invoices"`
}
