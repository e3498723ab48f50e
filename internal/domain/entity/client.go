package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Client representa un cliente del freelancer.
// TotalBilled y ActiveInvoices son agregados mantenidos por los casos de uso
// de facturación (pago, creación y borrado de facturas), nunca por el caller.
type Client struct {
	ID             string
	CompanyName    string
	ContactName    string
	Email          string
	Phone          string
	Domain         string
	LogoColor      string
	TotalBilled    decimal.Decimal
	ActiveInvoices int
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Clone copia el cliente para aislar el estado interno del repositorio.
func (c *Client) Clone() *Client {
	cp := *c
	return &cp
}
