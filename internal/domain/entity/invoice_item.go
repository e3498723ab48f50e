package entity

import "github.com/shopspring/decimal"

// InvoiceItem representa una línea de una factura (cantidad × tarifa).
type InvoiceItem struct {
	Description string
	Quantity    decimal.Decimal
	Unit        string // Etiqueta de unidad: "hrs", "item", "day"
	Rate        decimal.Decimal
}

// Subtotal de la línea (Quantity × Rate).
func (it InvoiceItem) Subtotal() decimal.Decimal {
	return it.Quantity.Mul(it.Rate)
}
