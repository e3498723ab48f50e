// Package billing contiene la aritmética pura de facturación: subtotal,
// impuesto y total a partir de las líneas de una factura. No depende de
// repositorios ni de la capa HTTP, por lo que se testea de forma aislada.
package billing

import (
	"github.com/shopspring/decimal"

	"github.com/pylondev/invoicing-api/internal/domain/entity"
)

// DefaultTaxRate tasa de impuesto por defecto (10%). Configurable vía
// BILLING_TAX_RATE; el valor siempre se expresa como fracción, no porcentaje.
var DefaultTaxRate = decimal.New(1, -1) // 0.1

// Totals resultado del cálculo sobre las líneas.
// Los tres montos vienen redondeados a 2 decimales (centavos).
type Totals struct {
	Subtotal decimal.Decimal
	Tax      decimal.Decimal
	Total    decimal.Decimal
}

// Calculate computa subtotal = Σ(cantidad × tarifa), impuesto = subtotal × rate
// y total = subtotal + impuesto. Con cero líneas todos los montos son 0.00.
func Calculate(items []entity.InvoiceItem, rate decimal.Decimal) Totals {
	subtotal := decimal.Zero
	for _, it := range items {
		subtotal = subtotal.Add(it.Subtotal())
	}
	subtotal = subtotal.Round(2)
	tax := subtotal.Mul(rate).Round(2)
	return Totals{
		Subtotal: subtotal,
		Tax:      tax,
		Total:    subtotal.Add(tax),
	}
}

// NormalizeRate acepta tasas expresadas como porcentaje (10) o fracción (0.10)
// y devuelve siempre la fracción. Tasas negativas se tratan como cero.
func NormalizeRate(rate decimal.Decimal) decimal.Decimal {
	if rate.IsNegative() {
		return decimal.Zero
	}
	if rate.GreaterThan(decimal.NewFromInt(1)) {
		return rate.Div(decimal.NewFromInt(100))
	}
	return rate
}
