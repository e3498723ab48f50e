package billing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pylondev/invoicing-api/internal/domain/billing"
	"github.com/pylondev/invoicing-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

func item(qty, rate string) entity.InvoiceItem {
	return entity.InvoiceItem{
		Description: "servicio",
		Quantity:    decimal.RequireFromString(qty),
		Unit:        "hrs",
		Rate:        decimal.RequireFromString(rate),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Calculate
// ──────────────────────────────────────────────────────────────────────────────

// Vector de referencia: 10×100 + 1×150 → subtotal 1150.00, IVA 115.00, total 1265.00.
func TestCalculate_VectorReferencia(t *testing.T) {
	items := []entity.InvoiceItem{item("10", "100"), item("1", "150")}

	got := billing.Calculate(items, billing.DefaultTaxRate)

	assert.Equal(t, "1150.00", got.Subtotal.StringFixed(2), "subtotal debe ser Σ(cantidad × tarifa)")
	assert.Equal(t, "115.00", got.Tax.StringFixed(2), "impuesto debe ser 10% del subtotal")
	assert.Equal(t, "1265.00", got.Total.StringFixed(2), "total = subtotal + impuesto")
}

// Sin líneas todos los montos deben ser cero, nunca NaN ni negativos.
func TestCalculate_SinLineas(t *testing.T) {
	got := billing.Calculate(nil, billing.DefaultTaxRate)

	assert.True(t, got.Subtotal.IsZero())
	assert.True(t, got.Tax.IsZero())
	assert.True(t, got.Total.IsZero())
}

// Cantidades fraccionarias no deben producir deriva de centavos:
// 2.5 hrs × 99.99 = 249.975 → subtotal 249.98, impuesto 25.00, total 274.98.
func TestCalculate_RedondeoACentavos(t *testing.T) {
	got := billing.Calculate([]entity.InvoiceItem{item("2.5", "99.99")}, billing.DefaultTaxRate)

	assert.Equal(t, "249.98", got.Subtotal.StringFixed(2))
	assert.Equal(t, "25.00", got.Tax.StringFixed(2))
	assert.Equal(t, "274.98", got.Total.StringFixed(2))
}

// La identidad total = subtotal + impuesto se mantiene para cualquier tasa.
func TestCalculate_IdentidadConOtraTasa(t *testing.T) {
	items := []entity.InvoiceItem{item("3", "40"), item("7", "12.50")}
	rate := decimal.RequireFromString("0.19")

	got := billing.Calculate(items, rate)

	require.Equal(t, "207.50", got.Subtotal.StringFixed(2))
	assert.True(t, got.Total.Equal(got.Subtotal.Add(got.Tax)))
}

// ──────────────────────────────────────────────────────────────────────────────
// NormalizeRate
// ──────────────────────────────────────────────────────────────────────────────

func TestNormalizeRate(t *testing.T) {
	// Porcentaje (10) y fracción (0.10) deben normalizar al mismo valor.
	pct := billing.NormalizeRate(decimal.NewFromInt(10))
	frac := billing.NormalizeRate(decimal.RequireFromString("0.10"))
	assert.True(t, pct.Equal(frac), "10 y 0.10 representan la misma tasa")

	// Tasa negativa se trata como cero.
	assert.True(t, billing.NormalizeRate(decimal.NewFromInt(-5)).IsZero())
}
