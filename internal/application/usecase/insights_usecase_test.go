package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pylondev/invoicing-api/internal/application/usecase"
	"github.com/pylondev/invoicing-api/internal/infrastructure/memory"
)

// La semilla clasifica por estado efectivo: "1" y "5" pagadas; "4" borrador;
// "3" vencida (almacenada) más "2" y "6" Unpaid con vencimiento en 2023,
// también vencidas al leerse hoy.
func TestSummary_AgregadosDeLaSemilla(t *testing.T) {
	uc := usecase.NewInsightsUseCase(memory.NewInvoiceRepository(memory.DemoInvoices()))

	got, err := uc.Summary()
	require.NoError(t, err)

	assert.Equal(t, "4600.00", got.PaidTotal.StringFixed(2), "1200 + 3400 pagadas")
	assert.Equal(t, "5100.00", got.Outstanding.StringFixed(2), "2500 + 850 + 1750 por cobrar")
	assert.Equal(t, "5100.00", got.OverdueTotal.StringFixed(2), "todo lo pendiente ya venció")

	assert.Equal(t, 2, got.Counts.Paid)
	assert.Equal(t, 1, got.Counts.Draft)
	assert.Equal(t, 0, got.Counts.Unpaid)
	assert.Equal(t, 3, got.Counts.Overdue)
}

func TestSummary_StoreVacio(t *testing.T) {
	uc := usecase.NewInsightsUseCase(memory.NewInvoiceRepository(nil))

	got, err := uc.Summary()
	require.NoError(t, err)

	assert.True(t, got.Outstanding.IsZero())
	assert.True(t, got.PaidTotal.IsZero())
	assert.Zero(t, got.Counts.Paid+got.Counts.Unpaid+got.Counts.Draft+got.Counts.Overdue)
}
