package memory_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pylondev/invoicing-api/internal/domain"
	"github.com/pylondev/invoicing-api/internal/domain/entity"
	"github.com/pylondev/invoicing-api/internal/infrastructure/memory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Consecutivo de números de factura
// ──────────────────────────────────────────────────────────────────────────────

// El consecutivo arranca por encima del número más alto de la semilla y es
// estrictamente monotónico: nunca puede colisionar con un número existente.
func TestNextNumber_MonotonicoSobreLaSemilla(t *testing.T) {
	repo := memory.NewInvoiceRepository(memory.DemoInvoices())

	assert.Equal(t, "#INV-1007", repo.NextNumber())
	assert.Equal(t, "#INV-1008", repo.NextNumber())
}

func TestNextNumber_SinSemillaArrancaEn1001(t *testing.T) {
	repo := memory.NewInvoiceRepository(nil)
	assert.Equal(t, "#INV-1001", repo.NextNumber())
}

// ──────────────────────────────────────────────────────────────────────────────
// CRUD
// ──────────────────────────────────────────────────────────────────────────────

// Delete seguido de GetByID devuelve "no encontrado" y la colección se
// reduce exactamente en uno; borrar un id inexistente no altera nada.
func TestDelete_LuegoGetByIDNoEncuentra(t *testing.T) {
	repo := memory.NewInvoiceRepository(memory.DemoInvoices())
	before, err := repo.List()
	require.NoError(t, err)

	require.NoError(t, repo.Delete("3"))

	got, err := repo.GetByID("3")
	require.NoError(t, err)
	assert.Nil(t, got, "la factura borrada no debe encontrarse")

	after, err := repo.List()
	require.NoError(t, err)
	assert.Len(t, after, len(before)-1)

	// Id inexistente: error explícito, colección intacta.
	assert.ErrorIs(t, repo.Delete("3"), domain.ErrNotFound)
	again, _ := repo.List()
	assert.Len(t, again, len(after))
}

func TestUpdate_IdInexistenteRetornaNotFound(t *testing.T) {
	repo := memory.NewInvoiceRepository(nil)
	err := repo.Update(&entity.Invoice{ID: "nope", Status: entity.StatusDraft})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// List preserva el orden de inserción.
func TestList_OrdenDeInsercion(t *testing.T) {
	repo := memory.NewInvoiceRepository(nil)
	for _, id := range []string{"a", "b", "c"} {
		require.NoError(t, repo.Create(&entity.Invoice{ID: id, Status: entity.StatusDraft, Amount: decimal.Zero}))
	}

	list, err := repo.List()
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "a", list[0].ID)
	assert.Equal(t, "b", list[1].ID)
	assert.Equal(t, "c", list[2].ID)
}

// El repositorio entrega copias: mutar el resultado de GetByID no debe
// afectar el estado interno.
func TestGetByID_DevuelveCopia(t *testing.T) {
	repo := memory.NewInvoiceRepository(memory.DemoInvoices())

	inv, err := repo.GetByID("2")
	require.NoError(t, err)
	inv.Status = entity.StatusPaid
	inv.Items = append(inv.Items, entity.InvoiceItem{Description: "x"})

	fresh, err := repo.GetByID("2")
	require.NoError(t, err)
	assert.Equal(t, entity.StatusUnpaid, fresh.Status)
	assert.Empty(t, fresh.Items)
}
