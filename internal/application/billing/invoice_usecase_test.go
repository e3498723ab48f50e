package billing_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pylondev/invoicing-api/internal/application/billing"
	"github.com/pylondev/invoicing-api/internal/application/dto"
	"github.com/pylondev/invoicing-api/internal/domain"
	"github.com/pylondev/invoicing-api/internal/domain/entity"
	"github.com/pylondev/invoicing-api/internal/infrastructure/memory"
	"github.com/pylondev/invoicing-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "production", Level: "error"})
}

// buildUseCase arma el caso de uso sobre repos en memoria con la semilla de
// demostración (facturas 1..6, clientes 1..5).
func buildUseCase(t *testing.T) (*billing.InvoiceUseCase, *memory.InvoiceRepo, *memory.ClientRepo) {
	t.Helper()
	invoiceRepo := memory.NewInvoiceRepository(memory.DemoInvoices())
	clientRepo := memory.NewClientRepository(memory.DemoClients())
	uc := billing.NewInvoiceUseCase(invoiceRepo, clientRepo, decimal.NewFromFloat(0.10), testLogger())
	return uc, invoiceRepo, clientRepo
}

func strPtr(s string) *string { return &s }

// ──────────────────────────────────────────────────────────────────────────────
// MarkAsPaid
// ──────────────────────────────────────────────────────────────────────────────

// Escenario de referencia: la factura "3" (Overdue, 2500.00) queda Paid con
// la fecha de pago estampada a hoy en formato "02 Jan, 2006".
func TestMarkAsPaid_FacturaVencidaQuedaPagada(t *testing.T) {
	uc, _, _ := buildUseCase(t)

	got, err := uc.MarkAsPaid("3")
	require.NoError(t, err)

	assert.Equal(t, entity.StatusPaid, got.Status)
	assert.Equal(t, time.Now().Format(entity.DateLayout), got.DatePaid,
		"la fecha de pago debe ser la fecha actual en formato DD Mon, YYYY")
	assert.Equal(t, "2500.00", got.Amount.StringFixed(2))
}

// Pagar dos veces es idempotente en el estado pero re-estampa la fecha:
// comportamiento heredado que se preserva a propósito.
func TestMarkAsPaid_ReestampaFechaEnCadaLlamada(t *testing.T) {
	uc, invoiceRepo, _ := buildUseCase(t)

	// La factura "1" ya está pagada con fecha 25 Oct, 2023 (semilla).
	before, err := invoiceRepo.GetByID("1")
	require.NoError(t, err)
	require.Equal(t, entity.StatusPaid, before.Status)
	require.Equal(t, "25 Oct, 2023", before.DatePaid.Format(entity.DateLayout))

	got, err := uc.MarkAsPaid("1")
	require.NoError(t, err)

	assert.Equal(t, entity.StatusPaid, got.Status, "el estado debe seguir siendo Paid")
	assert.Equal(t, time.Now().Format(entity.DateLayout), got.DatePaid,
		"la fecha debe re-estamparse aunque ya estuviera pagada")
}

// El primer pago actualiza los agregados del cliente vinculado en la misma
// llamada; un segundo pago no vuelve a sumar.
func TestMarkAsPaid_ActualizaAgregadosDelClienteUnaSolaVez(t *testing.T) {
	uc, _, clientRepo := buildUseCase(t)

	acmeBefore, err := clientRepo.GetByID("1")
	require.NoError(t, err)

	// "2" → Globex Inc.: sin cliente en el roster; "6" → Wonka: tampoco.
	// Usamos una factura nueva vinculada a Acme Corp (cliente "1").
	created, err := uc.Create(dto.CreateInvoiceRequest{
		ClientID: "1",
		Status:   entity.StatusUnpaid,
		Amount:   decimal.NewFromInt(300),
	})
	require.NoError(t, err)

	_, err = uc.MarkAsPaid(created.ID)
	require.NoError(t, err)
	_, err = uc.MarkAsPaid(created.ID) // segundo pago: solo re-estampa
	require.NoError(t, err)

	acmeAfter, err := clientRepo.GetByID("1")
	require.NoError(t, err)
	assert.Equal(t,
		acmeBefore.TotalBilled.Add(decimal.NewFromInt(300)).StringFixed(2),
		acmeAfter.TotalBilled.StringFixed(2),
		"TotalBilled debe subir exactamente una vez")
	assert.Equal(t, acmeBefore.ActiveInvoices, acmeAfter.ActiveInvoices,
		"ActiveInvoices sube al crear y baja al pagar: neto cero")
}

func TestMarkAsPaid_IdInexistenteRetornaNotFound(t *testing.T) {
	uc, _, _ := buildUseCase(t)
	_, err := uc.MarkAsPaid("no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

// Dos creaciones con entrada idéntica producen ids distintos (UUID) y números
// consecutivos distintos: la unicidad del número ahora está garantizada.
func TestCreate_DosVecesProduceIdsYNumerosDistintos(t *testing.T) {
	uc, _, _ := buildUseCase(t)
	in := dto.CreateInvoiceRequest{CompanyName: "Globex Inc.", Status: entity.StatusUnpaid, Amount: decimal.NewFromInt(100)}

	a, err := uc.Create(in)
	require.NoError(t, err)
	b, err := uc.Create(in)
	require.NoError(t, err)

	assert.NotEqual(t, a.ID, b.ID, "los ids deben ser únicos")
	assert.NotEqual(t, a.Number, b.Number, "los números consecutivos no pueden colisionar")
	assert.Equal(t, "#INV-1007", a.Number)
	assert.Equal(t, "#INV-1008", b.Number)
}

// Con líneas presentes, el monto se calcula de las líneas (subtotal + 10%):
// el invariante monto == total de líneas queda garantizado al crear.
func TestCreate_ConLineasCalculaElMonto(t *testing.T) {
	uc, _, _ := buildUseCase(t)

	got, err := uc.Create(dto.CreateInvoiceRequest{
		CompanyName: "Acme Corp",
		Status:      entity.StatusDraft,
		Amount:      decimal.NewFromInt(999999), // divergente: debe descartarse
		Items: []dto.InvoiceItemRequest{
			{Description: "Desarrollo", Quantity: decimal.NewFromInt(10), Unit: "hrs", Rate: decimal.NewFromInt(100)},
			{Description: "Hosting", Quantity: decimal.NewFromInt(1), Unit: "item", Rate: decimal.NewFromInt(150)},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "1265.00", got.Amount.StringFixed(2))
	require.NotNil(t, got.Totals)
	assert.Equal(t, "1150.00", got.Totals.Subtotal.StringFixed(2))
	assert.Equal(t, "115.00", got.Totals.Tax.StringFixed(2))
}

func TestCreate_MontoNegativoRechazado(t *testing.T) {
	uc, _, _ := buildUseCase(t)
	_, err := uc.Create(dto.CreateInvoiceRequest{
		CompanyName: "Acme Corp",
		Amount:      decimal.NewFromInt(-50),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreate_ClienteInexistenteRetornaNotFound(t *testing.T) {
	uc, _, _ := buildUseCase(t)
	_, err := uc.Create(dto.CreateInvoiceRequest{
		ClientID: "no-existe",
		Amount:   decimal.NewFromInt(10),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Send / SendReminder
// ──────────────────────────────────────────────────────────────────────────────

func TestSend_SoloBorradores(t *testing.T) {
	uc, _, _ := buildUseCase(t)

	// "4" es Draft en la semilla.
	got, err := uc.Send("4")
	require.NoError(t, err)
	assert.Equal(t, entity.StatusUnpaid, got.Status)

	// Re-enviar una factura ya enviada es un conflicto.
	_, err = uc.Send("4")
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestSendReminder_SoloFacturasCobrables(t *testing.T) {
	uc, _, _ := buildUseCase(t)

	// "2" es Unpaid (y además vencida): se puede recordar.
	got, err := uc.SendReminder("2")
	require.NoError(t, err)
	assert.NotEmpty(t, got.LastReminderAt)

	// "1" está pagada: conflicto.
	_, err = uc.SendReminder("1")
	assert.ErrorIs(t, err, domain.ErrConflict)
}

// ──────────────────────────────────────────────────────────────────────────────
// Update / Delete / List
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdate_IdInexistenteRetornaNotFound(t *testing.T) {
	uc, _, _ := buildUseCase(t)
	_, err := uc.Update("no-existe", dto.UpdateInvoiceRequest{Notes: strPtr("x")})
	assert.ErrorIs(t, err, domain.ErrNotFound,
		"editar un id inexistente debe fallar explícitamente, no en silencio")
}

func TestDelete_LuegoGetRetornaNotFound(t *testing.T) {
	uc, _, _ := buildUseCase(t)

	before, err := uc.List("")
	require.NoError(t, err)

	require.NoError(t, uc.Delete("5"))

	_, err = uc.Get("5")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	after, err := uc.List("")
	require.NoError(t, err)
	assert.Len(t, after, len(before)-1, "la colección debe reducirse exactamente en uno")

	// Borrado repetido: NotFound, colección intacta.
	assert.ErrorIs(t, uc.Delete("5"), domain.ErrNotFound)
}

// El filtro por estado usa el estado efectivo: las Unpaid con vencimiento en
// 2023 se reportan Overdue aunque su estado almacenado no haya cambiado.
func TestList_FiltroPorEstadoEfectivo(t *testing.T) {
	uc, _, _ := buildUseCase(t)

	overdue, err := uc.List(entity.StatusOverdue)
	require.NoError(t, err)
	// "3" (Overdue almacenada) + "2" y "6" (Unpaid vencidas).
	assert.Len(t, overdue, 3)
	for _, inv := range overdue {
		assert.Equal(t, entity.StatusOverdue, inv.Status)
	}

	unpaid, err := uc.List(entity.StatusUnpaid)
	require.NoError(t, err)
	assert.Empty(t, unpaid, "todas las Unpaid de la semilla ya vencieron")

	all, err := uc.List("All")
	require.NoError(t, err)
	assert.Len(t, all, 6)
}
