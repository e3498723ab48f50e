// Package billing contiene los casos de uso de facturación: ciclo de vida de
// la factura, clientes y generación de PDF.
package billing

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pylondev/invoicing-api/internal/application/dto"
	"github.com/pylondev/invoicing-api/internal/domain"
	domainbilling "github.com/pylondev/invoicing-api/internal/domain/billing"
	"github.com/pylondev/invoicing-api/internal/domain/entity"
	"github.com/pylondev/invoicing-api/internal/domain/repository"
	"github.com/pylondev/invoicing-api/pkg/logger"
)

// dueDateOffset plazo de pago por defecto desde la emisión.
const dueDateOffset = 14 * 24 * time.Hour

// InvoiceUseCase casos de uso del ciclo de vida de la factura.
// Las transiciones que afectan agregados del cliente (pago, creación,
// borrado) se orquestan aquí en una sola llamada, no quedan como invariante
// implícita entre stores.
type InvoiceUseCase struct {
	invoiceRepo repository.InvoiceRepository
	clientRepo  repository.ClientRepository
	taxRate     decimal.Decimal
	log         *logger.Logger
}

// NewInvoiceUseCase construye el caso de uso. rate puede venir como
// porcentaje (10) o fracción (0.10).
func NewInvoiceUseCase(
	invoiceRepo repository.InvoiceRepository,
	clientRepo repository.ClientRepository,
	rate decimal.Decimal,
	log *logger.Logger,
) *InvoiceUseCase {
	return &InvoiceUseCase{
		invoiceRepo: invoiceRepo,
		clientRepo:  clientRepo,
		taxRate:     domainbilling.NormalizeRate(rate),
		log:         log,
	}
}

// Create crea una factura nueva. El id (UUID) y el número consecutivo los
// genera el store. Si la petición trae líneas, Amount se calcula de ellas
// (subtotal + impuesto); un Amount divergente del caller se descarta.
func (uc *InvoiceUseCase) Create(in dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error) {
	status := in.Status
	if status == "" {
		status = entity.StatusDraft
	}
	if !entity.ValidStatus(status) {
		return nil, fmt.Errorf("%w: estado desconocido %q", domain.ErrInvalidInput, in.Status)
	}
	if in.Amount.IsNegative() {
		return nil, fmt.Errorf("%w: el monto no puede ser negativo", domain.ErrInvalidInput)
	}
	if in.ClientID == "" && in.CompanyName == "" {
		return nil, fmt.Errorf("%w: se requiere client_id o company_name", domain.ErrInvalidInput)
	}

	now := time.Now()
	issueDate := now
	if in.IssueDate != "" {
		var err error
		issueDate, err = parseDate(in.IssueDate)
		if err != nil {
			return nil, err
		}
	}
	dueDate := issueDate.Add(dueDateOffset)
	if in.DueDate != "" {
		var err error
		dueDate, err = parseDate(in.DueDate)
		if err != nil {
			return nil, err
		}
	}

	inv := &entity.Invoice{
		ID:          uuid.New().String(),
		Number:      uc.invoiceRepo.NextNumber(),
		CompanyName: in.CompanyName,
		Status:      status,
		Amount:      in.Amount.Round(2),
		IssueDate:   issueDate,
		DueDate:     dueDate,
		Notes:       in.Notes,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	// Vincular cliente: por id explícito, o por nombre si ya existe en el roster.
	client, err := uc.resolveClient(in.ClientID, in.CompanyName)
	if err != nil {
		return nil, err
	}
	if in.ClientID != "" && client == nil {
		return nil, fmt.Errorf("%w: cliente %s", domain.ErrNotFound, in.ClientID)
	}
	if client != nil {
		inv.ClientID = client.ID
		inv.CompanyName = client.CompanyName
		inv.Domain = client.Domain
		inv.LogoColor = client.LogoColor
	}

	if len(in.Items) > 0 {
		inv.Items, err = itemsFromRequest(in.Items)
		if err != nil {
			return nil, err
		}
		inv.Amount = domainbilling.Calculate(inv.Items, uc.taxRate).Total
	}

	if err := uc.invoiceRepo.Create(inv); err != nil {
		return nil, fmt.Errorf("crear factura: %w", err)
	}

	if client != nil && inv.IsActive() {
		client.ActiveInvoices++
		client.UpdatedAt = now
		if err := uc.clientRepo.Update(client); err != nil {
			return nil, fmt.Errorf("actualizar agregados del cliente: %w", err)
		}
	}

	uc.log.Info().Str("invoice_id", inv.ID).Str("number", inv.Number).Msg("factura creada")
	return uc.toResponse(inv, now), nil
}

// Get obtiene una factura por id.
func (uc *InvoiceUseCase) Get(id string) (*dto.InvoiceResponse, error) {
	inv, err := uc.invoiceRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	return uc.toResponse(inv, time.Now()), nil
}

// List lista facturas, opcionalmente filtradas por categoría de estado.
// El filtro compara contra el estado efectivo: "Overdue" incluye las Unpaid
// vencidas aunque su estado almacenado no haya cambiado.
func (uc *InvoiceUseCase) List(status string) ([]*dto.InvoiceResponse, error) {
	list, err := uc.invoiceRepo.List()
	if err != nil {
		return nil, err
	}
	now := time.Now()
	out := make([]*dto.InvoiceResponse, 0, len(list))
	for _, inv := range list {
		if status != "" && status != "All" && inv.EffectiveStatus(now) != status {
			continue
		}
		out = append(out, uc.toResponse(inv, now))
	}
	return out, nil
}

// Update aplica una edición parcial. Id inexistente retorna ErrNotFound en
// vez de fallar en silencio. Si la edición trae líneas, Amount se recalcula.
func (uc *InvoiceUseCase) Update(id string, in dto.UpdateInvoiceRequest) (*dto.InvoiceResponse, error) {
	inv, err := uc.invoiceRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}

	if in.Status != nil {
		if !entity.ValidStatus(*in.Status) {
			return nil, fmt.Errorf("%w: estado desconocido %q", domain.ErrInvalidInput, *in.Status)
		}
		inv.Status = *in.Status
	}
	if in.CompanyName != nil {
		if *in.CompanyName == "" {
			return nil, fmt.Errorf("%w: company_name no puede quedar vacío", domain.ErrInvalidInput)
		}
		inv.CompanyName = *in.CompanyName
	}
	if in.Amount != nil {
		if in.Amount.IsNegative() {
			return nil, fmt.Errorf("%w: el monto no puede ser negativo", domain.ErrInvalidInput)
		}
		inv.Amount = in.Amount.Round(2)
	}
	if in.IssueDate != nil {
		d, err := parseDate(*in.IssueDate)
		if err != nil {
			return nil, err
		}
		inv.IssueDate = d
	}
	if in.DueDate != nil {
		d, err := parseDate(*in.DueDate)
		if err != nil {
			return nil, err
		}
		inv.DueDate = d
	}
	if in.Notes != nil {
		inv.Notes = *in.Notes
	}
	if len(in.Items) > 0 {
		inv.Items, err = itemsFromRequest(in.Items)
		if err != nil {
			return nil, err
		}
		inv.Amount = domainbilling.Calculate(inv.Items, uc.taxRate).Total
	}

	now := time.Now()
	inv.UpdatedAt = now
	if err := uc.invoiceRepo.Update(inv); err != nil {
		return nil, err
	}
	return uc.toResponse(inv, now), nil
}

// Send transición Draft → Unpaid (la factura sale al cliente).
func (uc *InvoiceUseCase) Send(id string) (*dto.InvoiceResponse, error) {
	inv, err := uc.invoiceRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	if inv.Status != entity.StatusDraft {
		return nil, fmt.Errorf("%w: solo un borrador puede enviarse (estado actual %s)", domain.ErrConflict, inv.Status)
	}

	now := time.Now()
	inv.Status = entity.StatusUnpaid
	inv.UpdatedAt = now
	if err := uc.invoiceRepo.Update(inv); err != nil {
		return nil, err
	}
	uc.log.Info().Str("invoice_id", inv.ID).Str("number", inv.Number).Msg("factura enviada")
	return uc.toResponse(inv, now), nil
}

// MarkAsPaid marca la factura como pagada y estampa DatePaid con la fecha
// actual. Sobre una factura ya pagada el estado es idempotente pero la fecha
// se re-estampa en cada llamada (comportamiento heredado, cubierto por test).
// El primer pago actualiza los agregados del cliente vinculado en la misma
// llamada: TotalBilled sube por el monto y ActiveInvoices baja en uno.
func (uc *InvoiceUseCase) MarkAsPaid(id string) (*dto.InvoiceResponse, error) {
	inv, err := uc.invoiceRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	firstPayment := inv.Status != entity.StatusPaid
	inv.Status = entity.StatusPaid
	inv.DatePaid = &now
	inv.UpdatedAt = now
	if err := uc.invoiceRepo.Update(inv); err != nil {
		return nil, err
	}

	if firstPayment {
		client, err := uc.resolveClient(inv.ClientID, inv.CompanyName)
		if err != nil {
			return nil, err
		}
		if client != nil {
			client.TotalBilled = client.TotalBilled.Add(inv.Amount)
			if client.ActiveInvoices > 0 {
				client.ActiveInvoices--
			}
			client.UpdatedAt = now
			if err := uc.clientRepo.Update(client); err != nil {
				return nil, fmt.Errorf("actualizar agregados del cliente: %w", err)
			}
		}
	}

	uc.log.Info().Str("invoice_id", inv.ID).Str("number", inv.Number).Msg("factura pagada")
	return uc.toResponse(inv, now), nil
}

// SendReminder registra un recordatorio de pago. Solo aplica a facturas
// cobrables (Unpaid u Overdue efectiva); recordar un borrador o una factura
// pagada es un conflicto.
func (uc *InvoiceUseCase) SendReminder(id string) (*dto.InvoiceResponse, error) {
	inv, err := uc.invoiceRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	switch inv.EffectiveStatus(now) {
	case entity.StatusUnpaid, entity.StatusOverdue:
	default:
		return nil, fmt.Errorf("%w: no se puede recordar una factura %s", domain.ErrConflict, inv.EffectiveStatus(now))
	}

	inv.LastReminderAt = &now
	inv.UpdatedAt = now
	if err := uc.invoiceRepo.Update(inv); err != nil {
		return nil, err
	}
	uc.log.Info().Str("invoice_id", inv.ID).Str("number", inv.Number).Msg("recordatorio de pago enviado")
	return uc.toResponse(inv, now), nil
}

// Delete elimina la factura. Si estaba activa y vinculada a un cliente,
// el contador ActiveInvoices del cliente baja en uno.
func (uc *InvoiceUseCase) Delete(id string) error {
	inv, err := uc.invoiceRepo.GetByID(id)
	if err != nil {
		return err
	}
	if inv == nil {
		return domain.ErrNotFound
	}
	if err := uc.invoiceRepo.Delete(id); err != nil {
		return err
	}

	if inv.IsActive() {
		client, err := uc.resolveClient(inv.ClientID, inv.CompanyName)
		if err != nil {
			return err
		}
		if client != nil && client.ActiveInvoices > 0 {
			client.ActiveInvoices--
			client.UpdatedAt = time.Now()
			if err := uc.clientRepo.Update(client); err != nil {
				return fmt.Errorf("actualizar agregados del cliente: %w", err)
			}
		}
	}
	return nil
}

// resolveClient localiza el cliente vinculado: primero por id, luego por
// nombre de empresa (las facturas antiguas solo guardan el nombre).
// Devuelve (nil, nil) si no hay vínculo.
func (uc *InvoiceUseCase) resolveClient(clientID, companyName string) (*entity.Client, error) {
	if clientID != "" {
		return uc.clientRepo.GetByID(clientID)
	}
	if companyName != "" {
		return uc.clientRepo.GetByCompanyName(companyName)
	}
	return nil, nil
}

func parseDate(s string) (time.Time, error) {
	t, err := time.Parse(entity.DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: fecha %q, se espera el formato %q", domain.ErrInvalidInput, s, entity.DateLayout)
	}
	return t, nil
}

func itemsFromRequest(in []dto.InvoiceItemRequest) ([]entity.InvoiceItem, error) {
	items := make([]entity.InvoiceItem, 0, len(in))
	for _, it := range in {
		if it.Description == "" {
			return nil, fmt.Errorf("%w: cada línea requiere descripción", domain.ErrInvalidInput)
		}
		if it.Quantity.IsNegative() || it.Rate.IsNegative() {
			return nil, fmt.Errorf("%w: cantidad y tarifa no pueden ser negativas", domain.ErrInvalidInput)
		}
		items = append(items, entity.InvoiceItem{
			Description: it.Description,
			Quantity:    it.Quantity,
			Unit:        it.Unit,
			Rate:        it.Rate,
		})
	}
	return items, nil
}

func (uc *InvoiceUseCase) toResponse(inv *entity.Invoice, now time.Time) *dto.InvoiceResponse {
	resp := &dto.InvoiceResponse{
		ID:          inv.ID,
		Number:      inv.Number,
		ClientID:    inv.ClientID,
		CompanyName: inv.CompanyName,
		Domain:      inv.Domain,
		LogoColor:   inv.LogoColor,
		Status:      inv.EffectiveStatus(now),
		Amount:      inv.Amount,
		IssueDate:   inv.IssueDate.Format(entity.DateLayout),
		Notes:       inv.Notes,
	}
	if !inv.DueDate.IsZero() {
		resp.DueDate = inv.DueDate.Format(entity.DateLayout)
	}
	if inv.DatePaid != nil {
		resp.DatePaid = inv.DatePaid.Format(entity.DateLayout)
	}
	if inv.LastReminderAt != nil {
		resp.LastReminderAt = inv.LastReminderAt.Format(time.RFC3339)
	}
	if len(inv.Items) > 0 {
		resp.Items = make([]dto.InvoiceItemResponse, 0, len(inv.Items))
		for _, it := range inv.Items {
			resp.Items = append(resp.Items, dto.InvoiceItemResponse{
				Description: it.Description,
				Quantity:    it.Quantity,
				Unit:        it.Unit,
				Rate:        it.Rate,
				Subtotal:    it.Subtotal().Round(2),
			})
		}
		t := domainbilling.Calculate(inv.Items, uc.taxRate)
		resp.Totals = &dto.TotalsResponse{Subtotal: t.Subtotal, Tax: t.Tax, Total: t.Total}
	}
	return resp
}
