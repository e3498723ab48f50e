package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados del ciclo de vida de una factura.
const (
	StatusDraft   = "Draft"   // Borrador, aún no enviada al cliente
	StatusUnpaid  = "Unpaid"  // Enviada, pendiente de pago
	StatusPaid    = "Paid"    // Pagada (con DatePaid estampada)
	StatusOverdue = "Overdue" // Vencida; normalmente derivado de DueDate, ver EffectiveStatus
)

// DateLayout formato de fecha de cara al usuario ("24 Oct, 2023").
const DateLayout = "02 Jan, 2006"

// ValidStatus indica si s es uno de los estados conocidos.
func ValidStatus(s string) bool {
	switch s {
	case StatusDraft, StatusUnpaid, StatusPaid, StatusOverdue:
		return true
	}
	return false
}

// Invoice representa la cabecera de una factura junto con sus líneas.
// Amount siempre coincide con el total calculado cuando hay líneas.
type Invoice struct {
	ID             string
	Number         string // Consecutivo legible: #INV-1001
	ClientID       string
	CompanyName    string // Denormalizado del cliente para listados
	Domain         string
	LogoColor      string
	Status         string
	Amount         decimal.Decimal
	IssueDate      time.Time
	DueDate        time.Time
	DatePaid       *time.Time // Solo cuando Status == Paid; se re-estampa en cada pago
	Items          []InvoiceItem
	Notes          string
	LastReminderAt *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// EffectiveStatus devuelve el estado observable en el instante now:
// una factura Unpaid con DueDate vencida se reporta como Overdue.
// El estado almacenado no se reescribe; no hay scheduler que lo recalcule.
func (i *Invoice) EffectiveStatus(now time.Time) string {
	if i.Status == StatusUnpaid && !i.DueDate.IsZero() && now.After(i.DueDate) {
		return StatusOverdue
	}
	return i.Status
}

// IsActive indica si la factura cuenta como activa para el cliente
// (cualquier estado distinto de Paid).
func (i *Invoice) IsActive() bool {
	return i.Status != StatusPaid
}

// Clone copia profunda (líneas incluidas) para que los repositorios
// en memoria no compartan referencias con el caller.
func (i *Invoice) Clone() *Invoice {
	cp := *i
	if i.DatePaid != nil {
		d := *i.DatePaid
		cp.DatePaid = &d
	}
	if i.LastReminderAt != nil {
		r := *i.LastReminderAt
		cp.LastReminderAt = &r
	}
	if len(i.Items) > 0 {
		cp.Items = make([]InvoiceItem, len(i.Items))
		copy(cp.Items, i.Items)
	}
	return &cp
}
