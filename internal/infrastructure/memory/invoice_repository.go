// Package memory implementa los repositorios del dominio sobre colecciones
// en memoria protegidas con RWMutex. Es el único backend del producto: el
// estado vive lo que vive el proceso (la persistencia está fuera de alcance).
package memory

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/pylondev/invoicing-api/internal/domain"
	"github.com/pylondev/invoicing-api/internal/domain/entity"
	"github.com/pylondev/invoicing-api/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// invoiceNumberPrefix prefijo del consecutivo legible.
const invoiceNumberPrefix = "#INV-"

// InvoiceRepo repositorio de facturas en memoria. Mantiene el orden de
// inserción y un consecutivo monotónico para los números de factura.
type InvoiceRepo struct {
	mu      sync.RWMutex
	byID    map[string]*entity.Invoice
	order   []string
	lastSeq int
}

// NewInvoiceRepository construye el repositorio con el estado inicial dado
// (puede ser vacío). El consecutivo arranca por encima del número más alto
// presente en la semilla, de forma que los nuevos números nunca colisionan.
func NewInvoiceRepository(seed []*entity.Invoice) *InvoiceRepo {
	r := &InvoiceRepo{
		byID:    make(map[string]*entity.Invoice, len(seed)),
		lastSeq: 1000,
	}
	for _, inv := range seed {
		r.byID[inv.ID] = inv.Clone()
		r.order = append(r.order, inv.ID)
		if n, ok := parseInvoiceNumber(inv.Number); ok && n > r.lastSeq {
			r.lastSeq = n
		}
	}
	return r
}

// parseInvoiceNumber extrae el consecutivo de un número "#INV-1006".
func parseInvoiceNumber(number string) (int, bool) {
	raw, found := strings.CutPrefix(number, invoiceNumberPrefix)
	if !found {
		return 0, false
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return n, true
}

// NextNumber reserva el siguiente consecutivo (#INV-1007, #INV-1008, ...).
func (r *InvoiceRepo) NextNumber() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lastSeq++
	return fmt.Sprintf("%s%d", invoiceNumberPrefix, r.lastSeq)
}

// Create agrega la factura a la colección.
func (r *InvoiceRepo) Create(invoice *entity.Invoice) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.byID[invoice.ID]; exists {
		return domain.ErrDuplicate
	}
	r.byID[invoice.ID] = invoice.Clone()
	r.order = append(r.order, invoice.ID)
	return nil
}

// GetByID devuelve la factura o (nil, nil) si no existe.
func (r *InvoiceRepo) GetByID(id string) (*entity.Invoice, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	inv, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	return inv.Clone(), nil
}

// List devuelve todas las facturas en orden de inserción.
func (r *InvoiceRepo) List() ([]*entity.Invoice, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.Invoice, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id].Clone())
	}
	return out, nil
}

// Update reemplaza la factura completa. ErrNotFound si el id no existe.
func (r *InvoiceRepo) Update(invoice *entity.Invoice) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[invoice.ID]; !ok {
		return domain.ErrNotFound
	}
	r.byID[invoice.ID] = invoice.Clone()
	return nil
}

// Delete elimina la factura. ErrNotFound si el id no existe.
func (r *InvoiceRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.byID, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}
