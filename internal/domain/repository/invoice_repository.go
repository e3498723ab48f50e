package repository

import "github.com/pylondev/invoicing-api/internal/domain/entity"

// InvoiceRepository define el puerto de almacenamiento para facturas.
// GetByID devuelve (nil, nil) si la factura no existe; Update y Delete
// retornan domain.ErrNotFound en ese caso (nunca fallan en silencio).
type InvoiceRepository interface {
	Create(invoice *entity.Invoice) error
	GetByID(id string) (*entity.Invoice, error)
	// List devuelve las facturas en orden de inserción.
	List() ([]*entity.Invoice, error)
	Update(invoice *entity.Invoice) error
	Delete(id string) error
	// NextNumber reserva y devuelve el siguiente consecutivo legible (#INV-NNNN).
	NextNumber() string
}
