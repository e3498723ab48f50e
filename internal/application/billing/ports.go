package billing

import (
	"context"

	"github.com/pylondev/invoicing-api/internal/domain/entity"
)

// InvoicePDFGenerator puerto para renderizar la representación gráfica de una
// factura. client puede ser nil cuando la factura no está vinculada al roster.
type InvoicePDFGenerator interface {
	GenerateInvoicePDF(
		ctx context.Context,
		invoice *entity.Invoice,
		profile *entity.UserProfile,
		client *entity.Client,
	) ([]byte, error)
}
