package billing

import (
	"context"
	"fmt"
	"strings"

	"github.com/pylondev/invoicing-api/internal/domain"
	"github.com/pylondev/invoicing-api/internal/domain/repository"
)

// PDFUseCase genera la representación gráfica (PDF) de una factura.
type PDFUseCase struct {
	invoiceRepo repository.InvoiceRepository
	clientRepo  repository.ClientRepository
	profileRepo repository.ProfileRepository
	generator   InvoicePDFGenerator
}

// NewPDFUseCase construye el caso de uso inyectando sus dependencias.
func NewPDFUseCase(
	invoiceRepo repository.InvoiceRepository,
	clientRepo repository.ClientRepository,
	profileRepo repository.ProfileRepository,
	generator InvoicePDFGenerator,
) *PDFUseCase {
	return &PDFUseCase{
		invoiceRepo: invoiceRepo,
		clientRepo:  clientRepo,
		profileRepo: profileRepo,
		generator:   generator,
	}
}

// DownloadInvoicePDF carga la factura, el perfil del negocio y el cliente
// vinculado (si lo hay) y genera el PDF.
//
// Retorna:
//   - (pdfBytes, filename, nil) si todo sale bien.
//   - domain.ErrNotFound        si la factura no existe.
func (uc *PDFUseCase) DownloadInvoicePDF(ctx context.Context, invoiceID string) (pdfBytes []byte, filename string, err error) {
	inv, err := uc.invoiceRepo.GetByID(invoiceID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener factura: %w", err)
	}
	if inv == nil {
		return nil, "", domain.ErrNotFound
	}

	profile, err := uc.profileRepo.Get()
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener perfil: %w", err)
	}

	// El cliente es opcional: facturas antiguas solo guardan el nombre.
	client, err := uc.clientRepo.GetByID(inv.ClientID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener cliente: %w", err)
	}
	if client == nil && inv.CompanyName != "" {
		client, err = uc.clientRepo.GetByCompanyName(inv.CompanyName)
		if err != nil {
			return nil, "", fmt.Errorf("pdf: obtener cliente: %w", err)
		}
	}

	bytes, err := uc.generator.GenerateInvoicePDF(ctx, inv, profile, client)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generar: %w", err)
	}

	// "#INV-1003" → "INV-1003.pdf"
	filename = strings.TrimPrefix(inv.Number, "#") + ".pdf"
	return bytes, filename, nil
}
