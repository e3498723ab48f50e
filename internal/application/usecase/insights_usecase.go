package usecase

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/pylondev/invoicing-api/internal/application/dto"
	"github.com/pylondev/invoicing-api/internal/domain/entity"
	"github.com/pylondev/invoicing-api/internal/domain/repository"
)

// InsightsUseCase agregados de facturación para la pantalla de insights:
// total pendiente, total cobrado y conteos por estado efectivo.
type InsightsUseCase struct {
	invoiceRepo repository.InvoiceRepository
}

// NewInsightsUseCase construye el caso de uso.
func NewInsightsUseCase(invoiceRepo repository.InvoiceRepository) *InsightsUseCase {
	return &InsightsUseCase{invoiceRepo: invoiceRepo}
}

// Summary recorre todas las facturas clasificándolas por estado efectivo.
// Outstanding incluye Unpaid y Overdue; OverdueTotal solo las vencidas.
func (uc *InsightsUseCase) Summary() (*dto.InsightsResponse, error) {
	list, err := uc.invoiceRepo.List()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	out := &dto.InsightsResponse{
		Outstanding:  decimal.Zero,
		PaidTotal:    decimal.Zero,
		OverdueTotal: decimal.Zero,
	}
	for _, inv := range list {
		switch inv.EffectiveStatus(now) {
		case entity.StatusDraft:
			out.Counts.Draft++
		case entity.StatusUnpaid:
			out.Counts.Unpaid++
			out.Outstanding = out.Outstanding.Add(inv.Amount)
		case entity.StatusOverdue:
			out.Counts.Overdue++
			out.Outstanding = out.Outstanding.Add(inv.Amount)
			out.OverdueTotal = out.OverdueTotal.Add(inv.Amount)
		case entity.StatusPaid:
			out.Counts.Paid++
			out.PaidTotal = out.PaidTotal.Add(inv.Amount)
		}
	}
	return out, nil
}
