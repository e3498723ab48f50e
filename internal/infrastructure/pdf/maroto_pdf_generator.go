// Package pdf implementa la representación gráfica de una factura del
// freelancer usando Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Negocio + @handle       │  N° Factura + Fechas     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  BILLED TO: Cliente + contacto                              │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Qty | Description | Rate | Amount                   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Subtotal / Tax / TOTAL DUE                        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  NOTES + estado (PAID el ...)                               │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	appbilling "github.com/pylondev/invoicing-api/internal/application/billing"
	domainbilling "github.com/pylondev/invoicing-api/internal/domain/billing"
	"github.com/pylondev/invoicing-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 24, Green: 36, Blue: 58}
	colorAccent  = &props.Color{Red: 110, Green: 231, Blue: 152}
	colorGray    = &props.Color{Red: 110, Green: 110, Blue: 110}
)

// enUS impresora para montos con separador de miles ("$1,265.00").
var enUS = message.NewPrinter(language.AmericanEnglish)

func usd(d decimal.Decimal) string {
	return enUS.Sprintf("$%.2f", d.InexactFloat64())
}

// ── Generator ─────────────────────────────────────────────────────────────────

var _ appbilling.InvoicePDFGenerator = (*MarotoPDFGenerator)(nil)

// MarotoPDFGenerator implementa billing.InvoicePDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct {
	taxRate decimal.Decimal
}

// NewMarotoPDFGenerator construye el generador con la tasa de impuesto a
// mostrar en el desglose.
func NewMarotoPDFGenerator(taxRate decimal.Decimal) *MarotoPDFGenerator {
	return &MarotoPDFGenerator{taxRate: domainbilling.NormalizeRate(taxRate)}
}

// GenerateInvoicePDF genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateInvoicePDF(
	_ context.Context,
	invoice *entity.Invoice,
	profile *entity.UserProfile,
	client *entity.Client,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(12).WithRightMargin(12).
		WithTopMargin(12).WithBottomMargin(12).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Invoice "+invoice.Number, true).
		WithAuthor(profile.BusinessName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(invoice, profile))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(billedToRow(invoice, client))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	if len(invoice.Items) > 0 {
		m.AddRows(tableHeaderRow())
		for _, r := range tableDetailRows(invoice.Items) {
			m.AddRows(r)
		}
		m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
		m.AddRows(g.totalsRows(invoice)...)
	} else {
		m.AddRows(amountOnlyRow(invoice))
	}

	m.AddRows(line.NewRow(3))
	for _, r := range footerRows(invoice) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: negocio + handle (izq) y número de factura + fechas (der).
func headerRow(invoice *entity.Invoice, profile *entity.UserProfile) core.Row {
	issued := invoice.IssueDate.Format(entity.DateLayout)
	due := ""
	if !invoice.DueDate.IsZero() {
		due = invoice.DueDate.Format(entity.DateLayout)
	}

	return row.New(22).Add(
		col.New(7).Add(
			text.New(profile.BusinessName, props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 1,
			}),
			text.New(profile.Name+"  "+profile.Handle, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
			text.New(profile.BusinessAddress, props.Text{
				Size: 8, Top: 14, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("INVOICE "+invoice.Number, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New("Issued: "+issued, props.Text{
				Size: 9, Align: align.Right, Top: 9, Color: colorGray,
			}),
			text.New("Due: "+due, props.Text{
				Size: 9, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// billedToRow: bloque con el cliente facturado.
func billedToRow(invoice *entity.Invoice, client *entity.Client) core.Row {
	name := invoice.CompanyName
	contact := ""
	if client != nil {
		name = client.CompanyName
		contact = client.Email
		if client.Phone != "" {
			contact += "   " + client.Phone
		}
	}
	return row.New(16).Add(
		col.New(12).Add(
			text.New("BILLED TO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorGray, Top: 1,
			}),
			text.New(name, props.Text{
				Style: fontstyle.Bold, Size: 11, Color: colorPrimary, Top: 5,
			}),
			text.New(contact, props.Text{
				Size: 8, Top: 11, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1}
	hRight := props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1, Align: align.Right}
	return row.New(6).Add(
		col.New(2).Add(text.New("QTY", h)),
		col.New(6).Add(text.New("DESCRIPTION", h)),
		col.New(2).Add(text.New("RATE", hRight)),
		col.New(2).Add(text.New("AMOUNT", hRight)),
	)
}

func tableDetailRows(items []entity.InvoiceItem) []core.Row {
	cell := props.Text{Size: 9, Top: 1}
	cellRight := props.Text{Size: 9, Top: 1, Align: align.Right}
	rows := make([]core.Row, 0, len(items))
	for _, it := range items {
		qty := it.Quantity.String()
		if it.Unit != "" {
			qty += " " + it.Unit
		}
		rows = append(rows, row.New(6).Add(
			col.New(2).Add(text.New(qty, cell)),
			col.New(6).Add(text.New(it.Description, cell)),
			col.New(2).Add(text.New(usd(it.Rate), cellRight)),
			col.New(2).Add(text.New(usd(it.Subtotal().Round(2)), cellRight)),
		))
	}
	return rows
}

// totalsRows: desglose subtotal / impuesto / total a pagar.
func (g *MarotoPDFGenerator) totalsRows(invoice *entity.Invoice) []core.Row {
	t := domainbilling.Calculate(invoice.Items, g.taxRate)
	label := props.Text{Size: 9, Align: align.Right, Color: colorGray, Top: 1}
	value := props.Text{Size: 9, Align: align.Right, Top: 1}
	taxLabel := fmt.Sprintf("Tax (%s%%)", g.taxRate.Mul(decimal.NewFromInt(100)).String())

	return []core.Row{
		row.New(5).Add(
			col.New(8).Add(text.New("Subtotal", label)),
			col.New(4).Add(text.New(usd(t.Subtotal), value)),
		),
		row.New(5).Add(
			col.New(8).Add(text.New(taxLabel, label)),
			col.New(4).Add(text.New(usd(t.Tax), value)),
		),
		row.New(8).Add(
			col.New(8).Add(text.New("TOTAL DUE", props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Color: colorPrimary, Top: 1,
			})),
			col.New(4).Add(text.New(usd(t.Total), props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Color: colorPrimary, Top: 1,
			})),
		),
	}
}

// amountOnlyRow: facturas sin líneas solo muestran el monto.
func amountOnlyRow(invoice *entity.Invoice) core.Row {
	return row.New(10).Add(
		col.New(8).Add(text.New("TOTAL DUE", props.Text{
			Style: fontstyle.Bold, Size: 11, Align: align.Right, Color: colorPrimary, Top: 2,
		})),
		col.New(4).Add(text.New(usd(invoice.Amount), props.Text{
			Style: fontstyle.Bold, Size: 11, Align: align.Right, Color: colorPrimary, Top: 2,
		})),
	)
}

// footerRows: notas y, si aplica, el sello de pagada.
func footerRows(invoice *entity.Invoice) []core.Row {
	var rows []core.Row
	if invoice.Notes != "" {
		rows = append(rows, row.New(10).Add(
			col.New(12).Add(
				text.New("NOTES", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorGray, Top: 1}),
				text.New(invoice.Notes, props.Text{Size: 8, Top: 5, Color: colorGray}),
			),
		))
	}
	if invoice.Status == entity.StatusPaid && invoice.DatePaid != nil {
		rows = append(rows, row.New(8).Add(
			col.New(12).Add(
				text.New("PAID "+invoice.DatePaid.Format(entity.DateLayout), props.Text{
					Style: fontstyle.Bold, Size: 10, Color: colorAccent, Top: 2,
				}),
			),
		))
	} else {
		due := invoice.DueDate.Format(entity.DateLayout)
		rows = append(rows, row.New(8).Add(
			col.New(12).Add(
				text.New("Payment due by "+due, props.Text{Size: 8, Color: colorGray, Top: 2}),
			),
		))
	}
	return rows
}
