package memory

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/pylondev/invoicing-api/internal/domain/entity"
)

// Datos de demostración con los que arranca el proceso cuando
// BILLING_SEED_DEMO_DATA está activo. Los ids cortos ("1".."6") son
// estables a propósito; los creados en caliente usan UUID.

func mustDate(s string) time.Time {
	t, err := time.Parse(entity.DateLayout, s)
	if err != nil {
		panic("seed: fecha inválida: " + s)
	}
	return t
}

func datePtr(s string) *time.Time {
	t := mustDate(s)
	return &t
}

func money(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v)
}

// DemoClients roster inicial de clientes.
func DemoClients() []*entity.Client {
	return []*entity.Client{
		{ID: "1", CompanyName: "Acme Corp", ContactName: "Acme Corp", Email: "contact@acme.com", Phone: "+1 555 0101", Domain: "acme.com", LogoColor: "#6EE798", TotalBilled: money(12500), ActiveInvoices: 3},
		{ID: "2", CompanyName: "Tech Startup Inc", ContactName: "Tech Startup Inc", Email: "hello@techstartup.inc", Phone: "+1 555 0102", Domain: "globex.com", LogoColor: "#FFD700", TotalBilled: money(8500), ActiveInvoices: 1},
		{ID: "3", CompanyName: "Design Studio", ContactName: "Design Studio", Email: "info@designstudio.co", Phone: "+1 555 0103", Domain: "soylent.com", LogoColor: "#FF6B6B", TotalBilled: money(25000), ActiveInvoices: 0},
		{ID: "4", CompanyName: "Initech", ContactName: "Initech", Email: "support@initech.com", Phone: "+1 555 0104", Domain: "initech.com", LogoColor: "#9CA3AF", TotalBilled: money(0), ActiveInvoices: 0},
		{ID: "5", CompanyName: "Umbrella Corp", ContactName: "Umbrella Corp", Email: "corp@umbrella.com", Phone: "+1 555 0105", Domain: "umbrellacorp.com", LogoColor: "#E74C3C", TotalBilled: money(50000), ActiveInvoices: 2},
	}
}

// DemoInvoices facturas iniciales. El vencimiento es 14 días después de la
// emisión, igual que el plazo por defecto al crear una factura nueva.
func DemoInvoices() []*entity.Invoice {
	return []*entity.Invoice{
		{ID: "1", CompanyName: "Acme Corp", Number: "#INV-1001", IssueDate: mustDate("24 Oct, 2023"), DueDate: mustDate("07 Nov, 2023"), Amount: money(1200), Status: entity.StatusPaid, Domain: "acme.com", LogoColor: "#6EE798", DatePaid: datePtr("25 Oct, 2023")},
		{ID: "2", CompanyName: "Globex Inc.", Number: "#INV-1002", IssueDate: mustDate("01 Nov, 2023"), DueDate: mustDate("15 Nov, 2023"), Amount: money(850), Status: entity.StatusUnpaid, Domain: "globex.com", LogoColor: "#FFD700"},
		{ID: "3", CompanyName: "Soylent Corp", Number: "#INV-1003", IssueDate: mustDate("15 Oct, 2023"), DueDate: mustDate("29 Oct, 2023"), Amount: money(2500), Status: entity.StatusOverdue, Domain: "soylent.com", LogoColor: "#FF6B6B"},
		{ID: "4", CompanyName: "Initech", Number: "#INV-1004", IssueDate: mustDate("05 Nov, 2023"), DueDate: mustDate("19 Nov, 2023"), Amount: money(0), Status: entity.StatusDraft, Domain: "initech.com", LogoColor: "#9CA3AF"},
		{ID: "5", CompanyName: "Umbrella Corp", Number: "#INV-1005", IssueDate: mustDate("10 Nov, 2023"), DueDate: mustDate("24 Nov, 2023"), Amount: money(3400), Status: entity.StatusPaid, Domain: "umbrellacorp.com", LogoColor: "#E74C3C", DatePaid: datePtr("12 Nov, 2023")},
		{ID: "6", CompanyName: "Wonka Industries", Number: "#INV-1006", IssueDate: mustDate("18 Nov, 2023"), DueDate: mustDate("02 Dec, 2023"), Amount: money(1750), Status: entity.StatusUnpaid, Domain: "wonka.com", LogoColor: "#9B59B6"},
	}
}

// DemoProfile perfil inicial del usuario.
func DemoProfile() *entity.UserProfile {
	return &entity.UserProfile{
		Name:            "Ali Shan",
		Handle:          "@alishansn",
		ProfileImage:    "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=200&h=200&fit=crop&crop=face",
		BusinessName:    "Pylon Dev",
		BusinessAddress: "123 Tech Street, Silicon Valley, CA",
	}
}
