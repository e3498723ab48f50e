package dto

import "github.com/shopspring/decimal"

// StatusCounts número de facturas por estado efectivo.
type StatusCounts struct {
	Draft   int `json:"draft"`
	Unpaid  int `json:"unpaid"`
	Paid    int `json:"paid"`
	Overdue int `json:"overdue"`
}

// InsightsResponse agregados para la pantalla de insights: total pendiente
// de cobro (Unpaid + Overdue), total cobrado y conteos por estado.
type InsightsResponse struct {
	Outstanding  decimal.Decimal `json:"outstanding"`
	PaidTotal    decimal.Decimal `json:"paid_total"`
	OverdueTotal decimal.Decimal `json:"overdue_total"`
	Counts       StatusCounts    `json:"counts"`
}
