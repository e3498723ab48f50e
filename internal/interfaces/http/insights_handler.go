package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/pylondev/invoicing-api/internal/application/usecase"
)

// InsightsHandler expone los agregados de facturación.
type InsightsHandler struct {
	uc *usecase.InsightsUseCase
}

// NewInsightsHandler construye el handler.
func NewInsightsHandler(uc *usecase.InsightsUseCase) *InsightsHandler {
	return &InsightsHandler{uc: uc}
}

// Summary GET /api/insights
func (h *InsightsHandler) Summary(c *fiber.Ctx) error {
	out, err := h.uc.Summary()
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}
