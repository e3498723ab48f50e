package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/pylondev/invoicing-api/internal/application/dto"
	"github.com/pylondev/invoicing-api/internal/application/usecase"
)

// ProfileHandler maneja el perfil singleton del usuario.
type ProfileHandler struct {
	uc *usecase.ProfileUseCase
}

// NewProfileHandler construye el handler.
func NewProfileHandler(uc *usecase.ProfileUseCase) *ProfileHandler {
	return &ProfileHandler{uc: uc}
}

// Get GET /api/profile
func (h *ProfileHandler) Get(c *fiber.Ctx) error {
	p, err := h.uc.Get()
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(p)
}

// Update PUT /api/profile — nombre y handle.
func (h *ProfileHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateProfileRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	p, err := h.uc.UpdateProfile(in)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(p)
}

// UpdateBusiness PUT /api/profile/business
func (h *ProfileHandler) UpdateBusiness(c *fiber.Ctx) error {
	var in dto.UpdateBusinessRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	p, err := h.uc.UpdateBusinessInfo(in)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(p)
}

// UpdateImage PUT /api/profile/image
func (h *ProfileHandler) UpdateImage(c *fiber.Ctx) error {
	var in dto.UpdateProfileImageRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	p, err := h.uc.SetProfileImage(in.ProfileImage)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(p)
}
