package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/renoverde/recolhe-plus/internal/dto"
	"github.com/renoverde/recolhe-plus/internal/middleware"
	"github.com/renoverde/recolhe-plus/internal/services"
)

type PickupHandler struct {
	pickupService *services.PickupService
}

func NewPickupHandler(pickupService *services.PickupService) *PickupHandler {
	return &PickupHandler{pickupService: pickupService}
}

func (h *PickupHandler) Create(c *fiber.Ctx) error {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.CreatePickupRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	resp, err := h.pickupService.Create(userID, &req)
	if err != nil {
		if errors.Is(err, services.ErrNoItems) || errors.Is(err, services.ErrInvalidWaste) ||
			errors.Is(err, services.ErrLocationMissing) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to create pickup",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(resp)
}

func (h *PickupHandler) List(c *fiber.Ctx) error {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	resp, err := h.pickupService.List(userID, middleware.CurrentRole(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch pickups",
		})
	}

	return c.JSON(resp)
}
