package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/renoverde/recolhe-plus/internal/dto"
	"github.com/renoverde/recolhe-plus/internal/middleware"
	"github.com/renoverde/recolhe-plus/internal/services"
)

type RewardHandler struct {
	rewardService *services.RewardService
}

func NewRewardHandler(rewardService *services.RewardService) *RewardHandler {
	return &RewardHandler{rewardService: rewardService}
}

func (h *RewardHandler) Redeem(c *fiber.Ctx) error {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.RedeemRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	resp, err := h.rewardService.Redeem(userID, &req)
	if err != nil {
		if errors.Is(err, services.ErrInsufficientBalance) || errors.Is(err, services.ErrInvalidAmount) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to redeem",
		})
	}

	return c.JSON(resp)
}

func (h *RewardHandler) Transactions(c *fiber.Ctx) error {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	resp, err := h.rewardService.Transactions(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch transactions",
		})
	}

	return c.JSON(resp)
}
