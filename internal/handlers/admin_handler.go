package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/renoverde/recolhe-plus/internal/dto"
	"github.com/renoverde/recolhe-plus/internal/models"
	"gorm.io/gorm"
)

type AdminHandler struct {
	db *gorm.DB
}

func NewAdminHandler(db *gorm.DB) *AdminHandler {
	return &AdminHandler{db: db}
}

func (h *AdminHandler) Stats(c *fiber.Ctx) error {
	var stats dto.AdminStatsResponse

	if err := h.db.Model(&models.User{}).Count(&stats.Users).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to gather stats",
		})
	}
	if err := h.db.Model(&models.Pickup{}).Count(&stats.Pickups).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to gather stats",
		})
	}
	if err := h.db.Model(&models.Transaction{}).Count(&stats.Transactions).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to gather stats",
		})
	}

	return c.JSON(stats)
}
