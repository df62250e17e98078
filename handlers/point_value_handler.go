package handlers

import (
	"errors"

	"github.com/anocab/anocab-admin/database"
	"github.com/anocab/anocab-admin/middleware"
	"github.com/anocab/anocab-admin/models"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func GetPointValueSetting(c *fiber.Ctx) error {
	var setting models.PointValueSetting
	err := database.DB.Where("is_active = ?", true).Order("updated_at desc, id desc").First(&setting).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(fiber.Map{"setting": nil})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch point value settings"})
	}
	return c.JSON(fiber.Map{"setting": setting})
}

type PointValueRequest struct {
	Points int     `json:"points" validate:"required,gt=0"`
	Rupees float64 `json:"rupees" validate:"required,gt=0"`
}

// UpdatePointValueSetting rewrites the single active points-to-rupees rate,
// creating it on first use.
func UpdatePointValueSetting(c *fiber.Ctx) error {
	var req PointValueRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var createdBy *uint
	if adminID := middleware.AdminID(c); adminID > 0 {
		createdBy = &adminID
	}

	var setting models.PointValueSetting
	err := database.DB.Where("is_active = ?", true).Order("updated_at desc, id desc").First(&setting).Error
	switch {
	case err == nil:
		setting.Points = req.Points
		setting.Rupees = req.Rupees
		setting.CreatedBy = createdBy
		if err := database.DB.Save(&setting).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update point value settings"})
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		setting = models.PointValueSetting{
			Points:    req.Points,
			Rupees:    req.Rupees,
			IsActive:  true,
			CreatedBy: createdBy,
		}
		if err := database.DB.Create(&setting).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update point value settings"})
		}
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update point value settings"})
	}

	return c.JSON(fiber.Map{"message": "Point value settings updated successfully", "setting": setting})
}
