package handlers

import (
	"strings"

	"github.com/anocab/anocab-admin/database"
	"github.com/anocab/anocab-admin/models"
	"github.com/gofiber/fiber/v2"
)

func ListCalculatorData(c *fiber.Ctx) error {
	query := database.DB.Model(&models.CalculatorData{})

	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		searchTerm := "%" + search + "%"
		query = query.Where("name LIKE ? OR description LIKE ?", searchTerm, searchTerm)
	}

	rows := []models.CalculatorData{}
	if err := query.Order("category, name").Find(&rows).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch calculator data"})
	}
	return c.JSON(rows)
}

func GetCalculatorData(c *fiber.Ctx) error {
	id, err := positiveIntParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid id"})
	}

	var row models.CalculatorData
	if err := database.DB.First(&row, "id = ?", id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Calculator data not found"})
	}
	return c.JSON(row)
}

type CalculatorDataRequest struct {
	Category    string  `json:"category" validate:"required"`
	Name        string  `json:"name" validate:"required"`
	Value       float64 `json:"value" validate:"required"`
	Unit        *string `json:"unit"`
	Description *string `json:"description"`
	Status      int     `json:"status"`
}

func CreateCalculatorData(c *fiber.Ctx) error {
	var req CalculatorDataRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	row := models.CalculatorData{
		Category:    req.Category,
		Name:        req.Name,
		Value:       req.Value,
		Unit:        req.Unit,
		Description: req.Description,
		Status:      req.Status,
	}
	if err := database.DB.Create(&row).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create calculator data"})
	}

	return c.Status(fiber.StatusCreated).JSON(row)
}

func UpdateCalculatorData(c *fiber.Ctx) error {
	id, err := positiveIntParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid id"})
	}

	var row models.CalculatorData
	if err := database.DB.First(&row, "id = ?", id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Calculator data not found"})
	}

	var req CalculatorDataRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	row.Category = req.Category
	row.Name = req.Name
	row.Value = req.Value
	row.Unit = req.Unit
	row.Description = req.Description
	row.Status = req.Status
	if err := database.DB.Save(&row).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update calculator data"})
	}

	return c.JSON(row)
}

func DeleteCalculatorData(c *fiber.Ctx) error {
	id, err := positiveIntParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid id"})
	}

	result := database.DB.Delete(&models.CalculatorData{}, "id = ?", id)
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete calculator data"})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Calculator data not found"})
	}
	return c.JSON(fiber.Map{"message": "Calculator data deleted successfully"})
}
