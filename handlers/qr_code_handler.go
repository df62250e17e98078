package handlers

import (
	"strings"
	"time"

	"github.com/anocab/anocab-admin/database"
	"github.com/anocab/anocab-admin/middleware"
	"github.com/anocab/anocab-admin/models"
	"github.com/anocab/anocab-admin/utils"
	"github.com/gofiber/fiber/v2"
)

func ListQrCodes(c *fiber.Ctx) error {
	query := database.DB.Model(&models.QrCode{}).Preload("Scanner").Preload("Creator")

	if isScanned := c.Query("is_scanned"); isScanned != "" {
		query = query.Where("is_scanned = ?", isScanned == "1" || isScanned == "true")
	}
	if isExpired := c.Query("is_expired"); isExpired != "" {
		query = query.Where("is_expired = ?", isExpired == "1" || isExpired == "true")
	}
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		searchTerm := "%" + search + "%"
		query = query.Where("code LIKE ? OR product LIKE ? OR details LIKE ?", searchTerm, searchTerm, searchTerm)
	}

	codes := []models.QrCode{}
	if err := query.Order("created_at desc").Find(&codes).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch QR codes"})
	}
	return c.JSON(codes)
}

func GetQrCode(c *fiber.Ctx) error {
	id, err := positiveIntParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid id"})
	}

	var code models.QrCode
	if err := database.DB.Preload("Scanner").Preload("Creator").First(&code, "id = ?", id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "QR code not found"})
	}
	return c.JSON(code)
}

type CreateQrCodesRequest struct {
	Product   string     `json:"product" validate:"required"`
	Details   *string    `json:"details"`
	Points    int        `json:"points" validate:"gte=0"`
	ExpiresAt *time.Time `json:"expires_at"`
	Quantity  int        `json:"quantity" validate:"omitempty,gte=1,lte=1000"`
}

// CreateQrCodes generates one or more QR codes in a batch, each with a
// unique code value.
func CreateQrCodes(c *fiber.Ctx) error {
	var req CreateQrCodesRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	quantity := req.Quantity
	if quantity == 0 {
		quantity = 1
	}

	var createdBy *uint
	if adminID := middleware.AdminID(c); adminID > 0 {
		createdBy = &adminID
	}

	codes := make([]models.QrCode, 0, quantity)
	for i := 0; i < quantity; i++ {
		codes = append(codes, models.QrCode{
			Code:      utils.GenerateQrCodeValue(),
			Product:   req.Product,
			Details:   req.Details,
			Points:    req.Points,
			ExpiresAt: req.ExpiresAt,
			CreatedBy: createdBy,
		})
	}

	if err := database.DB.Create(&codes).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create QR codes"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"count":   quantity,
		"codes":   codes,
		"message": "QR code(s) created successfully",
	})
}

type UpdateQrCodeRequest struct {
	Product   string     `json:"product" validate:"required"`
	Details   *string    `json:"details"`
	Points    int        `json:"points" validate:"gte=0"`
	ExpiresAt *time.Time `json:"expires_at"`
}

func UpdateQrCode(c *fiber.Ctx) error {
	id, err := positiveIntParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid id"})
	}

	var code models.QrCode
	if err := database.DB.First(&code, "id = ?", id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "QR code not found"})
	}

	var req UpdateQrCodeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	code.Product = req.Product
	code.Details = req.Details
	code.Points = req.Points
	code.ExpiresAt = req.ExpiresAt
	if err := database.DB.Save(&code).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update QR code"})
	}

	return c.JSON(code)
}

func DeleteQrCode(c *fiber.Ctx) error {
	id, err := positiveIntParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid id"})
	}

	result := database.DB.Delete(&models.QrCode{}, "id = ?", id)
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete QR code"})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "QR code not found"})
	}
	return c.JSON(fiber.Map{"message": "QR code deleted successfully"})
}
