package handlers

import (
	"github.com/anocab/anocab-admin/database"
	"github.com/anocab/anocab-admin/models"
	"github.com/gofiber/fiber/v2"
)

func ListQrScans(c *fiber.Ctx) error {
	query := database.DB.Model(&models.QrScan{}).Preload("User").Preload("QrCode")

	if userID, err := positiveIntQuery(c, "user_id"); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "user_id must be a positive integer"})
	} else if userID > 0 {
		query = query.Where("user_id = ?", userID)
	}
	if qrCodeID, err := positiveIntQuery(c, "qr_code_id"); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "qr_code_id must be a positive integer"})
	} else if qrCodeID > 0 {
		query = query.Where("qr_code_id = ?", qrCodeID)
	}

	scans := []models.QrScan{}
	if err := query.Order("scanned_at desc").Find(&scans).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch QR scans"})
	}
	return c.JSON(scans)
}

func GetQrScan(c *fiber.Ctx) error {
	id, err := positiveIntParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid id"})
	}

	var scan models.QrScan
	if err := database.DB.Preload("User").Preload("QrCode").First(&scan, "id = ?", id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "QR scan not found"})
	}
	return c.JSON(scan)
}
