package handlers

import (
	"github.com/anocab/anocab-admin/database"
	"github.com/anocab/anocab-admin/models"
	"github.com/gofiber/fiber/v2"
)

func ListPaymentTransactions(c *fiber.Ctx) error {
	query := database.DB.Model(&models.PaymentTransaction{}).Preload("User")

	if userID, err := positiveIntQuery(c, "user_id"); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "user_id must be a positive integer"})
	} else if userID > 0 {
		query = query.Where("user_id = ?", userID)
	}
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if orderID := c.Query("order_id"); orderID != "" {
		query = query.Where("order_id = ?", orderID)
	}

	transactions := []models.PaymentTransaction{}
	if err := query.Order("created_at desc").Find(&transactions).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch payment transactions"})
	}
	return c.JSON(transactions)
}

func GetPaymentTransaction(c *fiber.Ctx) error {
	id, err := positiveIntParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid id"})
	}

	var pt models.PaymentTransaction
	if err := database.DB.Preload("User").First(&pt, "id = ?", id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Payment transaction not found"})
	}
	return c.JSON(pt)
}

type UpdatePaymentTransactionRequest struct {
	Status          string  `json:"status" validate:"required"`
	GatewayResponse *string `json:"gateway_response"`
	ErrorMessage    *string `json:"error_message"`
}

func UpdatePaymentTransaction(c *fiber.Ctx) error {
	id, err := positiveIntParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid id"})
	}

	var pt models.PaymentTransaction
	if err := database.DB.First(&pt, "id = ?", id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Payment transaction not found"})
	}

	var req UpdatePaymentTransactionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	pt.Status = req.Status
	pt.GatewayResponse = req.GatewayResponse
	pt.ErrorMessage = req.ErrorMessage
	if err := database.DB.Save(&pt).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update payment transaction"})
	}

	return c.JSON(fiber.Map{"message": "Payment transaction updated successfully", "payment_transaction": pt})
}
