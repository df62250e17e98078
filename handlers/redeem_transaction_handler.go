package handlers

import (
	"errors"
	"time"

	"github.com/anocab/anocab-admin/database"
	"github.com/anocab/anocab-admin/models"
	"github.com/anocab/anocab-admin/utils"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func ListRedeemTransactions(c *fiber.Ctx) error {
	query := database.DB.Model(&models.RedeemTransaction{}).Preload("User")

	if status := c.Query("status"); status != "" {
		parsed, err := models.ParseRedeemStatus(status)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "status must be pending, processing, completed, failed, or cancelled"})
		}
		query = query.Where("status = ?", parsed)
	}
	if userID, err := positiveIntQuery(c, "user_id"); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "user_id must be a positive integer"})
	} else if userID > 0 {
		query = query.Where("user_id = ?", userID)
	}
	if orderID := c.Query("order_id"); orderID != "" {
		query = query.Where("order_id = ?", orderID)
	}

	transactions := []models.RedeemTransaction{}
	if err := query.Order("created_at desc, id desc").Find(&transactions).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch redeem transactions"})
	}
	return c.JSON(transactions)
}

func GetRedeemTransaction(c *fiber.Ctx) error {
	id, err := positiveIntParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid id"})
	}

	var rt models.RedeemTransaction
	if err := database.DB.Preload("User").First(&rt, "id = ?", id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Redeem transaction not found"})
	}
	return c.JSON(rt)
}

type CreateRedeemTransactionRequest struct {
	UserID  uint    `json:"user_id" validate:"required,gt=0"`
	Amount  float64 `json:"amount" validate:"required,gt=0"`
	OrderID string  `json:"order_id"`
	Remarks *string `json:"remarks"`
}

// CreateRedeemTransaction records a redemption request on a user's behalf.
// An order reference is generated when the caller does not supply one.
func CreateRedeemTransaction(c *fiber.Ctx) error {
	var req CreateRedeemTransactionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var user models.User
	if err := database.DB.First(&user, "id = ?", req.UserID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}

	orderID := req.OrderID
	if orderID == "" {
		orderID = utils.GenerateOrderID()
	}

	rt := models.RedeemTransaction{
		UserID:  req.UserID,
		Amount:  req.Amount,
		OrderID: orderID,
		Status:  models.RedeemPending,
		Remarks: req.Remarks,
	}
	if err := database.DB.Create(&rt).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Order ID already exists"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create redeem transaction"})
	}

	database.DB.Preload("User").First(&rt, "id = ?", rt.ID)
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Redeem transaction created successfully", "redeem_transaction": rt})
}

type UpdateRedeemTransactionRequest struct {
	Status        string  `json:"status" validate:"required,oneof=pending processing completed failed cancelled"`
	PaymentStatus *string `json:"payment_status"`
	Remarks       *string `json:"remarks"`
	ProcessedBy   *uint   `json:"processed_by"`
}

// UpdateRedeemTransaction is the manual admin edit path. Completing a
// transaction with a payout goes through MarkRedeemPayoutDone instead.
func UpdateRedeemTransaction(c *fiber.Ctx) error {
	id, err := positiveIntParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid id"})
	}

	var req UpdateRedeemTransactionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var rt models.RedeemTransaction
	if err := database.DB.First(&rt, "id = ?", id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Redeem transaction not found"})
	}

	status, _ := models.ParseRedeemStatus(req.Status)
	now := time.Now()
	rt.Status = status
	rt.PaymentStatus = req.PaymentStatus
	rt.Remarks = req.Remarks
	rt.ProcessedBy = req.ProcessedBy
	rt.ProcessedAt = &now
	if err := database.DB.Save(&rt).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update redeem transaction"})
	}

	return c.JSON(fiber.Map{"message": "Redeem transaction updated successfully", "redeem_transaction": rt})
}

func DeleteRedeemTransaction(c *fiber.Ctx) error {
	id, err := positiveIntParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid id"})
	}

	result := database.DB.Delete(&models.RedeemTransaction{}, "id = ?", id)
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete redeem transaction"})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Redeem transaction not found"})
	}
	return c.JSON(fiber.Map{"message": "Redeem transaction deleted successfully"})
}
