package handlers

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/anocab/anocab-admin/database"
	"github.com/anocab/anocab-admin/models"
	"github.com/anocab/anocab-admin/notifications"
	"github.com/anocab/anocab-admin/services"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func ListRedeemPayouts(c *fiber.Ctx) error {
	query := database.DB.Model(&models.RedeemPayout{}).
		Preload("User").Preload("RedeemTransaction")

	if status := c.Query("status"); status != "" {
		parsed, err := models.ParsePayoutStatus(status)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "status must be pending, done, failed, or cancelled"})
		}
		query = query.Where("status = ?", parsed)
	}
	if userID, err := positiveIntQuery(c, "user_id"); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "user_id must be a positive integer"})
	} else if userID > 0 {
		query = query.Where("user_id = ?", userID)
	}
	if rtID, err := positiveIntQuery(c, "redeem_transaction_id"); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "redeem_transaction_id must be a positive integer"})
	} else if rtID > 0 {
		query = query.Where("redeem_transaction_id = ?", rtID)
	}

	payouts := []models.RedeemPayout{}
	if err := query.Order("created_at desc, id desc").Find(&payouts).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch redeem payouts"})
	}
	return c.JSON(payouts)
}

func GetRedeemPayout(c *fiber.Ctx) error {
	id, err := positiveIntParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid id"})
	}

	var payout models.RedeemPayout
	if err := database.DB.Preload("User").Preload("RedeemTransaction").First(&payout, "id = ?", id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Redeem payout not found"})
	}
	return c.JSON(payout)
}

type CreatePayoutRequest struct {
	RedeemTransactionID uint    `json:"redeem_transaction_id" validate:"required,gt=0"`
	UserID              uint    `json:"user_id" validate:"required,gt=0"`
	Amount              float64 `json:"amount" validate:"required,gt=0"`
	PayoutMethod        string  `json:"payout_method" validate:"omitempty,oneof=bank upi cash other"`
	PayoutReference     *string `json:"payout_reference"`
	Status              string  `json:"status" validate:"omitempty,oneof=pending done failed cancelled"`
	ProcessedBy         *uint   `json:"processed_by"`
	AdminNotes          *string `json:"admin_notes"`
}

// CreateRedeemPayout is the manual path for pre-recording a payout, usually
// pending, without touching the redeem transaction.
func CreateRedeemPayout(c *fiber.Ctx) error {
	var req CreatePayoutRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	method := models.PayoutMethodBank
	if req.PayoutMethod != "" {
		method, _ = models.ParsePayoutMethod(req.PayoutMethod)
	}
	status := models.PayoutPending
	if req.Status != "" {
		status, _ = models.ParsePayoutStatus(req.Status)
	}

	payout := models.RedeemPayout{
		RedeemTransactionID: req.RedeemTransactionID,
		UserID:              req.UserID,
		Amount:              req.Amount,
		PayoutMethod:        method,
		PayoutReference:     req.PayoutReference,
		Status:              status,
		ProcessedBy:         req.ProcessedBy,
		AdminNotes:          req.AdminNotes,
	}
	if status == models.PayoutDone {
		now := time.Now()
		payout.ProcessedAt = &now
	}

	if err := database.DB.Create(&payout).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Payout already exists for this redeem transaction"})
		}
		log.Printf("Failed to create redeem payout: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create redeem payout"})
	}

	database.DB.Preload("User").Preload("RedeemTransaction").First(&payout, "id = ?", payout.ID)
	return c.JSON(fiber.Map{"message": "Redeem payout created", "payout": payout})
}

type MarkPayoutDoneRequest struct {
	RedeemTransactionID uint    `json:"redeem_transaction_id" validate:"required,gt=0"`
	ProcessedBy         *uint   `json:"processed_by"`
	PayoutMethod        string  `json:"payout_method" validate:"omitempty,oneof=bank upi cash other"`
	PayoutReference     *string `json:"payout_reference"`
	AdminNotes          *string `json:"admin_notes"`
}

// MarkRedeemPayoutDone is the admin "pay and mark done" action: one atomic
// unit inserting the done payout and completing the redeem transaction.
func MarkRedeemPayoutDone(c *fiber.Ctx) error {
	var req MarkPayoutDoneRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var method models.PayoutMethod
	if req.PayoutMethod != "" {
		method, _ = models.ParsePayoutMethod(req.PayoutMethod)
	}

	payout, err := services.CompletePayout(database.DB, req.RedeemTransactionID, services.CompletePayoutInput{
		ProcessedBy:     req.ProcessedBy,
		PayoutMethod:    method,
		PayoutReference: req.PayoutReference,
		AdminNotes:      req.AdminNotes,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrRedeemNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Redeem transaction not found"})
		case errors.Is(err, services.ErrPayoutExists):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Payout already exists for this redeem transaction"})
		default:
			log.Printf("Failed to mark payout done for redeem transaction %d: %v", req.RedeemTransactionID, err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to mark payout done"})
		}
	}

	if payout.User.Email != nil && *payout.User.Email != "" {
		go notifications.SendEmail(
			payout.User.FirstName+" "+payout.User.LastName,
			*payout.User.Email,
			"Your Redemption Has Been Paid",
			fmt.Sprintf("<h1>Payout Processed</h1><p>Hello %s,</p><p>Your redemption %s for ₹%.2f has been paid out.</p>",
				payout.User.FirstName, payout.RedeemTransaction.OrderID, payout.Amount),
		)
	}

	return c.JSON(fiber.Map{"message": "Redeem payout marked done", "payout": payout})
}
