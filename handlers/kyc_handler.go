package handlers

import (
	"errors"
	"log"

	"github.com/anocab/anocab-admin/database"
	"github.com/anocab/anocab-admin/models"
	"github.com/anocab/anocab-admin/services"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func ListKycRecords(c *fiber.Ctx) error {
	query := database.DB.Model(&models.UserKyc{}).Preload("User")

	if status := c.Query("approval_status"); status != "" {
		parsed, err := models.ParseApprovalStatus(status)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "approval_status must be pending, approved, or rejected"})
		}
		query = query.Where("approval_status = ?", parsed)
	}
	if userID, err := positiveIntQuery(c, "user_id"); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "user_id must be a positive integer"})
	} else if userID > 0 {
		query = query.Where("user_id = ?", userID)
	}

	records := []models.UserKyc{}
	if err := query.Order("updated_at desc, id desc").Find(&records).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch KYC records"})
	}
	return c.JSON(records)
}

func GetKycRecord(c *fiber.Ctx) error {
	id, err := positiveIntParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid id"})
	}

	var kyc models.UserKyc
	if err := database.DB.Preload("User").First(&kyc, "id = ?", id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "KYC record not found"})
	}
	return c.JSON(kyc)
}

func GetKycByUser(c *fiber.Ctx) error {
	userID, err := positiveIntParam(c, "userId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid userId"})
	}

	var kyc models.UserKyc
	if err := database.DB.Preload("User").First(&kyc, "user_id = ?", userID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "KYC record not found"})
	}
	return c.JSON(kyc)
}

type UpsertKycRequest struct {
	UserID            uint    `json:"user_id" validate:"required,gt=0"`
	AccountNumber     *string `json:"account_number"`
	IfscCode          *string `json:"ifsc_code"`
	AccountHolderName *string `json:"account_holder_name"`
	BankName          *string `json:"bank_name"`
	AadhaarNumber     *string `json:"aadhaar_number"`
	PanNumber         *string `json:"pan_number"`
	UpiID             *string `json:"upi_id"`
}

// UpsertKyc creates or wholesale-replaces the bank details for a user.
// Approval fields are left untouched on update.
func UpsertKyc(c *fiber.Ctx) error {
	var req UpsertKycRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var kyc models.UserKyc
	err := database.DB.First(&kyc, "user_id = ?", req.UserID).Error
	switch {
	case err == nil:
		updates := map[string]interface{}{
			"account_number":      req.AccountNumber,
			"ifsc_code":           req.IfscCode,
			"account_holder_name": req.AccountHolderName,
			"bank_name":           req.BankName,
			"aadhaar_number":      req.AadhaarNumber,
			"pan_number":          req.PanNumber,
			"upi_id":              req.UpiID,
		}
		if err := database.DB.Model(&kyc).Updates(updates).Error; err != nil {
			log.Printf("Failed to update KYC for user %d: %v", req.UserID, err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save KYC"})
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		kyc = models.UserKyc{
			UserID:            req.UserID,
			AccountNumber:     req.AccountNumber,
			IfscCode:          req.IfscCode,
			AccountHolderName: req.AccountHolderName,
			BankName:          req.BankName,
			AadhaarNumber:     req.AadhaarNumber,
			PanNumber:         req.PanNumber,
			UpiID:             req.UpiID,
			ApprovalStatus:    models.ApprovalPending,
		}
		if err := database.DB.Create(&kyc).Error; err != nil {
			log.Printf("Failed to create KYC for user %d: %v", req.UserID, err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save KYC"})
		}
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save KYC"})
	}

	var saved models.UserKyc
	database.DB.Preload("User").First(&saved, "user_id = ?", req.UserID)
	return c.JSON(fiber.Map{"message": "KYC saved successfully", "kyc": saved})
}

type KycApprovalRequest struct {
	ApprovalStatus string  `json:"approval_status" validate:"required,oneof=pending approved rejected"`
	ApprovedBy     *uint   `json:"approved_by"`
	AdminNotes     *string `json:"admin_notes"`
}

func UpdateKycApproval(c *fiber.Ctx) error {
	id, err := positiveIntParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid id"})
	}

	var req KycApprovalRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	status, _ := models.ParseApprovalStatus(req.ApprovalStatus)
	kyc, err := services.SetKycApproval(database.DB, id, services.SetKycApprovalInput{
		Status:     status,
		ApprovedBy: req.ApprovedBy,
		AdminNotes: req.AdminNotes,
	})
	if err != nil {
		if errors.Is(err, services.ErrKycNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "KYC record not found"})
		}
		log.Printf("Failed to update KYC approval %d: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update KYC approval"})
	}

	return c.JSON(fiber.Map{"message": "KYC approval updated", "kyc": kyc})
}
