package services

import (
	"errors"
	"time"

	"github.com/anocab/anocab-admin/models"
	"gorm.io/gorm"
)

var ErrKycNotFound = errors.New("kyc record not found")

type SetKycApprovalInput struct {
	Status     models.ApprovalStatus
	ApprovedBy *uint
	AdminNotes *string
}

// SetKycApproval transitions a KYC record's approval status. ApprovedAt is
// set for approved/rejected and cleared when the record reverts to pending.
func SetKycApproval(db *gorm.DB, kycID uint, in SetKycApprovalInput) (*models.UserKyc, error) {
	var kyc models.UserKyc
	if err := db.First(&kyc, "id = ?", kycID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrKycNotFound
		}
		return nil, err
	}

	kyc.ApprovalStatus = in.Status
	kyc.ApprovedBy = in.ApprovedBy
	kyc.AdminNotes = in.AdminNotes
	if in.Status == models.ApprovalApproved || in.Status == models.ApprovalRejected {
		now := time.Now()
		kyc.ApprovedAt = &now
	} else {
		kyc.ApprovedAt = nil
	}

	if err := db.Save(&kyc).Error; err != nil {
		return nil, err
	}

	var updated models.UserKyc
	if err := db.Preload("User").First(&updated, "id = ?", kyc.ID).Error; err != nil {
		return nil, err
	}
	return &updated, nil
}
