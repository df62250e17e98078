package models

import "time"

// UserKyc holds one bank-detail record per user. ApprovedAt is non-nil
// exactly when ApprovalStatus is approved or rejected.
type UserKyc struct {
	ID                uint           `gorm:"primaryKey" json:"id"`
	UserID            uint           `gorm:"not null;uniqueIndex" json:"user_id"`
	AccountNumber     *string        `gorm:"size:30" json:"account_number"`
	IfscCode          *string        `gorm:"size:20" json:"ifsc_code"`
	AccountHolderName *string        `gorm:"size:255" json:"account_holder_name"`
	BankName          *string        `gorm:"size:255" json:"bank_name"`
	AadhaarNumber     *string        `gorm:"size:20" json:"aadhaar_number"`
	PanNumber         *string        `gorm:"size:20" json:"pan_number"`
	UpiID             *string        `gorm:"size:100" json:"upi_id"`
	ApprovalStatus    ApprovalStatus `gorm:"size:20;not null;default:'pending'" json:"approval_status"`
	ApprovedBy        *uint          `json:"approved_by"`
	ApprovedAt        *time.Time     `json:"approved_at"`
	AdminNotes        *string        `gorm:"type:text" json:"admin_notes"`

	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
