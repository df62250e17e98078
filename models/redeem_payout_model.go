package models

import "time"

// RedeemPayout records money actually sent against a redeem transaction.
// The unique index on RedeemTransactionID is what turns a double-submitted
// completion into a conflict instead of a second payment.
type RedeemPayout struct {
	ID                  uint         `gorm:"primaryKey" json:"id"`
	RedeemTransactionID uint         `gorm:"not null;uniqueIndex" json:"redeem_transaction_id"`
	UserID              uint         `gorm:"not null;index" json:"user_id"`
	Amount              float64      `gorm:"type:numeric(10,2);not null" json:"amount"`
	PayoutMethod        PayoutMethod `gorm:"size:20;not null;default:'bank'" json:"payout_method"`
	PayoutReference     *string      `gorm:"size:100" json:"payout_reference"`
	Status              PayoutStatus `gorm:"size:20;not null;default:'pending'" json:"status"`
	ProcessedBy         *uint        `json:"processed_by"`
	ProcessedAt         *time.Time   `json:"processed_at"`
	AdminNotes          *string      `gorm:"type:text" json:"admin_notes"`

	User              User              `gorm:"foreignKey:UserID" json:"user,omitempty"`
	RedeemTransaction RedeemTransaction `gorm:"foreignKey:RedeemTransactionID" json:"redeem_transaction,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
