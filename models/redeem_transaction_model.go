package models

import "time"

// RedeemTransaction is a user's request to convert points into money. Its
// status reaches "completed" only through services.CompletePayout, which
// inserts the matching RedeemPayout in the same database transaction.
type RedeemTransaction struct {
	ID            uint         `gorm:"primaryKey" json:"id"`
	UserID        uint         `gorm:"not null;index" json:"user_id"`
	Amount        float64      `gorm:"type:numeric(10,2);not null" json:"amount"`
	OrderID       string       `gorm:"size:50;not null;unique" json:"order_id"`
	Status        RedeemStatus `gorm:"size:20;not null;default:'pending'" json:"status"`
	PaymentStatus *string      `gorm:"size:20" json:"payment_status"`
	Remarks       *string      `gorm:"type:text" json:"remarks"`
	ProcessedBy   *uint        `json:"processed_by"`
	ProcessedAt   *time.Time   `json:"processed_at"`

	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
