package models

import "time"

type PaymentTransaction struct {
	ID              uint    `gorm:"primaryKey" json:"id"`
	UserID          uint    `gorm:"not null;index" json:"user_id"`
	OrderID         string  `gorm:"size:50;not null" json:"order_id"`
	Amount          float64 `gorm:"type:numeric(10,2);not null" json:"amount"`
	Status          string  `gorm:"size:20;not null;default:'pending'" json:"status"`
	GatewayResponse *string `gorm:"type:text" json:"gateway_response"`
	ErrorMessage    *string `gorm:"type:text" json:"error_message"`

	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
