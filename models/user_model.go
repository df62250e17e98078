package models

import "time"

type User struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	FirstName string  `gorm:"size:100;not null" json:"first_name"`
	LastName  string  `gorm:"size:100" json:"last_name"`
	MNumber   string  `gorm:"size:20;not null;unique" json:"m_number"`
	Email     *string `gorm:"size:255" json:"email"`
	City      *string `gorm:"size:100" json:"city"`
	UserType  string  `gorm:"size:30;not null;default:'electrician'" json:"user_type"`
	Status    int     `gorm:"not null;default:0" json:"status"`
	Points    int     `gorm:"not null;default:0" json:"points"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
