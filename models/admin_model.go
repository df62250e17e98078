package models

import "time"

type Admin struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	Username  string     `gorm:"size:100;not null;unique" json:"username"`
	Email     string     `gorm:"size:255;not null;unique" json:"email"`
	Password  string     `gorm:"not null" json:"-"`
	FirstName string     `gorm:"size:100" json:"first_name"`
	LastName  string     `gorm:"size:100" json:"last_name"`
	Role      string     `gorm:"size:20;not null;default:'admin'" json:"role"`
	Status    int        `gorm:"not null;default:1" json:"status"`
	LastLogin *time.Time `json:"last_login"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
