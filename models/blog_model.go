package models

import "time"

type Blog struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Title       string  `gorm:"size:255;not null" json:"title"`
	Description string  `gorm:"type:text" json:"description"`
	Img         *string `gorm:"size:255" json:"img"`
	Type        int     `gorm:"not null;default:1" json:"type"`
	Status      int     `gorm:"not null;default:1" json:"status"`
	CreatedBy   *uint   `json:"created_by"`

	Creator *Admin `gorm:"foreignKey:CreatedBy" json:"creator,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
