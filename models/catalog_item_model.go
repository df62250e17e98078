package models

import "time"

type CatalogItem struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	Title     string  `gorm:"size:255;not null" json:"title"`
	Link      string  `gorm:"size:255;not null" json:"link"`
	FileType  string  `gorm:"size:20;not null;default:'pdf'" json:"file_type"`
	FileSize  *string `gorm:"size:30" json:"file_size"`
	Status    int     `gorm:"not null;default:1" json:"status"`
	CreatedBy *uint   `json:"created_by"`

	Creator *Admin `gorm:"foreignKey:CreatedBy" json:"creator,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (CatalogItem) TableName() string {
	return "catalog"
}
