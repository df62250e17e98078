package models

import "time"

type QrCode struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	Code      string     `gorm:"size:64;not null;unique" json:"code"`
	Product   string     `gorm:"size:255" json:"product"`
	Details   *string    `gorm:"type:text" json:"details"`
	Points    int        `gorm:"not null;default:0" json:"points"`
	IsScanned bool       `gorm:"not null;default:false" json:"is_scanned"`
	ScannedBy *uint      `json:"scanned_by"`
	ScannedAt *time.Time `json:"scanned_at"`
	ExpiresAt *time.Time `json:"expires_at"`
	IsExpired bool       `gorm:"not null;default:false" json:"is_expired"`
	CreatedBy *uint      `json:"created_by"`

	Scanner *User  `gorm:"foreignKey:ScannedBy" json:"scanner,omitempty"`
	Creator *Admin `gorm:"foreignKey:CreatedBy" json:"creator,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
