package models

import "time"

type QrScan struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	UserID       uint      `gorm:"not null;index" json:"user_id"`
	QrCodeID     uint      `gorm:"not null;index" json:"qr_code_id"`
	PointsEarned int       `gorm:"not null;default:0" json:"points_earned"`
	ScannedAt    time.Time `gorm:"not null" json:"scanned_at"`

	User   User   `gorm:"foreignKey:UserID" json:"user,omitempty"`
	QrCode QrCode `gorm:"foreignKey:QrCodeID" json:"qr_code,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}
