package models

import "time"

// PointValueSetting maps loyalty points to rupees. Only one row is active at
// a time; updates rewrite the active row in place.
type PointValueSetting struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	Points    int     `gorm:"not null" json:"points"`
	Rupees    float64 `gorm:"type:numeric(10,2);not null" json:"rupees"`
	IsActive  bool    `gorm:"not null;default:true" json:"is_active"`
	CreatedBy *uint   `json:"created_by"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
