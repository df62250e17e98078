package models

import "time"

type CalculatorData struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Category    string  `gorm:"size:100;not null" json:"category"`
	Name        string  `gorm:"size:255;not null" json:"name"`
	Value       float64 `gorm:"type:numeric(12,4);not null" json:"value"`
	Unit        *string `gorm:"size:30" json:"unit"`
	Description *string `gorm:"type:text" json:"description"`
	Status      int     `gorm:"not null;default:1" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (CalculatorData) TableName() string {
	return "calculator_data"
}
