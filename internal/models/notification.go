package models

import "time"

type Notification struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID    uint `gorm:"index" json:"user_id"`
	CompanyID uint `json:"company_id"`

	Message string `gorm:"size:255;not null" json:"message"`

	// success | error | info
	Type string `gorm:"size:20;default:'info'" json:"type"`

	Read bool `gorm:"default:false" json:"read"`

	CreatedAt time.Time `json:"created_at"`
}
