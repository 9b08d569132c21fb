package models

import "time"

type Stall struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	CompanyID uint `json:"company_id"`
	TrailerID uint `gorm:"index" json:"trailer_id"`

	Name string `gorm:"size:100;not null" json:"name"`

	// Operator-set condition only. Occupancy is derived from appointments.
	Status string `gorm:"size:20;default:'available'" json:"status"`

	ServiceType string `gorm:"size:20;not null" json:"service_type"`

	DurationMin int `gorm:"default:30" json:"duration_min"`
	BufferMin   int `gorm:"default:0" json:"buffer_min"`

	PhotoURL string `gorm:"size:255" json:"photo_url"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
