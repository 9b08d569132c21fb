package models

import "time"

type Trailer struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	CompanyID uint    `json:"company_id"`
	Company   Company `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	Name string `gorm:"size:100;not null" json:"name"`

	// Operating-hour overrides, "15:04". Empty falls back to company hours.
	OpenTime  string `gorm:"size:5" json:"open_time"`
	CloseTime string `gorm:"size:5" json:"close_time"`

	SlotDurationMin int `gorm:"default:30" json:"slot_duration_min"`
	BufferMin       int `gorm:"default:0" json:"buffer_min"`
	SlotsPerBlock   int `gorm:"default:1" json:"slots_per_block"`

	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Address   string  `gorm:"size:255" json:"address"`

	PhotoURL string `gorm:"size:255" json:"photo_url"`

	Stalls []Stall `gorm:"foreignKey:TrailerID" json:"stalls,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Hours resolves the effective booking window for this trailer.
func (t *Trailer) Hours(co *Company) (open, close string) {
	open, close = t.OpenTime, t.CloseTime
	if open == "" {
		open = co.OpenTime
	}
	if close == "" {
		close = co.CloseTime
	}
	return open, close
}
