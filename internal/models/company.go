package models

import "time"

type Company struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"size:100;not null" json:"name"`
	Slug        string `gorm:"size:100;uniqueIndex;not null" json:"slug"`
	Description string `gorm:"size:255" json:"description"`
	OwnerID     uint   `json:"owner_id"`

	Timezone string `gorm:"size:50" json:"timezone"`

	// Daily booking window, "15:04". Trailers may override.
	OpenTime  string `gorm:"size:5;default:'09:00'" json:"open_time"`
	CloseTime string `gorm:"size:5;default:'17:00'" json:"close_time"`

	// Lowercase weekday name -> accepts bookings that day.
	OpenDays map[string]bool `gorm:"serializer:json" json:"open_days"`

	MaxAdvanceDays int `gorm:"default:14" json:"max_advance_days"`

	ShowerEnabled  bool `gorm:"default:true" json:"shower_enabled"`
	LaundryEnabled bool `gorm:"default:true" json:"laundry_enabled"`
	HaircutEnabled bool `gorm:"default:false" json:"haircut_enabled"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IsOpenOn reports whether the company accepts bookings on the given weekday.
// A company with no open-days map configured is treated as closed every day.
func (co *Company) IsOpenOn(day time.Weekday) bool {
	if co.OpenDays == nil {
		return false
	}
	name := map[time.Weekday]string{
		time.Sunday:    "sunday",
		time.Monday:    "monday",
		time.Tuesday:   "tuesday",
		time.Wednesday: "wednesday",
		time.Thursday:  "thursday",
		time.Friday:    "friday",
		time.Saturday:  "saturday",
	}[day]
	return co.OpenDays[name]
}

func (co *Company) ServiceEnabled(service string) bool {
	switch service {
	case "shower":
		return co.ShowerEnabled
	case "laundry":
		return co.LaundryEnabled
	case "haircut":
		return co.HaircutEnabled
	}
	return false
}
