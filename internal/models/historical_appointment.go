package models

import "time"

// HistoricalAppointment is the archived copy of an appointment after the
// sweep removes it from the live table.
type HistoricalAppointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	OriginalID uint   `gorm:"index" json:"original_id"`
	BatchID    string `gorm:"size:36;index" json:"batch_id"`

	UserID    uint `json:"user_id"`
	CompanyID uint `gorm:"index" json:"company_id"`
	TrailerID uint `json:"trailer_id"`
	StallID   uint `json:"stall_id"`

	ServiceType string `gorm:"size:20" json:"service_type"`

	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
	DurationMin int       `json:"duration_min"`

	Status string `gorm:"size:20" json:"status"`
	Reason string `gorm:"size:20" json:"reason"`

	Notes string `gorm:"size:255" json:"notes"`

	MovedToHistoryAt time.Time `json:"moved_to_history_at"`
	CreatedAt        time.Time `json:"created_at"`
}
