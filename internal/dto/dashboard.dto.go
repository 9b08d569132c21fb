package dto

import "time"

// DashboardDTO is the stall × time-slot grid the admin dashboard renders.
type DashboardDTO struct {
	Date     string             `json:"date"`
	Slots    []string           `json:"slots"`
	Trailers []DashboardTrailer `json:"trailers"`
}

type DashboardTrailer struct {
	TrailerID   uint             `json:"trailer_id"`
	TrailerName string           `json:"trailer_name"`
	OpenTime    string           `json:"open_time"`
	CloseTime   string           `json:"close_time"`
	Stalls      []DashboardStall `json:"stalls"`
}

type DashboardStall struct {
	StallID     uint   `json:"stall_id"`
	StallName   string `json:"stall_name"`
	ServiceType string `json:"service_type"`

	// Operator-set condition; occupancy lives in the cells.
	Condition string `json:"condition"`

	Cells []DashboardCell `json:"cells"`
}

// DashboardCell is one slot on one stall: free, or occupied by an
// appointment with its status.
type DashboardCell struct {
	Slot          string `json:"slot"`
	Occupied      bool   `json:"occupied"`
	AppointmentID uint   `json:"appointment_id,omitempty"`
	Status        string `json:"status,omitempty"`
}

type AppointmentListDTO struct {
	ID          uint      `json:"id"`
	Reference   string    `json:"reference"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
	Status      string    `json:"status"`
	ServiceType string    `json:"service_type"`
	StallID     uint      `json:"stall_id"`
	TrailerID   uint      `json:"trailer_id"`
	UserID      uint      `json:"user_id"`
}
