package appointment

import (
	"time"

	"github.com/NomadRelief/stall-scheduler/internal/geo"
)

// ===============================
// Service Types
// ===============================

type ServiceType string

const (
	ServiceShower  ServiceType = "shower"
	ServiceLaundry ServiceType = "laundry"
	ServiceHaircut ServiceType = "haircut"
)

func ParseServiceType(s string) (ServiceType, bool) {
	switch ServiceType(s) {
	case ServiceShower, ServiceLaundry, ServiceHaircut:
		return ServiceType(s), true
	}
	return "", false
}

// ===============================
// Usecase inputs / outputs
// ===============================

type BookNearestInput struct {
	UserID       uint
	CompanyID    uint
	Date         string // "2006-01-02"
	Time         string // "15:04"
	ServiceType  string
	UserLocation *geo.Coordinate
	Notes        string
}

type BookDirectedInput struct {
	UserID       uint
	CompanyID    uint
	TrailerID    uint
	StallID      uint
	Date         string
	StartTime    string
	EndTime      string
	ServiceType  string
	UserLocation *geo.Coordinate
	Notes        string
}

type AvailabilityInput struct {
	CompanyID   uint
	ServiceType string
	Date        time.Time
}

type TimeSlot struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type StallAvailability struct {
	StallID   uint       `json:"stall_id"`
	StallName string     `json:"stall_name"`
	TrailerID uint       `json:"trailer_id"`
	Slots     []TimeSlot `json:"slots"`
}
