package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/NomadRelief/stall-scheduler/internal/domain/appointment"
	"github.com/NomadRelief/stall-scheduler/internal/geo"
	"github.com/NomadRelief/stall-scheduler/internal/httperr"
	"github.com/NomadRelief/stall-scheduler/internal/httpresp"
	"github.com/NomadRelief/stall-scheduler/internal/models"
	ucAppointment "github.com/NomadRelief/stall-scheduler/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

// BookingHandler serves the two public booking entrypoints: automatic
// nearest-stall selection and the caller-directed variant.
type BookingHandler struct {
	db           *gorm.DB
	bookNearest  *ucAppointment.BookNearest
	bookDirected *ucAppointment.BookDirected
	availability *ucAppointment.GetAvailability
}

func NewBookingHandler(
	db *gorm.DB,
	bookNearest *ucAppointment.BookNearest,
	bookDirected *ucAppointment.BookDirected,
	availability *ucAppointment.GetAvailability,
) *BookingHandler {
	return &BookingHandler{
		db:           db,
		bookNearest:  bookNearest,
		bookDirected: bookDirected,
		availability: availability,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type AutoBookingRequest struct {
	UserID        uint            `json:"user_id" binding:"required"`
	CompanyID     uint            `json:"company_id" binding:"required"`
	Date          string          `json:"date" binding:"required"`
	PreferredTime string          `json:"preferred_time" binding:"required"`
	ServiceType   string          `json:"service_type" binding:"required"`
	UserLocation  *geo.Coordinate `json:"user_location"`
	Notes         string          `json:"notes"`
}

type DirectedBookingRequest struct {
	UserID       uint            `json:"user_id" binding:"required"`
	CompanyID    uint            `json:"company_id" binding:"required"`
	Date         string          `json:"date" binding:"required"`
	ServiceType  string          `json:"service_type" binding:"required"`
	StallID      uint            `json:"stall_id" binding:"required"`
	TrailerID    uint            `json:"trailer_id" binding:"required"`
	StartTime    string          `json:"start_time" binding:"required"`
	EndTime      string          `json:"end_time" binding:"required"`
	UserLocation *geo.Coordinate `json:"user_location"`
	Notes        string          `json:"notes"`
}

// ======================================================
// AUTO (nearest stall)
// ======================================================

func (h *BookingHandler) CreateAuto(c *gin.Context) {
	var req AutoBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid booking payload.")
		return
	}

	result, err := h.bookNearest.Execute(c.Request.Context(), domain.BookNearestInput{
		UserID:       req.UserID,
		CompanyID:    req.CompanyID,
		Date:         req.Date,
		Time:         req.PreferredTime,
		ServiceType:  req.ServiceType,
		UserLocation: req.UserLocation,
		Notes:        req.Notes,
	})
	if err != nil {
		writeBookingError(c, err)
		return
	}

	c.JSON(201, gin.H{
		"success":     true,
		"appointment": result.Appointment,
		"stall":       result.Stall,
		"trailer":     result.Trailer,
		"distance_km": result.DistanceKm,
	})
}

// ======================================================
// DIRECTED (stall pre-chosen by the client)
// ======================================================

func (h *BookingHandler) CreateDirected(c *gin.Context) {
	var req DirectedBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid booking payload.")
		return
	}

	result, err := h.bookDirected.Execute(c.Request.Context(), domain.BookDirectedInput{
		UserID:       req.UserID,
		CompanyID:    req.CompanyID,
		TrailerID:    req.TrailerID,
		StallID:      req.StallID,
		Date:         req.Date,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		ServiceType:  req.ServiceType,
		UserLocation: req.UserLocation,
		Notes:        req.Notes,
	})
	if err != nil {
		writeBookingError(c, err)
		return
	}

	c.JSON(201, gin.H{
		"success":     true,
		"appointment": result.Appointment,
		"distance_km": result.DistanceKm,
	})
}

// ======================================================
// AVAILABILITY (public, by company slug)
// ======================================================

func (h *BookingHandler) AvailabilityForClient(c *gin.Context) {
	slug := c.Param("slug")

	var company models.Company
	if err := h.db.Where("slug = ?", slug).First(&company).Error; err != nil {
		httperr.NotFound(c, "company_not_found", "Company not found.")
		return
	}

	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "A date is required.")
		return
	}

	date, err := parseDateInCompany(&company, dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Invalid date.")
		return
	}

	out, err := h.availability.Execute(c.Request.Context(), domain.AvailabilityInput{
		CompanyID:   company.ID,
		ServiceType: c.Query("service"),
		Date:        date,
	})
	if err != nil {
		writeBookingError(c, err)
		return
	}

	httpresp.List(c, out)
}

// ======================================================
// ERROR MAPPING
// ======================================================

func writeBookingError(c *gin.Context, err error) {
	var be httperr.BusinessError
	if !errors.As(err, &be) {
		httperr.Internal(c, "booking_failed", "Could not process the booking.")
		return
	}

	switch be.Code {
	case "company_not_found", "no_available_stall", "stall_not_found", "trailer_not_found", "appointment_not_found":
		httperr.NotFound(c, be.Code, bookingErrorMessage(be.Code))
	default:
		httperr.BadRequest(c, be.Code, bookingErrorMessage(be.Code))
	}
}

func bookingErrorMessage(code string) string {
	switch code {
	case "company_not_found":
		return "Company not found."
	case "no_available_stall":
		return "No stall is available at the requested time."
	case "stall_not_found":
		return "Stall not found."
	case "trailer_not_found":
		return "Trailer not found."
	case "appointment_not_found":
		return "Appointment not found."
	case "closed_day":
		return "The company is not open on the requested day."
	case "service_disabled":
		return "This service is not offered by the company."
	case "service_mismatch":
		return "The stall does not offer the requested service."
	case "stall_unavailable":
		return "The stall is not available today."
	case "stall_not_in_trailer":
		return "The stall does not belong to the given trailer."
	case "outside_operating_hours":
		return "The requested time is outside operating hours."
	case "time_conflict":
		return "The slot is already booked."
	case "in_the_past":
		return "The requested time is in the past."
	case "too_far_ahead":
		return "The requested date is beyond the booking window."
	case "invalid_date_or_time":
		return "Invalid date or time."
	case "invalid_service_type":
		return "Service must be shower, laundry or haircut."
	}
	return "Booking rejected."
}
