package handlers

import (
	"context"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/NomadRelief/stall-scheduler/internal/dto"
	"github.com/NomadRelief/stall-scheduler/internal/httperr"
	"github.com/NomadRelief/stall-scheduler/internal/httpresp"
	"github.com/NomadRelief/stall-scheduler/internal/middleware"
	"github.com/NomadRelief/stall-scheduler/internal/models"
	ucAppointment "github.com/NomadRelief/stall-scheduler/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	db         *gorm.DB
	transition *ucAppointment.Transition
	listByDate *ucAppointment.ListByDate
}

func NewAppointmentHandler(
	db *gorm.DB,
	transition *ucAppointment.Transition,
	listByDate *ucAppointment.ListByDate,
) *AppointmentHandler {
	return &AppointmentHandler{
		db:         db,
		transition: transition,
		listByDate: listByDate,
	}
}

// ======================================================
// LIST
// ======================================================

func (h *AppointmentHandler) ListByDate(c *gin.Context) {
	companyID := c.MustGet(middleware.ContextCompanyID).(uint)

	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "A date is required.")
		return
	}

	var company models.Company
	if err := h.db.First(&company, companyID).Error; err != nil {
		httperr.Internal(c, "company_not_found", "Company not found.")
		return
	}

	date, err := parseDateInCompany(&company, dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Invalid date.")
		return
	}

	aps, err := h.listByDate.Execute(c.Request.Context(), companyID, date)
	if err != nil {
		httperr.Internal(c, "failed_to_list", "Could not list appointments.")
		return
	}

	out := make([]dto.AppointmentListDTO, 0, len(aps))
	for _, ap := range aps {
		out = append(out, dto.AppointmentListDTO{
			ID:          ap.ID,
			Reference:   ap.Reference,
			StartTime:   ap.StartTime,
			EndTime:     ap.EndTime,
			Status:      ap.Status,
			ServiceType: ap.ServiceType,
			StallID:     ap.StallID,
			TrailerID:   ap.TrailerID,
			UserID:      ap.UserID,
		})
	}

	httpresp.List(c, out)
}

// ======================================================
// TRANSITIONS
// ======================================================

func (h *AppointmentHandler) Start(c *gin.Context) {
	h.applyTransition(c, h.transition.Start)
}

func (h *AppointmentHandler) Complete(c *gin.Context) {
	h.applyTransition(c, h.transition.Complete)
}

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	h.applyTransition(c, h.transition.Cancel)
}

func (h *AppointmentHandler) applyTransition(
	c *gin.Context,
	move func(ctx context.Context, companyID, appointmentID uint) (*models.Appointment, error),
) {
	companyID := c.MustGet(middleware.ContextCompanyID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid appointment id.")
		return
	}

	ap, err := move(c.Request.Context(), companyID, uint(id))
	if err != nil {
		if httperr.IsBusiness(err, "appointment_not_found") {
			httperr.NotFound(c, "appointment_not_found", "Appointment not found.")
			return
		}
		if httperr.IsBusiness(err, "invalid_state") {
			httperr.BadRequest(c, "invalid_state", "The appointment cannot change to that state.")
			return
		}
		httperr.Internal(c, "failed_to_update_appointment", "Could not update the appointment.")
		return
	}

	httpresp.OK(c, ap)
}
