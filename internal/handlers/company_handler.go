package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/NomadRelief/stall-scheduler/internal/httperr"
	"github.com/NomadRelief/stall-scheduler/internal/httpresp"
	"github.com/NomadRelief/stall-scheduler/internal/middleware"
	"github.com/NomadRelief/stall-scheduler/internal/models"
	"github.com/NomadRelief/stall-scheduler/internal/schedule"
	"github.com/NomadRelief/stall-scheduler/internal/timezone"
)

type CompanyHandler struct {
	db *gorm.DB
}

func NewCompanyHandler(db *gorm.DB) *CompanyHandler {
	return &CompanyHandler{db: db}
}

type UpdateCompanyRequest struct {
	Name           *string          `json:"name"`
	Description    *string          `json:"description"`
	Timezone       *string          `json:"timezone"`
	OpenTime       *string          `json:"open_time"`
	CloseTime      *string          `json:"close_time"`
	OpenDays       *map[string]bool `json:"open_days"`
	MaxAdvanceDays *int             `json:"max_advance_days"`
	ShowerEnabled  *bool            `json:"shower_enabled"`
	LaundryEnabled *bool            `json:"laundry_enabled"`
	HaircutEnabled *bool            `json:"haircut_enabled"`
}

func (h *CompanyHandler) GetMeCompany(c *gin.Context) {
	companyID := c.MustGet(middleware.ContextCompanyID).(uint)

	var company models.Company
	if err := h.db.First(&company, companyID).Error; err != nil {
		httperr.NotFound(c, "company_not_found", "Company not found.")
		return
	}

	httpresp.OK(c, company)
}

func (h *CompanyHandler) UpdateMeCompany(c *gin.Context) {
	companyID := c.MustGet(middleware.ContextCompanyID).(uint)

	var company models.Company
	if err := h.db.First(&company, companyID).Error; err != nil {
		httperr.NotFound(c, "company_not_found", "Company not found.")
		return
	}

	var req UpdateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid company payload.")
		return
	}

	if req.Name != nil {
		company.Name = *req.Name
	}
	if req.Description != nil {
		company.Description = *req.Description
	}
	if req.Timezone != nil {
		if !timezone.IsValid(*req.Timezone) {
			httperr.BadRequest(c, "invalid_timezone", "Unknown timezone.")
			return
		}
		company.Timezone = *req.Timezone
	}
	if req.OpenTime != nil {
		if _, ok := schedule.ParseClock(*req.OpenTime); !ok {
			httperr.BadRequest(c, "invalid_time", "Open time must be HH:MM.")
			return
		}
		company.OpenTime = schedule.To24Hour(*req.OpenTime)
	}
	if req.CloseTime != nil {
		if _, ok := schedule.ParseClock(*req.CloseTime); !ok {
			httperr.BadRequest(c, "invalid_time", "Close time must be HH:MM.")
			return
		}
		company.CloseTime = schedule.To24Hour(*req.CloseTime)
	}
	if req.OpenDays != nil {
		company.OpenDays = *req.OpenDays
	}
	if req.MaxAdvanceDays != nil {
		company.MaxAdvanceDays = *req.MaxAdvanceDays
	}
	if req.ShowerEnabled != nil {
		company.ShowerEnabled = *req.ShowerEnabled
	}
	if req.LaundryEnabled != nil {
		company.LaundryEnabled = *req.LaundryEnabled
	}
	if req.HaircutEnabled != nil {
		company.HaircutEnabled = *req.HaircutEnabled
	}

	if err := h.db.Save(&company).Error; err != nil {
		httperr.Internal(c, "failed_to_update_company", "Could not update company.")
		return
	}

	httpresp.OK(c, company)
}
