package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/NomadRelief/stall-scheduler/internal/domain/appointment"
	"github.com/NomadRelief/stall-scheduler/internal/httperr"
	"github.com/NomadRelief/stall-scheduler/internal/httpresp"
	"github.com/NomadRelief/stall-scheduler/internal/middleware"
	"github.com/NomadRelief/stall-scheduler/internal/models"
)

type StallHandler struct {
	db *gorm.DB
}

func NewStallHandler(db *gorm.DB) *StallHandler {
	return &StallHandler{db: db}
}

type CreateStallRequest struct {
	TrailerID   uint   `json:"trailer_id" binding:"required"`
	Name        string `json:"name" binding:"required"`
	ServiceType string `json:"service_type" binding:"required"`
	DurationMin int    `json:"duration_min"`
	BufferMin   int    `json:"buffer_min"`
}

type UpdateStallRequest struct {
	Name        string `json:"name"`
	ServiceType string `json:"service_type"`
	Status      string `json:"status"`
	DurationMin int    `json:"duration_min"`
	BufferMin   int    `json:"buffer_min"`
}

func (h *StallHandler) List(c *gin.Context) {
	companyID := c.MustGet(middleware.ContextCompanyID).(uint)

	var stalls []models.Stall
	q := h.db.Where("company_id = ?", companyID)
	if trailerID := c.Query("trailer_id"); trailerID != "" {
		q = q.Where("trailer_id = ?", trailerID)
	}
	q.Order("trailer_id ASC, id ASC").Find(&stalls)

	httpresp.List(c, stalls)
}

func (h *StallHandler) Create(c *gin.Context) {
	companyID := c.MustGet(middleware.ContextCompanyID).(uint)

	var req CreateStallRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid stall payload.")
		return
	}

	if _, ok := domain.ParseServiceType(req.ServiceType); !ok {
		httperr.BadRequest(c, "invalid_service_type", "Service must be shower, laundry or haircut.")
		return
	}

	var trailer models.Trailer
	if err := h.db.
		Where("id = ? AND company_id = ?", req.TrailerID, companyID).
		First(&trailer).Error; err != nil {
		httperr.NotFound(c, "trailer_not_found", "Trailer not found.")
		return
	}

	stall := models.Stall{
		CompanyID:   companyID,
		TrailerID:   trailer.ID,
		Name:        req.Name,
		ServiceType: req.ServiceType,
		Status:      string(domain.StallAvailable),
		DurationMin: req.DurationMin,
		BufferMin:   req.BufferMin,
	}
	if stall.DurationMin <= 0 {
		stall.DurationMin = trailer.SlotDurationMin
	}

	if err := h.db.Create(&stall).Error; err != nil {
		httperr.Internal(c, "failed_to_create_stall", "Could not create stall.")
		return
	}

	c.JSON(201, stall)
}

func (h *StallHandler) Update(c *gin.Context) {
	companyID := c.MustGet(middleware.ContextCompanyID).(uint)
	id := c.Param("id")

	var stall models.Stall
	if err := h.db.
		Where("id = ? AND company_id = ?", id, companyID).
		First(&stall).Error; err != nil {
		httperr.NotFound(c, "stall_not_found", "Stall not found.")
		return
	}

	var req UpdateStallRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid stall payload.")
		return
	}

	if req.Name != "" {
		stall.Name = req.Name
	}
	if req.ServiceType != "" {
		if _, ok := domain.ParseServiceType(req.ServiceType); !ok {
			httperr.BadRequest(c, "invalid_service_type", "Service must be shower, laundry or haircut.")
			return
		}
		stall.ServiceType = req.ServiceType
	}
	if req.Status != "" {
		// normalization boundary: legacy spellings stop here
		status, ok := domain.ParseStallStatus(req.Status)
		if !ok {
			httperr.BadRequest(c, "invalid_status", "Unknown stall status.")
			return
		}
		stall.Status = string(status)
	}
	if req.DurationMin > 0 {
		stall.DurationMin = req.DurationMin
	}
	if req.BufferMin > 0 {
		stall.BufferMin = req.BufferMin
	}

	if err := h.db.Save(&stall).Error; err != nil {
		httperr.Internal(c, "failed_to_update_stall", "Could not update stall.")
		return
	}

	httpresp.OK(c, stall)
}
