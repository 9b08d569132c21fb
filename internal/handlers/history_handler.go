package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/NomadRelief/stall-scheduler/internal/httperr"
	"github.com/NomadRelief/stall-scheduler/internal/httpresp"
	"github.com/NomadRelief/stall-scheduler/internal/middleware"
	"github.com/NomadRelief/stall-scheduler/internal/models"
	ucHistory "github.com/NomadRelief/stall-scheduler/internal/usecase/history"
)

type HistoryHandler struct {
	db    *gorm.DB
	sweep *ucHistory.Sweep
}

func NewHistoryHandler(db *gorm.DB, sweep *ucHistory.Sweep) *HistoryHandler {
	return &HistoryHandler{db: db, sweep: sweep}
}

func (h *HistoryHandler) List(c *gin.Context) {
	companyID := c.MustGet(middleware.ContextCompanyID).(uint)

	var company models.Company
	if err := h.db.First(&company, companyID).Error; err != nil {
		httperr.Internal(c, "company_not_found", "Company not found.")
		return
	}

	now := nowInCompany(&company)
	from := now.AddDate(0, -1, 0)
	to := now

	if fromStr := c.Query("from"); fromStr != "" {
		parsed, err := parseDateInCompany(&company, fromStr)
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "Invalid from date.")
			return
		}
		from = parsed
	}
	if toStr := c.Query("to"); toStr != "" {
		parsed, err := parseDateInCompany(&company, toStr)
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "Invalid to date.")
			return
		}
		to = parsed.Add(24 * time.Hour)
	}

	var rows []models.HistoricalAppointment
	h.db.
		Where(
			"company_id = ? AND start_time >= ? AND start_time < ?",
			companyID, from, to,
		).
		Order("start_time DESC").
		Find(&rows)

	httpresp.List(c, rows)
}

// RunSweep is the on-demand trigger behind the admin control button; the
// same sweep also runs hourly on the cron.
func (h *HistoryHandler) RunSweep(c *gin.Context) {
	count, err := h.sweep.Execute(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "sweep_failed", "The archival sweep failed.")
		return
	}

	httpresp.OK(c, gin.H{"archived": count})
}
