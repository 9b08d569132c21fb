package handlers

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/NomadRelief/stall-scheduler/internal/cache"
	domain "github.com/NomadRelief/stall-scheduler/internal/domain/appointment"
	"github.com/NomadRelief/stall-scheduler/internal/dto"
	"github.com/NomadRelief/stall-scheduler/internal/httperr"
	"github.com/NomadRelief/stall-scheduler/internal/middleware"
	"github.com/NomadRelief/stall-scheduler/internal/models"
	"github.com/NomadRelief/stall-scheduler/internal/schedule"
)

// Dashboard responses are cached briefly; the grid is recomputed at most
// every dashboardCacheTTL per company and date.
const dashboardCacheTTL = 30 * time.Second

type DashboardHandler struct {
	db    *gorm.DB
	cache *cache.Client
}

func NewDashboardHandler(db *gorm.DB, cache *cache.Client) *DashboardHandler {
	return &DashboardHandler{db: db, cache: cache}
}

// Grid renders the stall × time-slot view for one day. Occupancy is derived
// purely from appointments; the stall's manual status is reported separately
// as its condition.
func (h *DashboardHandler) Grid(c *gin.Context) {
	companyID := c.MustGet(middleware.ContextCompanyID).(uint)

	var company models.Company
	if err := h.db.First(&company, companyID).Error; err != nil {
		httperr.Internal(c, "company_not_found", "Company not found.")
		return
	}

	dateStr := c.Query("date")
	if dateStr == "" {
		dateStr = nowInCompany(&company).Format("2006-01-02")
	}

	date, err := parseDateInCompany(&company, dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Invalid date.")
		return
	}

	cacheKey := fmt.Sprintf("dashboard:%d:%s", companyID, dateStr)
	if payload, ok := h.cache.GetJSON(c.Request.Context(), cacheKey); ok {
		c.Data(200, "application/json", payload)
		return
	}

	grid, err := h.buildGrid(&company, date)
	if err != nil {
		httperr.Internal(c, "failed_to_build_dashboard", "Could not build the dashboard.")
		return
	}

	payload, err := json.Marshal(grid)
	if err != nil {
		httperr.Internal(c, "failed_to_build_dashboard", "Could not build the dashboard.")
		return
	}

	h.cache.SetJSON(c.Request.Context(), cacheKey, payload, dashboardCacheTTL)
	c.Data(200, "application/json", payload)
}

func (h *DashboardHandler) buildGrid(company *models.Company, date time.Time) (*dto.DashboardDTO, error) {
	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	dayEnd := dayStart.Add(24 * time.Hour)

	var trailers []models.Trailer
	if err := h.db.
		Preload("Stalls").
		Where("company_id = ?", company.ID).
		Order("id ASC").
		Find(&trailers).Error; err != nil {
		return nil, err
	}

	var appointments []models.Appointment
	if err := h.db.
		Where(
			"company_id = ? AND start_time >= ? AND start_time < ?",
			company.ID, dayStart, dayEnd,
		).
		Order("start_time ASC").
		Find(&appointments).Error; err != nil {
		return nil, err
	}

	grid := &dto.DashboardDTO{
		Date:     dayStart.Format("2006-01-02"),
		Slots:    schedule.GenerateTimeSlots(company.OpenTime, company.CloseTime),
		Trailers: make([]dto.DashboardTrailer, 0, len(trailers)),
	}

	for ti := range trailers {
		trailer := &trailers[ti]
		openHM, closeHM := trailer.Hours(company)
		slots := schedule.GenerateTimeSlots(openHM, closeHM)

		row := dto.DashboardTrailer{
			TrailerID:   trailer.ID,
			TrailerName: trailer.Name,
			OpenTime:    openHM,
			CloseTime:   closeHM,
			Stalls:      make([]dto.DashboardStall, 0, len(trailer.Stalls)),
		}

		for _, stall := range trailer.Stalls {
			cells := make([]dto.DashboardCell, 0, len(slots))

			for _, label := range slots {
				startMin, _ := schedule.ParseClock(label)
				slotStart := dayStart.Add(time.Duration(startMin) * time.Minute)
				slotEnd := slotStart.Add(schedule.SlotIntervalMin * time.Minute)

				cell := dto.DashboardCell{Slot: label}
				for i := range appointments {
					ap := &appointments[i]
					if ap.StallID != stall.ID {
						continue
					}
					status, ok := domain.ParseStatus(ap.Status)
					if !ok || !status.IsLive() {
						continue
					}
					if domain.Overlaps(slotStart, slotEnd, ap.StartTime, ap.EndTime) {
						cell.Occupied = true
						cell.AppointmentID = ap.ID
						cell.Status = string(status)
						break
					}
				}
				cells = append(cells, cell)
			}

			row.Stalls = append(row.Stalls, dto.DashboardStall{
				StallID:     stall.ID,
				StallName:   stall.Name,
				ServiceType: stall.ServiceType,
				Condition:   stall.Status,
				Cells:       cells,
			})
		}

		grid.Trailers = append(grid.Trailers, row)
	}

	return grid, nil
}
