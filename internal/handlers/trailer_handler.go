package handlers

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/NomadRelief/stall-scheduler/internal/geo"
	"github.com/NomadRelief/stall-scheduler/internal/httperr"
	"github.com/NomadRelief/stall-scheduler/internal/httpresp"
	"github.com/NomadRelief/stall-scheduler/internal/middleware"
	"github.com/NomadRelief/stall-scheduler/internal/models"
	"github.com/NomadRelief/stall-scheduler/internal/schedule"
	"github.com/NomadRelief/stall-scheduler/internal/storage"
)

type TrailerHandler struct {
	db       *gorm.DB
	uploader *storage.Uploader
}

func NewTrailerHandler(db *gorm.DB, uploader *storage.Uploader) *TrailerHandler {
	return &TrailerHandler{db: db, uploader: uploader}
}

type CreateTrailerRequest struct {
	Name string `json:"name" binding:"required"`

	OpenTime  string `json:"open_time"`
	CloseTime string `json:"close_time"`

	SlotDurationMin int `json:"slot_duration_min"`
	BufferMin       int `json:"buffer_min"`
	SlotsPerBlock   int `json:"slots_per_block"`

	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	// Legacy form still sent by older clients: "lat,lng" in one string.
	LatLng  string `json:"lat_lng"`
	Address string `json:"address"`
}

func (h *TrailerHandler) List(c *gin.Context) {
	companyID := c.MustGet(middleware.ContextCompanyID).(uint)

	var trailers []models.Trailer
	h.db.
		Preload("Stalls").
		Where("company_id = ?", companyID).
		Order("id ASC").
		Find(&trailers)

	httpresp.List(c, trailers)
}

func (h *TrailerHandler) Create(c *gin.Context) {
	companyID := c.MustGet(middleware.ContextCompanyID).(uint)

	var req CreateTrailerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid trailer payload.")
		return
	}

	for _, hm := range []string{req.OpenTime, req.CloseTime} {
		if hm == "" {
			continue
		}
		if _, ok := schedule.ParseClock(hm); !ok {
			httperr.BadRequest(c, "invalid_time", "Operating hours must be HH:MM.")
			return
		}
	}

	trailer := models.Trailer{
		CompanyID:       companyID,
		Name:            req.Name,
		OpenTime:        schedule.To24Hour(req.OpenTime),
		CloseTime:       schedule.To24Hour(req.CloseTime),
		SlotDurationMin: req.SlotDurationMin,
		BufferMin:       req.BufferMin,
		SlotsPerBlock:   req.SlotsPerBlock,
		Address:         req.Address,
	}
	if trailer.SlotDurationMin <= 0 {
		trailer.SlotDurationMin = schedule.SlotIntervalMin
	}

	// Geocoding is resolved once at write time; the row stores numbers.
	switch {
	case req.Latitude != nil && req.Longitude != nil:
		trailer.Latitude = *req.Latitude
		trailer.Longitude = *req.Longitude
	case req.LatLng != "":
		coord, ok := geo.ParseLatLng(req.LatLng)
		if !ok {
			httperr.BadRequest(c, "invalid_location", "Location must be \"lat,lng\".")
			return
		}
		trailer.Latitude = coord.Lat
		trailer.Longitude = coord.Lng
	}

	if err := h.db.Create(&trailer).Error; err != nil {
		httperr.Internal(c, "failed_to_create_trailer", "Could not create trailer.")
		return
	}

	c.JSON(201, trailer)
}

func (h *TrailerHandler) Update(c *gin.Context) {
	companyID := c.MustGet(middleware.ContextCompanyID).(uint)
	id := c.Param("id")

	var trailer models.Trailer
	if err := h.db.
		Where("id = ? AND company_id = ?", id, companyID).
		First(&trailer).Error; err != nil {
		httperr.NotFound(c, "trailer_not_found", "Trailer not found.")
		return
	}

	var req CreateTrailerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid trailer payload.")
		return
	}

	if req.Name != "" {
		trailer.Name = req.Name
	}
	if req.OpenTime != "" {
		if _, ok := schedule.ParseClock(req.OpenTime); !ok {
			httperr.BadRequest(c, "invalid_time", "Operating hours must be HH:MM.")
			return
		}
		trailer.OpenTime = schedule.To24Hour(req.OpenTime)
	}
	if req.CloseTime != "" {
		if _, ok := schedule.ParseClock(req.CloseTime); !ok {
			httperr.BadRequest(c, "invalid_time", "Operating hours must be HH:MM.")
			return
		}
		trailer.CloseTime = schedule.To24Hour(req.CloseTime)
	}
	if req.SlotDurationMin > 0 {
		trailer.SlotDurationMin = req.SlotDurationMin
	}
	if req.BufferMin > 0 {
		trailer.BufferMin = req.BufferMin
	}
	if req.SlotsPerBlock > 0 {
		trailer.SlotsPerBlock = req.SlotsPerBlock
	}
	if req.Address != "" {
		trailer.Address = req.Address
	}
	if req.Latitude != nil && req.Longitude != nil {
		trailer.Latitude = *req.Latitude
		trailer.Longitude = *req.Longitude
	} else if req.LatLng != "" {
		coord, ok := geo.ParseLatLng(req.LatLng)
		if !ok {
			httperr.BadRequest(c, "invalid_location", "Location must be \"lat,lng\".")
			return
		}
		trailer.Latitude = coord.Lat
		trailer.Longitude = coord.Lng
	}

	if err := h.db.Save(&trailer).Error; err != nil {
		httperr.Internal(c, "failed_to_update_trailer", "Could not update trailer.")
		return
	}

	httpresp.OK(c, trailer)
}

// UploadPhoto accepts a multipart image, converts it to webp and stores it
// in S3, recording the resulting URL on the trailer.
func (h *TrailerHandler) UploadPhoto(c *gin.Context) {
	companyID := c.MustGet(middleware.ContextCompanyID).(uint)
	id := c.Param("id")

	var trailer models.Trailer
	if err := h.db.
		Where("id = ? AND company_id = ?", id, companyID).
		First(&trailer).Error; err != nil {
		httperr.NotFound(c, "trailer_not_found", "Trailer not found.")
		return
	}

	file, err := c.FormFile("photo")
	if err != nil {
		httperr.BadRequest(c, "missing_photo", "A photo file is required.")
		return
	}

	src, err := file.Open()
	if err != nil {
		httperr.Internal(c, "failed_to_read_photo", "Could not read the upload.")
		return
	}
	defer src.Close()

	key := fmt.Sprintf("trailers/%d/%d", companyID, trailer.ID)
	url, err := h.uploader.UploadPhoto(c.Request.Context(), key, src)
	if err != nil {
		httperr.Internal(c, "failed_to_upload_photo", "Could not store the photo.")
		return
	}

	trailer.PhotoURL = url
	if err := h.db.Save(&trailer).Error; err != nil {
		httperr.Internal(c, "failed_to_update_trailer", "Could not update trailer.")
		return
	}

	httpresp.OK(c, trailer)
}
