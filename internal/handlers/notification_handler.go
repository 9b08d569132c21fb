package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/NomadRelief/stall-scheduler/internal/httperr"
	"github.com/NomadRelief/stall-scheduler/internal/httpresp"
	"github.com/NomadRelief/stall-scheduler/internal/middleware"
	"github.com/NomadRelief/stall-scheduler/internal/models"
)

type NotificationHandler struct {
	db *gorm.DB
}

func NewNotificationHandler(db *gorm.DB) *NotificationHandler {
	return &NotificationHandler{db: db}
}

func (h *NotificationHandler) List(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var notifications []models.Notification
	q := h.db.Where("user_id = ?", userID)
	if c.Query("unread") == "true" {
		q = q.Where("read = false")
	}
	q.Order("created_at DESC").Limit(100).Find(&notifications)

	httpresp.List(c, notifications)
}

func (h *NotificationHandler) MarkRead(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	id := c.Param("id")

	var notification models.Notification
	if err := h.db.
		Where("id = ? AND user_id = ?", id, userID).
		First(&notification).Error; err != nil {
		httperr.NotFound(c, "notification_not_found", "Notification not found.")
		return
	}

	notification.Read = true
	if err := h.db.Save(&notification).Error; err != nil {
		httperr.Internal(c, "failed_to_update_notification", "Could not update the notification.")
		return
	}

	httpresp.OK(c, notification)
}
