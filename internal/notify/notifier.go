package notify

import (
	"context"
	"encoding/json"
	"fmt"

	"gorm.io/gorm"

	"github.com/NomadRelief/stall-scheduler/internal/cache"
	"github.com/NomadRelief/stall-scheduler/internal/models"
)

// Severity per transition outcome.
const (
	TypeSuccess = "success"
	TypeError   = "error"
	TypeInfo    = "info"
)

type Notifier struct {
	db    *gorm.DB
	cache *cache.Client
}

func New(db *gorm.DB, cache *cache.Client) *Notifier {
	return &Notifier{db: db, cache: cache}
}

// Notify persists the notification and pushes it on the company's live
// channel so subscribed dashboards pick it up.
func (n *Notifier) Notify(
	userID uint,
	companyID uint,
	message string,
	kind string,
) error {

	notification := models.Notification{
		UserID:    userID,
		CompanyID: companyID,
		Message:   message,
		Type:      kind,
	}

	if err := n.db.Create(&notification).Error; err != nil {
		return err
	}

	if payload, err := json.Marshal(notification); err == nil {
		n.cache.Publish(
			context.Background(),
			fmt.Sprintf("company:%d:notifications", companyID),
			payload,
		)
	}

	return nil
}
