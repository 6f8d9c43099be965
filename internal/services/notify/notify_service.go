package notify

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/raulniraj/CampusGig/internal/models"
)

// Dispatcher writes notification rows. Delivery to the recipient's live feed
// is the subscription layer's job, not the dispatcher's; there is no ack or
// retry here.
type Dispatcher struct {
	DB *gorm.DB
}

func NewDispatcher(db *gorm.DB) *Dispatcher {
	return &Dispatcher{DB: db}
}

// Create inserts one notification using tx, so callers inside a transaction
// get the write rolled back with everything else.
func (d *Dispatcher) Create(tx *gorm.DB, userID uuid.UUID, title, message, link string) (*models.Notification, error) {
	if tx == nil {
		tx = d.DB
	}
	n := models.Notification{
		ID:      uuid.New(),
		UserID:  userID,
		Title:   title,
		Message: message,
		Link:    link,
	}
	if err := tx.Create(&n).Error; err != nil {
		return nil, err
	}
	return &n, nil
}

// MarkRead flips the read flag on one of the recipient's notifications.
func (d *Dispatcher) MarkRead(userID, notifID uuid.UUID) error {
	result := d.DB.Model(&models.Notification{}).
		Where("id = ? AND user_id = ?", notifID, userID).
		Update("read", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
