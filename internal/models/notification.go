package models

import (
	"time"

	"github.com/google/uuid"
)

// Notification is written by the gig lifecycle and only ever mutated to flip
// Read. Link is a frontend page path, e.g. "/gig/<id>".
type Notification struct {
	ID     uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;index;not null" json:"user_id"`

	Title   string `json:"title"`
	Message string `gorm:"type:text" json:"message"`
	Link    string `json:"link"`
	Read    bool   `gorm:"default:false" json:"read"`

	CreatedAt time.Time `json:"created_at"`
}
