package models

import (
	"time"

	"github.com/google/uuid"
)

// ChatMessage belongs to a derived thread: ThreadID is the two participant
// ids sorted and joined, never stored as its own row. Messages are append
// only, no edit or delete.
type ChatMessage struct {
	ID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ThreadID string    `gorm:"type:varchar(80);index;not null" json:"thread_id"`

	SenderID   uuid.UUID `gorm:"type:uuid;index" json:"sender_id"`
	SenderName string    `json:"sender_name"`
	Text       string    `gorm:"type:text;not null" json:"text"`

	CreatedAt time.Time `json:"created_at"`
}
