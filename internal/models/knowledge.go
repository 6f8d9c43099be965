package models

import (
	"time"

	"github.com/google/uuid"
)

// KnowledgeEntry feeds the support chatbot: all entries are concatenated into
// the prompt context for every question.
type KnowledgeEntry struct {
	ID      uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Topic   string    `json:"topic"`
	Content string    `gorm:"type:text" json:"content"`

	CreatedAt time.Time `json:"created_at"`
}

func (KnowledgeEntry) TableName() string { return "chatbot_knowledge" }
