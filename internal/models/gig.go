package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type GigStatus string

const (
	GigStatusOpen       GigStatus = "open"
	GigStatusInProgress GigStatus = "in-progress"
)

// Gig is a task posted by a client. Status only ever moves open -> in-progress;
// in-progress is terminal. AcceptedStudentID and FinalBid are set exactly once,
// when a proposal is accepted.
type Gig struct {
	ID         uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ClientID   uuid.UUID `gorm:"type:uuid;index;not null" json:"client_id"`
	ClientName string    `json:"client_name"`

	Title       string         `gorm:"not null" json:"title"`
	Description string         `gorm:"type:text" json:"description"`
	Skills      datatypes.JSON `json:"skills"`
	Budget      float64        `json:"budget"`

	Status            GigStatus  `gorm:"type:varchar(20);default:'open';index" json:"status"`
	AcceptedStudentID *uuid.UUID `gorm:"type:uuid;index" json:"accepted_student_id,omitempty"`
	FinalBid          *float64   `json:"final_bid,omitempty"`

	PostedAt  time.Time `json:"posted_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Client    *User      `gorm:"foreignKey:ClientID" json:"client,omitempty"`
	Proposals []Proposal `gorm:"foreignKey:GigID" json:"proposals,omitempty"`
}
