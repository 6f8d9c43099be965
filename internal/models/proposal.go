package models

import (
	"time"

	"github.com/google/uuid"
)

type ProposalStatus string

const (
	ProposalStatusPending  ProposalStatus = "pending"
	ProposalStatusAccepted ProposalStatus = "accepted"
)

// Proposal is a student's bid against a gig. One per (gig, student) pair,
// backed by the composite unique index so a double submit from two tabs
// cannot slip through the application-level check.
type Proposal struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	GigID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_gig_student" json:"gig_id"`
	StudentID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_gig_student;index" json:"student_id"`
	StudentName string    `json:"student_name"`

	CoverLetter string  `gorm:"type:text" json:"cover_letter"`
	BidAmount   float64 `json:"bid_amount"`

	Status ProposalStatus `gorm:"type:varchar(20);default:'pending';index" json:"status"`

	SubmittedAt time.Time `json:"submitted_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Gig     *Gig  `gorm:"foreignKey:GigID" json:"gig,omitempty"`
	Student *User `gorm:"foreignKey:StudentID" json:"student,omitempty"`
}
