package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Role string

const (
	RoleStudent Role = "student"
	RoleClient  Role = "client"
)

// User covers both roles. Role stays empty until the user picks one after
// first sign-in; an empty role means the account is mid-onboarding.
type User struct {
	ID    uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name  string    `gorm:"not null" json:"name"`
	Email string    `gorm:"uniqueIndex;not null" json:"email"`

	Password string `gorm:"not null" json:"-"`
	Role     Role   `gorm:"type:varchar(20);index" json:"role"`

	Bio       string         `gorm:"type:text" json:"bio"`
	Skills    datatypes.JSON `json:"skills"` // ["react", "calculus", ...]
	Portfolio string         `gorm:"type:text" json:"portfolio"`
	Phone     string         `gorm:"type:varchar(30)" json:"phone"`

	Experience datatypes.JSON `json:"experience"` // [{title, company, duration, description}]
	Education  datatypes.JSON `json:"education"`  // [{school, degree, year}]

	IsActive bool `gorm:"default:true" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ExperienceEntry struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Duration    string `json:"duration"`
	Description string `json:"description"`
}

type EducationEntry struct {
	School string `json:"school"`
	Degree string `json:"degree"`
	Year   string `json:"year"`
}
