package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Teacher is the profile record behind a User with role "teacher".
// It is created in the same transaction as its User during registration.
type Teacher struct {
	ID                uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	UserID            uuid.UUID        `gorm:"type:uuid;not null;unique" json:"user_id"`
	FullName          string           `gorm:"size:255;not null" json:"full_name"`
	Email             string           `gorm:"size:255;not null" json:"email"`
	Phone             *string          `gorm:"size:30" json:"phone"`
	Bio               string           `gorm:"type:text;not null" json:"bio"`
	Specialization    string           `gorm:"size:255;not null" json:"specialization"`
	YearsOfExperience int              `gorm:"not null" json:"years_of_experience"`
	Education         string           `gorm:"size:255;not null" json:"education"`
	LinkedinURL       *string          `gorm:"size:255" json:"linkedin_url"`
	WebsiteURL        *string          `gorm:"size:255" json:"website_url"`
	HourlyRate        *decimal.Decimal `gorm:"type:numeric(10,2)" json:"hourly_rate"`
	IsVerified        bool             `gorm:"default:false" json:"is_verified"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (t *Teacher) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}
