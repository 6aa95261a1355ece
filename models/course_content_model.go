package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Subsection is one entry in a section's ordered subsection list. The list
// is stored inline as JSON on the section row, not as its own table.
type Subsection struct {
	Title    string `json:"title"`
	Duration string `json:"duration"`
}

type CourseContent struct {
	ID            uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	CourseID      uuid.UUID      `gorm:"type:uuid;not null;index" json:"course_id"`
	SectionNumber int            `gorm:"not null" json:"section_number"`
	Title         string         `gorm:"size:255;not null" json:"title"`
	Duration      *string        `gorm:"size:50" json:"duration"`
	Subsections   datatypes.JSON `json:"subsections"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (cc *CourseContent) BeforeCreate(tx *gorm.DB) error {
	if cc.ID == uuid.Nil {
		cc.ID = uuid.New()
	}
	return nil
}

type CourseProject struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	CourseID    uuid.UUID `gorm:"type:uuid;not null;index" json:"course_id"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (cp *CourseProject) BeforeCreate(tx *gorm.DB) error {
	if cp.ID == uuid.Nil {
		cp.ID = uuid.New()
	}
	return nil
}
