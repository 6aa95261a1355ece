package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	CoursePending  = "pending"
	CourseApproved = "approved"
	CourseRejected = "rejected"
)

type Course struct {
	ID             uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	TeacherID      *uuid.UUID      `gorm:"type:uuid;index" json:"teacher_id"`
	CreatedBy      uuid.UUID       `gorm:"type:uuid;not null" json:"created_by"`
	InstructorName *string         `gorm:"size:255" json:"instructor_name"`
	Title          string          `gorm:"size:255;not null" json:"title"`
	Description    string          `gorm:"type:text" json:"description"`
	Category       string          `gorm:"size:100;index" json:"category"`
	Level          string          `gorm:"size:50;default:'beginner'" json:"level"`
	Price          decimal.Decimal `gorm:"type:numeric(10,2);default:0" json:"price"`
	DurationHours  int             `gorm:"default:0" json:"duration_hours"`
	ThumbnailURL   *string         `gorm:"size:500" json:"thumbnail_url"`
	DemoVideoURL   *string         `gorm:"size:500" json:"demo_video_url"`

	// Moderation state. IsPublished is only ever true for approved courses.
	ApprovalStatus  string     `gorm:"size:20;not null;default:'pending';index" json:"approval_status"`
	IsPublished     bool       `gorm:"default:false" json:"is_published"`
	RejectionReason *string    `gorm:"type:text" json:"rejection_reason"`
	ApprovedBy      *uuid.UUID `gorm:"type:uuid" json:"approved_by"`
	ApprovedAt      *time.Time `json:"approved_at"`

	Teacher *Teacher `gorm:"foreignKey:TeacherID" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (c *Course) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
