package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// BundleSize is the fixed number of member courses per bundle.
const BundleSize = 3

// CourseBundle is a discounted package of exactly three courses. A nil
// TeacherID marks an admin-authored bundle. Prices are snapshotted at
// creation: TotalPrice never tracks later course price edits.
type CourseBundle struct {
	ID                 uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	TeacherID          *uuid.UUID      `gorm:"type:uuid;index" json:"teacher_id"`
	Title              string          `gorm:"size:255;not null" json:"title"`
	Description        string          `gorm:"type:text" json:"description"`
	DiscountPercentage float64         `gorm:"not null;default:0" json:"discount_percentage"`
	TotalPrice         decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"total_price"`
	DiscountedPrice    decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"discounted_price"`
	IsActive           bool            `gorm:"default:false;index" json:"is_active"`
	CreatedByAdmin     bool            `gorm:"default:false" json:"created_by_admin"`
	CreatedBy          uuid.UUID       `gorm:"type:uuid;not null" json:"created_by"`

	Teacher *Teacher `gorm:"foreignKey:TeacherID" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (b *CourseBundle) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// BundleCourse links a bundle to one of its member courses. Rows only ever
// exist in sets of BundleSize and share their bundle's lifecycle.
type BundleCourse struct {
	BundleID uuid.UUID `gorm:"type:uuid;primary_key" json:"bundle_id"`
	CourseID uuid.UUID `gorm:"type:uuid;primary_key" json:"course_id"`

	CreatedAt time.Time `json:"created_at"`
}
