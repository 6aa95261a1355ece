package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Payment is an immutable audit record of a checkout notification. It is
// never updated after insert; the bundle reference is deliberately loose so
// a later bundle rejection does not disturb payment history.
type Payment struct {
	ID            uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	BundleID      uuid.UUID       `gorm:"type:uuid;not null;index" json:"bundle_id"`
	CustomerName  string          `gorm:"size:255;not null" json:"customer_name"`
	CustomerEmail string          `gorm:"size:255;not null" json:"customer_email"`
	CustomerPhone string          `gorm:"size:30;not null" json:"customer_phone"`
	Amount        decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"amount"`
	ProgramType   string          `gorm:"size:100" json:"program_type"`
	PaymentStatus string          `gorm:"size:20;not null" json:"payment_status"`

	CreatedAt time.Time `json:"created_at"`
}

func (p *Payment) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
