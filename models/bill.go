package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Bill is an in-store/admin invoice. Same line-item snapshot shape as Order,
// without the online-checkout components (no VAT/shipping).
type Bill struct {
	ID            string          `gorm:"primaryKey;size:36" json:"id"`
	BillNumber    string          `gorm:"unique;not null" json:"bill_number"`
	CustomerName  string          `json:"customer_name"`
	CustomerPhone string          `json:"customer_phone"`
	Currency      string          `gorm:"size:3;default:INR" json:"currency"`
	Items         []LineItem      `gorm:"type:text;serializer:json" json:"items"`
	Subtotal      decimal.Decimal `gorm:"type:decimal(12,3)" json:"subtotal"`
	MakingCharges decimal.Decimal `gorm:"type:decimal(12,3)" json:"making_charges"`
	GST           decimal.Decimal `gorm:"type:decimal(12,3)" json:"gst"`
	Discount      decimal.Decimal `gorm:"type:decimal(12,3)" json:"discount"`
	Total         decimal.Decimal `gorm:"type:decimal(12,3)" json:"total"`
	Notes         string          `json:"notes"`
	CreatedAt     time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

func (b *Bill) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}
