package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type EstimateStatus string

const (
	EstimateStatusPending  EstimateStatus = "PENDING"
	EstimateStatusSent     EstimateStatus = "SENT"
	EstimateStatusAccepted EstimateStatus = "ACCEPTED"
	EstimateStatusRejected EstimateStatus = "REJECTED"
)

// Estimate is an admin quotation. QuotationNo is assigned by the store as
// PJ-QTN-YYYY-MM-NNN, sequential within the calendar month.
type Estimate struct {
	ID            string          `gorm:"primaryKey;size:36" json:"id"`
	QuotationNo   string          `gorm:"unique;not null" json:"quotation_no"`
	CustomerName  string          `json:"customer_name"`
	CustomerPhone string          `json:"customer_phone"`
	CustomerEmail string          `json:"customer_email"`
	Currency      string          `gorm:"size:3;default:INR" json:"currency"`
	Items         []LineItem      `gorm:"type:text;serializer:json" json:"items"`
	Subtotal      decimal.Decimal `gorm:"type:decimal(12,3)" json:"subtotal"`
	MakingCharges decimal.Decimal `gorm:"type:decimal(12,3)" json:"making_charges"`
	GST           decimal.Decimal `gorm:"type:decimal(12,3)" json:"gst"`
	Discount      decimal.Decimal `gorm:"type:decimal(12,3)" json:"discount"`
	Total         decimal.Decimal `gorm:"type:decimal(12,3)" json:"total"`
	ValidUntil    *time.Time      `json:"valid_until"`
	Status        EstimateStatus  `gorm:"size:16;default:PENDING" json:"status"`
	Notes         string          `json:"notes"`
	CreatedAt     time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

func (e *Estimate) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	return nil
}
