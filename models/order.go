package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type OrderStatus string
type PaymentStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"

	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusFailed   PaymentStatus = "failed"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

// LineItem is a denormalized snapshot of a product at the time of sale.
// Orders, bills and estimates embed these as a JSON column so the document
// survives later product edits.
type LineItem struct {
	ProductID   string          `json:"product_id"`
	Name        string          `json:"name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	GrossWeight decimal.Decimal `json:"gross_weight"`
	NetWeight   decimal.Decimal `json:"net_weight"`
	LineTotal   decimal.Decimal `json:"line_total"`
}

type Order struct {
	ID              string          `gorm:"primaryKey;size:36" json:"id"`
	OrderNumber     string          `gorm:"unique;not null" json:"order_number"`
	UserID          *string         `gorm:"index;size:36" json:"user_id"`
	CustomerName    string          `json:"customer_name"`
	CustomerEmail   string          `json:"customer_email"`
	CustomerPhone   string          `json:"customer_phone"`
	ShippingAddress string          `json:"shipping_address"`
	Currency        string          `gorm:"size:3;default:INR" json:"currency"`
	Items           []LineItem      `gorm:"type:text;serializer:json" json:"items"`
	Subtotal        decimal.Decimal `gorm:"type:decimal(12,3)" json:"subtotal"`
	MakingCharges   decimal.Decimal `gorm:"type:decimal(12,3)" json:"making_charges"`
	GST             decimal.Decimal `gorm:"type:decimal(12,3)" json:"gst"`
	VAT             decimal.Decimal `gorm:"type:decimal(12,3)" json:"vat"`
	Shipping        decimal.Decimal `gorm:"type:decimal(12,3)" json:"shipping"`
	Discount        decimal.Decimal `gorm:"type:decimal(12,3)" json:"discount"`
	Total           decimal.Decimal `gorm:"type:decimal(12,3)" json:"total"`
	PaymentStatus   PaymentStatus   `gorm:"size:20;default:pending" json:"payment_status"`
	OrderStatus     OrderStatus     `gorm:"size:20;default:pending" json:"order_status"`
	CreatedAt       time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	return nil
}
