package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Product struct {
	ID          string          `gorm:"primaryKey;size:36" json:"id"`
	Name        string          `json:"name" validate:"required"`
	Description string          `json:"description"`
	Category    string          `gorm:"index" json:"category"` // Category.Slug
	SubCategory string          `json:"sub_category"`
	Material    string          `json:"material"`
	Gender      string          `json:"gender"`
	Occasion    string          `json:"occasion"`
	PriceINR    decimal.Decimal `gorm:"type:decimal(12,2)" json:"price_inr"`
	PriceBHD    decimal.Decimal `gorm:"type:decimal(12,3)" json:"price_bhd"`
	GrossWeight decimal.Decimal `gorm:"type:decimal(10,3)" json:"gross_weight"`
	NetWeight   decimal.Decimal `gorm:"type:decimal(10,3)" json:"net_weight"`
	Stock       int             `json:"stock"`
	Images      []string        `gorm:"type:text;serializer:json" json:"images"`
	Gemstones   []string        `gorm:"type:text;serializer:json" json:"gemstones"`
	IsActive    bool            `gorm:"default:true;index" json:"is_active"`
	IsFeatured  bool            `gorm:"default:false" json:"is_featured"`
	SalesCount  uint            `gorm:"default:0" json:"sales_count"`
	CreatedAt   time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
