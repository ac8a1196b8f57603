package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CartItem belongs to either a guest session or a logged-in user; exactly one
// of SessionID/UserID is set.
type CartItem struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	SessionID *string   `gorm:"index;size:64" json:"session_id"`
	UserID    *string   `gorm:"index;size:36" json:"user_id"`
	ProductID string    `gorm:"index;size:36" json:"product_id"`
	Quantity  int       `json:"quantity" validate:"required,min=1"`
	Product   Product   `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (ci *CartItem) BeforeCreate(tx *gorm.DB) error {
	if ci.ID == "" {
		ci.ID = uuid.NewString()
	}
	return nil
}
