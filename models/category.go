package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Category is a self-referencing adjacency list: ParentID points at another
// category or is nil for a root. Products reference categories by slug, not
// by foreign key, so deletion is guarded at the store layer.
type Category struct {
	ID           string    `gorm:"primaryKey;size:36" json:"id"`
	Name         string    `json:"name" validate:"required"`
	Slug         string    `gorm:"unique;not null" json:"slug"`
	Description  string    `json:"description"`
	Image        string    `json:"image"`
	ParentID     *string   `gorm:"index;size:36" json:"parent_id"`
	DisplayOrder int       `gorm:"default:0" json:"display_order"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
