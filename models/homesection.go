package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// HomeSection is a configurable block on the storefront home page.
type HomeSection struct {
	ID           string            `gorm:"primaryKey;size:36" json:"id"`
	Title        string            `json:"title" validate:"required"`
	LayoutType   string            `gorm:"size:32;default:grid" json:"layout_type"`
	DisplayOrder int               `gorm:"default:0" json:"display_order"`
	Items        []HomeSectionItem `gorm:"foreignKey:SectionID" json:"items,omitempty"`
	CreatedAt    time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time         `gorm:"autoUpdateTime" json:"updated_at"`
}

// HomeSectionItem pins a product to a section. The product reference is a
// plain column, so reads join against live products instead of trusting it.
type HomeSectionItem struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	SectionID string    `gorm:"index;size:36" json:"section_id"`
	ProductID string    `gorm:"index;size:36" json:"product_id"`
	Position  int       `gorm:"default:0" json:"position"`
	Product   Product   `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (s *HomeSection) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}

func (i *HomeSectionItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}
