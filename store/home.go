package store

import (
	"jewelmart/models"

	"gorm.io/gorm"
)

func (s *Store) CreateHomeSection(section *models.HomeSection) (*models.HomeSection, error) {
	if err := s.db.Create(section).Error; err != nil {
		return nil, translate(err)
	}
	return section, nil
}

func (s *Store) GetHomeSection(id string) (*models.HomeSection, error) {
	var section models.HomeSection
	if err := s.db.First(&section, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &section, nil
}

func (s *Store) GetHomeSections() ([]models.HomeSection, error) {
	var sections []models.HomeSection
	if err := s.db.Order("display_order ASC").Find(&sections).Error; err != nil {
		return nil, err
	}
	return sections, nil
}

func (s *Store) UpdateHomeSection(id string, updates *models.HomeSection) (*models.HomeSection, error) {
	var existing models.HomeSection
	if err := s.db.First(&existing, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	if err := s.db.Model(&existing).Updates(updates).Error; err != nil {
		return nil, err
	}
	if err := s.db.First(&existing, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &existing, nil
}

// DeleteHomeSection removes a section and its items in one transaction.
func (s *Store) DeleteHomeSection(id string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&models.HomeSection{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return tx.Where("section_id = ?", id).Delete(&models.HomeSectionItem{}).Error
	})
}

// ReorderHomeSections assigns display_order = index per id, transactionally,
// mirroring ReorderCategories.
func (s *Store) ReorderHomeSections(orderedIDs []string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		for i, id := range orderedIDs {
			res := tx.Model(&models.HomeSection{}).Where("id = ?", id).Update("display_order", i)
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return ErrNotFound
			}
		}
		return nil
	})
}

// AddHomeSectionItem pins a product to a section. Both the section and a
// live product must exist.
func (s *Store) AddHomeSectionItem(item *models.HomeSectionItem) (*models.HomeSectionItem, error) {
	if _, err := s.GetHomeSection(item.SectionID); err != nil {
		return nil, err
	}
	if _, err := s.GetProduct(item.ProductID); err != nil {
		return nil, err
	}
	if err := s.db.Create(item).Error; err != nil {
		return nil, translate(err)
	}
	return item, nil
}

func (s *Store) RemoveHomeSectionItem(id string) (bool, error) {
	res := s.db.Delete(&models.HomeSectionItem{}, "id = ?", id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// GetHomeSectionItems returns a section's items inner-joined against live
// products, ordered by position. An item whose product was soft-deleted or
// removed drops out silently — the join requires a matching active row.
func (s *Store) GetHomeSectionItems(sectionID string) ([]models.HomeSectionItem, error) {
	var items []models.HomeSectionItem
	err := s.db.Model(&models.HomeSectionItem{}).
		Joins("JOIN products ON products.id = home_section_items.product_id AND products.is_active = ?", true).
		Where("home_section_items.section_id = ?", sectionID).
		Preload("Product").
		Order("home_section_items.position ASC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}
