package store

import (
	"regexp"

	"jewelmart/models"

	"gorm.io/gorm"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9-]+$`)

// CategoryNode is a root category with its direct children attached. The
// grouping is one level deep; grandchildren stay flat inside their parent's
// children list elsewhere.
type CategoryNode struct {
	models.Category
	Children []models.Category `json:"children"`
}

func (s *Store) CreateCategory(category *models.Category) (*models.Category, error) {
	if !slugPattern.MatchString(category.Slug) {
		return nil, ErrInvalidSlug
	}
	if err := s.db.Create(category).Error; err != nil {
		return nil, translate(err)
	}
	return category, nil
}

func (s *Store) GetCategory(id string) (*models.Category, error) {
	var category models.Category
	if err := s.db.First(&category, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &category, nil
}

func (s *Store) GetCategoryBySlug(slug string) (*models.Category, error) {
	var category models.Category
	if err := s.db.Where("slug = ?", slug).First(&category).Error; err != nil {
		return nil, translate(err)
	}
	return &category, nil
}

func (s *Store) GetCategories() ([]models.Category, error) {
	var categories []models.Category
	if err := s.db.Order("display_order ASC, name ASC").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (s *Store) UpdateCategory(id string, updates *models.Category) (*models.Category, error) {
	if updates.Slug != "" && !slugPattern.MatchString(updates.Slug) {
		return nil, ErrInvalidSlug
	}
	var existing models.Category
	if err := s.db.First(&existing, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	if err := s.db.Model(&existing).Updates(updates).Error; err != nil {
		return nil, translate(err)
	}
	if err := s.db.First(&existing, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &existing, nil
}

// DeleteCategory removes a category unless the referential guard blocks it:
// a category with child categories, or with any product referencing its slug,
// is refused with (false, nil). The guard deliberately counts soft-deleted
// products too — an inactive product can be restored, and its category slug
// must still resolve when it is.
func (s *Store) DeleteCategory(id string) (bool, error) {
	deleted := false
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var category models.Category
		if err := tx.First(&category, "id = ?", id).Error; err != nil {
			return translate(err)
		}

		var children int64
		if err := tx.Model(&models.Category{}).Where("parent_id = ?", id).Count(&children).Error; err != nil {
			return err
		}
		if children > 0 {
			return nil
		}

		var referencing int64
		if err := tx.Model(&models.Product{}).Where("category = ?", category.Slug).Count(&referencing).Error; err != nil {
			return err
		}
		if referencing > 0 {
			return nil
		}

		if err := tx.Delete(&category).Error; err != nil {
			return err
		}
		deleted = true
		return nil
	})
	if err != nil {
		return false, err
	}
	return deleted, nil
}

// GetCategoriesHierarchy partitions all categories in a single pass: roots
// (no parent) carry their direct children; a child whose parent row is gone
// is promoted to a root so no category is ever lost from the result.
func (s *Store) GetCategoriesHierarchy() ([]CategoryNode, error) {
	categories, err := s.GetCategories()
	if err != nil {
		return nil, err
	}

	byID := make(map[string]bool, len(categories))
	for _, c := range categories {
		byID[c.ID] = true
	}

	children := make(map[string][]models.Category)
	var roots []models.Category
	for _, c := range categories {
		if c.ParentID != nil && byID[*c.ParentID] {
			children[*c.ParentID] = append(children[*c.ParentID], c)
		} else {
			roots = append(roots, c)
		}
	}

	nodes := make([]CategoryNode, 0, len(roots))
	for _, root := range roots {
		nodes = append(nodes, CategoryNode{Category: root, Children: children[root.ID]})
	}
	return nodes, nil
}

// ReorderCategories assigns display_order = index for each id, inside one
// transaction so a failing id leaves no half-applied ordering behind.
func (s *Store) ReorderCategories(orderedIDs []string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		for i, id := range orderedIDs {
			res := tx.Model(&models.Category{}).Where("id = ?", id).Update("display_order", i)
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
