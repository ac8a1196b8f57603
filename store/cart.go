package store

import (
	"jewelmart/models"

	"gorm.io/gorm"
)

// ownerClause narrows a query to one cart owner. Exactly one of sessionID /
// userID must be set.
func ownerClause(q *gorm.DB, sessionID, userID *string) (*gorm.DB, error) {
	switch {
	case sessionID != nil && userID == nil:
		return q.Where("session_id = ?", *sessionID), nil
	case userID != nil && sessionID == nil:
		return q.Where("user_id = ?", *userID), nil
	default:
		return nil, ErrCartOwner
	}
}

// GetCartItems returns the owner's cart joined against live products. Items
// whose product has been soft-deleted (or removed outright) drop out of the
// result — the join only matches active rows.
func (s *Store) GetCartItems(sessionID, userID *string) ([]models.CartItem, error) {
	q, err := ownerClause(s.db.Model(&models.CartItem{}), sessionID, userID)
	if err != nil {
		return nil, err
	}
	var items []models.CartItem
	err = q.Joins("JOIN products ON products.id = cart_items.product_id AND products.is_active = ?", true).
		Preload("Product").
		Order("cart_items.created_at ASC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// AddCartItem inserts a cart row, or bumps the quantity when the owner
// already has the product in their cart.
func (s *Store) AddCartItem(item *models.CartItem) (*models.CartItem, error) {
	if item.Quantity < 1 {
		return nil, ErrInvalidQuantity
	}
	if _, err := s.GetProduct(item.ProductID); err != nil {
		return nil, err
	}

	var result *models.CartItem
	err := s.db.Transaction(func(tx *gorm.DB) error {
		q, err := ownerClause(tx.Model(&models.CartItem{}), item.SessionID, item.UserID)
		if err != nil {
			return err
		}
		var existing models.CartItem
		err = q.Where("product_id = ?", item.ProductID).First(&existing).Error
		switch {
		case err == nil:
			existing.Quantity += item.Quantity
			if err := tx.Model(&existing).Update("quantity", existing.Quantity).Error; err != nil {
				return err
			}
			result = &existing
			return nil
		case err == gorm.ErrRecordNotFound:
			if err := tx.Create(item).Error; err != nil {
				return err
			}
			result = item
			return nil
		default:
			return err
		}
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *Store) UpdateCartItemQuantity(id string, quantity int) (*models.CartItem, error) {
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}
	res := s.db.Model(&models.CartItem{}).Where("id = ?", id).Update("quantity", quantity)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	var item models.CartItem
	if err := s.db.First(&item, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &item, nil
}

func (s *Store) RemoveCartItem(id string) (bool, error) {
	res := s.db.Delete(&models.CartItem{}, "id = ?", id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (s *Store) ClearCart(sessionID, userID *string) error {
	q, err := ownerClause(s.db, sessionID, userID)
	if err != nil {
		return err
	}
	return q.Delete(&models.CartItem{}).Error
}

// MergeGuestCart moves a guest session's cart onto a user at login. Items
// for products the user already carries are folded into the existing row.
func (s *Store) MergeGuestCart(sessionID, userID string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var guestItems []models.CartItem
		if err := tx.Where("session_id = ?", sessionID).Find(&guestItems).Error; err != nil {
			return err
		}
		for _, gi := range guestItems {
			var existing models.CartItem
			err := tx.Where("user_id = ? AND product_id = ?", userID, gi.ProductID).First(&existing).Error
			switch {
			case err == nil:
				if err := tx.Model(&existing).Update("quantity", existing.Quantity+gi.Quantity).Error; err != nil {
					return err
				}
				if err := tx.Delete(&models.CartItem{}, "id = ?", gi.ID).Error; err != nil {
					return err
				}
			case err == gorm.ErrRecordNotFound:
				updates := map[string]interface{}{"user_id": userID, "session_id": nil}
				if err := tx.Model(&models.CartItem{}).Where("id = ?", gi.ID).Updates(updates).Error; err != nil {
					return err
				}
			default:
				return err
			}
		}
		return nil
	})
}
