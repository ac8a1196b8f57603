package store

import (
	"strings"

	"jewelmart/models"

	"github.com/shopspring/decimal"
)

// SearchFilters narrows SearchProducts. Zero values mean "no filter"; all
// supplied predicates are ANDed together.
type SearchFilters struct {
	Category    string
	SubCategory string
	Material    string
	Gender      string
	Occasion    string
	Currency    string // INR (default) or BHD; picks the price column
	MinPrice    *decimal.Decimal
	MaxPrice    *decimal.Decimal
	SortBy      string // price_asc, price_desc, newest, popular
}

// priceColumn selects the column that the price range and price sorts apply
// to, so a BHD storefront filters on BHD prices.
func (f SearchFilters) priceColumn() string {
	if strings.EqualFold(f.Currency, "BHD") {
		return "price_bhd"
	}
	return "price_inr"
}

// GetAllProducts lists customer-visible products. Soft-deleted rows
// (is_active = false) never appear on any customer-facing read path.
func (s *Store) GetAllProducts() ([]models.Product, error) {
	var products []models.Product
	if err := s.db.Where("is_active = ?", true).Order("created_at DESC").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (s *Store) GetProduct(id string) (*models.Product, error) {
	var product models.Product
	if err := s.db.Where("is_active = ?", true).First(&product, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &product, nil
}

func (s *Store) GetProductsByCategory(slug string) ([]models.Product, error) {
	var products []models.Product
	if err := s.db.Where("is_active = ? AND category = ?", true, slug).
		Order("created_at DESC").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (s *Store) GetFeaturedProducts() ([]models.Product, error) {
	var products []models.Product
	if err := s.db.Where("is_active = ? AND is_featured = ?", true, true).
		Order("created_at DESC").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// AdminListProducts is the one read path that includes inactive rows.
func (s *Store) AdminListProducts() ([]models.Product, error) {
	var products []models.Product
	if err := s.db.Order("created_at DESC").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (s *Store) CreateProduct(product *models.Product) (*models.Product, error) {
	product.IsActive = true
	if err := s.db.Create(product).Error; err != nil {
		return nil, translate(err)
	}
	return product, nil
}

// UpdateProduct applies the non-zero fields of updates to an existing row
// and returns the row as persisted. Works on inactive rows too, so an admin
// can edit a soft-deleted product before restoring it.
func (s *Store) UpdateProduct(id string, updates *models.Product) (*models.Product, error) {
	var existing models.Product
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

// RestoreProduct undoes a soft delete.
func (s *Store) RestoreProduct(id string) (bool, error) {
	res := s.db.Model(&models.Product{}).Where("id = ? AND is_active = ?", id, false).
		Update("is_active", true)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// DeleteProduct is a soft delete: it flips is_active and reports whether a
// live row was matched. The row itself stays put so bills and orders keep
// their history.
func (s *Store) DeleteProduct(id string) (bool, error) {
	res := s.db.Model(&models.Product{}).Where("id = ? AND is_active = ?", id, true).
		Update("is_active", false)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// SearchProducts combines a case-insensitive substring match on name and
// description with the optional filter predicates, all ANDed, over active
// products only.
func (s *Store) SearchProducts(query string, filters SearchFilters) ([]models.Product, error) {
	q := s.db.Where("is_active = ?", true)

	if query != "" {
		like := "%" + strings.ToLower(query) + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", like, like)
	}
	if filters.Category != "" {
		q = q.Where("category = ?", filters.Category)
	}
	if filters.SubCategory != "" {
		q = q.Where("sub_category = ?", filters.SubCategory)
	}
	if filters.Material != "" {
		q = q.Where("material = ?", filters.Material)
	}
	if filters.Gender != "" {
		q = q.Where("gender = ?", filters.Gender)
	}
	if filters.Occasion != "" {
		q = q.Where("occasion = ?", filters.Occasion)
	}
	priceCol := filters.priceColumn()
	if filters.MinPrice != nil {
		q = q.Where(priceCol+" >= ?", filters.MinPrice)
	}
	if filters.MaxPrice != nil {
		q = q.Where(priceCol+" <= ?", filters.MaxPrice)
	}

	switch filters.SortBy {
	case "price_asc":
		q = q.Order(priceCol + " ASC")
	case "price_desc":
		q = q.Order(priceCol + " DESC")
	case "popular":
		q = q.Order("sales_count DESC")
	case "newest":
		fallthrough
	default:
		q = q.Order("created_at DESC")
	}

	var products []models.Product
	if err := q.Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}
