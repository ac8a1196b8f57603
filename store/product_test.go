package store

import (
	"testing"

	"jewelmart/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetAllProductsExcludesInactive(t *testing.T) {
	s := newTestStore(t)

	live := seedProduct(t, s, "Gold Ring", "rings")
	dead := seedProduct(t, s, "Old Pendant", "pendants")

	deleted, err := s.DeleteProduct(dead.ID)
	require.NoError(t, err)
	require.True(t, deleted)

	products, err := s.GetAllProducts()
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, live.ID, products[0].ID)
	for _, p := range products {
		assert.True(t, p.IsActive)
	}
}

func TestDeleteProductThenGetIsAbsent(t *testing.T) {
	s := newTestStore(t)

	p := seedProduct(t, s, "Silver Anklet", "anklets")

	deleted, err := s.DeleteProduct(p.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	_, err = s.GetProduct(p.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	// A second delete matches no live row.
	deleted, err = s.DeleteProduct(p.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestRestoreProduct(t *testing.T) {
	s := newTestStore(t)

	p := seedProduct(t, s, "Emerald Stud", "earrings")
	_, err := s.DeleteProduct(p.ID)
	require.NoError(t, err)

	restored, err := s.RestoreProduct(p.ID)
	require.NoError(t, err)
	assert.True(t, restored)

	got, err := s.GetProduct(p.ID)
	require.NoError(t, err)
	assert.True(t, got.IsActive)
}

func TestGetProductsByCategory(t *testing.T) {
	s := newTestStore(t)

	seedProduct(t, s, "Gold Ring", "rings")
	seedProduct(t, s, "Diamond Ring", "rings")
	seedProduct(t, s, "Pearl Necklace", "necklaces")

	products, err := s.GetProductsByCategory("rings")
	require.NoError(t, err)
	assert.Len(t, products, 2)
	for _, p := range products {
		assert.Equal(t, "rings", p.Category)
	}
}

func TestAdminListIncludesInactive(t *testing.T) {
	s := newTestStore(t)

	seedProduct(t, s, "Gold Ring", "rings")
	dead := seedProduct(t, s, "Retired Bangle", "bangles")
	_, err := s.DeleteProduct(dead.ID)
	require.NoError(t, err)

	products, err := s.AdminListProducts()
	require.NoError(t, err)
	assert.Len(t, products, 2)
}

func TestSearchProductsFiltersAndSort(t *testing.T) {
	s := newTestStore(t)

	_, err := s.CreateProduct(&models.Product{
		Name:     "Classic Gold Ring",
		Category: "rings",
		Material: "gold",
		Gender:   "women",
		PriceINR: decimal.NewFromInt(5000),
	})
	require.NoError(t, err)
	_, err = s.CreateProduct(&models.Product{
		Name:     "Plain Gold Band",
		Category: "rings",
		Material: "gold",
		Gender:   "men",
		PriceINR: decimal.NewFromInt(3000),
	})
	require.NoError(t, err)
	_, err = s.CreateProduct(&models.Product{
		Name:     "Silver Chain",
		Category: "chains",
		Material: "silver",
		PriceINR: decimal.NewFromInt(1200),
	})
	require.NoError(t, err)

	// Case-insensitive substring match on name.
	results, err := s.SearchProducts("GOLD", SearchFilters{})
	require.NoError(t, err)
	assert.Len(t, results, 2)

	// Filters are ANDed with the query.
	results, err = s.SearchProducts("gold", SearchFilters{Gender: "men"})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Plain Gold Band", results[0].Name)

	// Price range.
	min := decimal.NewFromInt(1000)
	max := decimal.NewFromInt(3500)
	results, err = s.SearchProducts("", SearchFilters{MinPrice: &min, MaxPrice: &max})
	require.NoError(t, err)
	assert.Len(t, results, 2)

	// price_asc ordering.
	results, err = s.SearchProducts("", SearchFilters{SortBy: "price_asc"})
	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.Equal(t, "Silver Chain", results[0].Name)
	assert.Equal(t, "Classic Gold Ring", results[2].Name)
}

func TestSearchProductsPriceFilterByCurrency(t *testing.T) {
	s := newTestStore(t)

	// In INR the ring is the dearer product; in BHD the band is.
	_, err := s.CreateProduct(&models.Product{
		Name:     "Gold Ring",
		Category: "rings",
		PriceINR: decimal.NewFromInt(5000),
		PriceBHD: decimal.NewFromInt(25),
	})
	require.NoError(t, err)
	_, err = s.CreateProduct(&models.Product{
		Name:     "Gold Band",
		Category: "rings",
		PriceINR: decimal.NewFromInt(3000),
		PriceBHD: decimal.NewFromInt(40),
	})
	require.NoError(t, err)

	maxBHD := decimal.NewFromInt(30)
	results, err := s.SearchProducts("", SearchFilters{Currency: "BHD", MaxPrice: &maxBHD})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Gold Ring", results[0].Name)

	// Sorting follows the same column as the range.
	results, err = s.SearchProducts("", SearchFilters{Currency: "bhd", SortBy: "price_asc"})
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "Gold Ring", results[0].Name)
	assert.Equal(t, "Gold Band", results[1].Name)

	// Default currency still ranges over INR.
	maxINR := decimal.NewFromInt(3500)
	results, err = s.SearchProducts("", SearchFilters{MaxPrice: &maxINR})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Gold Band", results[0].Name)
}

func TestSearchProductsExcludesInactive(t *testing.T) {
	s := newTestStore(t)

	p := seedProduct(t, s, "Gold Ring", "rings")
	_, err := s.DeleteProduct(p.ID)
	require.NoError(t, err)

	results, err := s.SearchProducts("gold", SearchFilters{})
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestUpdateProductMissingRow(t *testing.T) {
	s := newTestStore(t)

	_, err := s.UpdateProduct("no-such-id", &models.Product{Name: "X"})
	assert.ErrorIs(t, err, ErrNotFound)
}
