package store

import (
	"path/filepath"
	"testing"

	"jewelmart/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestStore opens a throwaway sqlite database with the production schema.
func newTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	gdb, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "failed to open test database")
	require.NoError(t, gdb.AutoMigrate(
		&models.User{}, &models.Product{}, &models.Category{}, &models.CartItem{},
		&models.Order{}, &models.Bill{}, &models.Estimate{},
		&models.HomeSection{}, &models.HomeSectionItem{},
	))
	return New(gdb)
}

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

func strPtr(v string) *string {
	return &v
}

func seedProduct(t *testing.T, s *Store, name, category string) *models.Product {
	t.Helper()
	p, err := s.CreateProduct(&models.Product{
		Name:     name,
		Category: category,
		PriceINR: decimal.NewFromInt(1000),
		PriceBHD: decimal.NewFromFloat(4.5),
		Stock:    10,
	})
	require.NoError(t, err)
	return p
}

func seedCategory(t *testing.T, s *Store, name, slug string, parentID *string) *models.Category {
	t.Helper()
	c, err := s.CreateCategory(&models.Category{
		Name:     name,
		Slug:     slug,
		ParentID: parentID,
	})
	require.NoError(t, err)
	return c
}
