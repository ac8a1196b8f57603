package db

import (
	"log"
	"os"
	"path/filepath"

	"jewelmart/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var DB *gorm.DB

// InitDatabase opens (creating if needed) the sqlite database at path and
// migrates the schema. TranslateError is on so unique violations surface as
// gorm.ErrDuplicatedKey for the store's error mapping.
func InitDatabase(path string) {
	dir := filepath.Dir(path)
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		if err := os.MkdirAll(dir, 0755); err != nil {
			log.Fatal("Failed to create database directory:", err)
		}
	}

	var err error
	DB, err = gorm.Open(sqlite.Open(path), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	log.Println("Database connected successfully at", path)

	if err := DB.AutoMigrate(
		&models.User{}, &models.Product{}, &models.Category{}, &models.CartItem{},
		&models.Order{}, &models.Bill{}, &models.Estimate{},
		&models.HomeSection{}, &models.HomeSectionItem{},
	); err != nil {
		log.Fatal("Failed to migrate schema:", err)
	}
}
