// Package store is the single point of truth for persisted state. Handlers
// never touch gorm directly; every read and write goes through one of the
// operations here.
package store

import (
	"errors"

	"gorm.io/gorm"
)

var (
	// ErrNotFound is returned by single-entity reads and by updates against
	// a missing row. Callers check with errors.Is; it is never wrapped into
	// a different failure mode.
	ErrNotFound = errors.New("store: not found")

	// ErrDuplicate is returned when a unique key (email, slug, quotation or
	// bill number) already exists.
	ErrDuplicate = errors.New("store: duplicate key")

	// ErrInvalidSlug is returned when a category slug is not URL-safe.
	ErrInvalidSlug = errors.New("store: slug must match [a-z0-9-]+")

	// ErrCartOwner is returned when a cart item does not name exactly one
	// of session id / user id.
	ErrCartOwner = errors.New("store: cart item needs exactly one of session id or user id")

	// ErrInvalidQuantity is returned for cart quantities below 1.
	ErrInvalidQuantity = errors.New("store: quantity must be at least 1")
)

type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// translate maps gorm errors onto the store's sentinels. Requires the
// connection to be opened with TranslateError so unique violations surface
// as gorm.ErrDuplicatedKey across dialects.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrDuplicate
	default:
		return err
	}
}
