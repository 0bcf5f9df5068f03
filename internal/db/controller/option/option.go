// Package option provides CRUD operations for the persisted option records.
package option

import (
	"errors"

	"gorm.io/gorm"

	"github.com/wodanio-group/bos/internal/db/models"
)

const (
	keyQueryPattern = "key = ?"
)

var (
	// ErrOptionNotFound is returned when an option is not found.
	ErrOptionNotFound = errors.New("option not found")
	// ErrOptionKeyEmpty is returned when attempting to create/update an option with an empty key.
	ErrOptionKeyEmpty = errors.New("option key cannot be empty")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

// Get retrieves an option by its key.
func Get(db *gorm.DB, key string) (*models.Option, error) {
	if db == nil {
		return nil, ErrDBNil
	}
	if key == "" {
		return nil, ErrOptionKeyEmpty
	}

	var opt models.Option
	result := db.Where(keyQueryPattern, key).First(&opt)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrOptionNotFound
		}
		return nil, result.Error
	}

	return &opt, nil
}

// GetAll retrieves all options from the database.
func GetAll(db *gorm.DB) ([]models.Option, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var opts []models.Option
	result := db.Find(&opts)
	if result.Error != nil {
		return nil, result.Error
	}

	return opts, nil
}

// Set creates or updates an option by key (upsert operation).
func Set(db *gorm.DB, key string, value []byte) (*models.Option, error) {
	if db == nil {
		return nil, ErrDBNil
	}
	if key == "" {
		return nil, ErrOptionKeyEmpty
	}

	var opt models.Option
	result := db.Where(keyQueryPattern, key).First(&opt)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		opt = models.Option{
			Key:   key,
			Value: value,
		}
		result = db.Create(&opt)
		if result.Error != nil {
			return nil, result.Error
		}

		return &opt, nil
	}
	if result.Error != nil {
		return nil, result.Error
	}

	// Option exists, update it
	opt.Value = value
	result = db.Save(&opt)
	if result.Error != nil {
		return nil, result.Error
	}

	return &opt, nil
}

// SeedDefault creates an option if it does not exist yet. An existing
// option is returned untouched, so counters never reset on restart.
func SeedDefault(db *gorm.DB, key string, value []byte) (*models.Option, error) {
	if db == nil {
		return nil, ErrDBNil
	}
	if key == "" {
		return nil, ErrOptionKeyEmpty
	}

	var opt models.Option
	result := db.Where(keyQueryPattern, key).First(&opt)
	if result.Error == nil {
		return &opt, nil
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, result.Error
	}

	opt = models.Option{
		Key:   key,
		Value: value,
	}
	result = db.Create(&opt)
	if result.Error != nil {
		return nil, result.Error
	}

	return &opt, nil
}

// Delete deletes an option by key.
func Delete(db *gorm.DB, key string) error {
	if db == nil {
		return ErrDBNil
	}
	if key == "" {
		return ErrOptionKeyEmpty
	}

	result := db.Where(keyQueryPattern, key).Delete(&models.Option{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrOptionNotFound
	}

	return nil
}
