package persistence

import (
	"threadline/internal/core"

	"gorm.io/gorm"
)

// Create returns an intent inserting value.
func Create(value any) core.Intent {
	return func(tx *gorm.DB) error {
		return tx.Create(value).Error
	}
}

// Delete returns an intent deleting rows of value's model matching conds.
func Delete(value any, conds ...any) core.Intent {
	return func(tx *gorm.DB) error {
		return tx.Delete(value, conds...).Error
	}
}
