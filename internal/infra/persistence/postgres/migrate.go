package postgres

import (
	"context"

	"addressbook/internal/errors"
	"addressbook/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// Migrate creates or updates the address table and its owner index.
func Migrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(&model.AddressModel{}); err != nil {
		return errors.Wrap(err, "failed to migrate address table")
	}

	return nil
}
