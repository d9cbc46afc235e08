package repo

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"go-gin-wishlist/internal/domain"
)

// Migrate 建表：users / wishlist_items（外键 user_id → users.id）
func Migrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(&domain.User{}, &domain.WishlistItem{}); err != nil {
		return errors.Wrap(err, "automigrate")
	}
	return nil
}
