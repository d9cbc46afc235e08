package repo

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"go-gin-wishlist/internal/domain"
)

type WishlistRepo struct{ db *gorm.DB }

func NewWishlistRepo(db *gorm.DB) *WishlistRepo { return &WishlistRepo{db: db} }

var _ domain.WishlistRepository = (*WishlistRepo)(nil)

func (r *WishlistRepo) Create(ctx context.Context, it *domain.WishlistItem) error {
	if err := r.db.WithContext(ctx).Create(it).Error; err != nil {
		return errors.Wrap(err, "create wishlist item")
	}
	return nil
}

func (r *WishlistRepo) ListByUser(ctx context.Context, userID uint) ([]domain.WishlistItem, error) {
	items := make([]domain.WishlistItem, 0)
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&items).Error
	if err != nil {
		return nil, errors.Wrap(err, "list wishlist items")
	}
	return items, nil
}

func (r *WishlistRepo) FindOwned(ctx context.Context, userID, id uint) (*domain.WishlistItem, error) {
	var it domain.WishlistItem
	err := r.db.WithContext(ctx).First(&it, "id = ? AND user_id = ?", id, userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "find wishlist item")
	}
	return &it, nil
}

// UpdateOwned 归属校验和写入是同一条语句：UPDATE ... WHERE id = ? AND user_id = ?
func (r *WishlistRepo) UpdateOwned(ctx context.Context, userID, id uint, p domain.WishlistPatch) (*domain.WishlistItem, error) {
	set := map[string]any{"updated_at": time.Now()}
	if p.Title != nil {
		set["title"] = *p.Title
	}
	switch {
	case p.ClearDescription:
		set["description"] = nil
	case p.Description != nil:
		set["description"] = *p.Description
	}
	if p.Link != nil {
		set["link"] = *p.Link
	}

	res := r.db.WithContext(ctx).
		Model(&domain.WishlistItem{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(set)
	if res.Error != nil {
		return nil, errors.Wrap(res.Error, "update wishlist item")
	}
	if res.RowsAffected == 0 {
		return nil, domain.ErrNotFound
	}

	it, err := r.FindOwned(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if it == nil {
		// 更新后被并发删除
		return nil, domain.ErrNotFound
	}
	return it, nil
}

func (r *WishlistRepo) DeleteOwned(ctx context.Context, userID, id uint) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&domain.WishlistItem{})
	if res.Error != nil {
		return errors.Wrap(res.Error, "delete wishlist item")
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
