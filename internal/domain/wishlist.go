package domain

import (
	"context"
	"time"
)

type WishlistItem struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"not null;index" json:"userId"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	Description *string   `gorm:"type:text" json:"description"`
	Link        string    `gorm:"type:text;not null" json:"link"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (WishlistItem) TableName() string { return "wishlist_items" }

// WishlistPatch nil 表示不改；ClearDescription 把 description 置空（优先于 Description）
type WishlistPatch struct {
	Title            *string
	Description      *string
	ClearDescription bool
	Link             *string
}

// WishlistRepository 所有读写都带 owner 条件
type WishlistRepository interface {
	Create(ctx context.Context, it *WishlistItem) error
	ListByUser(ctx context.Context, userID uint) ([]WishlistItem, error)
	// FindOwned 不存在或不属于 userID 时返回 (nil, nil)
	FindOwned(ctx context.Context, userID, id uint) (*WishlistItem, error)
	// UpdateOwned / DeleteOwned 未命中（不存在或非本人）返回 ErrNotFound
	UpdateOwned(ctx context.Context, userID, id uint, p WishlistPatch) (*WishlistItem, error)
	DeleteOwned(ctx context.Context, userID, id uint) error
}
