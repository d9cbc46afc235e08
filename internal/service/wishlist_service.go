package service

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"go-gin-wishlist/internal/domain"
)

type WishlistInput struct {
	Title       string
	Description *string
	Link        string
}

type WishlistService struct {
	items domain.WishlistRepository
	log   *zap.Logger
}

func NewWishlistService(items domain.WishlistRepository, l *zap.Logger) *WishlistService {
	if l == nil {
		l = zap.NewNop()
	}
	return &WishlistService{items: items, log: l}
}

func (s *WishlistService) Create(ctx context.Context, userID uint, in WishlistInput) (*domain.WishlistItem, error) {
	it := &domain.WishlistItem{
		UserID:      userID,
		Title:       in.Title,
		Description: in.Description,
		Link:        in.Link,
	}
	if err := s.items.Create(ctx, it); err != nil {
		return nil, err
	}
	s.log.Debug("wishlist item created", zap.Uint("uid", userID), zap.Uint("id", it.ID))
	return it, nil
}

func (s *WishlistService) List(ctx context.Context, userID uint) ([]domain.WishlistItem, error) {
	return s.items.ListByUser(ctx, userID)
}

// Get 不存在与不属于调用者都返回 ErrNotFound
func (s *WishlistService) Get(ctx context.Context, userID, id uint) (*domain.WishlistItem, error) {
	it, err := s.items.FindOwned(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if it == nil {
		return nil, domain.ErrNotFound
	}
	return it, nil
}

// Update 条件更新未命中 => ErrAccessDenied
func (s *WishlistService) Update(ctx context.Context, userID, id uint, p domain.WishlistPatch) (*domain.WishlistItem, error) {
	it, err := s.items.UpdateOwned(ctx, userID, id, p)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.ErrAccessDenied
	}
	if err != nil {
		return nil, err
	}
	s.log.Debug("wishlist item updated", zap.Uint("uid", userID), zap.Uint("id", id))
	return it, nil
}

func (s *WishlistService) Delete(ctx context.Context, userID, id uint) error {
	err := s.items.DeleteOwned(ctx, userID, id)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.ErrAccessDenied
	}
	if err != nil {
		return err
	}
	s.log.Debug("wishlist item deleted", zap.Uint("uid", userID), zap.Uint("id", id))
	return nil
}
