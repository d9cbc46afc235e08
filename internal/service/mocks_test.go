package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"go-gin-wishlist/internal/domain"
)

type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) Create(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	if args.Error(0) == nil {
		u.ID = 1
	}
	return args.Error(0)
}

func (m *mockUserRepo) FindByID(ctx context.Context, id uint) (*domain.User, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*domain.User)
	return u, args.Error(1)
}

func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	u, _ := args.Get(0).(*domain.User)
	return u, args.Error(1)
}

func (m *mockUserRepo) UpdateProfile(ctx context.Context, id uint, p domain.UserPatch) (*domain.User, error) {
	args := m.Called(ctx, id, p)
	u, _ := args.Get(0).(*domain.User)
	return u, args.Error(1)
}

type mockWishlistRepo struct{ mock.Mock }

func (m *mockWishlistRepo) Create(ctx context.Context, it *domain.WishlistItem) error {
	args := m.Called(ctx, it)
	if args.Error(0) == nil {
		it.ID = 10
	}
	return args.Error(0)
}

func (m *mockWishlistRepo) ListByUser(ctx context.Context, userID uint) ([]domain.WishlistItem, error) {
	args := m.Called(ctx, userID)
	items, _ := args.Get(0).([]domain.WishlistItem)
	return items, args.Error(1)
}

func (m *mockWishlistRepo) FindOwned(ctx context.Context, userID, id uint) (*domain.WishlistItem, error) {
	args := m.Called(ctx, userID, id)
	it, _ := args.Get(0).(*domain.WishlistItem)
	return it, args.Error(1)
}

func (m *mockWishlistRepo) UpdateOwned(ctx context.Context, userID, id uint, p domain.WishlistPatch) (*domain.WishlistItem, error) {
	args := m.Called(ctx, userID, id, p)
	it, _ := args.Get(0).(*domain.WishlistItem)
	return it, args.Error(1)
}

func (m *mockWishlistRepo) DeleteOwned(ctx context.Context, userID, id uint) error {
	return m.Called(ctx, userID, id).Error(0)
}

type mockHasher struct{ mock.Mock }

func (m *mockHasher) Hash(pw string) (string, error) {
	args := m.Called(pw)
	return args.String(0), args.Error(1)
}

func (m *mockHasher) Verify(encoded, pw string) bool {
	return m.Called(encoded, pw).Bool(0)
}

type mockTokens struct{ mock.Mock }

func (m *mockTokens) Issue(subject, email string) (string, error) {
	args := m.Called(subject, email)
	return args.String(0), args.Error(1)
}
