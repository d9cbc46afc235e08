package service

import (
	"context"

	"go.uber.org/zap"

	"go-gin-wishlist/internal/domain"
)

type UserService struct {
	users domain.UserRepository
	log   *zap.Logger
}

func NewUserService(users domain.UserRepository, l *zap.Logger) *UserService {
	if l == nil {
		l = zap.NewNop()
	}
	return &UserService{users: users, log: l}
}

func (s *UserService) Profile(ctx context.Context, userID uint) (*domain.User, error) {
	u, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrUserNotFound
	}
	return u, nil
}

// EditProfile 只改调用者自己；空补丁等同于读取
func (s *UserService) EditProfile(ctx context.Context, userID uint, p domain.UserPatch) (*domain.User, error) {
	if p.Empty() {
		return s.Profile(ctx, userID)
	}
	if p.Email != nil {
		e := domain.NormalizeEmail(*p.Email)
		p.Email = &e
	}
	u, err := s.users.UpdateProfile(ctx, userID, p)
	if err != nil {
		return nil, err
	}
	s.log.Debug("profile updated", zap.Uint("uid", userID))
	return u, nil
}
