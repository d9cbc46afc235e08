package service

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"go-gin-wishlist/internal/core/auth"
	"go-gin-wishlist/internal/domain"
)

type AuthService struct {
	users  domain.UserRepository
	hasher PasswordHasher
	tokens TokenIssuer
	log    *zap.Logger
}

func NewAuthService(users domain.UserRepository, hasher PasswordHasher, tokens TokenIssuer, l *zap.Logger) *AuthService {
	if l == nil {
		l = zap.NewNop()
	}
	return &AuthService{users: users, hasher: hasher, tokens: tokens, log: l}
}

// Signup 唯一性交给库的唯一索引，不做先查后插
func (s *AuthService) Signup(ctx context.Context, email, password string) (string, error) {
	email = domain.NormalizeEmail(email)
	hash, err := s.hasher.Hash(password)
	if err != nil {
		return "", errors.Wrap(err, "hash password")
	}
	u := &domain.User{Email: email, PasswordHash: hash}
	if err := s.users.Create(ctx, u); err != nil {
		return "", err
	}
	s.log.Info("user signed up", zap.Uint("uid", u.ID))
	return s.issue(u)
}

// Signin 邮箱不存在与密码错误返回同一个错误
func (s *AuthService) Signin(ctx context.Context, email, password string) (string, error) {
	u, err := s.users.FindByEmail(ctx, domain.NormalizeEmail(email))
	if err != nil {
		return "", err
	}
	if u == nil || !s.hasher.Verify(u.PasswordHash, password) {
		s.log.Debug("signin rejected")
		return "", domain.ErrInvalidCredentials
	}
	return s.issue(u)
}

func (s *AuthService) issue(u *domain.User) (string, error) {
	tok, err := s.tokens.Issue(auth.Subject(u.ID), u.Email)
	if err != nil {
		return "", errors.Wrap(err, "issue token")
	}
	return tok, nil
}
