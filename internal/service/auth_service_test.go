package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"go-gin-wishlist/internal/domain"
)

func TestAuthService_Signup(t *testing.T) {
	ctx := context.Background()
	users, hasher, tokens := new(mockUserRepo), new(mockHasher), new(mockTokens)
	svc := NewAuthService(users, hasher, tokens, nil)

	hasher.On("Hash", "s3cret").Return("$argon2id$hash", nil)
	users.On("Create", ctx, mock.MatchedBy(func(u *domain.User) bool {
		return u.Email == "alice@example.com" && u.PasswordHash == "$argon2id$hash"
	})).Return(nil)
	tokens.On("Issue", "1", "alice@example.com").Return("tok", nil)

	tok, err := svc.Signup(ctx, "  Alice@Example.com ", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, "tok", tok)
	users.AssertExpectations(t)
	tokens.AssertExpectations(t)
}

func TestAuthService_SignupDuplicate(t *testing.T) {
	ctx := context.Background()
	users, hasher, tokens := new(mockUserRepo), new(mockHasher), new(mockTokens)
	svc := NewAuthService(users, hasher, tokens, nil)

	hasher.On("Hash", "pw").Return("h", nil)
	users.On("Create", ctx, mock.Anything).Return(domain.ErrDuplicateEmail)

	_, err := svc.Signup(ctx, "dup@example.com", "pw")
	assert.ErrorIs(t, err, domain.ErrDuplicateEmail)
	tokens.AssertNotCalled(t, "Issue", mock.Anything, mock.Anything)
}

func TestAuthService_SignupStoreFailurePropagates(t *testing.T) {
	ctx := context.Background()
	users, hasher, tokens := new(mockUserRepo), new(mockHasher), new(mockTokens)
	svc := NewAuthService(users, hasher, tokens, nil)

	boom := errors.New("connection reset")
	hasher.On("Hash", "pw").Return("h", nil)
	users.On("Create", ctx, mock.Anything).Return(boom)

	_, err := svc.Signup(ctx, "a@b.co", "pw")
	assert.ErrorIs(t, err, boom)
}

func TestAuthService_Signin(t *testing.T) {
	ctx := context.Background()
	users, hasher, tokens := new(mockUserRepo), new(mockHasher), new(mockTokens)
	svc := NewAuthService(users, hasher, tokens, nil)

	u := &domain.User{ID: 7, Email: "bob@example.com", PasswordHash: "stored"}
	users.On("FindByEmail", ctx, "bob@example.com").Return(u, nil)
	users.On("FindByEmail", ctx, "ghost@example.com").Return(nil, nil)
	hasher.On("Verify", "stored", "right").Return(true)
	hasher.On("Verify", "stored", "wrong").Return(false)
	tokens.On("Issue", "7", "bob@example.com").Return("tok7", nil)

	tok, err := svc.Signin(ctx, "BOB@example.com", "right")
	require.NoError(t, err)
	assert.Equal(t, "tok7", tok)

	_, errWrongPw := svc.Signin(ctx, "bob@example.com", "wrong")
	_, errNoUser := svc.Signin(ctx, "ghost@example.com", "right")
	assert.ErrorIs(t, errWrongPw, domain.ErrInvalidCredentials)
	assert.ErrorIs(t, errNoUser, domain.ErrInvalidCredentials)
	assert.Equal(t, errWrongPw, errNoUser)
	tokens.AssertNumberOfCalls(t, "Issue", 1)
}

func TestAuthService_SignupHashFailureWrapped(t *testing.T) {
	ctx := context.Background()
	users, hasher, tokens := new(mockUserRepo), new(mockHasher), new(mockTokens)
	svc := NewAuthService(users, hasher, tokens, nil)

	boom := errors.New("entropy exhausted")
	hasher.On("Hash", "pw").Return("", boom)

	_, err := svc.Signup(ctx, "a@b.co", "pw")
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "hash password")
	users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}
