package auth

import (
	"context"
	"strconv"
)

// Identity 当前请求的调用者（由鉴权中间件写入）
type Identity struct {
	UserID uint
	Email  string
}

type ctxKey struct{}

func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

func IdentityFrom(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(ctxKey{}).(Identity)
	return id, ok && id.UserID != 0
}

// IdentityFromClaims sub 必须是正整数
func IdentityFromClaims(c *Claims) (Identity, error) {
	n, err := strconv.ParseUint(c.Subject, 10, 64)
	if err != nil || n == 0 {
		return Identity{}, ErrInvalidToken
	}
	return Identity{UserID: uint(n), Email: c.Email}, nil
}

func Subject(userID uint) string { return strconv.FormatUint(uint64(userID), 10) }
