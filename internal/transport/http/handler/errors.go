package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"go-gin-wishlist/internal/domain"
	"go-gin-wishlist/internal/transport/http/ez"
	mdw "go-gin-wishlist/internal/transport/http/middleware"
)

// mapErr 领域错误 -> 对外状态码/文案；未识别的一律 500
func mapErr(err error) error {
	switch {
	case errors.Is(err, domain.ErrDuplicateEmail):
		return ez.Forbidden("Email already taken")
	case errors.Is(err, domain.ErrInvalidCredentials):
		return ez.Forbidden("Invalid credentials")
	case errors.Is(err, domain.ErrAccessDenied):
		return ez.Forbidden("Access denied")
	case errors.Is(err, domain.ErrNotFound):
		return ez.NotFound("")
	case errors.Is(err, domain.ErrUserNotFound):
		return ez.NotFound("User not found")
	}
	return ez.Internal(err)
}

func callerID(c *gin.Context) (uint, error) {
	id, ok := mdw.CurrentUser(c)
	if !ok {
		return 0, ez.Unauthorized("")
	}
	return id.UserID, nil
}
