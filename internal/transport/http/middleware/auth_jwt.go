package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"go-gin-wishlist/internal/core/auth"
	resp "go-gin-wishlist/internal/transport/http/response"
)

const KeyUserID = "uid"

// AuthJWT 校验 Bearer token，身份写入 request context；失败一律 401，不区分原因
func AuthJWT(j *auth.JWTer) gin.HandlerFunc {
	return func(c *gin.Context) {
		tok, ok := bearer(c.GetHeader("Authorization"))
		if !ok {
			resp.Abort(c, resp.CodeUnauthorized, "")
			return
		}
		claims, err := j.Parse(tok)
		if err != nil {
			resp.Abort(c, resp.CodeUnauthorized, "")
			return
		}
		id, err := auth.IdentityFromClaims(claims)
		if err != nil {
			resp.Abort(c, resp.CodeUnauthorized, "")
			return
		}
		c.Request = c.Request.WithContext(auth.WithIdentity(c.Request.Context(), id))
		c.Set(KeyUserID, id.UserID)
		c.Next()
	}
}

func bearer(h string) (string, bool) {
	const prefix = "bearer "
	if len(h) <= len(prefix) || !strings.EqualFold(h[:len(prefix)], prefix) {
		return "", false
	}
	tok := strings.TrimSpace(h[len(prefix):])
	return tok, tok != ""
}

// CurrentUser 只能在 AuthJWT 之后的 handler 里使用
func CurrentUser(c *gin.Context) (auth.Identity, bool) {
	return auth.IdentityFrom(c.Request.Context())
}
