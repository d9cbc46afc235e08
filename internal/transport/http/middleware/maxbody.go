package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	resp "go-gin-wishlist/internal/transport/http/response"
)

// MaxBodyBytes 声明长度超限直接 413；未声明长度的由 MaxBytesReader 截断，绑定时报 400
func MaxBodyBytes(n int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength > n {
			resp.Abort(c, resp.CodeEntityTooLarge, "")
			return
		}
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, n)
		c.Next()
	}
}
