package middleware

import (
	"github.com/gin-gonic/gin"

	resp "go-gin-wishlist/internal/transport/http/response"
)

// Recovered 作为 ginzap.CustomRecoveryWithZap 的回调：panic 已记录堆栈，这里只回 500 信封
func Recovered(c *gin.Context, _ any) {
	resp.Abort(c, resp.CodeServerError, "")
}
