package router

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"gorm.io/gorm"

	"go-gin-wishlist/internal/core/auth"
	"go-gin-wishlist/internal/core/config"
	"go-gin-wishlist/internal/core/database"
	"go-gin-wishlist/internal/core/server"
	"go-gin-wishlist/internal/repo"
	"go-gin-wishlist/internal/service"
	"go-gin-wishlist/internal/transport/http/ez"
	"go-gin-wishlist/internal/transport/http/handler"
	mdw "go-gin-wishlist/internal/transport/http/middleware"
	resp "go-gin-wishlist/internal/transport/http/response"
)

// Deps 进程启动时构造一次，之后只读
type Deps struct {
	DB     *gorm.DB
	JWT    *auth.JWTer
	Hasher service.PasswordHasher
	Limits config.Limits
}

func NewAPIEngine(l *zap.Logger, d Deps) *gin.Engine {
	ez.SetupValidator()
	r := server.NewRouter(l, mdw.Recovered)

	// 探活与指标不走限流
	r.GET("/health", health(d.DB))
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.Use(entryGuards(l, d.Limits)...)

	users := repo.NewUserRepo(d.DB)
	items := repo.NewWishlistRepo(d.DB)
	guard := mdw.AuthJWT(d.JWT)

	reg := NewRegistry(
		handler.NewAuthHandler(service.NewAuthService(users, d.Hasher, d.JWT, l.Named("auth"))),
		handler.NewUserHandler(service.NewUserService(users, l.Named("user")), guard),
		handler.NewWishlistHandler(service.NewWishlistService(items, l.Named("wishlist")), guard),
	)
	reg.MountAll(&r.RouterGroup)

	r.NoRoute(func(c *gin.Context) { resp.Abort(c, resp.CodeNotFound, "") })
	return r
}

// entryGuards 顺序：日志/指标在最外层，超时包住并发排队
func entryGuards(l *zap.Logger, lim config.Limits) []gin.HandlerFunc {
	hs := []gin.HandlerFunc{mdw.RequestID(), mdw.AccessLog(l), mdw.Metrics()}
	if lim.RPS > 0 {
		hs = append(hs, mdw.RateLimit(rate.Limit(lim.RPS), max(lim.Burst, 1)))
	}
	if lim.PerIPRPS > 0 {
		hs = append(hs, mdw.RateLimitPerIP(rate.Limit(lim.PerIPRPS), max(lim.PerIPBurst, 1)))
	}
	if lim.MaxBodyBytes > 0 {
		hs = append(hs, mdw.MaxBodyBytes(lim.MaxBodyBytes))
	}
	if lim.RequestTimeoutSec > 0 {
		hs = append(hs, mdw.Timeout(time.Duration(lim.RequestTimeoutSec)*time.Second))
	}
	if lim.MaxConcurrent > 0 {
		hs = append(hs, mdw.ConcurrencyLimit(lim.MaxConcurrent))
	}
	return hs
}

func health(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := database.Ping(ctx, db); err != nil {
			_ = c.Error(err)
			resp.Abort(c, resp.CodeUnavailable, "database unavailable")
			return
		}
		c.JSON(http.StatusOK, resp.OK(gin.H{"db": "up"}))
	}
}
