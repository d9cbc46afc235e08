package main

import (
	"context"
	"fmt"
	"os"
	"time"

	_ "go.uber.org/automaxprocs"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"go-gin-wishlist/internal/core/config"
	"go-gin-wishlist/internal/core/database"
	"go-gin-wishlist/internal/core/logger"
	"go-gin-wishlist/internal/repo"
)

// 只建表/补字段，不启动 HTTP
func main() {
	_ = godotenv.Load()
	cfg, err := config.Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		fmt.Fprintln(os.Stderr, "load config:", err)
		os.Exit(1)
	}
	log, cleanup := logger.FromConfig(cfg.Log)
	defer cleanup()

	db, err := database.NewGorm(database.Opts{
		Driver:       cfg.DB.Driver,
		DSN:          cfg.DB.DSN,
		Username:     cfg.DB.Username,
		Password:     cfg.DB.Password,
		MaxOpenConns: 1,
		MaxIdleConns: 1,
		LogLevel:     cfg.DB.LogLevel,
	})
	if err != nil {
		log.Fatal("db open", zap.Error(err))
	}
	defer func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()
	start := time.Now()
	if err := repo.Migrate(ctx, db); err != nil {
		log.Error("migrate failed", zap.Error(err))
		return
	}
	log.Info("migrate done", zap.String("driver", cfg.DB.Driver), zap.Duration("took", time.Since(start)))
}
