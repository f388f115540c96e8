package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/barberiapro/booking-api/internal/config"
	dbpkg "github.com/barberiapro/booking-api/internal/db"
	"github.com/barberiapro/booking-api/internal/logger"
	"github.com/barberiapro/booking-api/internal/middleware"
	"github.com/barberiapro/booking-api/internal/routes"
)

func main() {

	_ = godotenv.Load()

	cfg := config.Load()

	log := logger.New(cfg.IsProduction())
	defer log.Sync()

	db := dbpkg.NewDB(cfg)

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, rdb, cfg, log)

	log.Info("server running", zap.String("addr", cfg.Addr()))
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal("failed to start server", zap.Error(err))
	}
}
