package main

import (
	"time"

	"cohesion-academy/config"
	"cohesion-academy/database"
	hiddenapi "cohesion-academy/internal/api/hidden"
	marqueeapi "cohesion-academy/internal/api/marquee"
	routes "cohesion-academy/internal/app/http"
	"cohesion-academy/internal/app/http/middleware"
	"cohesion-academy/internal/infra/cache"
	"cohesion-academy/internal/logger"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	config.LoadEnv()
	log := logger.Init(config.ENV)
	defer log.Sync()

	database.InitDB()
	log.Info("database connected and migrated")

	// Shared key-value store: redis when configured, in-memory otherwise.
	var kv cache.Store = cache.NewMemory()
	if config.REDIS_URL != "" {
		r, err := cache.NewRedis(config.REDIS_URL)
		if err != nil {
			log.Warn("redis unavailable, falling back to in-memory cache", zap.Error(err))
		} else {
			kv = r
		}
	}
	defer kv.Close()

	hiddenapi.UseStore(kv)
	marqueeapi.UseStore(kv)

	if config.ENV == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.RequestLogger(), gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{config.CORS_ORIGIN},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Device-ID"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.RegisterRoutes(r)

	log.Info("listening", zap.String("port", config.PORT))
	if err := r.Run(":" + config.PORT); err != nil {
		log.Fatal("server exited", zap.Error(err))
	}
}
