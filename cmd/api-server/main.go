package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"shopcatalog/database"
	"shopcatalog/internal/config"
	"shopcatalog/internal/http-api/handler"
	"shopcatalog/internal/http-api/middleware"
	"shopcatalog/internal/http-api/repository"
	"shopcatalog/internal/http-api/service"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("could not load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	logger := newLogger(cfg)

	db, err := database.ConnectDB(cfg, logger)
	if err != nil {
		log.Fatalf("could not connect to database: %v", err)
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})
	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := redisClient.Ping(pingCtx).Err(); err != nil {
		log.Fatalf("could not connect to redis: %v", err)
	}
	logger.Info("Connected to redis", "addr", cfg.RedisAddr)

	// Repositories
	articleRepo := repository.NewArticleRepository(db)
	scoreRepo := repository.NewScoreRepository(db)
	basketRepo := repository.NewBasketRepository(db)
	catalogRepo := repository.NewCatalogRepo(db)
	userRepo := repository.NewUserRepository(db)
	refreshTokenRepo := repository.NewRefreshTokenRepository(redisClient)

	// Services
	articleService := service.NewArticleService(articleRepo, scoreRepo)
	scoreService := service.NewScoreService(scoreRepo, articleRepo)
	basketService := service.NewBasketService(basketRepo)
	catalogService := service.NewCatalogService(catalogRepo)
	authService := service.NewAuthService(userRepo, refreshTokenRepo, cfg)

	// Handlers
	articleHandler := handler.NewArticleHandler(articleService, scoreService)
	basketHandler := handler.NewBasketHandler(basketService)
	catalogHandler := handler.NewCatalogHandler(catalogService)
	authHandler := handler.NewAuthHandler(authService)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.CORSOrigins
	corsConfig.AddAllowHeaders("Authorization")
	corsConfig.AllowCredentials = true
	r.Use(cors.New(corsConfig))

	limiter := middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	r.Use(limiter.Middleware())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	authHandler.RegisterRoutes(api)
	catalogHandler.RegisterRoutes(api)
	articleHandler.RegisterRoutes(api,
		middleware.OptionalAuth(authService),
		middleware.RequireAuth(authService),
	)
	basketHandler.RegisterRoutes(api, middleware.RequireAuth(authService))

	addr := fmt.Sprintf(":%d", cfg.HTTPPort)
	logger.Info("Starting shop catalog API", "addr", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

func newLogger(cfg *config.Config) *slog.Logger {
	var level slog.Level
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}
