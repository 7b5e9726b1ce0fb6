package main

import (
	"context"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/apopovic77/gsg-api/controllers"
	"github.com/apopovic77/gsg-api/database"
	"github.com/apopovic77/gsg-api/middleware"
	"github.com/apopovic77/gsg-api/repository"
	"github.com/apopovic77/gsg-api/routes"
	"github.com/apopovic77/gsg-api/services"
)

func main() {
	cfg, err := LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	var logger *zap.Logger
	if cfg.Env == "production" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	db, err := database.Connect(cfg.DSN(), logger)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close() //nolint:errcheck

	// DI chain
	catalogRepo := repository.NewCatalogRepository(db)
	catalogService := services.NewCatalogService(catalogRepo, logger)
	productController := controllers.NewProductController(catalogService)
	catalogController := controllers.NewCatalogController(catalogService)

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	r.Use(middleware.RequestLogger(logger))
	r.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.Error("Unhandled panic", zap.Any("panic", recovered))
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
			"type":  "internal_error",
		})
	}))
	r.Use(middleware.SecurityHeaders())

	rateLimiter := middleware.NewRateLimiter(20, 40, 5*time.Minute)
	r.Use(rateLimiter.Middleware())

	r.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{"GET", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "X-Request-ID", middleware.APIKeyHeader},
	}))

	// Health probes stay unauthenticated.
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"name":    cfg.Title,
			"version": cfg.Version,
			"status":  "healthy",
		})
	})
	r.GET("/health", func(c *gin.Context) {
		status, dbStatus := "healthy", "connected"
		if err := catalogRepo.Ping(c.Request.Context()); err != nil {
			status, dbStatus = "degraded", "error: "+err.Error()
		}
		c.JSON(http.StatusOK, gin.H{
			"status":   status,
			"database": dbStatus,
			"version":  cfg.Version,
		})
	})

	auth := middleware.APIKeyAuth(cfg.APIKeys)
	routes.RegisterCatalogRoutes(r, productController, catalogController, auth)

	srv := &http.Server{
		Addr:    net.JoinHostPort(cfg.Host, cfg.Port),
		Handler: r,
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	logger.Info("GSG API started", zap.String("addr", srv.Addr), zap.Bool("auth_enabled", len(cfg.APIKeys) > 0))
	<-quit
	logger.Info("Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}
	logger.Info("Server exited cleanly")
}
