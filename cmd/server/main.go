package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ikkim/dinehub-backend/config"
	"github.com/ikkim/dinehub-backend/internal/app/controller"
	"github.com/ikkim/dinehub-backend/internal/app/repository"
	"github.com/ikkim/dinehub-backend/internal/app/service"
	"github.com/ikkim/dinehub-backend/internal/db"
	"github.com/ikkim/dinehub-backend/internal/middleware"
	"github.com/ikkim/dinehub-backend/internal/router"
	"github.com/ikkim/dinehub-backend/internal/storage"
	"github.com/ikkim/dinehub-backend/pkg/logger"
	"github.com/ikkim/dinehub-backend/pkg/redis"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", err)
	}

	// Initialize logger
	logLevel := "info"
	if cfg.Server.Environment == "development" {
		logLevel = "debug"
	}
	logger.Initialize(logger.Config{
		Level:       logLevel,
		Format:      cfg.Server.LogFormat,
		EnableColor: cfg.Server.LogFormat != "json",
	})

	logger.Info("Starting DineHub Backend Server", map[string]interface{}{
		"environment": cfg.Server.Environment,
		"port":        cfg.Server.Port,
		"log_level":   logLevel,
	})

	// Initialize database
	if err := db.Initialize(&cfg.Database); err != nil {
		logger.Fatal("Failed to initialize database", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("Failed to close database connection", err)
		}
	}()

	// Run migrations
	if err := db.Migrate(); err != nil {
		logger.Fatal("Failed to run migrations", err)
	}

	if err := db.SeedAdmin(db.GetDB(), cfg.Admin.Email, cfg.Admin.Password); err != nil {
		logger.Warn("Failed to seed admin", map[string]interface{}{
			"error": err.Error(),
		})
	}

	// Optional token revocation
	var revoker service.TokenRevoker
	if cfg.Redis.Enabled() {
		client, err := redis.Init(&cfg.Redis)
		if err != nil {
			logger.Fatal("Failed to connect to Redis", err)
		}
		blacklist := redis.NewTokenBlacklist(client)
		defer func() {
			if err := blacklist.Close(); err != nil {
				logger.Error("Failed to close Redis connection", err)
			}
		}()
		revoker = blacklist
	} else {
		logger.Warn("Redis not configured, logout will not revoke tokens")
	}

	// Optional image uploads
	var presigner service.ImagePresigner
	if cfg.S3.Enabled() {
		s3Storage, err := storage.NewS3Storage(context.Background(), cfg.S3)
		if err != nil {
			logger.Fatal("Failed to initialize S3 storage", err)
		}
		presigner = s3Storage
	} else {
		logger.Warn("S3 bucket not configured, image uploads are disabled")
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db.GetDB())
	restaurantRepo := repository.NewRestaurantRepository(db.GetDB())
	menuItemRepo := repository.NewMenuItemRepository(db.GetDB())
	orderRepo := repository.NewOrderRepository(db.GetDB())
	reviewRepo := repository.NewReviewRepository(db.GetDB())
	favoriteRepo := repository.NewFavoriteRepository(db.GetDB())
	searchRepo := repository.NewSearchRepository(db.GetDB())

	// Initialize services
	authService := service.NewAuthService(userRepo, cfg.JWT, revoker)
	userService := service.NewUserService(userRepo)
	catalogService := service.NewCatalogService(restaurantRepo, menuItemRepo)
	orderService := service.NewOrderService(orderRepo, catalogService)
	reportService := service.NewReportService(orderRepo)
	reviewService := service.NewReviewService(reviewRepo, orderRepo, catalogService)
	favoriteService := service.NewFavoriteService(favoriteRepo, catalogService)
	searchService := service.NewSearchService(searchRepo)
	uploadService := service.NewUploadService(presigner)

	// Initialize controllers
	authController := controller.NewAuthController(authService, userService)
	userController := controller.NewUserController(userService)
	restaurantController := controller.NewRestaurantController(catalogService)
	orderController := controller.NewOrderController(orderService, reportService)
	reviewController := controller.NewReviewController(reviewService)
	favoriteController := controller.NewFavoriteController(favoriteService)
	searchController := controller.NewSearchController(searchService)
	uploadController := controller.NewUploadController(uploadService)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(authService)

	// Setup router
	r := router.NewRouter(
		authController,
		userController,
		restaurantController,
		orderController,
		reviewController,
		favoriteController,
		searchController,
		uploadController,
		authMiddleware,
		cfg,
	)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:           r.Setup(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("Server started successfully", map[string]interface{}{
			"address": srv.Addr,
			"pid":     os.Getpid(),
		})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Failed to start server", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server gracefully...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", err)
	}
	logger.Info("Server stopped successfully")
}
