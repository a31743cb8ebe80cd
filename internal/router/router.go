package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/ikkim/dinehub-backend/config"
	"github.com/ikkim/dinehub-backend/internal/app/controller"
	"github.com/ikkim/dinehub-backend/internal/middleware"
)

type Router struct {
	authController       *controller.AuthController
	userController       *controller.UserController
	restaurantController *controller.RestaurantController
	orderController      *controller.OrderController
	reviewController     *controller.ReviewController
	favoriteController   *controller.FavoriteController
	searchController     *controller.SearchController
	uploadController     *controller.UploadController
	authMiddleware       *middleware.AuthMiddleware
	config               *config.Config
}

func NewRouter(
	authController *controller.AuthController,
	userController *controller.UserController,
	restaurantController *controller.RestaurantController,
	orderController *controller.OrderController,
	reviewController *controller.ReviewController,
	favoriteController *controller.FavoriteController,
	searchController *controller.SearchController,
	uploadController *controller.UploadController,
	authMiddleware *middleware.AuthMiddleware,
	cfg *config.Config,
) *Router {
	return &Router{
		authController:       authController,
		userController:       userController,
		restaurantController: restaurantController,
		orderController:      orderController,
		reviewController:     reviewController,
		favoriteController:   favoriteController,
		searchController:     searchController,
		uploadController:     uploadController,
		authMiddleware:       authMiddleware,
		config:               cfg,
	}
}

func (r *Router) Setup() *gin.Engine {
	if r.config.Server.GinMode != "" {
		gin.SetMode(r.config.Server.GinMode)
	}

	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.LoggingMiddleware())
	router.Use(cors.New(corsConfig(r.config.CORS.AllowedOrigins)))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"message": "DineHub API is running",
		})
	})

	authenticated := r.authMiddleware.Authenticate()
	adminOnly := r.authMiddleware.RequireAdmin()

	v1 := router.Group("/api/v1")
	{
		users := v1.Group("/users")
		{
			users.POST("/register", r.authController.Register)
			users.POST("/login", r.authController.Login)
			users.POST("/logout", authenticated, r.authController.Logout)
			users.GET("/me", authenticated, r.authController.GetMe)
			users.PUT("/me", authenticated, r.authController.UpdateMe)

			users.GET("", authenticated, adminOnly, r.userController.ListUsers)
			users.GET("/:id", authenticated, adminOnly, r.userController.GetUser)
			users.PUT("/:id", authenticated, adminOnly, r.userController.UpdateUser)
			users.DELETE("/:id", authenticated, adminOnly, r.userController.DeleteUser)
		}

		restaurants := v1.Group("/restaurants")
		{
			restaurants.GET("", r.restaurantController.ListRestaurants)
			restaurants.GET("/:id", r.restaurantController.GetRestaurant)
			restaurants.GET("/:id/menu", r.restaurantController.GetMenu)

			restaurants.POST("", authenticated, adminOnly, r.restaurantController.CreateRestaurant)
			restaurants.PUT("/:id", authenticated, adminOnly, r.restaurantController.UpdateRestaurant)
			restaurants.DELETE("/:id", authenticated, adminOnly, r.restaurantController.DeleteRestaurant)
			restaurants.POST("/:id/menu", authenticated, adminOnly, r.restaurantController.CreateMenuItem)
			restaurants.PUT("/menu/:item_id", authenticated, adminOnly, r.restaurantController.UpdateMenuItem)
			restaurants.DELETE("/menu/:item_id", authenticated, adminOnly, r.restaurantController.DeleteMenuItem)
		}

		orders := v1.Group("/orders", authenticated)
		{
			orders.POST("", r.orderController.CreateOrder)
			orders.GET("/my", r.orderController.GetMyOrders)
			orders.GET("/:id", r.orderController.GetOrder)
			orders.PUT("/:id/cancel", r.orderController.CancelOrder)

			orders.GET("/admin", adminOnly, r.orderController.ListAllOrders)
			orders.GET("/admin/export", adminOnly, r.orderController.ExportOrders)
			orders.PUT("/:id/status", adminOnly, r.orderController.UpdateOrderStatus)
		}

		reviews := v1.Group("/reviews")
		{
			reviews.GET("/restaurant/:id", r.reviewController.GetRestaurantReviews)
			reviews.POST("", authenticated, r.reviewController.CreateReview)
			reviews.PUT("/:id", authenticated, r.reviewController.UpdateReview)
			reviews.DELETE("/:id", authenticated, r.reviewController.DeleteReview)
		}

		favorites := v1.Group("/favorites", authenticated)
		{
			favorites.GET("", r.favoriteController.ListFavorites)
			favorites.POST("/:restaurant_id", r.favoriteController.ToggleFavorite)
		}

		v1.GET("/search", r.searchController.Search)

		v1.POST("/uploads/presigned-url", authenticated, adminOnly, r.uploadController.GeneratePresignedURL)
	}

	return router
}

// corsConfig allows any origin when the list contains "*"; credentials are
// only sent to explicitly listed origins.
func corsConfig(allowedOrigins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.RequestIDHeader},
		ExposeHeaders: []string{"Content-Length", "Content-Disposition", middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}

	for _, origin := range allowedOrigins {
		if origin == "*" {
			cfg.AllowAllOrigins = true
			return cfg
		}
	}

	cfg.AllowOrigins = allowedOrigins
	cfg.AllowCredentials = true
	if len(cfg.AllowOrigins) == 0 {
		cfg.AllowOrigins = []string{"http://localhost:3000"}
	}
	return cfg
}
