package main

import (
	"log"
	"time"

	"colis_express/internal/config"
	"colis_express/internal/database"
	"colis_express/internal/handlers"
	"colis_express/internal/migrations"
	"colis_express/internal/redis"
	"colis_express/internal/repository"
	"colis_express/internal/services"
	"colis_express/pkg/mobilemoney"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()
	gin.SetMode(cfg.GinMode)

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err := migrations.RunMigrations(db, cfg.AdminEmail, cfg.AdminPassword); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize Redis
	redisClient, err := redis.Initialize(cfg.RedisURL)
	if err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	// Initialize payment gateway (simulation)
	gateway := mobilemoney.NewClient()

	// Initialize repositories
	shipmentRepo := repository.NewShipmentRepository(db)
	userRepo := repository.NewUserRepository(db)

	// Initialize services
	cacheTTL := time.Duration(cfg.CacheTTL) * time.Second
	sessionTTL := time.Duration(cfg.SessionTimeout) * time.Second
	shipmentService := services.NewShipmentService(shipmentRepo, redisClient, cacheTTL, cfg.AllowStatusRollback)
	authService := services.NewAuthService(userRepo, redisClient, sessionTTL)
	paymentService := services.NewPaymentService(shipmentRepo, gateway, redisClient)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	shipmentHandler := handlers.NewShipmentHandler(shipmentService)
	trackingHandler := handlers.NewTrackingHandler(shipmentService)
	paymentHandler := handlers.NewPaymentHandler(paymentService)
	adminHandler := handlers.NewAdminHandler(shipmentService)

	// Setup routes
	router := gin.Default()

	api := router.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", authHandler.Logout)
			auth.GET("/me", handlers.RequireAuth(authService), authHandler.Me)
		}

		// Public pricing calculator and tracking
		api.POST("/shipments/quote", shipmentHandler.Quote)
		api.GET("/tracking/:number", trackingHandler.Track)

		// Shipment creation is open to anonymous senders
		api.POST("/shipments", handlers.OptionalAuth(authService), shipmentHandler.Create)
		api.GET("/shipments", handlers.RequireAuth(authService), shipmentHandler.List)

		api.POST("/payments/mobile-money", paymentHandler.PayMobileMoney)

		admin := api.Group("/admin", handlers.RequireAuth(authService), handlers.RequireAdmin())
		{
			admin.GET("/shipments", adminHandler.ListShipments)
			admin.GET("/stats", adminHandler.Stats)
			admin.PUT("/shipments/:id/status", adminHandler.UpdateStatus)
		}
	}

	// Start server
	log.Printf("Server starting on port %s", cfg.ServerPort)
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
