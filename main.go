package main

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	v1 "github.com/vodex-console/api/v1"
	"github.com/vodex-console/config"
	"github.com/vodex-console/database"
	"github.com/vodex-console/middleware"
	"github.com/vodex-console/services"
)

func main() {
	// Load environment variables
	config.LoadEnv()

	// Initialize database connection and run migrations
	database.Initialize()

	// Seed the admin account on first boot
	if err := services.EnsureAdminUser(); err != nil {
		log.Fatalf("Failed to ensure admin user: %v", err)
	}

	// Set Gin mode
	gin.SetMode(gin.ReleaseMode)

	// Initialize router
	router := gin.Default()

	// CORS configuration
	router.Use(cors.New(cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
	}))

	// Request metrics
	router.Use(middleware.MetricsMiddleware())
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Register API routes
	api := router.Group("/api")
	v1.RegisterRoutes(api)

	// Get port from environment or use default
	port := config.GetEnv("PORT", "5000")

	// Start server
	log.Printf("🚀 Vodex console API starting on port %s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
