package main

import (
	"log"
	"net/http"
	"time"

	"github.com/bellapacxx/lottery-backend/config"
	"github.com/bellapacxx/lottery-backend/controllers"
	"github.com/bellapacxx/lottery-backend/engine"
	"github.com/bellapacxx/lottery-backend/routes"
	"github.com/bellapacxx/lottery-backend/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// setupRouter initializes Gin routes and middleware
func setupRouter(hub *services.Hub) *gin.Engine {
	r := gin.Default()

	// Middleware
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Setup REST routes
	routes.SetupRoutes(r)

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "timestamp": time.Now()})
	})

	// WebSocket event stream
	r.GET("/ws", services.HandleWebSocket(hub))

	return r
}

func main() {
	// Load env variables
	cfg := config.Load()

	// Connect to database (optional)
	db := config.SetupDatabase(cfg.DatabaseURL)

	// Wire the engine to the event hub
	hub := services.NewHub()
	eng := engine.New(db, engine.Options{
		Sink:           hub,
		ReturnChange:   cfg.ReturnChange,
		GracePeriodSec: cfg.GracePeriodSec,
	})
	if err := eng.Load(); err != nil {
		log.Fatalf("[FATAL] Failed to restore engine state: %v", err)
	}
	controllers.Engine = eng

	// Background auto-resolution of due lotteries
	if cfg.AutoResolveSec > 0 {
		stop := make(chan struct{})
		defer close(stop)
		go eng.RunAutoResolve(stop, time.Duration(cfg.AutoResolveSec)*time.Second)
	}

	// Setup Gin router
	router := setupRouter(hub)

	// Start server
	log.Printf("🚀 Lottery backend server starting on port %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("[FATAL] Failed to start server: %v", err)
	}
}
