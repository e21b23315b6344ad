package main

import (
	"context"
	"log"
	"time"

	"coach-tree-portal/internal/api/routes"
	"coach-tree-portal/internal/config"
	"coach-tree-portal/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	_ "coach-tree-portal/docs" // This is needed for swag
)

//	@title			Coach Tree Portal API
//	@version		1.0
//	@description	Backend for the coach tree UI: validates and creates members through the create-member form and serves the coach tree backed by the external members API.
//	@termsOfService	http://swagger.io/terms/

//	@contact.name	API Support
//	@contact.url	http://www.example.com/support
//	@contact.email	support@example.com

//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT

//	@host		localhost:7008
//	@BasePath	/api/v1

func main() {
	// Load environment variables from .env file in development
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	// Initialize configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Set up logging
	logger.Setup(cfg.LogLevel)

	deps, err := routes.NewDependencies(cfg)
	if err != nil {
		logrus.Fatal("Failed to initialize services:", err)
	}

	// Warm the form's member list. GET /form and every submit fetch it again.
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := deps.Form.Load(ctx); err != nil {
		logrus.WithError(err).Warn("Members API not reachable on startup, starting with an empty member list")
	}
	cancel()

	// Set Gin mode
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize router
	router := routes.SetupRoutes(cfg, deps)

	// Start server
	port := cfg.Port
	if port == "" {
		port = "7008"
	}

	logrus.WithFields(logrus.Fields{
		"port":        port,
		"members_api": deps.Client.BaseURL(),
		"limit":       cfg.MembersLimit,
	}).Info("Starting server")
	if err := router.Run(":" + port); err != nil {
		logrus.Fatal("Failed to start server:", err)
	}
}
