package routes

import (
	"fmt"

	"coach-tree-portal/internal/api/handlers"
	"coach-tree-portal/internal/api/middleware"
	"coach-tree-portal/internal/config"
	"coach-tree-portal/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Dependencies are the long-lived services the routes are served by
type Dependencies struct {
	Client *service.MembersClient
	Form   *service.FormController
	Tree   *service.TreeService
}

// NewDependencies builds the members client, the rule set and the services on top of them
func NewDependencies(cfg *config.Config) (*Dependencies, error) {
	client, err := service.NewMembersClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create members client: %w", err)
	}

	memberValidator, err := service.NewMemberValidator(validator.New())
	if err != nil {
		return nil, fmt.Errorf("failed to create member validator: %w", err)
	}

	return &Dependencies{
		Client: client,
		Form:   service.NewFormController(client, memberValidator, cfg),
		Tree:   service.NewTreeService(client, memberValidator),
	}, nil
}

// SetupRoutes configures all the routes for the application
func SetupRoutes(cfg *config.Config, deps *Dependencies) *gin.Engine {
	router := gin.New()

	// Add middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg))

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(deps.Client)
	memberHandler := handlers.NewMemberHandler(deps.Tree)
	formHandler := handlers.NewFormHandler(deps.Form)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/api/v1")
	{
		members := v1.Group("/members")
		{
			members.GET("", memberHandler.ListMembers)
			members.GET("/tree", memberHandler.GetTree)
			members.PATCH("/:id", memberHandler.UpdateMember)
			members.PUT("/:id/parent", memberHandler.MoveMember)
			members.DELETE("/:id", memberHandler.DeleteMember)
		}

		form := v1.Group("/form")
		{
			form.GET("", formHandler.GetForm)
			form.POST("/submit", formHandler.Submit)
			form.POST("/validate", formHandler.Validate)
		}
	}

	return router
}
