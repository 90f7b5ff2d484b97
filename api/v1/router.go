package v1

import (
	"context"
	"log"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vodex-console/middleware"
	"github.com/vodex-console/services"
)

var (
	companyService *services.CompanyService
	clientService  *services.ClientService
	projectService *services.ProjectService
	fieldService   *services.FieldService
)

// RegisterRoutes registers all v1 API routes
func RegisterRoutes(router *gin.RouterGroup) {
	uploads := services.NewUploadService()
	if uploads.Enabled() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := uploads.EnsureBucket(ctx); err != nil {
			log.Printf("⚠️ Upload bucket unavailable, file uploads disabled: %v", err)
		}
	}

	companyService = services.NewCompanyService(uploads)
	clientService = services.NewClientService(uploads)
	projectService = services.NewProjectService(uploads)
	fieldService = services.NewFieldService()

	// Health check endpoint
	router.GET("/health", HealthCheck)

	// Auth endpoints
	loginLimiter := middleware.NewRateLimiter(1, 5)
	authGroup := router.Group("/auth")
	{
		authGroup.POST("/login", loginLimiter.Limit(), Login)
		authGroup.POST("/logout", Logout)
		// Use auth middleware here only for the /me endpoint
		authGroup.GET("/me", middleware.AuthMiddleware(), GetCurrentUser)
	}

	// Company endpoints - protected by AuthMiddleware
	companyGroup := router.Group("/companies")
	companyGroup.Use(middleware.AuthMiddleware())
	{
		companyGroup.GET("", ListCompanies)
		companyGroup.POST("", CreateCompany)
		companyGroup.GET("/:id", GetCompany)
		companyGroup.PATCH("/:id", UpdateCompany)
		companyGroup.DELETE("/:id", DeleteCompany)
	}

	// Client endpoints - protected by AuthMiddleware
	clientGroup := router.Group("/clients")
	clientGroup.Use(middleware.AuthMiddleware())
	{
		clientGroup.GET("", ListClients)
		clientGroup.POST("", CreateClient)
		clientGroup.GET("/:id", GetClient)
		clientGroup.PATCH("/:id", UpdateClient)
		clientGroup.DELETE("/:id", DeleteClient)
	}

	// Project endpoints - protected by AuthMiddleware
	projectGroup := router.Group("/projects")
	projectGroup.Use(middleware.AuthMiddleware())
	{
		projectGroup.GET("", ListProjects)
		projectGroup.POST("", CreateProject)
		projectGroup.GET("/:id", GetProject)
		projectGroup.PATCH("/:id", UpdateProject)
		projectGroup.DELETE("/:id", DeleteProject)
	}

	// Field definition endpoints - protected by AuthMiddleware.
	// The :key segment names an entity type for list/create/reorder and a
	// field ID for update/delete/toggle.
	fieldGroup := router.Group("/fields")
	fieldGroup.Use(middleware.AuthMiddleware())
	{
		fieldGroup.GET("/:key", ListFields)
		fieldGroup.POST("/:key", CreateField)
		fieldGroup.PUT("/:key", UpdateField)
		fieldGroup.DELETE("/:key", DeleteField)
		fieldGroup.PATCH("/:key/toggle", ToggleField)
		fieldGroup.PATCH("/:key/reorder", ReorderFields)
	}
}
