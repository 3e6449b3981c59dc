package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"motosgarage-api/config"
	"motosgarage-api/controllers"
	"motosgarage-api/middleware"
	"motosgarage-api/repositories"
	"motosgarage-api/services"
)

func SetupRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, emailService *services.EmailService) {
	motoRepo := repositories.NewMotoRepository(db)
	userRepo := repositories.NewUserRepository(db)
	motoService := services.NewMotoService(motoRepo, userRepo)

	authController := controllers.NewAuthController(userRepo, cfg.JWTSecret, emailService)
	githubController := controllers.NewGitHubAuthController(userRepo, cfg.JWTSecret, cfg.GitHubClientID, cfg.GitHubClientSecret)
	motoController := controllers.NewMotoController(motoService)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "healthy"})
	})

	v1 := r.Group("/api/v1")
	v1.Use(middleware.RateLimit(120, 20))

	// Auth routes (public)
	auth := v1.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
		auth.POST("/logout", authController.Logout)
		auth.POST("/verify-code", authController.VerifyCode)
		auth.POST("/github", githubController.GitHubLogin)
	}

	// Moto routes. Listing works with or without a session (private
	// management vs public browse); everything else requires one.
	motos := v1.Group("/motos")
	{
		motos.GET("", middleware.OptionalAuthMiddleware(cfg.JWTSecret), motoController.List)

		protected := motos.Group("")
		protected.Use(middleware.AuthMiddleware(cfg.JWTSecret))
		{
			protected.POST("", motoController.Create)
			protected.GET("/:id", motoController.GetByID)
			protected.PUT("/:id", motoController.Update)
			protected.DELETE("/:id", motoController.Delete)
		}
	}
}

// SetupCORS allows the dashboard front end to call the API from another origin.
func SetupCORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
