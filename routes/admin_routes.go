package routes

import (
	"dealerdesk/internal/handlers"
	"dealerdesk/internal/middleware"

	"github.com/gin-gonic/gin"
)

// SetupAdminRoutes wires authentication, environment setup and the
// bucket-level file operations.
func SetupAdminRoutes(r *gin.RouterGroup, authHandler *handlers.AuthHandler, adminHandler *handlers.AdminHandler, fileHandler *handlers.FileHandler, jwtSecret string) {
	r.POST("/auth/login", authHandler.Login)

	setup := r.Group("/setup")
	setup.Use(middleware.AdminRequired(jwtSecret))
	{
		setup.POST("/storage", adminHandler.SetupStorage)
		setup.POST("/seed", adminHandler.SeedData)
	}

	files := r.Group("/files")
	files.Use(middleware.AdminRequired(jwtSecret))
	{
		files.POST("/upload", fileHandler.UploadFile)
		files.GET("/url", fileHandler.GetFileURL)
		files.GET("/download", fileHandler.DownloadFile)
		files.GET("", fileHandler.ListFiles)
	}
}
