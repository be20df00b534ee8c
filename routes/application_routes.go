package routes

import (
	"dealerdesk/internal/handlers"
	"dealerdesk/internal/middleware"

	"github.com/gin-gonic/gin"
)

// SetupApplicationRoutes wires the careers pipeline: the public submit
// endpoint plus the admin review surface.
func SetupApplicationRoutes(r *gin.RouterGroup, intakeHandler *handlers.IntakeHandler, applicationHandler *handlers.ApplicationHandler, jwtSecret string) {
	r.POST("/applications/submit", intakeHandler.SubmitApplication)

	admin := r.Group("/applications")
	admin.Use(middleware.AdminRequired(jwtSecret))
	{
		admin.GET("", applicationHandler.ListApplications)
		admin.GET("/:id", applicationHandler.GetApplication)
		admin.GET("/:id/documents", applicationHandler.GetApplicationDocuments)
		admin.PATCH("/:id/status", applicationHandler.UpdateApplicationStatus)
		admin.DELETE("/:id", applicationHandler.DeleteApplication)
	}
}
