package routes

import (
	"dealerdesk/internal/handlers"
	"dealerdesk/internal/middleware"

	"github.com/gin-gonic/gin"
)

// SetupAppointmentRoutes wires service scheduling. The storefront books
// appointments without a token; managing them is admin only.
func SetupAppointmentRoutes(r *gin.RouterGroup, appointmentHandler *handlers.AppointmentHandler, jwtSecret string) {
	r.POST("/service-appointments", appointmentHandler.CreateAppointment)

	admin := r.Group("/service-appointments")
	admin.Use(middleware.AdminRequired(jwtSecret))
	{
		admin.GET("", appointmentHandler.ListAppointments)
		admin.GET("/:id", appointmentHandler.GetAppointment)
		admin.PATCH("/:id", appointmentHandler.UpdateAppointment)
		admin.DELETE("/:id", appointmentHandler.DeleteAppointment)
	}
}
