package routes

import (
	"dealerdesk/internal/handlers"
	"dealerdesk/internal/middleware"

	"github.com/gin-gonic/gin"
)

// SetupVehicleRoutes wires the inventory endpoints. Browsing is public,
// everything that mutates requires the admin token.
func SetupVehicleRoutes(r *gin.RouterGroup, vehicleHandler *handlers.VehicleHandler, jwtSecret string) {
	vehicles := r.Group("/vehicles")
	{
		vehicles.GET("", vehicleHandler.ListVehicles)
		vehicles.GET("/:id", vehicleHandler.GetVehicle)
		vehicles.GET("/:id/images", vehicleHandler.GetImageURLs)
	}

	admin := r.Group("/vehicles")
	admin.Use(middleware.AdminRequired(jwtSecret))
	{
		admin.POST("", vehicleHandler.CreateVehicle)
		admin.PATCH("/:id", vehicleHandler.UpdateVehicle)
		admin.DELETE("/:id", vehicleHandler.DeleteVehicle)
		admin.POST("/:id/images", vehicleHandler.UploadImages)
		admin.DELETE("/:id/images", vehicleHandler.DeleteImage)
	}
}
