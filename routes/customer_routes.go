package routes

import (
	"dealerdesk/internal/handlers"
	"dealerdesk/internal/middleware"

	"github.com/gin-gonic/gin"
)

// SetupCustomerRoutes wires the customer book. Admin only.
func SetupCustomerRoutes(r *gin.RouterGroup, customerHandler *handlers.CustomerHandler, jwtSecret string) {
	customers := r.Group("/customers")
	customers.Use(middleware.AdminRequired(jwtSecret))
	{
		customers.GET("", customerHandler.ListCustomers)
		customers.GET("/:id", customerHandler.GetCustomer)
		customers.POST("", customerHandler.CreateCustomer)
		customers.PATCH("/:id", customerHandler.UpdateCustomer)
		customers.DELETE("/:id", customerHandler.DeleteCustomer)
	}
}
