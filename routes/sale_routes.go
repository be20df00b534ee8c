package routes

import (
	"dealerdesk/internal/handlers"
	"dealerdesk/internal/middleware"

	"github.com/gin-gonic/gin"
)

// SetupSaleRoutes wires the sales ledger. Admin only.
func SetupSaleRoutes(r *gin.RouterGroup, saleHandler *handlers.SaleHandler, jwtSecret string) {
	sales := r.Group("/sales")
	sales.Use(middleware.AdminRequired(jwtSecret))
	{
		sales.GET("", saleHandler.ListSales)
		sales.GET("/:id", saleHandler.GetSale)
		sales.POST("", saleHandler.CreateSale)
		sales.PATCH("/:id", saleHandler.UpdateSale)
		sales.DELETE("/:id", saleHandler.DeleteSale)
	}
}
