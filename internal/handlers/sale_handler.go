package handlers

import (
	"dealerdesk/internal/models"
	"dealerdesk/internal/repositories/interfaces"
	"dealerdesk/internal/utils"
	"dealerdesk/internal/validators"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type SaleHandler struct {
	sales interfaces.SaleRepository
}

func NewSaleHandler(sales interfaces.SaleRepository) *SaleHandler {
	return &SaleHandler{
		sales: sales,
	}
}

func (h *SaleHandler) ListSales(c *gin.Context) {
	sales, err := h.sales.List(c.Request.Context())
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.SuccessResponse(c, "Sales retrieved successfully", sales)
}

func (h *SaleHandler) GetSale(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid sale ID")
		return
	}

	sale, err := h.sales.GetByID(c.Request.Context(), id)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.SuccessResponse(c, "Sale retrieved successfully", sale)
}

// CreateSale records a sale and marks the vehicle sold. The two writes
// are not atomic; a failed status flip comes back as a persistence
// error even though the sale row exists.
func (h *SaleHandler) CreateSale(c *gin.Context) {
	var sale models.Sale
	if err := c.ShouldBindJSON(&sale); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	if err := validators.ValidateSale(&sale); err != nil {
		utils.RespondError(c, err)
		return
	}

	if err := h.sales.Create(c.Request.Context(), &sale); err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.CreatedResponse(c, "Sale recorded successfully", sale)
}

func (h *SaleHandler) UpdateSale(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid sale ID")
		return
	}

	updates, err := bindUpdates(c)
	if err != nil {
		utils.BadRequestResponse(c, err.Error())
		return
	}

	if err := h.sales.Update(c.Request.Context(), id, updates); err != nil {
		utils.RespondError(c, err)
		return
	}

	sale, err := h.sales.GetByID(c.Request.Context(), id)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.SuccessResponse(c, "Sale updated successfully", sale)
}

func (h *SaleHandler) DeleteSale(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid sale ID")
		return
	}

	if err := h.sales.Delete(c.Request.Context(), id); err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.SuccessResponse(c, "Sale deleted successfully", nil)
}
