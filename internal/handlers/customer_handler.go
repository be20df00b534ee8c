package handlers

import (
	"dealerdesk/internal/models"
	"dealerdesk/internal/repositories/interfaces"
	"dealerdesk/internal/utils"
	"dealerdesk/internal/validators"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CustomerHandler struct {
	customers interfaces.CustomerRepository
}

func NewCustomerHandler(customers interfaces.CustomerRepository) *CustomerHandler {
	return &CustomerHandler{
		customers: customers,
	}
}

func (h *CustomerHandler) ListCustomers(c *gin.Context) {
	customers, err := h.customers.List(c.Request.Context())
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.SuccessResponse(c, "Customers retrieved successfully", customers)
}

func (h *CustomerHandler) GetCustomer(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid customer ID")
		return
	}

	customer, err := h.customers.GetByID(c.Request.Context(), id)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.SuccessResponse(c, "Customer retrieved successfully", customer)
}

func (h *CustomerHandler) CreateCustomer(c *gin.Context) {
	var customer models.Customer
	if err := c.ShouldBindJSON(&customer); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	if err := validators.ValidateCustomer(&customer); err != nil {
		utils.RespondError(c, err)
		return
	}

	if err := h.customers.Create(c.Request.Context(), &customer); err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.CreatedResponse(c, "Customer created successfully", customer)
}

func (h *CustomerHandler) UpdateCustomer(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid customer ID")
		return
	}

	updates, err := bindUpdates(c)
	if err != nil {
		utils.BadRequestResponse(c, err.Error())
		return
	}

	if err := h.customers.Update(c.Request.Context(), id, updates); err != nil {
		utils.RespondError(c, err)
		return
	}

	customer, err := h.customers.GetByID(c.Request.Context(), id)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.SuccessResponse(c, "Customer updated successfully", customer)
}

func (h *CustomerHandler) DeleteCustomer(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid customer ID")
		return
	}

	if err := h.customers.Delete(c.Request.Context(), id); err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.SuccessResponse(c, "Customer deleted successfully", nil)
}
