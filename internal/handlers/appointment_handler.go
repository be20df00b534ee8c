package handlers

import (
	"dealerdesk/internal/models"
	"dealerdesk/internal/repositories/interfaces"
	"dealerdesk/internal/utils"
	"dealerdesk/internal/validators"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type AppointmentHandler struct {
	appointments interfaces.ServiceAppointmentRepository
}

func NewAppointmentHandler(appointments interfaces.ServiceAppointmentRepository) *AppointmentHandler {
	return &AppointmentHandler{
		appointments: appointments,
	}
}

// ListAppointments returns appointments soonest-first, optionally
// filtered by a status query parameter.
func (h *AppointmentHandler) ListAppointments(c *gin.Context) {
	status := models.AppointmentStatus(c.Query("status"))
	if status != "" && !status.Valid() {
		utils.BadRequestResponse(c, "Invalid status filter")
		return
	}

	appointments, err := h.appointments.List(c.Request.Context(), status)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.SuccessResponse(c, "Appointments retrieved successfully", appointments)
}

func (h *AppointmentHandler) GetAppointment(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid appointment ID")
		return
	}

	appointment, err := h.appointments.GetByID(c.Request.Context(), id)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.SuccessResponse(c, "Appointment retrieved successfully", appointment)
}

func (h *AppointmentHandler) CreateAppointment(c *gin.Context) {
	var appointment models.ServiceAppointment
	if err := c.ShouldBindJSON(&appointment); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	if err := validators.ValidateAppointment(&appointment); err != nil {
		utils.RespondError(c, err)
		return
	}

	if err := h.appointments.Create(c.Request.Context(), &appointment); err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.CreatedResponse(c, "Appointment scheduled successfully", appointment)
}

func (h *AppointmentHandler) UpdateAppointment(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid appointment ID")
		return
	}

	updates, err := bindUpdates(c)
	if err != nil {
		utils.BadRequestResponse(c, err.Error())
		return
	}

	if status, ok := updates["status"].(string); ok {
		if !models.AppointmentStatus(status).Valid() {
			utils.BadRequestResponse(c, "Invalid appointment status")
			return
		}
	}

	if err := h.appointments.Update(c.Request.Context(), id, updates); err != nil {
		utils.RespondError(c, err)
		return
	}

	appointment, err := h.appointments.GetByID(c.Request.Context(), id)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.SuccessResponse(c, "Appointment updated successfully", appointment)
}

func (h *AppointmentHandler) DeleteAppointment(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid appointment ID")
		return
	}

	if err := h.appointments.Delete(c.Request.Context(), id); err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.SuccessResponse(c, "Appointment deleted successfully", nil)
}
