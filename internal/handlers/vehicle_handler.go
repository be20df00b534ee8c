package handlers

import (
	"dealerdesk/internal/models"
	"dealerdesk/internal/repositories/interfaces"
	"dealerdesk/internal/services"
	"dealerdesk/internal/utils"
	"dealerdesk/internal/validators"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type VehicleHandler struct {
	vehicles interfaces.VehicleRepository
	media    *services.MediaService
}

func NewVehicleHandler(vehicles interfaces.VehicleRepository, media *services.MediaService) *VehicleHandler {
	return &VehicleHandler{
		vehicles: vehicles,
		media:    media,
	}
}

// ListVehicles returns the inventory, optionally filtered by make, model
// and status query parameters.
func (h *VehicleHandler) ListVehicles(c *gin.Context) {
	filter := interfaces.VehicleFilter{
		Make:   c.Query("make"),
		Model:  c.Query("model"),
		Status: models.VehicleStatus(c.Query("status")),
	}

	if filter.Status != "" && !filter.Status.Valid() {
		utils.BadRequestResponse(c, "Invalid status filter")
		return
	}

	vehicles, err := h.vehicles.List(c.Request.Context(), filter)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.SuccessResponse(c, "Vehicles retrieved successfully", vehicles)
}

func (h *VehicleHandler) GetVehicle(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid vehicle ID")
		return
	}

	vehicle, err := h.vehicles.GetByID(c.Request.Context(), id)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.SuccessResponse(c, "Vehicle retrieved successfully", vehicle)
}

func (h *VehicleHandler) CreateVehicle(c *gin.Context) {
	var vehicle models.Vehicle
	if err := c.ShouldBindJSON(&vehicle); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	if err := validators.ValidateVehicle(&vehicle); err != nil {
		utils.RespondError(c, err)
		return
	}

	if err := h.vehicles.Create(c.Request.Context(), &vehicle); err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.CreatedResponse(c, "Vehicle created successfully", vehicle)
}

func (h *VehicleHandler) UpdateVehicle(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid vehicle ID")
		return
	}

	updates, err := bindUpdates(c)
	if err != nil {
		utils.BadRequestResponse(c, err.Error())
		return
	}

	if status, ok := updates["status"].(string); ok {
		if err := validators.ValidateVehicleStatus(models.VehicleStatus(status)); err != nil {
			utils.RespondError(c, err)
			return
		}
	}

	if err := h.vehicles.Update(c.Request.Context(), id, updates); err != nil {
		utils.RespondError(c, err)
		return
	}

	vehicle, err := h.vehicles.GetByID(c.Request.Context(), id)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.SuccessResponse(c, "Vehicle updated successfully", vehicle)
}

func (h *VehicleHandler) DeleteVehicle(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid vehicle ID")
		return
	}

	if err := h.vehicles.Delete(c.Request.Context(), id); err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.SuccessResponse(c, "Vehicle deleted successfully", nil)
}

// UploadImages accepts a multipart batch under the "images" field.
// Partial success returns 200 with the stored paths and lists the
// failures in the message.
func (h *VehicleHandler) UploadImages(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid vehicle ID")
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		utils.BadRequestResponse(c, "Invalid multipart form: "+err.Error())
		return
	}

	fileHeaders := form.File["images"]
	if len(fileHeaders) == 0 {
		utils.BadRequestResponse(c, "No images provided")
		return
	}

	files, err := readFormFiles(fileHeaders)
	if err != nil {
		utils.BadRequestResponse(c, err.Error())
		return
	}

	paths, uploadErr := h.media.AttachImages(c.Request.Context(), id, files)
	if uploadErr != nil && len(paths) == 0 {
		utils.RespondError(c, uploadErr)
		return
	}

	message := "Images uploaded successfully"
	if uploadErr != nil {
		message = "Some images failed to upload: " + uploadErr.Error()
	}

	utils.SuccessResponse(c, message, gin.H{"paths": paths})
}

func (h *VehicleHandler) DeleteImage(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid vehicle ID")
		return
	}

	var request struct {
		Path string `json:"path" binding:"required"`
	}
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	if err := h.media.DetachImage(c.Request.Context(), id, request.Path); err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.SuccessResponse(c, "Image removed successfully", nil)
}

func (h *VehicleHandler) GetImageURLs(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid vehicle ID")
		return
	}

	urls, err := h.media.ImageURLs(c.Request.Context(), id)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.SuccessResponse(c, "Image URLs retrieved successfully", gin.H{"urls": urls})
}
