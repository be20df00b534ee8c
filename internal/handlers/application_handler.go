package handlers

import (
	"dealerdesk/internal/models"
	"dealerdesk/internal/repositories/interfaces"
	"dealerdesk/internal/utils"
	"dealerdesk/internal/validators"
	"dealerdesk/pkg/storage"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ApplicationHandler struct {
	applications interfaces.ApplicationRepository
	files        *storage.FileService
}

func NewApplicationHandler(applications interfaces.ApplicationRepository, files *storage.FileService) *ApplicationHandler {
	return &ApplicationHandler{
		applications: applications,
		files:        files,
	}
}

func (h *ApplicationHandler) ListApplications(c *gin.Context) {
	applications, err := h.applications.List(c.Request.Context())
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.SuccessResponse(c, "Applications retrieved successfully", applications)
}

func (h *ApplicationHandler) GetApplication(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid application ID")
		return
	}

	application, err := h.applications.GetByID(c.Request.Context(), id)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.SuccessResponse(c, "Application retrieved successfully", application)
}

// GetApplicationDocuments resolves short-lived signed URLs for whichever
// identity documents the application has. Missing documents are omitted.
func (h *ApplicationHandler) GetApplicationDocuments(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid application ID")
		return
	}

	application, err := h.applications.GetByID(c.Request.Context(), id)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	documents := gin.H{}
	if application.IDFrontPath != "" {
		url, err := h.files.FileURL(c.Request.Context(), storage.BucketIDDocuments, application.IDFrontPath, utils.SignedURLExpiry)
		if err != nil {
			utils.RespondError(c, err)
			return
		}
		documents["id_front_url"] = url
	}
	if application.IDBackPath != "" {
		url, err := h.files.FileURL(c.Request.Context(), storage.BucketIDDocuments, application.IDBackPath, utils.SignedURLExpiry)
		if err != nil {
			utils.RespondError(c, err)
			return
		}
		documents["id_back_url"] = url
	}

	utils.SuccessResponse(c, "Document URLs retrieved successfully", documents)
}

func (h *ApplicationHandler) UpdateApplicationStatus(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid application ID")
		return
	}

	var request struct {
		Status models.ApplicationStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	if err := validators.ValidateApplicationStatus(request.Status); err != nil {
		utils.RespondError(c, err)
		return
	}

	if err := h.applications.UpdateStatus(c.Request.Context(), id, request.Status); err != nil {
		utils.RespondError(c, err)
		return
	}

	application, err := h.applications.GetByID(c.Request.Context(), id)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.SuccessResponse(c, "Application status updated successfully", application)
}

func (h *ApplicationHandler) DeleteApplication(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid application ID")
		return
	}

	if err := h.applications.Delete(c.Request.Context(), id); err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.SuccessResponse(c, "Application deleted successfully", nil)
}
