package handlers

import (
	"dealerdesk/internal/services"
	"dealerdesk/internal/utils"

	"github.com/gin-gonic/gin"
)

type IntakeHandler struct {
	intake *services.IntakeService
}

func NewIntakeHandler(intake *services.IntakeService) *IntakeHandler {
	return &IntakeHandler{
		intake: intake,
	}
}

// SubmitApplication handles the public careers form: text fields plus
// optional id_front and id_back document uploads in one multipart body.
func (h *IntakeHandler) SubmitApplication(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		utils.BadRequestResponse(c, "Invalid multipart form: "+err.Error())
		return
	}

	submission := &services.IntakeSubmission{
		FirstName:       c.PostForm("first_name"),
		LastName:        c.PostForm("last_name"),
		Email:           c.PostForm("email"),
		SSN:             c.PostForm("ssn"),
		Phone:           c.PostForm("phone"),
		Address:         c.PostForm("address"),
		City:            c.PostForm("city"),
		State:           c.PostForm("state"),
		Zip:             c.PostForm("zip"),
		ReferenceNumber: c.PostForm("reference_number"),
	}

	front, err := readFormFile(form, "id_front")
	if err != nil {
		utils.BadRequestResponse(c, err.Error())
		return
	}
	back, err := readFormFile(form, "id_back")
	if err != nil {
		utils.BadRequestResponse(c, err.Error())
		return
	}
	submission.IDFront = front
	submission.IDBack = back

	application, err := h.intake.Submit(c.Request.Context(), submission)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.CreatedResponse(c, "Application submitted successfully", gin.H{
		"id":               application.ID.Hex(),
		"reference_number": application.ReferenceNumber,
		"status":           application.Status,
	})
}
