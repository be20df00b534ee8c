package handlers

import (
	"dealerdesk/internal/services"
	"dealerdesk/internal/utils"
	"dealerdesk/pkg/storage"

	"github.com/gin-gonic/gin"
)

// AdminHandler covers one-time environment setup: bucket provisioning
// and sample data seeding.
type AdminHandler struct {
	files *storage.FileService
	seed  *services.SeedService
}

func NewAdminHandler(files *storage.FileService, seed *services.SeedService) *AdminHandler {
	return &AdminHandler{
		files: files,
		seed:  seed,
	}
}

// SetupStorage provisions every configured bucket. Safe to call
// repeatedly, existing buckets are left as they are.
func (h *AdminHandler) SetupStorage(c *gin.Context) {
	if err := h.files.EnsureBuckets(c.Request.Context()); err != nil {
		utils.RespondError(c, err)
		return
	}

	names := make([]string, 0, len(storage.Buckets))
	for _, policy := range storage.Buckets {
		names = append(names, string(policy.Name))
	}

	utils.SuccessResponse(c, "Storage buckets provisioned successfully", gin.H{"buckets": names})
}

// SeedData loads the sample inventory into an empty database.
func (h *AdminHandler) SeedData(c *gin.Context) {
	result, err := h.seed.Seed(c.Request.Context())
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.CreatedResponse(c, "Sample data seeded successfully", result)
}
