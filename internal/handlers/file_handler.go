package handlers

import (
	"net/http"

	"dealerdesk/internal/utils"
	"dealerdesk/pkg/storage"

	"github.com/gin-gonic/gin"
)

// FileHandler exposes bucket-level file operations to the back office,
// independent of any entity.
type FileHandler struct {
	files *storage.FileService
}

func NewFileHandler(files *storage.FileService) *FileHandler {
	return &FileHandler{
		files: files,
	}
}

// UploadFile stores one file into the named bucket. The multipart form
// carries "bucket", "file" and an optional "prefix".
func (h *FileHandler) UploadFile(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		utils.BadRequestResponse(c, "Invalid multipart form: "+err.Error())
		return
	}

	bucket := storage.Bucket(c.PostForm("bucket"))
	if !storage.ValidBucket(bucket) {
		utils.BadRequestResponse(c, "Unknown bucket")
		return
	}

	file, err := readFormFile(form, "file")
	if err != nil {
		utils.BadRequestResponse(c, err.Error())
		return
	}
	if file == nil {
		utils.BadRequestResponse(c, "No file provided")
		return
	}

	path, err := h.files.Upload(c.Request.Context(), bucket, file.Data, file.Name, file.ContentType, c.PostForm("prefix"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.CreatedResponse(c, "File uploaded successfully", gin.H{
		"bucket": bucket,
		"path":   path,
	})
}

// GetFileURL resolves a stored path to a URL: public buckets get a plain
// public URL, private buckets a signed one.
func (h *FileHandler) GetFileURL(c *gin.Context) {
	bucket := storage.Bucket(c.Query("bucket"))
	if !storage.ValidBucket(bucket) {
		utils.BadRequestResponse(c, "Unknown bucket")
		return
	}

	path := c.Query("path")
	if path == "" {
		utils.BadRequestResponse(c, "Missing path parameter")
		return
	}

	url, err := h.files.FileURL(c.Request.Context(), bucket, path, utils.SignedURLExpiry)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.SuccessResponse(c, "File URL retrieved successfully", gin.H{"url": url})
}

// DownloadFile streams the raw object back to the caller.
func (h *FileHandler) DownloadFile(c *gin.Context) {
	bucket := storage.Bucket(c.Query("bucket"))
	if !storage.ValidBucket(bucket) {
		utils.BadRequestResponse(c, "Unknown bucket")
		return
	}

	path := c.Query("path")
	if path == "" {
		utils.BadRequestResponse(c, "Missing path parameter")
		return
	}

	data, contentType, err := h.files.Download(c.Request.Context(), bucket, path)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.Data(http.StatusOK, contentType, data)
}

// ListFiles lists the objects under a prefix in the named bucket.
func (h *FileHandler) ListFiles(c *gin.Context) {
	bucket := storage.Bucket(c.Query("bucket"))
	if !storage.ValidBucket(bucket) {
		utils.BadRequestResponse(c, "Unknown bucket")
		return
	}

	objects, err := h.files.List(c.Request.Context(), bucket, c.Query("prefix"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.SuccessResponse(c, "Files retrieved successfully", objects)
}
