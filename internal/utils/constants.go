package utils

import "time"

// Application Constants
const (
	AppName    = "DealerDesk"
	AppVersion = "1.0.0"

	DefaultTimeZone = "UTC"
	DefaultCurrency = "USD"

	// Authentication
	JWTAccessTokenTTL = 24 * time.Hour

	// File Upload
	MaxUploadSize   = 10 * 1024 * 1024 // per-bucket limit, 10MB
	SignedURLExpiry = 1 * time.Hour

	// Vehicle images are bounded before upload
	MaxImageWidth  = 1920
	MaxImageHeight = 1080
)

// HTTP Status Messages
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Error Messages
const (
	ErrInvalidCredentials = "invalid credentials"
	ErrInvalidToken       = "invalid token"
	ErrInvalidInput       = "invalid input"
	ErrInternalServer     = "internal server error"
	ErrUnauthorized       = "unauthorized"
	ErrForbidden          = "forbidden"
	ErrNotFound           = "not found"
	ErrConflict           = "conflict"
	ErrValidationFailed   = "validation failed"
	ErrFileUploadFailed   = "file upload failed"
	ErrNoFileProvided     = "no file provided"
	ErrNoPathProvided     = "no file path provided"
)

// Cache Keys
const (
	CacheKeyVehicleInventory = "vehicles_inventory"
	CacheKeyVehiclePrefix    = "vehicle_"

	VehicleCacheTTL = 5 * time.Minute
)

// Allowed upload extensions (without the leading dot)
var (
	AllowedImageTypes    = []string{"jpg", "jpeg", "png", "gif", "webp"}
	AllowedDocumentTypes = []string{"jpg", "jpeg", "png", "pdf"}
)
