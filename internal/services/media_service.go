package services

import (
	"context"
	"fmt"

	"dealerdesk/internal/apperrors"
	"dealerdesk/internal/repositories/interfaces"
	"dealerdesk/internal/utils"
	"dealerdesk/pkg/logger"
	"dealerdesk/pkg/storage"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MediaService owns vehicle image blobs: it uploads them under a
// per-vehicle prefix, records the paths on the vehicle, and deletes the
// blob before dropping the record reference. Nothing else touches the
// vehicle_images bucket.
type MediaService struct {
	vehicles interfaces.VehicleRepository
	files    *storage.FileService
	log      *logger.Logger
}

func NewMediaService(vehicles interfaces.VehicleRepository, files *storage.FileService, log *logger.Logger) *MediaService {
	return &MediaService{
		vehicles: vehicles,
		files:    files,
		log:      log,
	}
}

// AttachImages bounds oversized images, uploads the batch concurrently
// and appends whatever succeeded to the vehicle. Partial upload failure
// still records the successful paths; the error reports the rest.
func (s *MediaService) AttachImages(ctx context.Context, vehicleID primitive.ObjectID, images []storage.NamedFile) ([]string, error) {
	if _, err := s.vehicles.GetByID(ctx, vehicleID); err != nil {
		return nil, err
	}

	prepared := make([]storage.NamedFile, 0, len(images))
	for _, image := range images {
		if !utils.IsImageFile(image.Name) {
			return nil, apperrors.Validation(fmt.Sprintf("%s is not a supported image type", image.Name))
		}

		// Only jpeg/png go through the resizer; other formats upload as-is.
		ext := utils.GetFileExtension(image.Name)
		if ext == ".jpg" || ext == ".jpeg" || ext == ".png" {
			bounded, err := utils.BoundImage(image.Data, image.Name, utils.MaxImageWidth, utils.MaxImageHeight)
			if err != nil {
				s.log.WithError(err).WithField("file", image.Name).Warn("image could not be resized, uploading original")
			} else {
				image.Data = bounded
			}
		}

		prepared = append(prepared, image)
	}

	paths, uploadErr := s.files.UploadMany(ctx, storage.BucketVehicleImages, prepared, vehicleID.Hex()+"/")

	if len(paths) > 0 {
		if err := s.vehicles.AddImages(ctx, vehicleID, paths); err != nil {
			return nil, err
		}
	}

	return paths, uploadErr
}

// DetachImage deletes the blob first, then removes the path from the
// vehicle record. A blob that is already gone still clears the record.
func (s *MediaService) DetachImage(ctx context.Context, vehicleID primitive.ObjectID, path string) error {
	if err := s.files.Delete(ctx, storage.BucketVehicleImages, path); err != nil {
		s.log.WithError(err).WithField("path", path).Warn("vehicle image blob delete failed, removing record reference anyway")
	}

	return s.vehicles.RemoveImage(ctx, vehicleID, path)
}

// ImageURLs resolves every stored path on a vehicle to a public URL.
func (s *MediaService) ImageURLs(ctx context.Context, vehicleID primitive.ObjectID) ([]string, error) {
	vehicle, err := s.vehicles.GetByID(ctx, vehicleID)
	if err != nil {
		return nil, err
	}

	urls := make([]string, 0, len(vehicle.ImagePaths))
	for _, path := range vehicle.ImagePaths {
		url, err := s.files.FileURL(ctx, storage.BucketVehicleImages, path, utils.SignedURLExpiry)
		if err != nil {
			return nil, err
		}
		urls = append(urls, url)
	}

	return urls, nil
}
