package services

import (
	"context"
	"strings"
	"sync"

	"dealerdesk/internal/models"
	"dealerdesk/internal/repositories/interfaces"
	"dealerdesk/internal/validators"
	"dealerdesk/pkg/logger"
	"dealerdesk/pkg/storage"

	"github.com/google/uuid"
)

// IntakeSubmission is one careers-form submission: applicant fields plus
// up to two identity documents.
type IntakeSubmission struct {
	FirstName       string
	LastName        string
	Email           string
	SSN             string
	Phone           string
	Address         string
	City            string
	State           string
	Zip             string
	ReferenceNumber string
	IDFront         *storage.NamedFile
	IDBack          *storage.NamedFile
}

// IntakeService orchestrates the job-application pipeline: validate the
// text fields, upload whichever documents were provided, persist the
// application. Document upload failures are logged and tolerated; only a
// failed insert fails the submission. Blobs uploaded before a failed
// insert are orphaned on purpose, there is no cleanup pass.
type IntakeService struct {
	applications interfaces.ApplicationRepository
	files        *storage.FileService
	log          *logger.Logger
}

func NewIntakeService(applications interfaces.ApplicationRepository, files *storage.FileService, log *logger.Logger) *IntakeService {
	return &IntakeService{
		applications: applications,
		files:        files,
		log:          log,
	}
}

func (s *IntakeService) Submit(ctx context.Context, submission *IntakeSubmission) (*models.Application, error) {
	if err := validators.ValidateIntake(submission.FirstName, submission.LastName, submission.Email); err != nil {
		return nil, err
	}

	// Both documents upload concurrently; each writes only its own slot.
	var wg sync.WaitGroup
	var frontPath, backPath string

	upload := func(file *storage.NamedFile, prefix string, dest *string) {
		defer wg.Done()
		path, err := s.files.Upload(ctx, storage.BucketIDDocuments, file.Data, file.Name, file.ContentType, prefix)
		if err != nil {
			s.log.WithError(err).WithField("document", prefix).Warn("id document upload failed, continuing without it")
			return
		}
		*dest = path
	}

	if submission.IDFront != nil && len(submission.IDFront.Data) > 0 {
		wg.Add(1)
		go upload(submission.IDFront, "front_", &frontPath)
	}
	if submission.IDBack != nil && len(submission.IDBack.Data) > 0 {
		wg.Add(1)
		go upload(submission.IDBack, "back_", &backPath)
	}
	wg.Wait()

	referenceNumber := strings.TrimSpace(submission.ReferenceNumber)
	if referenceNumber == "" {
		referenceNumber = generateReferenceNumber()
	}

	application := &models.Application{
		FirstName:       submission.FirstName,
		LastName:        submission.LastName,
		Email:           submission.Email,
		SSN:             submission.SSN,
		Phone:           submission.Phone,
		Address:         submission.Address,
		City:            submission.City,
		State:           submission.State,
		Zip:             submission.Zip,
		ReferenceNumber: referenceNumber,
		IDFrontPath:     frontPath,
		IDBackPath:      backPath,
		Status:          models.ApplicationStatusPending,
	}

	if err := s.applications.Create(ctx, application); err != nil {
		return nil, err
	}

	return application, nil
}

func generateReferenceNumber() string {
	return "APP-" + strings.ToUpper(uuid.NewString()[:8])
}
