package validators

import (
	"fmt"

	"dealerdesk/internal/apperrors"
	"dealerdesk/internal/models"
	"dealerdesk/internal/utils"
)

// ValidateVehicle checks struct tags plus the enum fields the tags cannot
// express.
func ValidateVehicle(vehicle *models.Vehicle) error {
	if err := utils.ValidateStruct(vehicle); err != nil {
		return validationError(err)
	}

	if !vehicle.FuelType.Valid() {
		return apperrors.Validation(fmt.Sprintf("invalid fuel type %q", vehicle.FuelType))
	}
	if !vehicle.Transmission.Valid() {
		return apperrors.Validation(fmt.Sprintf("invalid transmission %q", vehicle.Transmission))
	}
	if !vehicle.BodyType.Valid() {
		return apperrors.Validation(fmt.Sprintf("invalid body type %q", vehicle.BodyType))
	}
	if vehicle.Status != "" && !vehicle.Status.Valid() {
		return apperrors.Validation(fmt.Sprintf("invalid vehicle status %q", vehicle.Status))
	}

	return nil
}

func ValidateVehicleStatus(status models.VehicleStatus) error {
	if !status.Valid() {
		return apperrors.Validation(fmt.Sprintf("invalid vehicle status %q", status))
	}
	return nil
}

func validationError(err error) error {
	details := utils.ValidationErrors(err)
	message := utils.ErrValidationFailed
	for field, problem := range details {
		message = fmt.Sprintf("%s: %s %s", utils.ErrValidationFailed, field, problem)
		break
	}
	return apperrors.Validation(message)
}
