package validators

import (
	"fmt"

	"dealerdesk/internal/apperrors"
	"dealerdesk/internal/models"
	"dealerdesk/internal/utils"
)

func ValidateCustomer(customer *models.Customer) error {
	if err := utils.ValidateStruct(customer); err != nil {
		return validationError(err)
	}
	return nil
}

func ValidateAppointment(appointment *models.ServiceAppointment) error {
	if err := utils.ValidateStruct(appointment); err != nil {
		return validationError(err)
	}

	if appointment.Status != "" && !appointment.Status.Valid() {
		return apperrors.Validation(fmt.Sprintf("invalid appointment status %q", appointment.Status))
	}
	if appointment.VehicleID == nil && appointment.VehicleInfo == "" {
		return apperrors.Validation("either vehicle_id or vehicle_info is required")
	}

	return nil
}
