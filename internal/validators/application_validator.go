package validators

import (
	"fmt"
	"strings"

	"dealerdesk/internal/apperrors"
	"dealerdesk/internal/models"
	"dealerdesk/internal/utils"
)

// ValidateIntake enforces presence of the required intake text fields.
// Everything else on the form is optional.
func ValidateIntake(firstName, lastName, email string) error {
	missing := []string{}
	if strings.TrimSpace(firstName) == "" {
		missing = append(missing, "first_name")
	}
	if strings.TrimSpace(lastName) == "" {
		missing = append(missing, "last_name")
	}
	if strings.TrimSpace(email) == "" {
		missing = append(missing, "email")
	}
	if len(missing) > 0 {
		return apperrors.Validation("missing required fields: " + strings.Join(missing, ", "))
	}

	if !utils.IsValidEmail(email) {
		return apperrors.Validation(fmt.Sprintf("invalid email address %q", email))
	}

	return nil
}

func ValidateApplicationStatus(status models.ApplicationStatus) error {
	if !status.Valid() {
		return apperrors.Validation(fmt.Sprintf("invalid application status %q", status))
	}
	return nil
}
