package validators

import (
	"fmt"

	"dealerdesk/internal/apperrors"
	"dealerdesk/internal/models"
	"dealerdesk/internal/utils"
)

func ValidateSale(sale *models.Sale) error {
	if err := utils.ValidateStruct(sale); err != nil {
		return validationError(err)
	}

	if !sale.PaymentMethod.Valid() {
		return apperrors.Validation(fmt.Sprintf("invalid payment method %q", sale.PaymentMethod))
	}

	return nil
}
