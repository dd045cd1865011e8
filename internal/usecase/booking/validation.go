package booking

import (
	"strings"

	"github.com/naimkchao/barbershop-backend/internal/httperr"
	"github.com/naimkchao/barbershop-backend/internal/validators"
)

func validateCreateInput(in CreateBookingInput) error {
	if !in.Agreement {
		return httperr.ErrBusiness("agreement_required")
	}
	if in.BarberID == 0 || in.ServiceID == 0 {
		return httperr.ErrBusiness("invalid_request")
	}
	if strings.TrimSpace(in.CustomerName) == "" ||
		strings.TrimSpace(in.Phone) == "" {
		return httperr.ErrBusiness("missing_customer_info")
	}
	if !validators.IsEmailFormatValid(in.CustomerEmail) {
		return httperr.ErrBusiness("invalid_email")
	}
	return nil
}
