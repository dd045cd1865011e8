package booking

import (
	"context"

	"github.com/naimkchao/barbershop-backend/internal/audit"
	domain "github.com/naimkchao/barbershop-backend/internal/domain/booking"
	"github.com/naimkchao/barbershop-backend/internal/httperr"
	"github.com/naimkchao/barbershop-backend/internal/models"
)

type UpdateBookingStatus struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateBookingStatus(
	repo domain.Repository,
	auditDispatcher *audit.Dispatcher,
) *UpdateBookingStatus {
	return &UpdateBookingStatus{
		repo:  repo,
		audit: auditDispatcher,
	}
}

// Execute applies an administrative status change through the state
// machine. Terminal statuses cannot be left.
func (uc *UpdateBookingStatus) Execute(
	ctx context.Context,
	id uint,
	next domain.Status,
	actorID *uint,
) (*models.Booking, error) {

	if !domain.IsValidStatus(next) {
		return nil, httperr.ErrBusiness("invalid_status")
	}

	b, err := uc.repo.GetBooking(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := domain.CanTransition(domain.Status(b.Status), next); err != nil {
		return nil, err
	}

	b.Status = string(next)
	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	if uc.audit != nil {
		uc.audit.Dispatch(audit.Event{
			UserID:   actorID,
			Action:   "booking_status_" + string(next),
			Entity:   "booking",
			EntityID: &b.ID,
		})
	}

	return b, nil
}
