package booking

import (
	"context"
	"time"

	"github.com/naimkchao/barbershop-backend/internal/models"
)

type Repository interface {
	// -------- Catalog --------
	GetService(
		ctx context.Context,
		id uint,
	) (*models.Service, error)

	GetBarber(
		ctx context.Context,
		id uint,
	) (*models.Barber, error)

	// -------- Availability --------
	// ListActiveBookingsForDay returns the pending/confirmed bookings
	// whose start instant falls in [dayStart, dayEnd), ordered by start.
	ListActiveBookingsForDay(
		ctx context.Context,
		barberID uint,
		dayStart time.Time,
		dayEnd time.Time,
	) ([]models.Booking, error)

	// -------- Booking (create / conflict) --------
	// CreateBooking must surface a violation of the (barber_id,
	// start_time) uniqueness constraint as ErrBusiness("slot_unavailable").
	CreateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	// -------- Booking (read / state change) --------
	GetBooking(
		ctx context.Context,
		id uint,
	) (*models.Booking, error)

	ListBookings(
		ctx context.Context,
	) ([]models.Booking, error)

	ListBookingsForDay(
		ctx context.Context,
		barberID uint,
		dayStart time.Time,
		dayEnd time.Time,
	) ([]models.Booking, error)

	UpdateBooking(
		ctx context.Context,
		b *models.Booking,
	) error
}
