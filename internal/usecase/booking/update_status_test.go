package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/naimkchao/barbershop-backend/internal/domain/booking"
	"github.com/naimkchao/barbershop-backend/internal/httperr"
	"github.com/naimkchao/barbershop-backend/internal/models"
)

func TestUpdateBookingStatus_AllowedTransition(t *testing.T) {
	repo := newMemRepo()
	repo.seedBooking(models.Booking{
		BarberID:  1,
		StartTime: time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC),
		Status:    "pending",
	})

	uc := NewUpdateBookingStatus(repo, nil)

	b, err := uc.Execute(context.Background(), 1, domain.StatusConfirmed, nil)
	require.NoError(t, err)
	assert.Equal(t, "confirmed", b.Status)

	b, err = uc.Execute(context.Background(), 1, domain.StatusNoShow, nil)
	require.NoError(t, err)
	assert.Equal(t, "no_show", b.Status)
}

func TestUpdateBookingStatus_TerminalIsFinal(t *testing.T) {
	repo := newMemRepo()
	repo.seedBooking(models.Booking{
		BarberID:  1,
		StartTime: time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC),
		Status:    "cancelled",
	})

	uc := NewUpdateBookingStatus(repo, nil)
	_, err := uc.Execute(context.Background(), 1, domain.StatusConfirmed, nil)
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
}

func TestUpdateBookingStatus_RejectsUnknownStatusAndBooking(t *testing.T) {
	repo := newMemRepo()
	uc := NewUpdateBookingStatus(repo, nil)

	_, err := uc.Execute(context.Background(), 1, domain.Status("scheduled"), nil)
	assert.True(t, httperr.IsBusiness(err, "invalid_status"))

	_, err = uc.Execute(context.Background(), 99, domain.StatusConfirmed, nil)
	assert.True(t, httperr.IsBusiness(err, "booking_not_found"))
}
