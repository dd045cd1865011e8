package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/naimkchao/barbershop-backend/internal/domain/booking"
	"github.com/naimkchao/barbershop-backend/internal/httperr"
	"github.com/naimkchao/barbershop-backend/internal/models"
)

func mustLoc(t *testing.T, name string) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation(name)
	require.NoError(t, err)
	return loc
}

// localInstant builds the UTC instant for a local wall-clock time.
func localInstant(t *testing.T, loc *time.Location, value string) time.Time {
	t.Helper()
	ts, err := time.ParseInLocation("2006-01-02 15:04", value, loc)
	require.NoError(t, err)
	return ts.UTC()
}

func TestGetAvailableSlots_EmptyDay(t *testing.T) {
	loc := mustLoc(t, "Africa/Tunis")
	repo := newMemRepo()
	uc := NewGetAvailableSlots(repo, loc, domain.DefaultSlotConfig())

	free, err := uc.Execute(context.Background(), 1, "2026-03-10")
	require.NoError(t, err)

	assert.Len(t, free, 14)
	assert.Equal(t, "10:00", free[0])
	assert.Equal(t, "16:30", free[13])
}

func TestGetAvailableSlots_ConfirmedBookingOccupiesItsSlots(t *testing.T) {
	loc := mustLoc(t, "Africa/Tunis")
	repo := newMemRepo()
	// 60-minute appointment at 10:00 local
	repo.seedBooking(models.Booking{
		BarberID:  1,
		StartTime: localInstant(t, loc, "2026-03-10 10:00"),
		EndTime:   localInstant(t, loc, "2026-03-10 11:00"),
		Status:    "confirmed",
	})

	uc := NewGetAvailableSlots(repo, loc, domain.DefaultSlotConfig())
	free, err := uc.Execute(context.Background(), 1, "2026-03-10")
	require.NoError(t, err)

	assert.Len(t, free, 12)
	assert.NotContains(t, free, "10:00")
	assert.NotContains(t, free, "10:30")
	// half-open interval: the slot at the booking's end time is free
	assert.Contains(t, free, "11:00")
}

func TestGetAvailableSlots_OtherBarberUnaffected(t *testing.T) {
	loc := mustLoc(t, "Africa/Tunis")
	repo := newMemRepo()
	repo.seedBooking(models.Booking{
		BarberID:  2,
		StartTime: localInstant(t, loc, "2026-03-10 10:00"),
		EndTime:   localInstant(t, loc, "2026-03-10 11:00"),
		Status:    "confirmed",
	})

	uc := NewGetAvailableSlots(repo, loc, domain.DefaultSlotConfig())
	free, err := uc.Execute(context.Background(), 1, "2026-03-10")
	require.NoError(t, err)
	assert.Len(t, free, 14)
}

func TestGetAvailableSlots_TerminalStatusesNeverOccupy(t *testing.T) {
	loc := mustLoc(t, "Africa/Tunis")
	repo := newMemRepo()
	for _, status := range []string{"cancelled", "completed", "no_show"} {
		repo.seedBooking(models.Booking{
			BarberID:  1,
			StartTime: localInstant(t, loc, "2026-03-10 10:00"),
			EndTime:   localInstant(t, loc, "2026-03-10 11:00"),
			Status:    status,
		})
	}
	repo.seedBooking(models.Booking{
		BarberID:  1,
		StartTime: localInstant(t, loc, "2026-03-10 12:00"),
		EndTime:   localInstant(t, loc, "2026-03-10 12:30"),
		Status:    "pending",
	})

	uc := NewGetAvailableSlots(repo, loc, domain.DefaultSlotConfig())
	free, err := uc.Execute(context.Background(), 1, "2026-03-10")
	require.NoError(t, err)

	assert.Contains(t, free, "10:00")
	assert.Contains(t, free, "10:30")
	assert.NotContains(t, free, "12:00")
	assert.Contains(t, free, "12:30")
}

func TestGetAvailableSlots_TimezoneOffsetIsApplied(t *testing.T) {
	// Berlin is UTC+2 in July (DST) and UTC+1 in January. A booking
	// stored at 08:00 UTC on a summer date must occupy the 10:00 local
	// slot; the same UTC instant in winter occupies 09:00 local.
	loc := mustLoc(t, "Europe/Berlin")
	repo := newMemRepo()
	repo.seedBooking(models.Booking{
		BarberID:  1,
		StartTime: time.Date(2026, 7, 15, 8, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2026, 7, 15, 9, 0, 0, 0, time.UTC),
		Status:    "confirmed",
	})
	repo.seedBooking(models.Booking{
		BarberID:  1,
		StartTime: time.Date(2026, 1, 15, 9, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC),
		Status:    "confirmed",
	})

	uc := NewGetAvailableSlots(repo, loc, domain.DefaultSlotConfig())

	summer, err := uc.Execute(context.Background(), 1, "2026-07-15")
	require.NoError(t, err)
	assert.NotContains(t, summer, "10:00")
	assert.NotContains(t, summer, "10:30")
	assert.Contains(t, summer, "11:00")

	winter, err := uc.Execute(context.Background(), 1, "2026-01-15")
	require.NoError(t, err)
	assert.NotContains(t, winter, "10:00")
	assert.NotContains(t, winter, "10:30")
	assert.Contains(t, winter, "11:00")
}

func TestGetAvailableSlots_Idempotent(t *testing.T) {
	loc := mustLoc(t, "Africa/Tunis")
	repo := newMemRepo()
	repo.seedBooking(models.Booking{
		BarberID:  1,
		StartTime: localInstant(t, loc, "2026-03-10 13:00"),
		EndTime:   localInstant(t, loc, "2026-03-10 13:30"),
		Status:    "confirmed",
	})

	uc := NewGetAvailableSlots(repo, loc, domain.DefaultSlotConfig())
	first, err := uc.Execute(context.Background(), 1, "2026-03-10")
	require.NoError(t, err)
	second, err := uc.Execute(context.Background(), 1, "2026-03-10")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestGetAvailableSlots_InvalidDate(t *testing.T) {
	loc := mustLoc(t, "Africa/Tunis")
	uc := NewGetAvailableSlots(newMemRepo(), loc, domain.DefaultSlotConfig())

	_, err := uc.Execute(context.Background(), 1, "10-03-2026")
	assert.True(t, httperr.IsBusiness(err, "invalid_date"))
}

func TestGetAvailableSlots_RepoErrorPropagates(t *testing.T) {
	loc := mustLoc(t, "Africa/Tunis")
	repo := newMemRepo()
	repo.listErr = errors.New("store unavailable")

	uc := NewGetAvailableSlots(repo, loc, domain.DefaultSlotConfig())
	free, err := uc.Execute(context.Background(), 1, "2026-03-10")
	assert.Error(t, err)
	assert.Nil(t, free)
}
