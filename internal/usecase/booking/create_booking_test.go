package booking

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/naimkchao/barbershop-backend/internal/domain/booking"
	"github.com/naimkchao/barbershop-backend/internal/httperr"
	"github.com/naimkchao/barbershop-backend/internal/models"
)

func newCreateUC(t *testing.T, repo *memRepo, tz string) (*CreateBooking, *time.Location) {
	t.Helper()
	loc := mustLoc(t, tz)
	availability := NewGetAvailableSlots(repo, loc, domain.DefaultSlotConfig())
	return NewCreateBooking(repo, availability, loc, nil, nil), loc
}

func validInput() CreateBookingInput {
	return CreateBookingInput{
		BarberID:      1,
		ServiceID:     1,
		Date:          "2026-03-10",
		Time:          "10:30",
		CustomerName:  "Sami Ben Romdhane",
		CustomerEmail: "sami@example.com",
		Phone:         "+21620123456",
		Agreement:     true,
	}
}

func seedCatalog(repo *memRepo, duration string) {
	repo.addBarber(models.Barber{ID: 1, Name: "Naim", Slug: "naim"})
	repo.addService(models.Service{ID: 1, Name: "Haircut", Duration: duration})
}

func TestCreateBooking_RoundTrip(t *testing.T) {
	repo := newMemRepo()
	seedCatalog(repo, "1 hour")
	uc, loc := newCreateUC(t, repo, "Africa/Tunis")

	b, err := uc.Execute(context.Background(), validInput())
	require.NoError(t, err)
	require.NotZero(t, b.ID)

	assert.Equal(t, "confirmed", b.Status)
	assert.True(t, b.Agreement)
	assert.Equal(t, 60*time.Minute, b.EndTime.Sub(b.StartTime))
	assert.Equal(t, "10:30", b.StartTime.In(loc).Format("15:04"))
	assert.Equal(t, "2026-03-10", b.StartTime.In(loc).Format("2006-01-02"))
	assert.Equal(t, time.UTC, b.StartTime.Location())
}

func TestCreateBooking_FrenchDurationText(t *testing.T) {
	repo := newMemRepo()
	seedCatalog(repo, "1 heure")
	uc, _ := newCreateUC(t, repo, "Africa/Tunis")

	b, err := uc.Execute(context.Background(), validInput())
	require.NoError(t, err)
	assert.Equal(t, 60*time.Minute, b.EndTime.Sub(b.StartTime))
}

func TestCreateBooking_UnparseableDurationFallsBackTo30(t *testing.T) {
	repo := newMemRepo()
	seedCatalog(repo, "")
	uc, _ := newCreateUC(t, repo, "Africa/Tunis")

	b, err := uc.Execute(context.Background(), validInput())
	require.NoError(t, err)
	assert.Equal(t, 30*time.Minute, b.EndTime.Sub(b.StartTime))
}

func TestCreateBooking_SlotAlreadyTaken(t *testing.T) {
	repo := newMemRepo()
	seedCatalog(repo, "30 minutes")
	uc, loc := newCreateUC(t, repo, "Africa/Tunis")

	// existing appointment covers 10:00-11:00, so 10:30 is occupied
	repo.seedBooking(models.Booking{
		BarberID:  1,
		StartTime: localInstant(t, loc, "2026-03-10 10:00"),
		EndTime:   localInstant(t, loc, "2026-03-10 11:00"),
		Status:    "confirmed",
	})

	_, err := uc.Execute(context.Background(), validInput())
	assert.True(t, httperr.IsBusiness(err, "slot_unavailable"))
}

func TestCreateBooking_CancelledSlotCanBeRebooked(t *testing.T) {
	repo := newMemRepo()
	seedCatalog(repo, "30 minutes")
	uc, loc := newCreateUC(t, repo, "Africa/Tunis")

	repo.seedBooking(models.Booking{
		BarberID:  1,
		StartTime: localInstant(t, loc, "2026-03-10 10:30"),
		EndTime:   localInstant(t, loc, "2026-03-10 11:00"),
		Status:    "cancelled",
	})

	_, err := uc.Execute(context.Background(), validInput())
	assert.NoError(t, err)
}

func TestCreateBooking_ConcurrentRequestsExactlyOneWins(t *testing.T) {
	repo := newMemRepo()
	seedCatalog(repo, "30 minutes")
	uc, _ := newCreateUC(t, repo, "Africa/Tunis")

	const attempts = 2
	results := make(chan error, attempts)

	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := uc.Execute(context.Background(), validInput())
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	var wins, conflicts int
	for err := range results {
		if err == nil {
			wins++
			continue
		}
		require.True(t, httperr.IsBusiness(err, "slot_unavailable"), "unexpected error: %v", err)
		conflicts++
	}

	assert.Equal(t, 1, wins)
	assert.Equal(t, 1, conflicts)
}

func TestCreateBooking_Validation(t *testing.T) {
	repo := newMemRepo()
	seedCatalog(repo, "30 minutes")
	uc, _ := newCreateUC(t, repo, "Africa/Tunis")

	cases := []struct {
		name   string
		mutate func(*CreateBookingInput)
		code   string
	}{
		{"missing agreement", func(in *CreateBookingInput) { in.Agreement = false }, "agreement_required"},
		{"bad email", func(in *CreateBookingInput) { in.CustomerEmail = "not-an-email" }, "invalid_email"},
		{"missing name", func(in *CreateBookingInput) { in.CustomerName = "  " }, "missing_customer_info"},
		{"missing phone", func(in *CreateBookingInput) { in.Phone = "" }, "missing_customer_info"},
		{"zero barber", func(in *CreateBookingInput) { in.BarberID = 0 }, "invalid_request"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validInput()
			tc.mutate(&in)
			_, err := uc.Execute(context.Background(), in)
			assert.True(t, httperr.IsBusiness(err, tc.code), "got %v", err)
		})
	}
}

func TestCreateBooking_UnknownServiceOrBarber(t *testing.T) {
	repo := newMemRepo()
	repo.addBarber(models.Barber{ID: 1, Name: "Naim", Slug: "naim"})
	uc, _ := newCreateUC(t, repo, "Africa/Tunis")

	_, err := uc.Execute(context.Background(), validInput())
	assert.True(t, httperr.IsBusiness(err, "service_not_found"))

	in := validInput()
	in.BarberID = 9
	_, err = uc.Execute(context.Background(), in)
	assert.True(t, httperr.IsBusiness(err, "barber_not_found"))
}

func TestCreateBooking_TimeOutsideGridRejected(t *testing.T) {
	repo := newMemRepo()
	seedCatalog(repo, "30 minutes")
	uc, _ := newCreateUC(t, repo, "Africa/Tunis")

	in := validInput()
	in.Time = "10:15" // not a generated slot
	_, err := uc.Execute(context.Background(), in)
	assert.True(t, httperr.IsBusiness(err, "slot_unavailable"))
}
