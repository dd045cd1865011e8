package booking

import (
	"context"
	"time"

	"github.com/naimkchao/barbershop-backend/internal/audit"
	domain "github.com/naimkchao/barbershop-backend/internal/domain/booking"
	"github.com/naimkchao/barbershop-backend/internal/httperr"
	"github.com/naimkchao/barbershop-backend/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	BarberID  uint
	ServiceID uint

	Date string // YYYY-MM-DD
	Time string // HH:MM

	CustomerName  string
	CustomerEmail string
	Phone         string
	Comments      string

	ReferencePhotoID *uint
	Agreement        bool
}

// Notifier delivers customer-facing confirmations. Implementations
// must not block the booking path.
type Notifier interface {
	BookingConfirmed(b *models.Booking, svc *models.Service, barber *models.Barber)
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo         domain.Repository
	availability *GetAvailableSlots
	loc          *time.Location
	audit        *audit.Dispatcher
	notifier     Notifier
}

func NewCreateBooking(
	repo domain.Repository,
	availability *GetAvailableSlots,
	loc *time.Location,
	auditDispatcher *audit.Dispatcher,
	notifier Notifier,
) *CreateBooking {
	return &CreateBooking{
		repo:         repo,
		availability: availability,
		loc:          loc,
		audit:        auditDispatcher,
		notifier:     notifier,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Booking, error) {

	// --------------------------------------------------
	// 1. Input validation, before any I/O.
	// --------------------------------------------------
	if err := validateCreateInput(in); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 2. Advisory availability re-check. Narrows the race window
	//    between the customer viewing slots and submitting; the unique
	//    index closes it for real.
	// --------------------------------------------------
	free, err := uc.availability.Execute(ctx, in.BarberID, in.Date)
	if err != nil {
		return nil, err
	}
	if !contains(free, in.Time) {
		return nil, httperr.ErrBusiness("slot_unavailable")
	}

	// --------------------------------------------------
	// 3. Barber and service.
	// --------------------------------------------------
	barber, err := uc.repo.GetBarber(ctx, in.BarberID)
	if err != nil {
		return nil, err
	}

	service, err := uc.repo.GetService(ctx, in.ServiceID)
	if err != nil {
		return nil, err
	}

	minutes := domain.ParseDuration(service.Duration)

	// --------------------------------------------------
	// 4. Wall-clock date+time in the salon timezone -> UTC instants.
	// --------------------------------------------------
	start, err := time.ParseInLocation(
		"2006-01-02 15:04",
		in.Date+" "+in.Time,
		uc.loc,
	)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	startUTC := start.UTC()
	endUTC := startUTC.Add(time.Duration(minutes) * time.Minute)

	// --------------------------------------------------
	// 5. Persist. The repository maps a (barber_id, start_time) unique
	//    violation to the same slot_unavailable error as the pre-check,
	//    so callers cannot tell which race they lost.
	// --------------------------------------------------
	b := &models.Booking{
		BarberID:         in.BarberID,
		ServiceID:        in.ServiceID,
		StartTime:        startUTC,
		EndTime:          endUTC,
		CustomerName:     in.CustomerName,
		CustomerEmail:    in.CustomerEmail,
		Phone:            in.Phone,
		Comments:         in.Comments,
		ReferencePhotoID: in.ReferencePhotoID,
		Status:           string(domain.InitialStatus()),
		Agreement:        true,
	}

	if err := uc.repo.CreateBooking(ctx, b); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 6. Side channels, never on the critical path.
	// --------------------------------------------------
	if uc.audit != nil {
		uc.audit.Dispatch(audit.Event{
			Action:   "booking_created",
			Entity:   "booking",
			EntityID: &b.ID,
			Metadata: map[string]any{
				"barber_id": in.BarberID,
				"start":     startUTC,
				"end":       endUTC,
			},
		})
	}

	if uc.notifier != nil {
		uc.notifier.BookingConfirmed(b, service, barber)
	}

	return b, nil
}

func contains(slots []string, want string) bool {
	for _, s := range slots {
		if s == want {
			return true
		}
	}
	return false
}
