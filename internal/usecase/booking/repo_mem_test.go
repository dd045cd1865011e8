package booking

import (
	"context"
	"sort"
	"sync"
	"time"

	domain "github.com/naimkchao/barbershop-backend/internal/domain/booking"
	"github.com/naimkchao/barbershop-backend/internal/httperr"
	"github.com/naimkchao/barbershop-backend/internal/models"
)

// memRepo is an in-memory domain.Repository that reproduces the
// database's partial unique constraint on (barber_id, start_time), so
// concurrency tests see the same race behavior as production.
type memRepo struct {
	mu       sync.Mutex
	nextID   uint
	bookings map[uint]models.Booking
	services map[uint]models.Service
	barbers  map[uint]models.Barber

	listErr error
}

func newMemRepo() *memRepo {
	return &memRepo{
		bookings: make(map[uint]models.Booking),
		services: make(map[uint]models.Service),
		barbers:  make(map[uint]models.Barber),
	}
}

func (r *memRepo) addService(s models.Service) {
	r.services[s.ID] = s
}

func (r *memRepo) addBarber(b models.Barber) {
	r.barbers[b.ID] = b
}

func (r *memRepo) seedBooking(b models.Booking) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	b.ID = r.nextID
	r.bookings[b.ID] = b
}

func (r *memRepo) GetService(_ context.Context, id uint) (*models.Service, error) {
	if s, ok := r.services[id]; ok {
		return &s, nil
	}
	return nil, httperr.ErrBusiness("service_not_found")
}

func (r *memRepo) GetBarber(_ context.Context, id uint) (*models.Barber, error) {
	if b, ok := r.barbers[id]; ok {
		return &b, nil
	}
	return nil, httperr.ErrBusiness("barber_not_found")
}

func (r *memRepo) ListActiveBookingsForDay(
	_ context.Context,
	barberID uint,
	dayStart time.Time,
	dayEnd time.Time,
) ([]models.Booking, error) {

	if r.listErr != nil {
		return nil, r.listErr
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.Booking
	for _, b := range r.bookings {
		if b.BarberID != barberID || !domain.IsActive(domain.Status(b.Status)) {
			continue
		}
		if b.StartTime.Before(dayStart) || !b.StartTime.Before(dayEnd) {
			continue
		}
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].StartTime.Before(out[j].StartTime)
	})
	return out, nil
}

func (r *memRepo) CreateBooking(_ context.Context, b *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.bookings {
		if existing.BarberID == b.BarberID &&
			existing.StartTime.Equal(b.StartTime) &&
			domain.IsActive(domain.Status(existing.Status)) {
			return httperr.ErrBusiness("slot_unavailable")
		}
	}

	r.nextID++
	b.ID = r.nextID
	r.bookings[b.ID] = *b
	return nil
}

func (r *memRepo) GetBooking(_ context.Context, id uint) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if b, ok := r.bookings[id]; ok {
		return &b, nil
	}
	return nil, httperr.ErrBusiness("booking_not_found")
}

func (r *memRepo) ListBookings(_ context.Context) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Booking
	for _, b := range r.bookings {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].StartTime.After(out[j].StartTime)
	})
	return out, nil
}

func (r *memRepo) ListBookingsForDay(
	_ context.Context,
	barberID uint,
	dayStart time.Time,
	dayEnd time.Time,
) ([]models.Booking, error) {

	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Booking
	for _, b := range r.bookings {
		if barberID != 0 && b.BarberID != barberID {
			continue
		}
		if b.StartTime.Before(dayStart) || !b.StartTime.Before(dayEnd) {
			continue
		}
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].StartTime.Before(out[j].StartTime)
	})
	return out, nil
}

func (r *memRepo) UpdateBooking(_ context.Context, b *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.bookings[b.ID] = *b
	return nil
}

var _ domain.Repository = (*memRepo)(nil)
