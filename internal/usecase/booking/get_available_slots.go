package booking

import (
	"context"
	"time"

	domain "github.com/naimkchao/barbershop-backend/internal/domain/booking"
	"github.com/naimkchao/barbershop-backend/internal/httperr"
)

type GetAvailableSlots struct {
	repo  domain.Repository
	loc   *time.Location
	slots domain.SlotConfig
}

func NewGetAvailableSlots(
	repo domain.Repository,
	loc *time.Location,
	slots domain.SlotConfig,
) *GetAvailableSlots {
	return &GetAvailableSlots{
		repo:  repo,
		loc:   loc,
		slots: slots,
	}
}

// Execute returns the free "HH:MM" start times for a barber on a
// calendar date, as of the moment of the call. The result is a
// snapshot: it may be stale by the time a booking is submitted, which
// is why the writer re-checks and the database constraint is the final
// guard.
func (uc *GetAvailableSlots) Execute(
	ctx context.Context,
	barberID uint,
	date string, // YYYY-MM-DD in the salon's calendar
) ([]string, error) {

	// --------------------------------------------------
	// 1. Day boundaries: local midnight-to-midnight as UTC instants.
	//    ParseInLocation carries the zone offset (and DST) for us;
	//    naive arithmetic on the wall-clock string would not.
	// --------------------------------------------------
	day, err := time.ParseInLocation("2006-01-02", date, uc.loc)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	dayStart := day
	dayEnd := day.AddDate(0, 0, 1)

	// --------------------------------------------------
	// 2. Active bookings for the day.
	// --------------------------------------------------
	bookings, err := uc.repo.ListActiveBookingsForDay(
		ctx,
		barberID,
		dayStart.UTC(),
		dayEnd.UTC(),
	)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 3. Full slot grid.
	// --------------------------------------------------
	allSlots, err := domain.GenerateSlots(
		uc.slots.Open,
		uc.slots.Close,
		uc.slots.IntervalMinutes,
	)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 4. Mark occupied slots. Half-open [start, end): a slot exactly at
	//    a booking's end time is free, a slot at its start is taken.
	// --------------------------------------------------
	occupied := make(map[string]bool)
	for _, b := range bookings {
		localStart := b.StartTime.In(uc.loc)
		localEnd := b.EndTime.In(uc.loc)

		startMin := localStart.Hour()*60 + localStart.Minute()
		endMin := localEnd.Hour()*60 + localEnd.Minute()

		for _, slot := range allSlots {
			slotMin, err := domain.TimeToMinutes(slot)
			if err != nil {
				return nil, err
			}
			if slotMin >= startMin && slotMin < endMin {
				occupied[slot] = true
			}
		}
	}

	// --------------------------------------------------
	// 5. Free slots, generator order preserved.
	// --------------------------------------------------
	free := make([]string, 0, len(allSlots))
	for _, slot := range allSlots {
		if !occupied[slot] {
			free = append(free, slot)
		}
	}

	return free, nil
}
