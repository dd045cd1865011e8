package booking

import "github.com/naimkchao/barbershop-backend/internal/httperr"

// ===============================
// Booking Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
	StatusNoShow    Status = "no_show"
)

// ActiveStatuses are the statuses that occupy calendar time. Cancelled,
// completed and no_show bookings never block a slot.
var ActiveStatuses = []Status{StatusPending, StatusConfirmed}

func IsValidStatus(s Status) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted, StatusNoShow:
		return true
	}
	return false
}

func IsActive(s Status) bool {
	return s == StatusPending || s == StatusConfirmed
}

// transitions encodes the administrative state machine:
// pending -> {confirmed, cancelled}
// confirmed -> {cancelled, completed, no_show}
// cancelled / completed / no_show are terminal.
var transitions = map[Status][]Status{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCancelled, StatusCompleted, StatusNoShow},
}

// CanTransition validates an administrative status change.
func CanTransition(from, to Status) error {
	for _, next := range transitions[from] {
		if next == to {
			return nil
		}
	}
	return httperr.ErrBusiness("invalid_state")
}

// InitialStatus is the status written by the public booking flow. The
// column default stays "pending" for rows created outside this flow.
func InitialStatus() Status {
	return StatusConfirmed
}
