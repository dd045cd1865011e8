package booking

import (
	"fmt"
	"time"
)

// SlotConfig is the shared operating window for all barbers. It is a
// value, not global state, so callers and tests can supply arbitrary
// windows.
type SlotConfig struct {
	Open            string // "HH:MM"
	Close           string // "HH:MM"
	IntervalMinutes int
}

func DefaultSlotConfig() SlotConfig {
	return SlotConfig{
		Open:            "10:00",
		Close:           "16:30",
		IntervalMinutes: 30,
	}
}

// GenerateSlots produces every bookable start time from open to close
// inclusive, stepping by interval minutes, as zero-padded "HH:MM"
// labels. The closing time itself is bookable when a step lands on it
// exactly; the resulting appointment may extend past closing.
func GenerateSlots(open, close string, intervalMinutes int) ([]string, error) {
	openMin, err := TimeToMinutes(open)
	if err != nil {
		return nil, err
	}
	closeMin, err := TimeToMinutes(close)
	if err != nil {
		return nil, err
	}
	if intervalMinutes <= 0 {
		return nil, fmt.Errorf("invalid slot interval: %d", intervalMinutes)
	}

	var slots []string
	for m := openMin; m <= closeMin; m += intervalMinutes {
		slots = append(slots, fmt.Sprintf("%02d:%02d", m/60, m%60))
	}
	return slots, nil
}

// TimeToMinutes converts an "HH:MM" label to minutes since midnight.
func TimeToMinutes(hm string) (int, error) {
	t, err := time.Parse("15:04", hm)
	if err != nil {
		return 0, fmt.Errorf("invalid time %q: %w", hm, err)
	}
	return t.Hour()*60 + t.Minute(), nil
}
