package booking

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSlots_DefaultWindow(t *testing.T) {
	cfg := DefaultSlotConfig()

	slots, err := GenerateSlots(cfg.Open, cfg.Close, cfg.IntervalMinutes)
	require.NoError(t, err)

	assert.Len(t, slots, 14)
	assert.Equal(t, "10:00", slots[0])
	assert.Equal(t, "16:30", slots[13])
}

func TestGenerateSlots_InclusiveCloseOnlyWhenReachable(t *testing.T) {
	// 16:45 is not reachable from 10:00 in 30-minute steps, so the last
	// slot stays at 16:30.
	slots, err := GenerateSlots("10:00", "16:45", 30)
	require.NoError(t, err)
	assert.Equal(t, "16:30", slots[len(slots)-1])

	slots, err = GenerateSlots("09:00", "17:00", 60)
	require.NoError(t, err)
	assert.Equal(t, "17:00", slots[len(slots)-1])
}

func TestGenerateSlots_StrictlyIncreasingAndEvenlySpaced(t *testing.T) {
	cases := []struct {
		open, close string
		interval    int
	}{
		{"10:00", "16:30", 30},
		{"08:00", "20:00", 15},
		{"09:30", "12:00", 45},
		{"00:00", "23:45", 5},
		{"12:00", "12:00", 30},
	}

	for _, tc := range cases {
		t.Run(fmt.Sprintf("%s-%s/%d", tc.open, tc.close, tc.interval), func(t *testing.T) {
			slots, err := GenerateSlots(tc.open, tc.close, tc.interval)
			require.NoError(t, err)
			require.NotEmpty(t, slots)

			assert.Equal(t, tc.open, slots[0])

			prev, err := TimeToMinutes(slots[0])
			require.NoError(t, err)
			for _, s := range slots[1:] {
				cur, err := TimeToMinutes(s)
				require.NoError(t, err)
				assert.Equal(t, tc.interval, cur-prev, "slot %s not spaced by interval", s)
				prev = cur
			}

			closeMin, _ := TimeToMinutes(tc.close)
			assert.LessOrEqual(t, prev, closeMin)
		})
	}
}

func TestGenerateSlots_ZeroPadded(t *testing.T) {
	slots, err := GenerateSlots("08:05", "09:05", 30)
	require.NoError(t, err)
	assert.Equal(t, []string{"08:05", "08:35", "09:05"}, slots)
}

func TestGenerateSlots_InvalidInput(t *testing.T) {
	_, err := GenerateSlots("ten", "16:30", 30)
	assert.Error(t, err)

	_, err = GenerateSlots("10:00", "16:30", 0)
	assert.Error(t, err)
}

func TestParseDuration(t *testing.T) {
	cases := []struct {
		text string
		want int
	}{
		{"30 minutes", 30},
		{"45 min", 45},
		{"1 hour", 60},
		{"2 hrs", 120},
		{"1 hour 15 minutes", 75},
		{"1h30m", 90},
		{"1 heure", 60}, // the "h" in "heure" is enough
		{"", 30},
		{"soon", 30},
		{"0 minutes", 30},
	}

	for _, tc := range cases {
		t.Run(tc.text, func(t *testing.T) {
			assert.Equal(t, tc.want, ParseDuration(tc.text))
		})
	}
}
