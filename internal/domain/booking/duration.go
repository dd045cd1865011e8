package booking

import (
	"regexp"
	"strconv"
	"strings"
)

const DefaultDurationMinutes = 30

var (
	minuteWords = regexp.MustCompile(`mins?|minutes?`)
	hourWords   = regexp.MustCompile(`hours?|hrs?`)
	whitespace  = regexp.MustCompile(`\s+`)
	hourDigits  = regexp.MustCompile(`(\d+)h`)
	minDigits   = regexp.MustCompile(`(\d+)m`)
)

// ParseDuration turns human-entered duration text ("30 minutes",
// "1 hour", "1h30m") into minutes. Missing or unparseable text falls
// back to 30 minutes; that default is deliberate, not an error.
func ParseDuration(text string) int {
	if text == "" {
		return DefaultDurationMinutes
	}

	cleaned := strings.ToLower(text)
	cleaned = minuteWords.ReplaceAllString(cleaned, "m")
	cleaned = hourWords.ReplaceAllString(cleaned, "h")
	cleaned = whitespace.ReplaceAllString(cleaned, "")

	hours := 0
	if m := hourDigits.FindStringSubmatch(cleaned); m != nil {
		hours, _ = strconv.Atoi(m[1])
	}
	mins := 0
	if m := minDigits.FindStringSubmatch(cleaned); m != nil {
		mins, _ = strconv.Atoi(m[1])
	}

	total := hours*60 + mins
	if total <= 0 {
		return DefaultDurationMinutes
	}
	return total
}
