package availability

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ErrInvalidTimeFormat is returned when a time string is not 24-hour "HH:MM".
var ErrInvalidTimeFormat = errors.New("invalid time format, expected HH:MM")

// MinutesPerDay is the number of minutes in one day.
const MinutesPerDay = 1440

var hhmmPattern = regexp.MustCompile(`^([01]\d|2[0-3]):([0-5]\d)$`)

// ToMinutes converts a 24-hour "HH:MM" string to minutes from midnight.
// Malformed input is rejected, never coerced.
func ToMinutes(hhmm string) (int, error) {
	m := hhmmPattern.FindStringSubmatch(strings.TrimSpace(hhmm))
	if m == nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, hhmm)
	}
	hours, _ := strconv.Atoi(m[1])
	minutes, _ := strconv.Atoi(m[2])
	return hours*60 + minutes, nil
}

// ToHHMM converts minutes from midnight back to a zero-padded "HH:MM"
// string, wrapping around midnight in either direction.
func ToHHMM(total int) string {
	total = ((total % MinutesPerDay) + MinutesPerDay) % MinutesPerDay
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

// Overlaps reports whether the half-open intervals [aStart, aEnd) and
// [bStart, bEnd) share any minute. Intervals that only touch at an
// endpoint do not overlap.
func Overlaps(aStart, aEnd, bStart, bEnd int) bool {
	return aStart < bEnd && bStart < aEnd
}
