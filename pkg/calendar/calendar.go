// Package calendar provides the month and week arithmetic the roster engine
// is built on. All functions are pure; months are 1-indexed here, and wire
// payloads (which carry 0-indexed months) are converted at the boundary.
package calendar

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/arnavshah/roster-api-go/pkg/models"
)

// Month identifies one calendar month. M is 1..12.
type Month struct {
	Year int
	M    int
}

// MonthFromWire converts a wire MonthContext (0-indexed month) to a Month
func MonthFromWire(mc models.MonthContext) (Month, error) {
	if mc.Month < 0 || mc.Month > 11 {
		return Month{}, fmt.Errorf("month index %d out of range 0..11", mc.Month)
	}
	return Month{Year: mc.Year, M: mc.Month + 1}, nil
}

// Wire converts back to the 0-indexed wire representation
func (m Month) Wire() models.MonthContext {
	return models.MonthContext{Year: m.Year, Month: m.M - 1}
}

// Key is the persistence month key, e.g. "2025-11"
func (m Month) Key() string {
	return fmt.Sprintf("%d-%d", m.Year, m.M)
}

// Days returns the number of days in the month
func (m Month) Days() int {
	// day 0 of the next month is the last day of this one
	return time.Date(m.Year, time.Month(m.M)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// DayOfWeek returns the weekday of a day of the month, 0=Sunday..6=Saturday
func (m Month) DayOfWeek(day int) int {
	return int(time.Date(m.Year, time.Month(m.M), day, 0, 0, 0, 0, time.UTC).Weekday())
}

// DateKey formats a day of the month as the "M/D" wire key (no leading zeros)
func (m Month) DateKey(day int) string {
	return fmt.Sprintf("%d/%d", m.M, day)
}

// ParseDateKey parses an "M/D" key and returns the day of month. The key's
// month component must match m; a mismatched or malformed key is an error.
func (m Month) ParseDateKey(key string) (int, error) {
	parts := strings.SplitN(key, "/", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("malformed date key %q, want \"M/D\"", key)
	}
	mm, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("malformed date key %q: %w", key, err)
	}
	d, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("malformed date key %q: %w", key, err)
	}
	if mm != m.M {
		return 0, fmt.Errorf("date key %q does not belong to month %s", key, m.Key())
	}
	if d < 1 || d > m.Days() {
		return 0, fmt.Errorf("date key %q: day out of range 1..%d", key, m.Days())
	}
	return d, nil
}

// IsWeekend reports whether a weekday index is Saturday or Sunday
func IsWeekend(dayOfWeek int) bool {
	return dayOfWeek == 0 || dayOfWeek == 6
}

// Class returns the calendar class of a day of the month
func (m Month) Class(day int) models.CalendarClass {
	if IsWeekend(m.DayOfWeek(day)) {
		return models.ClassWeekend
	}
	return models.ClassWeekday
}

// ISOWeekStart returns the day-of-month of the Monday beginning the ISO week
// containing day. The result may fall outside [1, Days()] when the week spans
// a month boundary; callers clamp their scan range to the month, since weekly
// accounting deliberately does not look across month boundaries.
func (m Month) ISOWeekStart(day int) int {
	dow := m.DayOfWeek(day)
	if dow == 0 {
		return day - 6
	}
	return day + 1 - dow
}
