package timezone

import "time"

const DefaultTimezone = "America/Sao_Paulo"

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

// Location falls back to DefaultTimezone, then UTC when tzdata is missing.
func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	if loc, err := time.LoadLocation(DefaultTimezone); err == nil {
		return loc
	}
	return time.UTC
}

// Day is the calendar-date key used by the store.
func Day(t time.Time) string {
	return t.Format("2006-01-02")
}

// Clock is the HH:MM key used by the store and the slot grid.
func Clock(t time.Time) string {
	return t.Format("15:04")
}

func ParseDate(loc *time.Location, dateStr string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", dateStr, loc)
}

var instantLayouts = []string{
	"2006-01-02T15:04",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02 15:04:05",
}

// ParseInstant accepts RFC 3339 (offset honoured) or a local wall-clock
// "YYYY-MM-DD[T ]HH:MM[:SS]" read in loc. The result is in loc.
func ParseInstant(loc *time.Location, s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.In(loc), nil
	}

	var lastErr error
	for _, layout := range instantLayouts {
		t, err := time.ParseInLocation(layout, s, loc)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
