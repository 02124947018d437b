package scheduling

import "time"

// SlotStep is both the slot grid and the minimum distance between two
// confirmed bookings of one provider.
const SlotStep = 30 * time.Minute

// Hours is one weekday's opening window, as offsets from midnight.
type Hours struct {
	Open       time.Duration
	LunchStart time.Duration
	LunchEnd   time.Duration
	Close      time.Duration
}

func (h Hours) HasLunch() bool {
	return h.LunchEnd > h.LunchStart
}

func (h Hours) InLunch(tod time.Duration) bool {
	return h.HasLunch() && tod >= h.LunchStart && tod < h.LunchEnd
}

// Admits reports whether a booking may start at tod.
func (h Hours) Admits(tod time.Duration) bool {
	if tod < h.Open || tod >= h.Close {
		return false
	}
	return !h.InLunch(tod)
}

var (
	weekdayHours = Hours{
		Open:       9 * time.Hour,
		LunchStart: 12 * time.Hour,
		LunchEnd:   13 * time.Hour,
		Close:      18 * time.Hour,
	}
	saturdayHours = Hours{
		Open:  9 * time.Hour,
		Close: 13 * time.Hour,
	}
)

// HoursFor returns the business hours of a weekday; false means closed.
func HoursFor(day time.Weekday) (Hours, bool) {
	switch day {
	case time.Sunday:
		return Hours{}, false
	case time.Saturday:
		return saturdayHours, true
	default:
		return weekdayHours, true
	}
}

// TimeOfDay is t's offset from its own midnight.
func TimeOfDay(t time.Time) time.Duration {
	return time.Duration(t.Hour())*time.Hour +
		time.Duration(t.Minute())*time.Minute +
		time.Duration(t.Second())*time.Second
}

// At places a time-of-day on date's calendar day, in date's location.
func At(date time.Time, tod time.Duration) time.Time {
	return time.Date(
		date.Year(), date.Month(), date.Day(),
		int(tod/time.Hour), int(tod%time.Hour/time.Minute), 0, 0,
		date.Location(),
	)
}
