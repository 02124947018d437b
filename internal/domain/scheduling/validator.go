package scheduling

import (
	"time"

	"github.com/BruksfildServices01/barber-schedule/internal/validators"
)

// Request is a proposed booking, with DateTime already in the business
// time zone.
type Request struct {
	DateTime    time.Time
	ClientName  string
	ClientPhone string
	WorkType    string
	Holiday     bool
}

// DaySnapshot is what the store knows about the provider's day at decision
// time.
type DaySnapshot struct {
	Confirmed    []time.Time
	ClientBooked bool
}

type Validator struct {
	PhonePrefix string
}

func NewValidator(phonePrefix string) Validator {
	return Validator{PhonePrefix: phonePrefix}
}

// Validate runs the booking rules in order and stops at the first failure.
// It returns the stored work-type code. It never mutates anything.
func (v Validator) Validate(req Request, snap DaySnapshot, now time.Time) (string, error) {
	if !req.DateTime.After(now) {
		return "", ErrPastDate
	}

	hours, open := HoursFor(req.DateTime.Weekday())
	if !open {
		return "", ErrClosedDay
	}

	if req.Holiday {
		return "", ErrHoliday
	}

	if !hours.Admits(TimeOfDay(req.DateTime)) {
		return "", ErrOutsideHours
	}

	if err := CheckCollision(req.DateTime, snap.Confirmed); err != nil {
		return "", err
	}

	if !validators.IsClientNameValid(req.ClientName) {
		return "", ErrInvalidClientName
	}

	if !validators.IsPhoneValid(req.ClientPhone, v.PhonePrefix) {
		return "", ErrInvalidPhone
	}

	code, err := WorkTypeCode(req.WorkType)
	if err != nil {
		return "", err
	}

	if snap.ClientBooked {
		return "", ErrDuplicateBooking
	}

	return code, nil
}

// CheckCollision rejects start when it is less than SlotStep away from any
// confirmed start, in either direction.
func CheckCollision(start time.Time, confirmed []time.Time) error {
	for _, c := range confirmed {
		diff := start.Sub(c)
		if diff < 0 {
			diff = -diff
		}
		if diff < SlotStep {
			return ErrSlotTaken
		}
	}
	return nil
}
