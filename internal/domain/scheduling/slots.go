package scheduling

import (
	"time"

	"github.com/BruksfildServices01/barber-schedule/internal/timezone"
)

type DayStatus string

const (
	DayOpen    DayStatus = "open"
	DayClosed  DayStatus = "closed"
	DayHoliday DayStatus = "holiday"
)

// DayPlan is a day's slot list tagged with why it may be empty.
type DayPlan struct {
	Date   time.Time
	Status DayStatus
	Slots  []time.Time
}

func (p DayPlan) IsOpen() bool {
	return p.Status == DayOpen
}

func ClosedPlan(date time.Time) DayPlan {
	return DayPlan{Date: date, Status: DayClosed, Slots: []time.Time{}}
}

func HolidayPlan(date time.Time) DayPlan {
	return DayPlan{Date: date, Status: DayHoliday, Slots: []time.Time{}}
}

// GenerateSlots enumerates the SlotStep grid over [open, close) minus lunch.
func GenerateSlots(date time.Time) DayPlan {
	hours, open := HoursFor(date.Weekday())
	if !open {
		return ClosedPlan(date)
	}

	slots := make([]time.Time, 0, int((hours.Close-hours.Open)/SlotStep))
	for tod := hours.Open; tod < hours.Close; tod += SlotStep {
		if hours.InLunch(tod) {
			continue
		}
		slots = append(slots, At(date, tod))
	}

	return DayPlan{Date: date, Status: DayOpen, Slots: slots}
}

// WithoutTaken drops every slot whose HH:MM equals a taken start time.
// Order is preserved.
func (p DayPlan) WithoutTaken(taken []time.Time) DayPlan {
	if len(taken) == 0 {
		return p
	}

	busy := make(map[string]struct{}, len(taken))
	for _, t := range taken {
		busy[timezone.Clock(t.In(p.Date.Location()))] = struct{}{}
	}

	free := make([]time.Time, 0, len(p.Slots))
	for _, s := range p.Slots {
		if _, hit := busy[timezone.Clock(s)]; hit {
			continue
		}
		free = append(free, s)
	}

	p.Slots = free
	return p
}
